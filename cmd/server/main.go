package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	"meeting-scheduler/internal/config"
	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/logging"
	"meeting-scheduler/internal/middleware"
	"meeting-scheduler/internal/router"
	"meeting-scheduler/internal/rpc"
	"meeting-scheduler/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

	if err := run(cfg, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// phase 1: store must be reachable and initialized before we listen
	pool, err := store.Connect(ctx, cfg.DSN(), cfg.DBMaxConns)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer pool.Close()
	log.Info("connected to postgres", "max_conns", cfg.DBMaxConns)

	st := store.New(pool)
	if err := st.Migrate(ctx); err != nil {
		return fmt.Errorf("db init: %w", err)
	}
	log.Info("db initialized")

	// phase 2: serve
	var rl *middleware.RateLimiter
	if cfg.RateLimitRPS > 0 {
		rl = middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		defer rl.Close()
	}

	gin.SetMode(cfg.GinMode)
	h := handler.New(st, cfg.Contact, log)
	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.New(h, router.Options{Logger: log, Limiter: rl}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 2)
	go func() {
		log.Info("backend listening", "port", cfg.Port)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http: %w", err)
		}
	}()

	var grpcSrv *grpc.Server
	if cfg.GRPCPort != "" {
		lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
		if err != nil {
			httpSrv.Close()
			return fmt.Errorf("grpc listen: %w", err)
		}
		grpcSrv = rpc.NewServer(rpc.NewMeetingServer(st, cfg.Contact, log), rl)
		go func() {
			log.Info("grpc listening", "port", cfg.GRPCPort)
			if err := grpcSrv.Serve(lis); err != nil {
				errc <- fmt.Errorf("grpc: %w", err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case runErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "err", err)
	}
	return runErr
}
