package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"meeting-scheduler/internal/config"
)

// freePort returns a local port with nothing listening on it.
func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := lis.Addr().(*net.TCPAddr).Port
	lis.Close()
	return port
}

func TestRunFailsBeforeListening(t *testing.T) {
	tests := []struct {
		name string
		dsn  func(t *testing.T) string
	}{
		{"store unreachable", func(t *testing.T) string {
			return fmt.Sprintf("postgres://postgres:pw@127.0.0.1:%d/meetings?sslmode=disable&connect_timeout=2", freePort(t))
		}},
		{"malformed dsn", func(t *testing.T) string { return "postgres://%zz" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := strconv.Itoa(freePort(t))
			cfg := &config.Config{
				Port:        port,
				GRPCPort:    strconv.Itoa(freePort(t)),
				GinMode:     "test",
				DatabaseURL: tt.dsn(t),
				DBMaxConns:  1,
			}
			var logs bytes.Buffer
			log := slog.New(slog.NewTextHandler(&logs, nil))

			done := make(chan error, 1)
			go func() { done <- run(cfg, log) }()

			var err error
			select {
			case err = <-done:
			case <-time.After(15 * time.Second):
				t.Fatal("run did not return")
			}
			if err == nil {
				t.Fatal("expected startup error")
			}
			if !strings.HasPrefix(err.Error(), "db:") {
				t.Errorf("error should come from the store phase: %v", err)
			}

			for _, p := range []string{cfg.Port, cfg.GRPCPort} {
				if conn, err := net.DialTimeout("tcp", "127.0.0.1:"+p, time.Second); err == nil {
					conn.Close()
					t.Errorf("port %s accepted a connection", p)
				}
			}
			if strings.Contains(logs.String(), "listening") {
				t.Errorf("a listener was started:\n%s", logs.String())
			}
		})
	}
}
