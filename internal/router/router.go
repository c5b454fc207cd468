package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"meeting-scheduler/internal/handler"
	"meeting-scheduler/internal/middleware"
)

type Options struct {
	Logger *slog.Logger
	// Limiter, when non-nil, guards meeting creation.
	Limiter *middleware.RateLimiter
}

func New(h *handler.Handler, opts Options) *gin.Engine {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	useCORS(r)

	r.GET("/healthz", h.Health)

	api := r.Group("/api")
	{
		api.GET("/contact", h.Contact)
		api.GET("/meetings", h.ListMeetings)

		create := []gin.HandlerFunc{h.CreateMeeting}
		if opts.Limiter != nil {
			create = append([]gin.HandlerFunc{middleware.Limit(opts.Limiter)}, create...)
		}
		api.POST("/meetings", create...)
	}
	return r
}

// any origin, no credentials
func useCORS(r *gin.Engine) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
}
