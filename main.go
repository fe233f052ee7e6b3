package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"arena-platform/internal/auth"
	"arena-platform/internal/config"
	"arena-platform/internal/handler"
	"arena-platform/internal/logger"
	"arena-platform/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	ginprometheus "github.com/zsais/go-gin-prometheus"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	pool, err := store.Connect(ctx, cfg.DatabaseURL, log)
	cancel()
	if err != nil {
		log.Fatal("failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pool.Close()
	log.Info("connected to PostgreSQL")

	if err := store.Migrate(pool, log); err != nil {
		log.Fatal("failed to apply migrations", zap.Error(err))
	}

	st := store.NewPgStore(pool, log)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	h := handler.New(st, tokens, cfg)

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(handler.RequestLogger(log))
	r.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	p := ginprometheus.NewPrometheus("gin")
	p.Use(r)

	r.GET("/health", h.Health)
	r.Static("/uploads", cfg.UploadDir)

	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)

		api.GET("/events", h.ListEvents)

		authed := api.Group("", h.Authenticate())
		{
			authed.GET("/users/profile", h.Profile)
			authed.GET("/users/dashboard", h.Dashboard)
			authed.POST("/matches/challenge", h.Challenge)
			authed.POST("/events/register/:eventId", h.RegisterForEvent)
		}

		admin := api.Group("/admin", h.Authenticate(), h.RequireAdmin())
		{
			admin.GET("/users", h.AdminListUsers)
			admin.PUT("/users/:userId/status", h.AdminUpdateUserStatus)
			admin.POST("/events", h.AdminCreateEvent)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
