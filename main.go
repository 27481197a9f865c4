package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sakha-landing/pkg/api"
	"sakha-landing/pkg/config"
	"sakha-landing/pkg/logger"
)

func main() {
	envFile := config.LoadDotEnvUp(6)

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		zap.NewExample().Fatal("config load failed", zap.Error(err))
	}

	log, err := logger.New("landing", cfg.Env)
	if err != nil {
		zap.NewExample().Fatal("logger init failed", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	if envFile != "" {
		log.Info("loaded env file", zap.String("path", envFile))
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := api.NewRouter(cfg, log)
	if err != nil {
		log.Fatal("router init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr), zap.String("static_dir", cfg.Landing.StaticDir))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("error starting server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}
