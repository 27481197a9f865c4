package api

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sakha-landing/pkg/config"
	"sakha-landing/pkg/middleware"
	"sakha-landing/web"
)

func init() {
	// Some platforms ship no mime entry for wasm, which breaks instantiateStreaming.
	_ = mime.AddExtensionType(".wasm", "application/wasm")
}

// NewRouter builds the engine serving the landing page and its assets.
func NewRouter(cfg *config.Config, logger *zap.Logger) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Server.AllowedOrigins),
	)
	router.SetHTMLTemplate(tmpl)

	handlers := NewHandlers(cfg, logger)

	router.GET("/", handlers.Landing)
	router.GET("/health", handlers.HealthCheck)
	router.StaticFS("/assets", http.FS(web.Assets()))
	router.Static("/static", cfg.Landing.StaticDir)

	return router, nil
}
