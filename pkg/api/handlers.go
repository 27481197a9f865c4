package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sakha-landing/pkg/config"
)

// LandingPage is the data rendered into the landing page template
type LandingPage struct {
	Title           string
	Env             string
	ConfirmationTTL string
	SupportPhone    string
	Relationships   []string
	Languages       []string
	CallTimes       []string
}

// Handlers contains all HTTP handlers for the API
type Handlers struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(cfg *config.Config, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{cfg: cfg, logger: logger}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Landing renders the page hosting the callback form. The form itself is
// handled in the browser; nothing is posted back here.
func (h *Handlers) Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.page())
}

func (h *Handlers) page() LandingPage {
	return LandingPage{
		Title:           "Sakha - a companion for your parents",
		Env:             h.cfg.Env,
		ConfirmationTTL: h.cfg.Landing.ConfirmationTTL.String(),
		SupportPhone:    "+911800123456",
		Relationships:   []string{"son", "daughter", "relative", "friend", "other"},
		Languages:       []string{"hindi", "english", "tamil", "telugu", "bengali", "marathi"},
		CallTimes:       []string{"morning", "afternoon", "evening"},
	}
}
