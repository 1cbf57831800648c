package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/expensemaster/expense_master_app/internal/dto"
	"github.com/expensemaster/expense_master_app/internal/middleware"
	"github.com/expensemaster/expense_master_app/internal/platform/config"
	"github.com/expensemaster/expense_master_app/internal/utils"
)

// AuthHandler handles credential issuance.
type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// registerAuthRoutes sets up the public credential issuance route with a
// per-IP rate limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := NewAuthHandler(cfg)

	// 5 requests per minute per IP
	rate, _ := limiter.NewRateFromFormatted("5-M")
	ipLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/auth")
	auth.POST("/token", middleware.RateLimit(ipLimiter), h.issueToken)
}

// issueToken godoc
// @Summary Issue a credential
// @Description Exchanges a claims payload (at least an email) for a signed, time-limited bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param claims body dto.TokenRequest true "Claims payload"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /auth/token [post]
func (h *AuthHandler) issueToken(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for token request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	token, err := utils.GenerateToken(req.Email, req.Claims, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue credential"})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		Token:     token,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
