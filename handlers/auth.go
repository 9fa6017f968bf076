package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio-cms/portfolio-api/internal/config"
	"github.com/portfolio-cms/portfolio-api/pkg/logger"
	"github.com/portfolio-cms/portfolio-api/pkg/metrics"
)

// LoginRequest carries the management password.
type LoginRequest struct {
	Password string `json:"password" form:"password"`
}

// LoginResponse is returned for both outcomes; the status code tells them apart.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthHandler gates the management UI behind one shared secret.
// It keeps no state: every call is a fresh comparison.
type AuthHandler struct {
	cfg config.AuthConfig
}

func NewAuthHandler(cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// Register routes: POST /login (and /login/)
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
	rg.POST("/login/", h.Login)
}

// Login compares the submitted password with the configured one.
// Plain equality, no hashing: the secret only hides the admin screens.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if h.cfg.AdminPassword == "" || req.Password != h.cfg.AdminPassword {
		metrics.LoginAttempts.WithLabelValues("failure").Inc()
		logger.Warnf("login rejected from %s", c.ClientIP())
		c.JSON(http.StatusUnauthorized, LoginResponse{Success: false, Message: "wrong password"})
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	logger.Infof("login accepted from %s", c.ClientIP())
	c.JSON(http.StatusOK, LoginResponse{Success: true, Message: "login successful"})
}
