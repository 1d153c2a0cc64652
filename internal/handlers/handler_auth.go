package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	portssvc "github.com/flsuite/freelance_ledger_app/internal/core/ports/services"
	"github.com/flsuite/freelance_ledger_app/internal/dto"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// authHandler handles authentication related requests.
type authHandler struct {
	authService portssvc.AuthSvc
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(as portssvc.AuthSvc) *authHandler {
	return &authHandler{authService: as}
}

// registerAuthRoutes sets up the routes for authentication.
func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc) {
	h := newAuthHandler(authService)

	// Brute-force guard on the key exchange endpoint.
	limitMiddleware := limitergin.NewMiddleware(newLimiter("5-M", "5-M"))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// login godoc
// @Summary Exchange the API key for a JWT
// @Description Authenticates with the configured API key and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "API key"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid API key"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
