package controllers

import (
	"net/http"

	"trackit-be/internal/models"
	"trackit-be/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles POST /login
// Delivery failures are reported in the body; the HTTP status stays 200.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  models.StatusError,
			"message": "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, ac.authService.Login(c.Request.Context(), &req))
}
