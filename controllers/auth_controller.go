package controllers

import (
	"errors"
	"net/http"

	"bike-shop/models"
	"bike-shop/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type Authenticator interface {
	Login(req models.LoginRequest) (*models.LoginResponse, error)
}

type AuthController struct {
	auth Authenticator
}

func NewAuthController(auth Authenticator) *AuthController {
	return &AuthController{auth: auth}
}

// Login godoc
// @Summary Admin login
// @Description Exchange the admin credentials for a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login Request"
// @Success 200 {object} models.Response{data=models.LoginResponse}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Message: "Invalid request",
			Error:   err.Error(),
		})
		return
	}

	resp, err := ctrl.auth.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid credentials",
			})
			return
		}
		log.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Failed to login",
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data:    resp,
	})
}
