package controllers

import (
	"errors"
	"net/http"

	"github.com/CollegeSite/College-Backend/src/models"
	"github.com/CollegeSite/College-Backend/src/services"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Login handles POST requests exchanging credentials for a bearer token.
func (ac *AuthController) Login(ctx *gin.Context) {
	var req models.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	token, err := ac.service.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Email or Password"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Login Successful", "token": token})
}

// ForgotPassword handles POST requests starting the reset flow: a fresh code
// is persisted and mailed to the account.
func (ac *AuthController) ForgotPassword(ctx *gin.Context) {
	var req models.ForgotPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ac.service.ForgotPassword(ctx.Request.Context(), req.Email)
	if err != nil {
		var deliveryErr *services.MailDeliveryError
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Email"})
		case errors.As(err, &deliveryErr):
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Email sending failed"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Verification code sent to email"})
}

// ResetPassword handles POST requests consuming the verification code.
func (ac *AuthController) ResetPassword(ctx *gin.Context) {
	var req models.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	err := ac.service.ResetPassword(ctx.Request.Context(), req.Email, req.Code, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "New password is required"})
		case errors.Is(err, services.ErrInvalidCredentials):
			ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid verification code"})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Error resetting password"})
		}
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}

// Logout acknowledges a stateless logout; the guard middleware has already
// verified the token by the time this runs.
func (ac *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
