package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type AuthHandler struct {
	svc    port.AuthService
	logger zerolog.Logger
}

func NewAuthHandler(svc port.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		svc:    svc,
		logger: logger,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req request.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusUnprocessableEntity, validation.FirstError(err))
		return
	}

	if err := h.svc.Register(c.Request.Context(), &req); err != nil {
		h.logger.Error().Err(err).Str("email", req.Email).Msg("registration failed")
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "User registered. Complete verification")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusUnprocessableEntity, validation.FirstError(err))
		return
	}

	user, token, err := h.svc.Login(c.Request.Context(), &req)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{
		"token": token,
		"user": response.UserResponse{
			ID:    user.UUID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, "User logged in")
}

func (h *AuthHandler) SendVerificationMail(c *gin.Context) {
	var req request.EmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid E-Mail format")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if err := h.svc.SendVerificationMail(c.Request.Context(), req.Email); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Verification e-mail sent")
}

func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req request.VerifyOTPRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid OTP format")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if err := h.svc.VerifyOTP(c.Request.Context(), req.Email, req.OTP); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "User verification completed")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req request.EmailRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid E-Mail format")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if err := h.svc.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Reset Password email sent")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req request.ResetPasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if err := h.svc.ResetPassword(c.Request.Context(), token, req.NewPassword); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Password reset successful")
}
