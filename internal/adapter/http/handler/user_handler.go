package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"todoapi/internal/adapter/http/helper"
	"todoapi/internal/adapter/http/middleware"
	"todoapi/internal/adapter/http/validation"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/model/response"
	"todoapi/internal/core/port"
)

type UserHandler struct {
	svc port.UserService
}

func NewUserHandler(svc port.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Profile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{
		"user": response.UserResponse{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	var req request.UpdateProfileRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), user, req.Name)

	if err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendData(c, http.StatusOK, gin.H{
		"user": response.UserResponse{
			Name:  updated.Name,
			Email: updated.Email,
		},
	}, "Profile updated successfully")
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)

	if !ok {
		helper.SendError(c, http.StatusUnauthorized, "User is not logged in")
		return
	}

	var req request.ChangePasswordRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, "Invalid request parameters")
		return
	}

	req.Normalize()

	if err := validation.Validator.Struct(&req); err != nil {
		helper.SendError(c, http.StatusBadRequest, validation.FirstError(err))
		return
	}

	if err := h.svc.ChangePassword(c.Request.Context(), user, req.OldPassword, req.NewPassword); err != nil {
		helper.HandleError(c, err)
		return
	}

	helper.SendSuccess(c, http.StatusOK, "Password updated successfully")
}
