package request

import "strings"

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=30"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = normalizeEmail(r.Email)
	r.Password = strings.TrimSpace(r.Password)
	r.ConfirmPassword = strings.TrimSpace(r.ConfirmPassword)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

func (r *LoginRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
	r.Password = strings.TrimSpace(r.Password)
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *EmailRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   int    `json:"otp" validate:"required,min=100000,max=999999"`
}

func (r *VerifyOTPRequest) Normalize() {
	r.Email = normalizeEmail(r.Email)
}

type ResetPasswordRequest struct {
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (r *ResetPasswordRequest) Normalize() {
	r.NewPassword = strings.TrimSpace(r.NewPassword)
	r.ConfirmPassword = strings.TrimSpace(r.ConfirmPassword)
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" validate:"required,min=6,max=100"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=100"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=NewPassword"`
}

func (r *ChangePasswordRequest) Normalize() {
	r.OldPassword = strings.TrimSpace(r.OldPassword)
	r.NewPassword = strings.TrimSpace(r.NewPassword)
	r.ConfirmPassword = strings.TrimSpace(r.ConfirmPassword)
}

type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,min=2,max=30"`
}

func (r *UpdateProfileRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

// TodoRequest carries the date as a string so both date-only and RFC3339
// payloads are accepted; the service parses it.
type TodoRequest struct {
	Todo string `json:"todo" validate:"required,min=1"`
	Date string `json:"date" validate:"required"`
}

func (r *TodoRequest) Normalize() {
	r.Todo = strings.TrimSpace(r.Todo)
	r.Date = strings.TrimSpace(r.Date)
}

type TodoStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Completed Progress Pending"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
