package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/model/request"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
	"todoapi/internal/shared"
	"todoapi/pkg/auth"
)

// AuthService implements the registration, verification and password flows.
type AuthService struct {
	users    port.UserRepository
	mailer   port.Mailer
	tokens   *auth.JWT
	domain   string
	otpTTL   time.Duration
	resetTTL time.Duration
	logger   zerolog.Logger
	metrics  *shared.AppMetrics
}

func NewAuthService(
	users port.UserRepository,
	mailer port.Mailer,
	tokens *auth.JWT,
	cfg *shared.AppConfig,
	logger zerolog.Logger,
	metrics *shared.AppMetrics,
) *AuthService {
	return &AuthService{
		users:    users,
		mailer:   mailer,
		tokens:   tokens,
		domain:   cfg.Domain,
		otpTTL:   cfg.OTPTTL,
		resetTTL: cfg.ResetTokenTTL,
		logger:   logger,
		metrics:  metrics,
	}
}

// Register creates an unverified account, or reuses an existing unverified one
// for the same email, then mails the OTP. A verified account blocks the email.
func (s *AuthService) Register(ctx context.Context, req *request.RegisterRequest) error {
	existing, err := s.users.GetByEmail(ctx, req.Email)

	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if err == nil && existing.IsVerified {
		return domain.BadRequest("User exists with the provided E-Mail")
	}

	encrypted, hashErr := util.GenerateEncrypt(req.Password)

	if hashErr != nil {
		return hashErr
	}

	otp := util.GenerateOTP()
	expiresAt := time.Now().Add(s.otpTTL)

	if err == nil {
		_, err = s.users.UpdateByUUID(ctx, existing.UUID.String(), map[string]any{
			"name":           req.Name,
			"password":       encrypted,
			"otp":            otp,
			"otp_expires_at": expiresAt,
		})
	} else {
		_, err = s.users.Create(ctx, domain.User{
			UUID:         uuid.New(),
			Name:         req.Name,
			Email:        req.Email,
			Password:     encrypted,
			OTP:          &otp,
			OTPExpiresAt: &expiresAt,
		})
	}

	if err != nil {
		return err
	}

	s.dispatchMail("verification", func() error {
		return s.mailer.SendVerificationMail(req.Email, req.Name, otp)
	})

	return nil
}

// Login authenticates a verified account. Missing user and wrong password
// produce the same error so the response never reveals which one failed.
func (s *AuthService) Login(ctx context.Context, req *request.LoginRequest) (domain.User, string, error) {
	user, err := s.users.GetActiveByEmail(ctx, req.Email)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, "", domain.Unauthorized("Invalid credentials")
		}
		return domain.User{}, "", err
	}

	if err := util.ComparePassword(req.Password, user.Password); err != nil {
		return domain.User{}, "", domain.Unauthorized("Invalid credentials")
	}

	token, err := s.tokens.CreateToken(user.UUID.String(), 0)

	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

// SendVerificationMail regenerates the OTP for an unverified account.
func (s *AuthService) SendVerificationMail(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("User details not found")
		}
		return err
	}

	if user.IsVerified {
		return domain.BadRequest("User already verified")
	}

	otp := util.GenerateOTP()
	expiresAt := time.Now().Add(s.otpTTL)

	if _, err := s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"otp":            otp,
		"otp_expires_at": expiresAt,
	}); err != nil {
		return err
	}

	s.dispatchMail("verification", func() error {
		return s.mailer.SendVerificationMail(user.Email, user.Name, otp)
	})

	return nil
}

// VerifyOTP marks the account verified when the code matches within its
// window, then clears the scratch fields.
func (s *AuthService) VerifyOTP(ctx context.Context, email string, otp int) error {
	user, err := s.users.GetByEmailAndOTP(ctx, email, otp)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("User details not found")
		}
		return err
	}

	if user.OTPExpired(time.Now()) {
		return domain.BadRequest("OTP expired, please try again")
	}

	_, err = s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"is_verified":    true,
		"otp":            nil,
		"otp_expires_at": nil,
	})

	return err
}

// ForgotPassword issues a short-lived reset token, stores it on the user, and
// mails the reset link.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.GetActiveByEmail(ctx, email)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NotFound("No user found with this email")
		}
		return err
	}

	token, err := s.tokens.CreateToken(user.UUID.String(), s.resetTTL)

	if err != nil {
		return err
	}

	if _, err := s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"reset_password_token": token,
	}); err != nil {
		return err
	}

	link := s.domain + "/reset-password/" + token

	s.dispatchMail("password_reset", func() error {
		return s.mailer.SendPasswordResetMail(user.Email, user.Name, link)
	})

	return nil
}

// ResetPassword verifies the token signature, requires it to match the token
// stored on the user, then replaces the password and clears the token.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	subject, err := s.tokens.VerifyToken(token)

	if err != nil {
		return domain.BadRequest("Invalid or expired token")
	}

	user, err := s.users.GetByUUID(ctx, subject)

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.BadRequest("Invalid or expired token")
		}
		return err
	}

	if user.ResetPasswordToken == nil || *user.ResetPasswordToken != token {
		return domain.BadRequest("Invalid or expired token")
	}

	encrypted, err := util.GenerateEncrypt(newPassword)

	if err != nil {
		return err
	}

	_, err = s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"password":             encrypted,
		"reset_password_token": nil,
	})

	return err
}

// dispatchMail sends in the background. Failures are logged and counted but
// never surfaced to the caller.
func (s *AuthService) dispatchMail(kind string, send func() error) {
	go func() {
		err := send()

		if s.metrics != nil {
			s.metrics.RecordMailDispatch(kind, err)
		}

		if err != nil {
			s.logger.Error().Err(err).Str("kind", kind).Msg("mail dispatch failed")
		}
	}()
}

var _ port.AuthService = (*AuthService)(nil)
