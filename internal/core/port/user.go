package port

import (
	"context"

	"todoapi/internal/core/domain"
)

// UserRepository queries never return soft-deleted rows; the "Active" variants
// additionally require the account to be verified.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetActiveByEmail(ctx context.Context, email string) (domain.User, error)
	GetByEmailAndOTP(ctx context.Context, email string, otp int) (domain.User, error)
	GetByUUID(ctx context.Context, uid string) (domain.User, error)
	GetActiveByUUID(ctx context.Context, uid string) (domain.User, error)
	Create(ctx context.Context, user domain.User) (domain.User, error)
	// UpdateByUUID applies partial-set semantics: only the given columns
	// change, and the post-update row is returned.
	UpdateByUUID(ctx context.Context, uid string, fields map[string]any) (domain.User, error)
}

type UserService interface {
	UpdateProfile(ctx context.Context, user domain.User, name string) (domain.User, error)
	ChangePassword(ctx context.Context, user domain.User, oldPassword, newPassword string) error
}
