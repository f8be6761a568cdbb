package service

import (
	"context"
	"errors"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
	"todoapi/internal/core/util"
)

type UserService struct {
	users port.UserRepository
}

func NewUserService(users port.UserRepository) *UserService {
	return &UserService{users: users}
}

// UpdateProfile changes the display name only. The account was resolved by
// the auth gate moments ago, so a missing row means it vanished in between
// and renders as a plain 500.
func (s *UserService) UpdateProfile(ctx context.Context, user domain.User, name string) (domain.User, error) {
	updated, err := s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"name": name,
	})

	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.Internal("Internal server error")
		}
		return domain.User{}, err
	}

	return updated, nil
}

func (s *UserService) ChangePassword(ctx context.Context, user domain.User, oldPassword, newPassword string) error {
	if err := util.ComparePassword(oldPassword, user.Password); err != nil {
		return domain.BadRequest("Old password is incorrect")
	}

	encrypted, err := util.GenerateEncrypt(newPassword)

	if err != nil {
		return err
	}

	if _, err := s.users.UpdateByUUID(ctx, user.UUID.String(), map[string]any{
		"password": encrypted,
	}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Internal("Internal server error")
		}
		return err
	}

	return nil
}

var _ port.UserService = (*UserService)(nil)
