package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"todoapi/internal/adapter/database/postgres"
	"todoapi/internal/core/domain"
	"todoapi/internal/core/port"
)

var userColumns = []string{
	"id", "uuid", "name", "email", "password",
	"is_deleted", "is_verified",
	"otp", "otp_expires_at", "reset_password_token",
	"created_at", "updated_at",
}

type UserRepository struct {
	db *postgres.DB
}

func NewUserRepository(db *postgres.DB) port.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email, "is_deleted": false})
}

func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email, "is_deleted": false, "is_verified": true})
}

func (r *UserRepository) GetByEmailAndOTP(ctx context.Context, email string, otp int) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"email": email, "otp": otp, "is_deleted": false})
}

func (r *UserRepository) GetByUUID(ctx context.Context, uid string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"uuid": uid, "is_deleted": false})
}

func (r *UserRepository) GetActiveByUUID(ctx context.Context, uid string) (domain.User, error) {
	return r.getOne(ctx, sq.Eq{"uuid": uid, "is_deleted": false, "is_verified": true})
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	now := time.Now()

	query := r.db.QueryBuilder.Insert("users").
		Columns("uuid", "name", "email", "password", "is_deleted", "is_verified",
			"otp", "otp_expires_at", "reset_password_token", "created_at", "updated_at").
		Values(user.UUID, user.Name, user.Email, user.Password, user.IsDeleted, user.IsVerified,
			user.OTP, user.OTPExpiresAt, user.ResetPasswordToken, now, now).
		Suffix("RETURNING " + columnList(userColumns))

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return scanUser(r.db.QueryRow(ctx, stmt, args...))
}

func (r *UserRepository) UpdateByUUID(ctx context.Context, uid string, fields map[string]any) (domain.User, error) {
	query := r.db.QueryBuilder.Update("users").
		SetMap(fields).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"uuid": uid, "is_deleted": false}).
		Suffix("RETURNING " + columnList(userColumns))

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return scanUser(r.db.QueryRow(ctx, stmt, args...))
}

func (r *UserRepository) getOne(ctx context.Context, pred any) (domain.User, error) {
	query := r.db.QueryBuilder.Select(userColumns...).
		From("users").
		Where(pred).
		Limit(1)

	stmt, args, err := query.ToSql()

	if err != nil {
		return domain.User{}, err
	}

	return scanUser(r.db.QueryRow(ctx, stmt, args...))
}

func scanUser(row pgx.Row) (domain.User, error) {
	var user domain.User
	var otp sql.NullInt64
	var otpExpiresAt sql.NullTime
	var resetToken sql.NullString

	err := row.Scan(
		&user.ID, &user.UUID, &user.Name, &user.Email, &user.Password,
		&user.IsDeleted, &user.IsVerified,
		&otp, &otpExpiresAt, &resetToken,
		&user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, domain.ErrNotFound
		}
		return domain.User{}, err
	}

	if otp.Valid {
		v := int(otp.Int64)
		user.OTP = &v
	}
	if otpExpiresAt.Valid {
		v := otpExpiresAt.Time
		user.OTPExpiresAt = &v
	}
	if resetToken.Valid {
		v := resetToken.String
		user.ResetPasswordToken = &v
	}

	return user, nil
}
