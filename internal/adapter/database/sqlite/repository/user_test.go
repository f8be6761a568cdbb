package repository_test

import (
	"context"
	"testing"
	"time"

	. "github.com/onsi/gomega"

	"todoapi/internal/core/domain"
	"todoapi/pkg/test"
	"todoapi/pkg/test/factory"
)

func TestUserCreateRoundTrip(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()

	otp := 123456
	expiresAt := time.Now().Add(time.Minute)

	user := factory.NewUser(map[string]any{
		"Email":        "round@example.com",
		"OTP":          &otp,
		"OTPExpiresAt": &expiresAt,
	})

	created, err := setup.Users.Create(ctx, user)

	Expect(err).ToNot(HaveOccurred())
	Expect(created.ID).To(BeNumerically(">", 0))
	Expect(created.UUID).To(Equal(user.UUID))
	Expect(created.Email).To(Equal("round@example.com"))
	Expect(created.IsVerified).To(BeFalse())
	Expect(created.OTP).ToNot(BeNil())
	Expect(*created.OTP).To(Equal(123456))
	Expect(created.OTPExpiresAt).ToNot(BeNil())
}

func TestUserGetByEmailNotFound(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)

	_, err := setup.Users.GetByEmail(context.Background(), "missing@example.com")

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func TestUserActiveLookupExcludesUnverified(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()

	user := factory.NewUser(map[string]any{"Email": "pending@example.com"})
	created, err := setup.Users.Create(ctx, user)
	Expect(err).ToNot(HaveOccurred())

	_, err = setup.Users.GetActiveByEmail(ctx, "pending@example.com")
	Expect(err).To(MatchError(domain.ErrNotFound))

	_, err = setup.Users.GetActiveByUUID(ctx, created.UUID.String())
	Expect(err).To(MatchError(domain.ErrNotFound))

	_, err = setup.Users.GetByEmail(ctx, "pending@example.com")
	Expect(err).ToNot(HaveOccurred())
}

func TestUserUpdateByUUIDPartialSet(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()

	otp := 654321
	expiresAt := time.Now().Add(time.Minute)

	user := factory.NewUser(map[string]any{
		"Email":        "partial@example.com",
		"Name":         "Before",
		"OTP":          &otp,
		"OTPExpiresAt": &expiresAt,
	})

	created, err := setup.Users.Create(ctx, user)
	Expect(err).ToNot(HaveOccurred())

	updated, err := setup.Users.UpdateByUUID(ctx, created.UUID.String(), map[string]any{
		"is_verified":    true,
		"otp":            nil,
		"otp_expires_at": nil,
	})

	Expect(err).ToNot(HaveOccurred())
	Expect(updated.IsVerified).To(BeTrue())
	Expect(updated.OTP).To(BeNil())
	Expect(updated.OTPExpiresAt).To(BeNil())
	Expect(updated.Name).To(Equal("Before"))
	Expect(updated.Email).To(Equal("partial@example.com"))
}

func TestUserUpdateByUUIDUnknownUser(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)

	_, err := setup.Users.UpdateByUUID(context.Background(), "2b1a0f3e-0000-0000-0000-000000000000", map[string]any{
		"name": "Nobody",
	})

	Expect(err).To(MatchError(domain.ErrNotFound))
}

func TestUserGetByEmailAndOTP(t *testing.T) {
	RegisterTestingT(t)

	setup := test.NewSetup(t)
	ctx := context.Background()

	otp := 111222
	expiresAt := time.Now().Add(time.Minute)

	user := factory.NewUser(map[string]any{
		"Email":        "otp@example.com",
		"OTP":          &otp,
		"OTPExpiresAt": &expiresAt,
	})

	_, err := setup.Users.Create(ctx, user)
	Expect(err).ToNot(HaveOccurred())

	found, err := setup.Users.GetByEmailAndOTP(ctx, "otp@example.com", 111222)
	Expect(err).ToNot(HaveOccurred())
	Expect(found.Email).To(Equal("otp@example.com"))

	_, err = setup.Users.GetByEmailAndOTP(ctx, "otp@example.com", 999999)
	Expect(err).To(MatchError(domain.ErrNotFound))
}
