package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"github.com/google/uuid"

	"todoapi/internal/core/domain"
	"todoapi/internal/core/util"
)

// DefaultPassword is the plaintext behind every factory user's hash, so tests
// can log in without recomputing bcrypt.
const DefaultPassword = "secret1"

func NewUser(customData ...map[string]any) domain.User {
	instance := fab.New(domain.User{})

	uid := uuid.New()

	hasPassword := false
	hasEmail := false
	hasIsDeleted := false
	hasIsVerified := false

	for _, data := range customData {
		if _, exists := data["Password"]; exists {
			hasPassword = true
		}
		if _, exists := data["Email"]; exists {
			hasEmail = true
		}
		if _, exists := data["IsDeleted"]; exists {
			hasIsDeleted = true
		}
		if _, exists := data["IsVerified"]; exists {
			hasIsVerified = true
		}
	}

	if !hasPassword {
		encrypted, _ := util.GenerateEncrypt(DefaultPassword)
		customData = append(customData, map[string]any{"Password": encrypted})
	}

	if !hasEmail {
		customData = append(customData, map[string]any{"Email": uid.String() + "@example.com"})
	}

	// The schema defaults both flags to false; keep fixtures in line instead of
	// letting faker flip them at random.
	if !hasIsDeleted {
		customData = append(customData, map[string]any{"IsDeleted": false})
	}

	if !hasIsVerified {
		customData = append(customData, map[string]any{"IsVerified": false})
	}

	// fabricator's Build only applies the first overrides map, so collapse
	// caller data and appended defaults into one.
	merged := map[string]any{}
	for _, data := range customData {
		for key, value := range data {
			merged[key] = value
		}
	}

	user := instance.Build(merged)

	if user.UUID == uuid.Nil {
		user.UUID = uid
	}

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = time.Now()
	}

	return user
}
