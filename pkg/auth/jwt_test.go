package auth

import (
	"testing"
	"time"

	. "github.com/onsi/gomega"
)

func TestCreateAndVerifyToken(t *testing.T) {
	RegisterTestingT(t)

	jwt := New("test-secret", time.Hour)

	token, err := jwt.CreateToken("user-123", 0)
	Expect(err).ToNot(HaveOccurred())
	Expect(token).ToNot(BeEmpty())

	subject, err := jwt.VerifyToken(token)
	Expect(err).ToNot(HaveOccurred())
	Expect(subject).To(Equal("user-123"))
}

func TestVerifyTokenMalformed(t *testing.T) {
	RegisterTestingT(t)

	jwt := New("test-secret", time.Hour)

	for _, tokenString := range []string{"", "null", "not.a.token", "garbage"} {
		_, err := jwt.VerifyToken(tokenString)
		Expect(err).To(MatchError(ErrTokenMalformed), "token: %q", tokenString)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	RegisterTestingT(t)

	jwt := New("test-secret", time.Hour)

	token, err := jwt.CreateToken("user-123", time.Millisecond)
	Expect(err).ToNot(HaveOccurred())

	time.Sleep(50 * time.Millisecond)

	_, err = jwt.VerifyToken(token)
	Expect(err).To(MatchError(ErrTokenExpired))
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	RegisterTestingT(t)

	issuer := New("one-secret", time.Hour)
	verifier := New("another-secret", time.Hour)

	token, err := issuer.CreateToken("user-123", time.Hour)
	Expect(err).ToNot(HaveOccurred())

	_, err = verifier.VerifyToken(token)
	Expect(err).To(MatchError(ErrTokenInvalid))
}
