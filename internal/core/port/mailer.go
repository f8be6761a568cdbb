package port

// Mailer delivers transactional mail. Dispatch is fire and forget: callers log
// failures but never surface them to the client.
type Mailer interface {
	SendVerificationMail(to, name string, otp int) error
	SendPasswordResetMail(to, name, link string) error
}
