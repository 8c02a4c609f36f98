package domain

import (
	"context"
	"time"
)

// EnrollmentEmailData is the payload for the enrollment confirmation email.
type EnrollmentEmailData struct {
	Email            string
	FirstName        string
	CompetitionName  string
	CompetitionStart time.Time
}

// Mailer sends transactional email. Sending is best-effort: failures are
// logged by callers, never surfaced to the enrolling user.
type Mailer interface {
	SendEnrollmentConfirmation(ctx context.Context, data *EnrollmentEmailData) error
}
