package service

import "context"

// Mailer delivers a single email.
type Mailer interface {
	Send(ctx context.Context, event *EmailEvent) error
}
