package service

import (
	"context"
)

// EmailEvent is an outgoing email handed to the mail worker
type EmailEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	HTML      string `json:"html"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEmailEvent publishes an email for async delivery
	PublishEmailEvent(ctx context.Context, event *EmailEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
