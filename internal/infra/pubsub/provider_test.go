package pubsub

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name     string
		pubsub   *config.PubSubConfig
		wantType any
		wantErr  string
	}{
		{name: "not configured", wantType: &noopPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantType: &noopPublisher{}},
		{
			name:     "local",
			pubsub:   &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081/push"},
			wantType: &localHTTPPublisher{},
		},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: "local"}, wantErr: "local endpoint is required"},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: "google", TopicID: "emails"}, wantErr: "project ID is required"},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: "google", ProjectID: "p"}, wantErr: "topic ID is required"},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: slog.New(slog.DiscardHandler),
			})

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, publisher)
			lc.RequireStart().RequireStop()
		})
	}
}

func TestNoopPublisher_DropsEvents(t *testing.T) {
	p := &noopPublisher{logger: slog.New(slog.DiscardHandler)}

	err := p.PublishEmailEvent(context.Background(), &service.EmailEvent{To: "ada@example.com", Subject: "Welcome"})

	assert.NoError(t, err)
	assert.NoError(t, p.Close())
}

func TestEmailAttributes(t *testing.T) {
	assert.Equal(t, map[string]string{"event_type": "email"}, emailAttributes(&service.EmailEvent{}))
	assert.Equal(t,
		map[string]string{"event_type": "email", "request_id": "req-1"},
		emailAttributes(&service.EmailEvent{RequestID: "req-1"}),
	)
}

func TestNewEmailMessage(t *testing.T) {
	event := &service.EmailEvent{RequestID: "req-1", To: "ada@example.com", Subject: "Hi", HTML: "<p>Hi</p>"}

	msg, err := newEmailMessage(event)
	require.NoError(t, err)

	var decoded service.EmailEvent
	require.NoError(t, NewPushMessage("m-1", msg.Data, msg.Attributes, time.Now()).DecodeData(&decoded))
	assert.Equal(t, *event, decoded)
	assert.Equal(t, "req-1", msg.Attributes["request_id"])
	assert.Equal(t, "projects/p/topics/emails", topicName("p", "emails"))
}
