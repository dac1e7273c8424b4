package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"passport/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// googlePubSubPublisher publishes email events to a Cloud Pub/Sub topic whose
// push subscription targets the mail worker.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic does not exist.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	name := topicName(projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: name}); err != nil {
		_ = client.Close()
		if status.Code(err) == codes.NotFound {
			return nil, errors.Errorf("email topic %s does not exist", name)
		}

		return nil, errors.Wrapf(err, "failed to get topic %s", name)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func topicName(projectID, topicID string) string {
	return fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
}

// newEmailMessage encodes the event the way the push handler decodes it.
func newEmailMessage(event *service.EmailEvent) (*pubsub.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.Wrap(err, "encode email event")
	}

	return &pubsub.Message{Data: data, Attributes: emailAttributes(event)}, nil
}

// PublishEmailEvent blocks until the server acknowledges the message.
func (p *googlePubSubPublisher) PublishEmailEvent(ctx context.Context, event *service.EmailEvent) error {
	msg, err := newEmailMessage(event)
	if err != nil {
		return err
	}

	serverID, err := p.publisher.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish email event")
	}

	p.logger.Debug("[GooglePubSub] Email event published",
		slog.String("server_id", serverID),
		slog.String("subject", event.Subject),
	)

	return nil
}

// Close flushes pending messages before closing the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
