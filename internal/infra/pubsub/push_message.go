package pubsub

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// Subscription name used for locally simulated pushes.
const localSubscription = "projects/local/subscriptions/email-sub"

// PushMessage represents the structure of a Pub/Sub push message.
// This mimics the format Google Pub/Sub uses when pushing to HTTP endpoints.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewPushMessage wraps payload the way a push subscription delivers it.
func NewPushMessage(messageID string, payload []byte, attributes map[string]string, publishedAt time.Time) *PushMessage {
	msg := &PushMessage{Subscription: localSubscription}
	msg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = messageID
	msg.Message.PublishTime = publishedAt.UTC().Format(time.RFC3339)

	return msg
}

// DecodeData base64-decodes the message payload into v.
func (m *PushMessage) DecodeData(v any) error {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return errors.Wrap(err, "decode message data")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(err, "unmarshal message data")
	}

	return nil
}
