package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"passport/config"
	"passport/internal/domain/constants"
	"passport/internal/domain/service"
	"passport/internal/infra/pubsub"
	mockSvc "passport/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockSvc.MockMailer) {
	mailer := mockSvc.NewMockMailer(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Mailer: mailer,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), mailer
}

func pushRequest(t *testing.T, body []byte) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/push", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func encodePush(t *testing.T, event *service.EmailEvent, attributes map[string]string) []byte {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	body, err := json.Marshal(pubsub.NewPushMessage("msg-1", payload, attributes, time.Now()))
	require.NoError(t, err)

	return body
}

func TestPushHandler_DeliversEmail(t *testing.T) {
	h, mailer := newTestPushHandler(t, nil)
	event := &service.EmailEvent{To: "cook@example.com", Subject: "Today's Recipe: Pho", HTML: "<p>Pho</p>"}
	c, rec := pushRequest(t, encodePush(t, event, map[string]string{"request_id": "req-7"}))

	mailer.EXPECT().
		Send(mock.Anything, mock.MatchedBy(func(e *service.EmailEvent) bool {
			return e.To == event.To && e.Subject == event.Subject && e.RequestID == "req-7"
		})).
		Return(nil)

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_DeliveryFailureAcknowledged(t *testing.T) {
	h, mailer := newTestPushHandler(t, nil)
	event := &service.EmailEvent{To: "cook@example.com", Subject: "Welcome", HTML: "<p>Hi</p>"}
	c, rec := pushRequest(t, encodePush(t, event, nil))

	mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(errors.New("smtp: 421 try later"))

	require.NoError(t, h.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedMessages(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "not json", body: []byte("{")},
		{name: "data not base64", body: []byte(`{"message":{"data":"%%%"}}`)},
		{name: "missing recipient", body: encodePush(t, &service.EmailEvent{Subject: "s", HTML: "h"}, nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mailer := newTestPushHandler(t, nil)
			c, rec := pushRequest(t, tt.body)

			require.NoError(t, h.HandlePush(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestPushHandler_VerifiesPushToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{
		Provider:           constants.PubSubProviderGoogle,
		PushAudience:       "https://mail.example.com/push",
		PushServiceAccount: "push@project.iam.gserviceaccount.com",
	}}
	event := &service.EmailEvent{To: "cook@example.com", Subject: "Welcome", HTML: "<p>Hi</p>"}

	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		c, rec := pushRequest(t, encodePush(t, event, nil))

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong service account", func(t *testing.T) {
		h, _ := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email": "other@example.com"}}, nil
		}
		c, rec := pushRequest(t, encodePush(t, event, nil))
		c.Request().Header.Set("Authorization", "Bearer token")

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		h, mailer := newTestPushHandler(t, cfg)
		h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
			assert.Equal(t, "token", token)
			assert.Equal(t, "https://mail.example.com/push", audience)

			return &idtoken.Payload{
				Issuer: "accounts.google.com",
				Claims: map[string]any{"email": "push@project.iam.gserviceaccount.com", "email_verified": true},
			}, nil
		}
		mailer.EXPECT().Send(mock.Anything, mock.Anything).Return(nil)
		c, rec := pushRequest(t, encodePush(t, event, nil))
		c.Request().Header.Set("Authorization", "Bearer token")

		require.NoError(t, h.HandlePush(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
