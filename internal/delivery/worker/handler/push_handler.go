package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/constants"
	"passport/internal/domain/service"
	"passport/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler delivers email events pushed by the Pub/Sub subscription.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	serviceAccount string
	validateToken  tokenValidator
	mailer         service.Mailer
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Mailer service.Mailer
	Logger *slog.Logger
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	h := &PushHandler{
		validateToken: idtoken.Validate,
		mailer:        params.Mailer,
		logger:        params.Logger,
	}

	// Google push requests are signed; verify them outside of local development
	// or whenever an audience is configured explicitly.
	if ps := params.Config.PubSub; ps != nil {
		h.audience = ps.PushAudience
		h.serviceAccount = ps.PushServiceAccount
		h.verifyPushAuth = ps.PushAudience != "" ||
			(ps.Provider == constants.PubSubProviderGoogle && params.Config.Env.Env != constants.EnvDevelop)
	}

	return h
}

// HandlePush handles incoming Pub/Sub push messages. Delivery failures are
// acknowledged so the subscription does not redeliver them.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.EmailEvent
	if err := pushMsg.DecodeData(&event); err != nil {
		h.logger.Error("[Worker] Failed to decode email event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}
	if event.To == "" || event.Subject == "" {
		h.logger.Error("[Worker] Email event without recipient or subject",
			slog.String("message_id", pushMsg.Message.MessageID),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, &event)
	event.RequestID = requestID
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.mailer.Send(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Email delivery failed",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("subject", event.Subject),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Email delivered",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subject", event.Subject),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event, then the
// request context, and generates one as a last resort.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *service.EmailEvent) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// verifyPubSubToken checks the OIDC token Google attaches to push requests.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	payload, err := h.validateToken(req.Context(), token, h.expectedAudience(req))
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}
	if h.serviceAccount != "" {
		if email, _ := payload.Claims["email"].(string); email != h.serviceAccount {
			return errors.Errorf("unexpected push service account: %s", email)
		}
	}

	return nil
}

// expectedAudience defaults to the push URL, which is what Pub/Sub signs
// when the subscription sets no explicit audience.
func (h *PushHandler) expectedAudience(req *http.Request) string {
	if h.audience != "" {
		return h.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}
