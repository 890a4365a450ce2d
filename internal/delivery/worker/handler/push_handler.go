// Package handler consumes Pub/Sub push deliveries of shop change events.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"shopradar/config"
	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// Event outcomes reported to metrics.
const (
	outcomeApplied = "applied"
	outcomeRetry   = "retry"
	outcomeDropped = "dropped"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// TokenValidator validates a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// ShopEventHandler replays shop change events into the local search index so
// every replica converges on the committed store state.
type ShopEventHandler struct {
	verifyPushAuth bool
	audience       string
	validate       TokenValidator
	logger         *slog.Logger
	shops          repository.ShopRepository
	indexer        service.ShopIndexer
	metrics        *metrics.Metrics
}

// ShopEventHandlerParams holds dependencies for the ShopEventHandler
type ShopEventHandlerParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Shops     repository.ShopRepository
	Indexer   service.ShopIndexer
	Metrics   *metrics.Metrics `optional:"true"`
	Validator TokenValidator   `optional:"true"`
}

// NewShopEventHandler creates a new Pub/Sub push handler
func NewShopEventHandler(params ShopEventHandlerParams) *ShopEventHandler {
	validate := params.Validator
	if validate == nil {
		validate = idtoken.Validate
	}

	h := &ShopEventHandler{
		validate: validate,
		logger:   params.Logger,
		shops:    params.Shops,
		indexer:  params.Indexer,
		metrics:  params.Metrics,
	}
	if params.Config.Worker != nil {
		h.verifyPushAuth = params.Config.Worker.VerifyPushAuth
		h.audience = params.Config.Worker.Audience
	}

	return h
}

// HandlePush handles one push delivery. A 2xx acknowledges the message; 503
// asks Pub/Sub to redeliver.
func (h *ShopEventHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.ShopChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse shop event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.apply(ctx, &event); err != nil {
		retryable := isRetryableError(err)
		reqLogger.Error("[Worker] Failed to apply shop event",
			slog.String("event_id", event.EventID),
			slog.String("event_type", event.Type),
			slog.Int64("shop_id", event.ShopID),
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			h.metrics.ObserveShopEvent(event.Type, outcomeRetry)

			return c.NoContent(http.StatusServiceUnavailable)
		}
		h.metrics.ObserveShopEvent(event.Type, outcomeDropped)

		return c.NoContent(http.StatusOK)
	}

	h.metrics.ObserveShopEvent(event.Type, outcomeApplied)
	reqLogger.Debug("[Worker] Shop event applied",
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.Int64("shop_id", event.ShopID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then
// the inbound request.
func (h *ShopEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.ShopChangedEvent) string {
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

// apply reloads the shop from the store instead of trusting the payload, so
// duplicate and out-of-order deliveries settle on the committed row.
func (h *ShopEventHandler) apply(ctx context.Context, event *service.ShopChangedEvent) error {
	if event.ShopID <= 0 {
		return errors.Errorf("invalid shop_id %d", event.ShopID)
	}

	switch event.Type {
	case service.ShopEventDeleted:
		return h.remove(ctx, event.ShopID)

	case service.ShopEventCreated, service.ShopEventUpdated:
		shop, err := h.shops.FindByIDAndVendor(ctx, event.ShopID, event.VendorID)
		if errors.Is(err, repository.ErrShopNotFound) {
			// deleted after the event was published
			return h.remove(ctx, event.ShopID)
		}
		if err != nil {
			return newRetryableError(errors.Wrap(err, "load shop"))
		}

		if err := h.indexer.Upsert(ctx, shop); err != nil {
			return newRetryableError(errors.Wrap(err, "index shop"))
		}

		return nil

	default:
		return errors.Errorf("unknown event type %q", event.Type)
	}
}

func (h *ShopEventHandler) remove(ctx context.Context, shopID int64) error {
	if err := h.indexer.Remove(ctx, shopID); err != nil {
		return newRetryableError(errors.Wrap(err, "remove shop from index"))
	}

	return nil
}

// verifyPushToken verifies the OIDC token Pub/Sub attaches to authenticated
// push requests.
func (h *ShopEventHandler) verifyPushToken(req *http.Request) error {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
