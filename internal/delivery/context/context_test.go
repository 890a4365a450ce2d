package context

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestVendorID(t *testing.T) {
	c := newEchoContext()

	_, ok := GetVendorID(c)
	assert.False(t, ok)

	SetVendorID(c, 42)
	id, ok := GetVendorID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)

	SetVendorID(c, 0)
	_, ok = GetVendorID(c)
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	c := newEchoContext()
	assert.NotEmpty(t, GetRequestID(c), "a fresh ID is generated when none is set")

	SetRequestID(c, "req-1")
	assert.Equal(t, "req-1", GetRequestID(c))

	ctx := WithRequestID(context.Background(), "req-2")
	assert.Equal(t, "req-2", GetRequestIDFromContext(ctx))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))
}

func TestRequestID_FallsBackToRequestContext(t *testing.T) {
	c := newEchoContext()
	c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-ctx")))

	assert.Equal(t, "req-ctx", GetRequestID(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := fallback.With(slog.String("request_id", "abc"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Nil(t, GetLoggerOrDefault(context.Background(), nil))
}

func TestWithLogAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogAttrs(context.Background(), base, slog.String("request_id", "req-1"))
	ctx = WithLogAttrs(ctx, base, slog.Int64("vendor_id", 7))
	GetLoggerOrDefault(ctx, base).Info("shop created")

	assert.Contains(t, buf.String(), "request_id=req-1")
	assert.Contains(t, buf.String(), "vendor_id=7")

	assert.Equal(t, context.Background(), WithLogAttrs(context.Background(), nil, slog.Int("n", 1)))
}
