package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"shopradar/internal/delivery/api/response"
	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockSvc "shopradar/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty token",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("forged").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateAccessToken("good").Return(&entity.TokenClaims{VendorID: 42, Username: "alice"}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: discardLogger()})

			e := newTestEcho()
			e.GET("/private", func(c echo.Context) error {
				vendorID, ok := deliverycontext.GetVendorID(c)
				require.True(t, ok)

				return c.JSON(http.StatusOK, map[string]int64{"vendor_id": vendorID})
			}, auth.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"vendor_id":42}`, rec.Body.String())
			} else {
				assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
				assert.Equal(t, "UNAUTHENTICATED", decodeError(t, rec).Error.Code)
			}
		})
	}
}

func TestAuthMiddleware_ScopesLoggerToVendor(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken("good").Return(&entity.TokenClaims{VendorID: 42}, nil)

	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens, Logger: base})

	e := newTestEcho()
	e.GET("/private", func(c echo.Context) error {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), nil).Info("listing shops")

		return c.NoContent(http.StatusOK)
	}, auth.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	e.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "vendor_id=42")
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "app error keeps its status",
			err:        errors.Wrap(domainerrors.ErrShopNotFound, "update"),
			wantStatus: http.StatusNotFound,
			wantCode:   "SHOP_NOT_FOUND",
			wantMsg:    "Shop not found",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "REQUEST_TOO_LARGE",
			wantMsg:    "Request Entity Too Large",
		},
		{
			name:       "unknown error is opaque",
			err:        errors.New("pq: relation \"shops\" does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
			wantMsg:    "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
			assert.NotContains(t, rec.Body.String(), "relation")
		})
	}
}

func TestErrorMiddleware_UnknownRoute(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT_FOUND", decodeError(t, rec).Error.Code)
}

func TestErrorMiddleware_SkipsCommittedResponses(t *testing.T) {
	e := newTestEcho()
	handler := NewErrorMiddleware(discardLogger())

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusTeapot, "done"))

	handler.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
