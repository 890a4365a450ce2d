package handler

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	mockUC "shopradar/internal/mocks/usecase"
	"shopradar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newVendorTestEcho(t *testing.T) (*echo.Echo, *mockUC.MockVendorUsecase) {
	uc := mockUC.NewMockVendorUsecase(t)
	h := NewVendorHandler(VendorHandlerParams{VendorUC: uc, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/register", h.Register)
	e.POST("/token", h.Token)

	return e, uc
}

func TestVendorHandler_Register(t *testing.T) {
	e, uc := newVendorTestEcho(t)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterVendorInput{Username: "alice", Email: "alice@example.com", Password: "pw"}).
		Return(&entity.Vendor{ID: 1, Username: "alice", Email: "alice@example.com", HashedPassword: "hash"}, nil)

	rec := doJSON(e, http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"username":"alice","email":"alice@example.com"}`, rec.Body.String())
}

func TestVendorHandler_Register_Conflict(t *testing.T) {
	e, uc := newVendorTestEcho(t)

	uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrVendorAlreadyExists)

	rec := doJSON(e, http.MethodPost, "/register", `{"username":"alice","email":"alice@example.com","password":"pw"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VENDOR_ALREADY_EXISTS", body.Error.Code)
	assert.Equal(t, "Username or email already registered", body.Error.Message)
}

func TestVendorHandler_Register_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{name: "bad email", body: `{"username":"a","email":"not-an-email","password":"pw"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "missing password", body: `{"username":"a","email":"a@example.com"}`, wantStatus: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `{"username":`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _ := newVendorTestEcho(t)

			rec := doJSON(e, http.MethodPost, "/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestVendorHandler_Register_UsernameLength(t *testing.T) {
	e, uc := newVendorTestEcho(t)
	longest := strings.Repeat("a", 150)

	uc.EXPECT().
		Register(mock.Anything, &usecase.RegisterVendorInput{Username: longest, Email: "a@example.com", Password: "pw"}).
		Return(&entity.Vendor{ID: 1, Username: longest, Email: "a@example.com"}, nil)

	rec := doJSON(e, http.MethodPost, "/register", `{"username":"`+longest+`","email":"a@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(e, http.MethodPost, "/register", `{"username":"`+longest+`a","email":"a@example.com","password":"pw"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestVendorHandler_Token_Form(t *testing.T) {
	e, uc := newVendorTestEcho(t)
	expires := time.Now().Add(30 * time.Minute)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw"}).
		Return(&entity.AccessToken{Token: "signed", TokenType: "bearer", ExpiresAt: expires}, nil)

	rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"pw"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"access_token":"signed"`)
	assert.Contains(t, rec.Body.String(), `"token_type":"bearer"`)
}

func TestVendorHandler_Token_JSON(t *testing.T) {
	e, uc := newVendorTestEcho(t)

	uc.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Username: "alice", Password: "pw"}).
		Return(&entity.AccessToken{Token: "signed", TokenType: "bearer"}, nil)

	rec := doJSON(e, http.MethodPost, "/token", `{"username":"alice","password":"pw"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer"}`, rec.Body.String())
}

func TestVendorHandler_Token_BadCredentials(t *testing.T) {
	e, uc := newVendorTestEcho(t)

	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch"))

	rec := doForm(e, "/token", url.Values{"username": {"alice"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
	assert.Equal(t, "Incorrect username or password", decodeError(t, rec).Error.Message)
}

func TestToTokenResponse_ExpiresIn(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	resp := toTokenResponse(&entity.AccessToken{Token: "t", TokenType: "bearer", ExpiresAt: now.Add(30 * time.Minute)}, now)
	assert.Equal(t, int64(1800), resp.ExpiresIn)

	resp = toTokenResponse(&entity.AccessToken{Token: "t", TokenType: "bearer", ExpiresAt: now.Add(-time.Minute)}, now)
	assert.Zero(t, resp.ExpiresIn)
}
