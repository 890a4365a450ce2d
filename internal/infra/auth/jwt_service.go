package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"shopradar/config"
	"shopradar/internal/domain/constants"
	"shopradar/internal/domain/entity"
	"shopradar/internal/domain/service"
)

const defaultAccessTokenTTL = 30 * time.Minute

// accessClaims are the claims carried by an access token. The subject is the
// vendor ID in decimal.
type accessClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	return newJWTService(cfg, time.Now)
}

func newJWTService(cfg *config.Config, now func() time.Time) (*jwtService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	svc := &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    defaultAccessTokenTTL,
		issuer:       cfg.Env.ServiceName,
		now:          now,
	}
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			svc.accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.Issuer != "" {
			svc.issuer = cfg.Auth.Issuer
		}
	}

	return svc, nil
}

// GenerateAccessToken signs an HS256 token identifying the vendor.
func (s *jwtService) GenerateAccessToken(vendor *entity.Vendor) (*entity.AccessToken, error) {
	if vendor == nil || vendor.ID == 0 {
		return nil, errors.New("cannot issue a token for an unsaved vendor")
	}

	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.accessTTL)
	claims := accessClaims{
		Username: vendor.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(vendor.ID, 10),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign access token")
	}

	return &entity.AccessToken{
		Token:     signed,
		TokenType: constants.TokenTypeBearer,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateAccessToken checks signature, algorithm, issuer and expiry and
// returns the vendor identity carried by the token.
func (s *jwtService) ValidateAccessToken(tokenString string) (*entity.TokenClaims, error) {
	claims := &accessClaims{}
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(s.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, parserOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "invalid access token")
	}

	vendorID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || vendorID <= 0 {
		return nil, errors.New("invalid access token: subject is not a vendor id")
	}

	return &entity.TokenClaims{
		VendorID:  vendorID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
