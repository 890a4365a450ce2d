// Package service defines the interfaces of domain services implemented in the infrastructure layer.
package service

import "shopradar/internal/domain/entity"

// TokenService issues and validates stateless bearer tokens.
type TokenService interface {
	// GenerateAccessToken signs a token identifying the vendor.
	GenerateAccessToken(vendor *entity.Vendor) (*entity.AccessToken, error)

	// ValidateAccessToken verifies signature and expiry and returns the embedded identity.
	ValidateAccessToken(token string) (*entity.TokenClaims, error)
}
