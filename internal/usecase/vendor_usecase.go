// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopradar/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterVendorInput defines the data required to register a new vendor.
type RegisterVendorInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Username string
	Password string
}

// VendorUsecase defines vendor registration and login for the delivery layer.
type VendorUsecase interface {
	// Register creates a vendor after checking that neither the username nor the email is taken.
	Register(ctx context.Context, input *RegisterVendorInput) (*entity.Vendor, error)

	// Login verifies the credentials and issues a bearer token.
	Login(ctx context.Context, input *LoginInput) (*entity.AccessToken, error)
}
