// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// vendorService implements the VendorUsecase interface.
type vendorService struct {
	txManager    repository.TransactionManager
	vendorRepo   repository.VendorRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// VendorServiceParams holds dependencies for VendorService, injected by Fx.
type VendorServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	VendorRepo   repository.VendorRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewVendorService is the constructor for vendorService.
func NewVendorService(params VendorServiceParams) usecase.VendorUsecase {
	return &vendorService{
		txManager:    params.TxManager,
		vendorRepo:   params.VendorRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *vendorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register checks uniqueness, hashes the password and stores the vendor in one transaction.
// A unique violation raised by the insert itself maps to the same conflict as the pre-check.
func (srv *vendorService) Register(ctx context.Context, input *usecase.RegisterVendorInput) (*entity.Vendor, error) {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
	}

	vendor := &entity.Vendor{
		Username:       input.Username,
		Email:          input.Email,
		HashedPassword: hashedPassword,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		vendorRepo := repoFactory.VendorRepo()

		exists, err := vendorRepo.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
		if err != nil {
			return errors.Wrap(err, "check vendor uniqueness")
		}
		if exists {
			return domainerrors.ErrVendorAlreadyExists.WrapMessage("register vendor")
		}

		return vendorRepo.Create(ctx, vendor)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrVendorAlreadyExists) {
			srv.log(ctx).Info("Vendor registration rejected, identity taken",
				slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Failed to register vendor", slog.Any("error", err))
		}

		return nil, err
	}

	srv.log(ctx).Info("Vendor registered",
		slog.Int64("vendor_id", vendor.ID),
		slog.String("username", vendor.Username))

	return vendor, nil
}

// Login resolves the vendor by username and verifies the password.
// An unknown username and a wrong password produce the same error.
func (srv *vendorService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AccessToken, error) {
	vendor, err := srv.vendorRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
		}
		srv.log(ctx).Error("Failed to load vendor for login", slog.Any("error", err))

		return nil, errors.Wrap(err, "find vendor by username")
	}

	if !srv.hasher.Check(input.Password, vendor.HashedPassword) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateAccessToken(vendor)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token",
			slog.Int64("vendor_id", vendor.ID),
			slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("generate access token")
	}

	return token, nil
}
