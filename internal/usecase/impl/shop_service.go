package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopradar/internal/delivery/context"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/domain/service"
	"shopradar/internal/infra/metrics"
	"shopradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Shop write operations and outcomes, used as metric labels.
const (
	shopOpCreate = "create"
	shopOpUpdate = "update"
	shopOpDelete = "delete"

	outcomeSuccess  = "success"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager repository.TransactionManager
	shopRepo  repository.ShopRepository
	indexer   service.ShopIndexer
	publisher service.EventPublisher
	metrics   *metrics.Metrics
	now       func() time.Time
	logger    *slog.Logger
}

// ShopServiceParams holds dependencies for ShopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ShopRepo  repository.ShopRepository
	Indexer   service.ShopIndexer
	Publisher service.EventPublisher
	Metrics   *metrics.Metrics `optional:"true"`
	Logger    *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager: params.TxManager,
		shopRepo:  params.ShopRepo,
		indexer:   params.Indexer,
		publisher: params.Publisher,
		metrics:   params.Metrics,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop stores a shop owned by vendorID. The owner must exist; a token for
// a vanished vendor is an internal fault, not a client error.
func (srv *shopService) CreateShop(ctx context.Context, vendorID int64, input *usecase.ShopInput) (*entity.Shop, error) {
	shop := newShopFromInput(vendorID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.VendorRepo().FindByID(ctx, vendorID); err != nil {
			if errors.Is(err, repository.ErrVendorNotFound) {
				srv.log(ctx).Error("Shop owner does not exist", slog.Int64("vendor_id", vendorID))

				return domainerrors.ErrInternalError.WrapMessage("shop owner does not exist")
			}

			return errors.Wrap(err, "load shop owner")
		}

		return repoFactory.ShopRepo().Create(ctx, shop)
	})
	if err != nil {
		srv.recordWrite(ctx, shopOpCreate, err)

		return nil, err
	}

	srv.recordWrite(ctx, shopOpCreate, nil)
	srv.afterCommit(ctx, service.ShopEventCreated, shop)

	return shop, nil
}

// ListShops returns the vendor's shops ordered by ID.
func (srv *shopService) ListShops(ctx context.Context, vendorID int64) ([]*entity.Shop, error) {
	shops, err := srv.shopRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		srv.log(ctx).Error("Failed to list shops",
			slog.Int64("vendor_id", vendorID),
			slog.Any("error", err))

		return nil, errors.Wrap(err, "list vendor shops")
	}

	return shops, nil
}

// UpdateShop overwrites the shop with the input. The ID, owner and creation
// time are kept; everything else comes from the input, so absent optional
// fields are cleared.
func (srv *shopService) UpdateShop(ctx context.Context, vendorID, shopID int64, input *usecase.ShopInput) (*entity.Shop, error) {
	shop := newShopFromInput(vendorID, input)
	shop.ID = shopID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		existing, err := shopRepo.FindByIDAndVendor(ctx, shopID, vendorID)
		if err != nil {
			return mapShopLookupError(err)
		}
		shop.CreatedAt = existing.CreatedAt

		return mapShopLookupError(shopRepo.Update(ctx, shop))
	})
	if err != nil {
		srv.recordWrite(ctx, shopOpUpdate, err)

		return nil, err
	}

	srv.recordWrite(ctx, shopOpUpdate, nil)
	srv.afterCommit(ctx, service.ShopEventUpdated, shop)

	return shop, nil
}

// DeleteShop removes the shop if vendorID owns it.
func (srv *shopService) DeleteShop(ctx context.Context, vendorID, shopID int64) error {
	var deleted *entity.Shop

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.ShopRepo()

		existing, err := shopRepo.FindByIDAndVendor(ctx, shopID, vendorID)
		if err != nil {
			return mapShopLookupError(err)
		}
		if err := shopRepo.Delete(ctx, shopID, vendorID); err != nil {
			return mapShopLookupError(err)
		}
		deleted = existing

		return nil
	})
	if err != nil {
		srv.recordWrite(ctx, shopOpDelete, err)

		return err
	}

	srv.recordWrite(ctx, shopOpDelete, nil)
	srv.afterCommit(ctx, service.ShopEventDeleted, deleted)

	return nil
}

// afterCommit propagates a committed write to the search index and the event
// stream. Neither can undo the write, so failures are only logged.
func (srv *shopService) afterCommit(ctx context.Context, eventType string, shop *entity.Shop) {
	logger := srv.log(ctx).With(
		slog.Int64("shop_id", shop.ID),
		slog.Int64("vendor_id", shop.VendorID),
	)

	var indexErr error
	if eventType == service.ShopEventDeleted {
		indexErr = srv.indexer.Remove(ctx, shop.ID)
	} else {
		indexErr = srv.indexer.Upsert(ctx, shop)
	}
	if indexErr != nil {
		logger.Warn("Failed to sync search index", slog.Any("error", indexErr))
	}

	event := &service.ShopChangedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		ShopID:     shop.ID,
		VendorID:   shop.VendorID,
		Latitude:   shop.Latitude,
		Longitude:  shop.Longitude,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishShopEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish shop event",
			slog.String("event_type", eventType),
			slog.Any("error", err))
	}
}

func (srv *shopService) recordWrite(ctx context.Context, operation string, err error) {
	switch {
	case err == nil:
		srv.metrics.ObserveShopWrite(operation, outcomeSuccess)
	case errors.Is(err, domainerrors.ErrShopNotFound):
		srv.metrics.ObserveShopWrite(operation, outcomeNotFound)
	default:
		srv.metrics.ObserveShopWrite(operation, outcomeError)
		srv.log(ctx).Error("Shop write failed",
			slog.String("operation", operation),
			slog.Any("error", err))
	}
}

// mapShopLookupError turns the store's not-found into the domain's, hiding
// whether the shop is missing or owned by another vendor.
func mapShopLookupError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrShopNotFound) {
		return domainerrors.ErrShopNotFound.WrapMessage("shop lookup")
	}

	return err
}

func newShopFromInput(vendorID int64, input *usecase.ShopInput) *entity.Shop {
	return &entity.Shop{
		VendorID:  vendorID,
		Name:      input.Name,
		Type:      input.Type,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Details:   input.Details,
	}
}
