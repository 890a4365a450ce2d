package postgres

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/entity"
	domainerrors "shopradar/internal/domain/errors"
	"shopradar/internal/domain/repository"
	"shopradar/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// findByIDsBatchSize keeps each IN list well under PostgreSQL's 65535
// bind parameter limit.
const findByIDsBatchSize = 10000

// shopMutableColumns lists every column an update replaces.
var shopMutableColumns = []string{
	"name", "type", "latitude", "longitude",
	"description", "phone", "email", "website",
	"opening_hours", "business_category", "address",
	"updated_at",
}

// shopRepository implements repository.ShopRepository using GORM.
// Owner-scoped reads always hit the primary; search reads go to a replica
// only when searchFromReplica is set.
type shopRepository struct {
	db                *gorm.DB
	searchFromReplica bool
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB, cfg *config.Config) repository.ShopRepository {
	return newShopRepository(db, cfg != nil && cfg.Search != nil && cfg.Search.ReadFromReplica)
}

func newShopRepository(db *gorm.DB, searchFromReplica bool) *shopRepository {
	return &shopRepository{db: db, searchFromReplica: searchFromReplica}
}

func (repo *shopRepository) searchDB(ctx context.Context) *gorm.DB {
	db := repo.db.WithContext(ctx)
	if !repo.searchFromReplica {
		db = db.Clauses(dbresolver.Write)
	}

	return db
}

// Create persists a new shop and fills in the generated ID and timestamps.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInternalError.WrapMessage("shop references a missing vendor")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shop record")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// FindByIDAndVendor returns the shop only when it belongs to vendorID.
func (repo *shopRepository) FindByIDAndVendor(ctx context.Context, shopID, vendorID int64) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", shopID, vendorID).
		First(&shopM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop")
	}

	return toShopDomain(&shopM), nil
}

// FindByVendor lists the vendor's shops ordered by ID.
func (repo *shopRepository) FindByVendor(ctx context.Context, vendorID int64) ([]*entity.Shop, error) {
	var shopMs []*model.ShopModel
	err := repo.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("id").
		Find(&shopMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list vendor shops")
	}

	return toShopDomains(shopMs), nil
}

// Update overwrites every mutable column of the shop owned by shop.VendorID.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	// Match the column's precision so the returned timestamp equals a reload.
	shopM.UpdatedAt = time.Now().Truncate(time.Microsecond)

	result := repo.db.WithContext(ctx).
		Model(&model.ShopModel{}).
		Where("id = ? AND vendor_id = ?", shop.ID, shop.VendorID).
		Select(shopMutableColumns).
		Updates(shopM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) || isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid shop record")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Delete hard-deletes the shop owned by vendorID.
func (repo *shopRepository) Delete(ctx context.Context, shopID, vendorID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", shopID, vendorID).
		Delete(&model.ShopModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// ListAll returns every shop ordered by ID.
func (repo *shopRepository) ListAll(ctx context.Context) ([]*entity.Shop, error) {
	var shopMs []*model.ShopModel
	if err := repo.searchDB(ctx).Order("id").Find(&shopMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	return toShopDomains(shopMs), nil
}

// FindWithinBounds returns shops inside any of the boxes, edges included.
func (repo *shopRepository) FindWithinBounds(ctx context.Context, bounds []orb.Bound) ([]*entity.Shop, error) {
	if len(bounds) == 0 {
		return []*entity.Shop{}, nil
	}

	clauses := make([]string, 0, len(bounds))
	args := make([]any, 0, 4*len(bounds))
	for _, b := range bounds {
		clauses = append(clauses, "(latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?)")
		args = append(args, b.Min.Lat(), b.Max.Lat(), b.Min.Lon(), b.Max.Lon())
	}

	var shopMs []*model.ShopModel
	err := repo.searchDB(ctx).
		Where(strings.Join(clauses, " OR "), args...).
		Order("id").
		Find(&shopMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find shops within bounds")
	}

	return toShopDomains(shopMs), nil
}

// FindByIDs loads the shops with the given IDs ordered by ID. Long ID lists
// are split so no single query exceeds findByIDsBatchSize bind parameters.
func (repo *shopRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Shop, error) {
	if len(ids) == 0 {
		return []*entity.Shop{}, nil
	}

	shops := make([]*entity.Shop, 0, len(ids))
	for batch := range slices.Chunk(ids, findByIDsBatchSize) {
		var shopMs []*model.ShopModel
		err := repo.searchDB(ctx).
			Where("id IN ?", batch).
			Find(&shopMs).Error
		if err != nil {
			return nil, errors.Wrap(err, "failed to find shops by ids")
		}
		shops = append(shops, toShopDomains(shopMs)...)
	}

	slices.SortFunc(shops, func(a, b *entity.Shop) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return shops, nil
}

// --- Mapper Functions ---

func toShopDomains(data []*model.ShopModel) []*entity.Shop {
	shops := make([]*entity.Shop, 0, len(data))
	for _, shopM := range data {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops
}

func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	return &entity.Shop{
		ID:        data.ID,
		VendorID:  data.VendorID,
		Name:      data.Name,
		Type:      data.Type,
		Latitude:  data.Latitude,
		Longitude: data.Longitude,
		Details: entity.ShopDetails{
			Description:      data.Description,
			Phone:            data.Phone,
			Email:            data.Email,
			Website:          data.Website,
			OpeningHours:     data.OpeningHours,
			BusinessCategory: data.BusinessCategory,
			Address:          data.Address,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:               data.ID,
		VendorID:         data.VendorID,
		Name:             data.Name,
		Type:             data.Type,
		Latitude:         data.Latitude,
		Longitude:        data.Longitude,
		Description:      data.Details.Description,
		Phone:            data.Details.Phone,
		Email:            data.Details.Email,
		Website:          data.Details.Website,
		OpeningHours:     data.Details.OpeningHours,
		BusinessCategory: data.Details.BusinessCategory,
		Address:          data.Details.Address,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
