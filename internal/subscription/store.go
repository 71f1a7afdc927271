package subscription

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// Store is the persistence contract for seller lifecycle cascades. The
// Transaction method must make the whole cascade atomic: either the seller
// flag and every product flag change together or nothing is persisted.
type Store interface {
	// GetSeller returns the seller or ErrSellerNotFound.
	GetSeller(ctx context.Context, id int64) (*domain.Seller, error)

	// UpdateSeller applies the given column updates to one seller row.
	UpdateSeller(ctx context.Context, id int64, updates map[string]interface{}) error

	// SetProductsActive flips is_active on every product owned by sellerID.
	// With skipAdminDeactivated set, products under admin override are left
	// untouched.
	SetProductsActive(ctx context.Context, sellerID int64, active bool, skipAdminDeactivated bool) error

	// ExpiredSellers returns sellers still flagged active whose subscription
	// ended before now.
	ExpiredSellers(ctx context.Context, now time.Time) ([]domain.Seller, error)

	// ExpiringSellers returns active sellers whose subscription ends within
	// (from, to].
	ExpiringSellers(ctx context.Context, from, to time.Time) ([]domain.Seller, error)

	// Transaction runs fn against a transactional view of the store,
	// committing on nil and rolling back on error.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

// GormStore is the GORM implementation of Store.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetSeller(ctx context.Context, id int64) (*domain.Seller, error) {
	var seller domain.Seller
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSellerNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query seller")
	}
	return &seller, nil
}

func (s *GormStore) UpdateSeller(ctx context.Context, id int64, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	err := s.db.WithContext(ctx).Model(&domain.Seller{}).Where("id = ?", id).Updates(updates).Error
	return errors.Wrap(err, "update seller")
}

func (s *GormStore) SetProductsActive(ctx context.Context, sellerID int64, active bool, skipAdminDeactivated bool) error {
	q := s.db.WithContext(ctx).Model(&domain.Product{}).Where("seller_id = ?", sellerID)
	if skipAdminDeactivated {
		q = q.Where("admin_deactivated = ?", false)
	}
	err := q.Updates(map[string]interface{}{
		"is_active":  active,
		"updated_at": time.Now(),
	}).Error
	return errors.Wrap(err, "update seller products")
}

func (s *GormStore) ExpiredSellers(ctx context.Context, now time.Time) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("subscription_end_at IS NOT NULL AND subscription_end_at < ?", now).
		Find(&sellers).Error
	return sellers, errors.Wrap(err, "query expired sellers")
}

func (s *GormStore) ExpiringSellers(ctx context.Context, from, to time.Time) ([]domain.Seller, error) {
	var sellers []domain.Seller
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("subscription_end_at > ? AND subscription_end_at <= ?", from, to).
		Find(&sellers).Error
	return sellers, errors.Wrap(err, "query expiring sellers")
}

func (s *GormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}
