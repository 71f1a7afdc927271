package subscription

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// ExpiryWarningWindow is how far ahead the sweep looks when emitting
// renewal warnings.
const ExpiryWarningWindow = 24 * time.Hour

// Notifier receives lifecycle events from the sweep. Delivery is
// at-least-once; a repeated sweep may re-emit warnings.
type Notifier interface {
	SubscriptionExpired(seller domain.Seller)
	SubscriptionExpiring(seller domain.Seller)
}

// Service implements the seller lifecycle operations. Every multi-row
// cascade runs inside a single store transaction so a reader never observes
// a seller flipped with stale product flags.
type Service struct {
	store    Store
	notifier Notifier
}

func NewService(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// DeactivateSeller clears the seller's active flag and hides every product
// it owns. After this the products evaluate to hidden_inactive_product
// (product flag is checked before the seller flag).
func (s *Service) DeactivateSeller(ctx context.Context, sellerID int64) error {
	return s.store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.GetSeller(ctx, sellerID); err != nil {
			return err
		}
		if err := tx.UpdateSeller(ctx, sellerID, map[string]interface{}{"is_active": false}); err != nil {
			return err
		}
		return tx.SetProductsActive(ctx, sellerID, false, false)
	})
}

// ActivateSeller sets the seller active and re-enables its products, except
// those under admin override, which stay inactive until an admin clears the
// override.
func (s *Service) ActivateSeller(ctx context.Context, sellerID int64) error {
	return s.store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.GetSeller(ctx, sellerID); err != nil {
			return err
		}
		if err := tx.UpdateSeller(ctx, sellerID, map[string]interface{}{"is_active": true}); err != nil {
			return err
		}
		return tx.SetProductsActive(ctx, sellerID, true, true)
	})
}

// RenewSubscription extends the subscription and reactivates the seller and
// its non-overridden products, regardless of any prior manual deactivation.
func (s *Service) RenewSubscription(ctx context.Context, sellerID int64, newEnd time.Time) error {
	if newEnd.IsZero() || !newEnd.After(time.Now()) {
		return ErrInvalidRenewal
	}
	return s.store.Transaction(ctx, func(tx Store) error {
		if _, err := tx.GetSeller(ctx, sellerID); err != nil {
			return err
		}
		if err := tx.UpdateSeller(ctx, sellerID, map[string]interface{}{
			"is_active":           true,
			"subscription_end_at": newEnd,
		}); err != nil {
			return err
		}
		return tx.SetProductsActive(ctx, sellerID, true, true)
	})
}

// SweepResult reports what one sweep invocation did.
type SweepResult struct {
	Deactivated int `json:"deactivated"`
	Warned      int `json:"warned"`
}

// ExpireSweep deactivates sellers whose subscription lapsed before now and
// emits a warning for sellers expiring within the next 24 hours. It only
// touches seller.is_active, never product flags, and is idempotent: an
// already-inactive seller is not matched again.
func (s *Service) ExpireSweep(ctx context.Context, now time.Time) (*SweepResult, error) {
	result := &SweepResult{}

	expired, err := s.store.ExpiredSellers(ctx, now)
	if err != nil {
		return nil, err
	}
	for _, seller := range expired {
		seller := seller
		err := s.store.Transaction(ctx, func(tx Store) error {
			return tx.UpdateSeller(ctx, seller.ID, map[string]interface{}{"is_active": false})
		})
		if err != nil {
			return result, errors.Wrapf(err, "deactivate expired seller %d", seller.ID)
		}
		result.Deactivated++
		zap.L().Info("subscription expired, seller deactivated",
			zap.Int64("seller_id", seller.ID),
			zap.String("name", seller.Name))
		if s.notifier != nil {
			s.notifier.SubscriptionExpired(seller)
		}
	}

	expiring, err := s.store.ExpiringSellers(ctx, now, now.Add(ExpiryWarningWindow))
	if err != nil {
		return result, err
	}
	for _, seller := range expiring {
		result.Warned++
		if s.notifier != nil {
			s.notifier.SubscriptionExpiring(seller)
		}
	}

	return result, nil
}
