package subscription_test

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"github.com/pkg/errors"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/subscription"
)

// memStore keeps sellers and products in maps. Transaction snapshots both
// maps and restores them when fn fails, matching the rollback contract of
// the real store.
type memStore struct {
	sellers  map[int64]*domain.Seller
	products map[int64]*domain.Product

	failSetProducts bool
}

func newMemStore() *memStore {
	return &memStore{
		sellers:  map[int64]*domain.Seller{},
		products: map[int64]*domain.Product{},
	}
}

func (m *memStore) addSeller(s domain.Seller) *memStore {
	cp := s
	m.sellers[s.ID] = &cp
	return m
}

func (m *memStore) addProduct(p domain.Product) *memStore {
	cp := p
	m.products[p.ID] = &cp
	return m
}

func (m *memStore) GetSeller(_ context.Context, id int64) (*domain.Seller, error) {
	s, ok := m.sellers[id]
	if !ok {
		return nil, subscription.ErrSellerNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *memStore) UpdateSeller(_ context.Context, id int64, updates map[string]interface{}) error {
	s, ok := m.sellers[id]
	if !ok {
		return subscription.ErrSellerNotFound
	}
	for k, v := range updates {
		switch k {
		case "is_active":
			s.IsActive = v.(bool)
		case "subscription_end_at":
			end := v.(time.Time)
			s.SubscriptionEndAt = &end
		}
	}
	return nil
}

func (m *memStore) SetProductsActive(_ context.Context, sellerID int64, active bool, skipAdminDeactivated bool) error {
	if m.failSetProducts {
		return errors.New("product update failed")
	}
	for _, p := range m.products {
		if p.SellerID != sellerID {
			continue
		}
		if skipAdminDeactivated && p.AdminDeactivated {
			continue
		}
		p.IsActive = active
	}
	return nil
}

func (m *memStore) ExpiredSellers(_ context.Context, now time.Time) ([]domain.Seller, error) {
	var out []domain.Seller
	for _, s := range m.sellers {
		if s.IsActive && s.SubscriptionEndAt != nil && s.SubscriptionEndAt.Before(now) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) ExpiringSellers(_ context.Context, from, to time.Time) ([]domain.Seller, error) {
	var out []domain.Seller
	for _, s := range m.sellers {
		if s.IsActive && s.SubscriptionEndAt != nil &&
			s.SubscriptionEndAt.After(from) && !s.SubscriptionEndAt.After(to) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) Transaction(_ context.Context, fn func(tx subscription.Store) error) error {
	sellerSnap := make(map[int64]*domain.Seller, len(m.sellers))
	for id, s := range m.sellers {
		cp := *s
		sellerSnap[id] = &cp
	}
	productSnap := make(map[int64]*domain.Product, len(m.products))
	for id, p := range m.products {
		cp := *p
		productSnap[id] = &cp
	}
	if err := fn(m); err != nil {
		m.sellers = sellerSnap
		m.products = productSnap
		return err
	}
	return nil
}

type recordingNotifier struct {
	expired  []int64
	expiring []int64
}

func (n *recordingNotifier) SubscriptionExpired(s domain.Seller)  { n.expired = append(n.expired, s.ID) }
func (n *recordingNotifier) SubscriptionExpiring(s domain.Seller) { n.expiring = append(n.expiring, s.ID) }

func futureTime(d time.Duration) *time.Time {
	t := time.Now().Add(d)
	return &t
}

func TestDeactivateSellerCascades(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Now()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, Name: "Sagar Agro", IsActive: true, SubscriptionEndAt: futureTime(72 * time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: true, StockQty: 100}).
		addProduct(domain.Product{ID: 11, SellerID: 1, IsActive: true, StockQty: 5}).
		addProduct(domain.Product{ID: 20, SellerID: 2, IsActive: true, StockQty: 8})

	svc := subscription.NewService(store, nil)
	c.Assert(svc.DeactivateSeller(ctx, 1), qt.IsNil)

	c.Assert(store.sellers[1].IsActive, qt.IsFalse)
	c.Assert(store.products[10].IsActive, qt.IsFalse)
	c.Assert(store.products[11].IsActive, qt.IsFalse)
	// Another seller's product is untouched.
	c.Assert(store.products[20].IsActive, qt.IsTrue)

	// The cascade flips the product flag, so the products of a manually
	// deactivated seller surface as hidden_inactive_product.
	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now),
		qt.Equals, catalog.StateHiddenInactiveProduct)
}

func TestDeactivateSellerNotFound(t *testing.T) {
	c := qt.New(t)
	svc := subscription.NewService(newMemStore(), nil)
	err := svc.DeactivateSeller(context.Background(), 99)
	c.Assert(errors.Is(err, subscription.ErrSellerNotFound), qt.IsTrue)
}

func TestActivateSellerKeepsAdminOverride(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: false, SubscriptionEndAt: futureTime(72 * time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: false, StockQty: 40}).
		addProduct(domain.Product{ID: 11, SellerID: 1, IsActive: false, AdminDeactivated: true, StockQty: 40})

	svc := subscription.NewService(store, nil)
	c.Assert(svc.ActivateSeller(ctx, 1), qt.IsNil)

	c.Assert(store.sellers[1].IsActive, qt.IsTrue)
	c.Assert(store.products[10].IsActive, qt.IsTrue)
	// The admin override survives both seller reactivation and renewal.
	c.Assert(store.products[11].IsActive, qt.IsFalse)
	c.Assert(store.products[11].AdminDeactivated, qt.IsTrue)

	c.Assert(svc.RenewSubscription(ctx, 1, time.Now().Add(30*24*time.Hour)), qt.IsNil)
	c.Assert(store.products[11].IsActive, qt.IsFalse)
}

func TestRenewSubscription(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Now()
	newEnd := now.Add(30 * 24 * time.Hour)

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: false, SubscriptionEndAt: futureTime(-24 * time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: false, StockQty: 100}).
		addProduct(domain.Product{ID: 11, SellerID: 1, IsActive: false, StockQty: 3}).
		addProduct(domain.Product{ID: 12, SellerID: 1, IsActive: false, StockQty: 0})

	svc := subscription.NewService(store, nil)
	c.Assert(svc.RenewSubscription(ctx, 1, newEnd), qt.IsNil)

	c.Assert(store.sellers[1].IsActive, qt.IsTrue)
	c.Assert(store.sellers[1].SubscriptionEndAt.Equal(newEnd), qt.IsTrue)

	// Products come back with stock-derived labels, not all simply visible.
	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now), qt.Equals, catalog.StateVisible)
	c.Assert(catalog.Evaluate(store.products[11], store.sellers[1], now), qt.Equals, catalog.StateLowStock)
	c.Assert(catalog.Evaluate(store.products[12], store.sellers[1], now), qt.Equals, catalog.StateOutOfStock)
}

func TestRenewSubscriptionRejectsPastDate(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: false})
	svc := subscription.NewService(store, nil)

	err := svc.RenewSubscription(ctx, 1, time.Now().Add(-time.Minute))
	c.Assert(errors.Is(err, subscription.ErrInvalidRenewal), qt.IsTrue)
	c.Assert(store.sellers[1].IsActive, qt.IsFalse)

	err = svc.RenewSubscription(ctx, 1, time.Time{})
	c.Assert(errors.Is(err, subscription.ErrInvalidRenewal), qt.IsTrue)
}

func TestDeactivateRollsBackOnCascadeFailure(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: true, SubscriptionEndAt: futureTime(72 * time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: true, StockQty: 50})
	store.failSetProducts = true

	svc := subscription.NewService(store, nil)
	err := svc.DeactivateSeller(ctx, 1)
	c.Assert(err, qt.IsNotNil)

	// The seller flag change must not survive the failed product cascade.
	c.Assert(store.sellers[1].IsActive, qt.IsTrue)
	c.Assert(store.products[10].IsActive, qt.IsTrue)
}

func TestExpireSweep(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Now()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, Name: "lapsed", IsActive: true, SubscriptionEndAt: futureTime(-48 * time.Hour)}).
		addSeller(domain.Seller{ID: 2, Name: "expiring soon", IsActive: true, SubscriptionEndAt: futureTime(6 * time.Hour)}).
		addSeller(domain.Seller{ID: 3, Name: "healthy", IsActive: true, SubscriptionEndAt: futureTime(90 * 24 * time.Hour)}).
		addSeller(domain.Seller{ID: 4, Name: "already swept", IsActive: false, SubscriptionEndAt: futureTime(-24 * time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: true, StockQty: 100})

	notifier := &recordingNotifier{}
	svc := subscription.NewService(store, notifier)

	res, err := svc.ExpireSweep(ctx, now)
	c.Assert(err, qt.IsNil)
	c.Assert(res.Deactivated, qt.Equals, 1)
	c.Assert(res.Warned, qt.Equals, 1)
	c.Assert(notifier.expired, qt.DeepEquals, []int64{1})
	c.Assert(notifier.expiring, qt.DeepEquals, []int64{2})

	// Only the seller flag flips; the product keeps its own active flag, so
	// it now reads as hidden for the seller rather than as a deactivated
	// product.
	c.Assert(store.sellers[1].IsActive, qt.IsFalse)
	c.Assert(store.products[10].IsActive, qt.IsTrue)
	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now),
		qt.Equals, catalog.StateHiddenSellerInactive)

	c.Assert(store.sellers[3].IsActive, qt.IsTrue)
	c.Assert(store.sellers[4].IsActive, qt.IsFalse)
}

func TestExpireSweepIdempotent(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Now()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: true, SubscriptionEndAt: futureTime(-time.Hour)})

	notifier := &recordingNotifier{}
	svc := subscription.NewService(store, notifier)

	res, err := svc.ExpireSweep(ctx, now)
	c.Assert(err, qt.IsNil)
	c.Assert(res.Deactivated, qt.Equals, 1)

	// The seller is no longer flagged active, so a second pass finds nothing
	// and sends nothing.
	res, err = svc.ExpireSweep(ctx, now)
	c.Assert(err, qt.IsNil)
	c.Assert(res.Deactivated, qt.Equals, 0)
	c.Assert(len(notifier.expired), qt.Equals, 1)
}

// The full lifecycle of a lapsing seller: products read as expired while
// the stored flag is stale, as seller-inactive after the sweep, and as
// visible again after renewal.
func TestStaleFlagLifecycle(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	now := time.Now()

	store := newMemStore().
		addSeller(domain.Seller{ID: 1, IsActive: true, SubscriptionEndAt: futureTime(-time.Hour)}).
		addProduct(domain.Product{ID: 10, SellerID: 1, IsActive: true, StockQty: 80})
	svc := subscription.NewService(store, nil)

	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now),
		qt.Equals, catalog.StateHiddenSubscriptionExpired)

	_, err := svc.ExpireSweep(ctx, now)
	c.Assert(err, qt.IsNil)
	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now),
		qt.Equals, catalog.StateHiddenSellerInactive)

	c.Assert(svc.RenewSubscription(ctx, 1, now.Add(30*24*time.Hour)), qt.IsNil)
	c.Assert(catalog.Evaluate(store.products[10], store.sellers[1], now),
		qt.Equals, catalog.StateVisible)
}
