package catalog_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

func activeSeller(end *time.Time) *domain.Seller {
	return &domain.Seller{ID: 1, Name: "Mandagadde Traders", IsActive: true, SubscriptionEndAt: end}
}

func product(stock int) *domain.Product {
	return &domain.Product{ID: 100, SellerID: 1, Name: "Rashi Grade Arecanut", IsActive: true, StockQty: stock}
}

func TestEvaluate(t *testing.T) {
	c := qt.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * 24 * time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name    string
		product *domain.Product
		seller  *domain.Seller
		want    catalog.VisibilityState
	}{
		{
			name:    "active seller, healthy stock",
			product: product(250),
			seller:  activeSeller(&future),
			want:    catalog.StateVisible,
		},
		{
			name:    "no subscription end date counts as unlimited",
			product: product(250),
			seller:  activeSeller(nil),
			want:    catalog.StateVisible,
		},
		{
			name: "inactive product wins over everything else",
			product: &domain.Product{
				IsActive: false, StockQty: 0,
			},
			seller: &domain.Seller{IsActive: false, SubscriptionEndAt: &past},
			want:   catalog.StateHiddenInactiveProduct,
		},
		{
			name:    "missing seller",
			product: product(250),
			seller:  nil,
			want:    catalog.StateHiddenSellerInactive,
		},
		{
			name:    "inactive seller checked before expiry",
			product: product(250),
			seller:  &domain.Seller{IsActive: false, SubscriptionEndAt: &past},
			want:    catalog.StateHiddenSellerInactive,
		},
		{
			name:    "expired subscription with stale active flag",
			product: product(250),
			seller:  activeSeller(&past),
			want:    catalog.StateHiddenSubscriptionExpired,
		},
		{
			name:    "subscription ending exactly now is not expired",
			product: product(250),
			seller:  activeSeller(&now),
			want:    catalog.StateVisible,
		},
		{
			name:    "expiry checked before stock",
			product: product(0),
			seller:  activeSeller(&past),
			want:    catalog.StateHiddenSubscriptionExpired,
		},
		{
			name:    "zero stock",
			product: product(0),
			seller:  activeSeller(&future),
			want:    catalog.StateOutOfStock,
		},
		{
			name:    "negative stock treated as out of stock",
			product: product(-3),
			seller:  activeSeller(&future),
			want:    catalog.StateOutOfStock,
		},
		{
			name:    "stock of one is low",
			product: product(1),
			seller:  activeSeller(&future),
			want:    catalog.StateLowStock,
		},
		{
			name:    "stock at threshold is low",
			product: product(catalog.LowStockThreshold),
			seller:  activeSeller(&future),
			want:    catalog.StateLowStock,
		},
		{
			name:    "stock just above threshold is visible",
			product: product(catalog.LowStockThreshold + 1),
			seller:  activeSeller(&future),
			want:    catalog.StateVisible,
		},
	}

	for _, tt := range tests {
		tt := tt
		c.Run(tt.name, func(c *qt.C) {
			c.Assert(catalog.Evaluate(tt.product, tt.seller, now), qt.Equals, tt.want)
		})
	}
}

// A manual seller deactivation cascades product.IsActive=false, so those
// products report hidden_inactive_product, while the expiry sweep only flips
// seller.IsActive and leaves products reporting hidden_seller_inactive. The
// two hidden states are distinguishable even though both stem from the
// seller.
func TestEvaluateDeactivationPaths(t *testing.T) {
	c := qt.New(t)
	now := time.Now()

	manual := product(50)
	manual.IsActive = false
	c.Assert(catalog.Evaluate(manual, &domain.Seller{IsActive: false}, now),
		qt.Equals, catalog.StateHiddenInactiveProduct)

	swept := product(50)
	past := now.Add(-48 * time.Hour)
	c.Assert(catalog.Evaluate(swept, &domain.Seller{IsActive: false, SubscriptionEndAt: &past}, now),
		qt.Equals, catalog.StateHiddenSellerInactive)
}

func TestEvaluateTotality(t *testing.T) {
	c := qt.New(t)
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	known := map[catalog.VisibilityState]bool{
		catalog.StateVisible:                   true,
		catalog.StateHiddenInactiveProduct:     true,
		catalog.StateHiddenSellerInactive:      true,
		catalog.StateHiddenSubscriptionExpired: true,
		catalog.StateOutOfStock:                true,
		catalog.StateLowStock:                  true,
	}

	stocks := []int{-1, 0, 1, 10, 11, 500}
	ends := []*time.Time{nil, &past, &future}
	for _, pActive := range []bool{true, false} {
		for _, stock := range stocks {
			for _, sActive := range []bool{true, false} {
				for _, end := range ends {
					p := &domain.Product{IsActive: pActive, StockQty: stock}
					s := &domain.Seller{IsActive: sActive, SubscriptionEndAt: end}
					got := catalog.Evaluate(p, s, now)
					c.Assert(known[got], qt.IsTrue,
						qt.Commentf("unknown state %q for product=%+v seller=%+v", got, p, s))
					// Same inputs, same answer.
					c.Assert(catalog.Evaluate(p, s, now), qt.Equals, got)
				}
			}
			p := &domain.Product{IsActive: pActive, StockQty: stock}
			c.Assert(known[catalog.Evaluate(p, nil, now)], qt.IsTrue)
		}
	}
}

func TestHiddenAndPurchasable(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		state       catalog.VisibilityState
		hidden      bool
		purchasable bool
	}{
		{catalog.StateVisible, false, true},
		{catalog.StateLowStock, false, true},
		{catalog.StateOutOfStock, false, false},
		{catalog.StateHiddenInactiveProduct, true, false},
		{catalog.StateHiddenSellerInactive, true, false},
		{catalog.StateHiddenSubscriptionExpired, true, false},
	}
	for _, tt := range tests {
		c.Assert(tt.state.Hidden(), qt.Equals, tt.hidden, qt.Commentf("state %q", tt.state))
		c.Assert(tt.state.Purchasable(), qt.Equals, tt.purchasable, qt.Commentf("state %q", tt.state))
		// No state is both hidden and purchasable.
		c.Assert(tt.state.Hidden() && tt.state.Purchasable(), qt.IsFalse)
	}
}
