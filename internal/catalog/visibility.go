package catalog

import (
	"time"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// VisibilityState is the derived display state of a product. It is never
// persisted; it depends on the seller's mutable flags and must be recomputed
// on every read.
type VisibilityState string

const (
	StateVisible                   VisibilityState = "visible"
	StateHiddenInactiveProduct     VisibilityState = "hidden_inactive_product"
	StateHiddenSellerInactive      VisibilityState = "hidden_seller_inactive"
	StateHiddenSubscriptionExpired VisibilityState = "hidden_subscription_expired"
	StateOutOfStock                VisibilityState = "out_of_stock"
	StateLowStock                  VisibilityState = "low_stock"
)

// LowStockThreshold is the stock quantity at or below which an in-stock
// product is labeled low_stock.
const LowStockThreshold = 10

// Evaluate computes the visibility state of a product given a snapshot of its
// owning seller and the evaluation time. It is pure and total: every input
// maps to exactly one state, checks applied in priority order, first match
// wins. A nil seller is treated as an inactive seller.
//
// Note the check order: seller deactivation cascades product.IsActive=false,
// so products of a manually deactivated seller report
// hidden_inactive_product here. hidden_seller_inactive is reached when only
// seller.IsActive is false (the expiry sweep flips just that flag).
func Evaluate(p *domain.Product, s *domain.Seller, now time.Time) VisibilityState {
	if !p.IsActive {
		return StateHiddenInactiveProduct
	}
	if s == nil || !s.IsActive {
		return StateHiddenSellerInactive
	}
	if s.SubscriptionEndAt != nil && s.SubscriptionEndAt.Before(now) {
		return StateHiddenSubscriptionExpired
	}
	// Negative stock is invalid input; treat it as out of stock.
	if p.StockQty <= 0 {
		return StateOutOfStock
	}
	if p.StockQty <= LowStockThreshold {
		return StateLowStock
	}
	return StateVisible
}

// Hidden reports whether the state excludes the product from buyer-facing
// listings entirely.
func (v VisibilityState) Hidden() bool {
	switch v {
	case StateHiddenInactiveProduct, StateHiddenSellerInactive, StateHiddenSubscriptionExpired:
		return true
	}
	return false
}

// Purchasable reports whether a buyer may order the product. Out-of-stock
// products are listable but not purchasable.
func (v VisibilityState) Purchasable() bool {
	return v == StateVisible || v == StateLowStock
}
