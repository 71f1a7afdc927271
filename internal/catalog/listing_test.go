package catalog_test

import (
	"math/rand"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

func TestListingQueryNormalize(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		in   catalog.ListingQuery
		want catalog.ListingQuery
	}{
		{
			name: "zero value gets defaults",
			in:   catalog.ListingQuery{},
			want: catalog.ListingQuery{Page: 1, Limit: 50, Sort: catalog.SortNewest},
		},
		{
			name: "negative page clamped",
			in:   catalog.ListingQuery{Page: -5, Limit: 20},
			want: catalog.ListingQuery{Page: 1, Limit: 20, Sort: catalog.SortNewest},
		},
		{
			name: "oversized limit clamped",
			in:   catalog.ListingQuery{Page: 2, Limit: 10000},
			want: catalog.ListingQuery{Page: 2, Limit: 200, Sort: catalog.SortNewest},
		},
		{
			name: "unknown sort falls back to newest",
			in:   catalog.ListingQuery{Page: 1, Limit: 10, Sort: "price_asc"},
			want: catalog.ListingQuery{Page: 1, Limit: 10, Sort: catalog.SortNewest},
		},
		{
			name: "sales sort kept",
			in:   catalog.ListingQuery{Page: 1, Limit: 10, Sort: catalog.SortSales},
			want: catalog.ListingQuery{Page: 1, Limit: 10, Sort: catalog.SortSales},
		},
	}

	for _, tt := range tests {
		tt := tt
		c.Run(tt.name, func(c *qt.C) {
			q := tt.in
			q.Normalize()
			c.Assert(q, qt.DeepEquals, tt.want)
		})
	}
}

// Listable must agree with Evaluate for every input: a product is listable
// exactly when its evaluated state is not a hidden one. Checked over a
// generated catalog so the filter predicate and the evaluator cannot drift
// apart silently.
func TestListableMatchesEvaluate(t *testing.T) {
	c := qt.New(t)
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	randEnd := func() *time.Time {
		switch rng.Intn(3) {
		case 0:
			return nil
		case 1:
			end := now.Add(-time.Duration(1+rng.Intn(720)) * time.Hour)
			return &end
		default:
			end := now.Add(time.Duration(1+rng.Intn(720)) * time.Hour)
			return &end
		}
	}

	for i := 0; i < 500; i++ {
		p := &domain.Product{
			ID:       int64(i),
			IsActive: rng.Intn(4) != 0,
			StockQty: rng.Intn(30) - 5,
		}
		var s *domain.Seller
		if rng.Intn(10) != 0 {
			s = &domain.Seller{
				ID:                int64(1000 + i),
				IsActive:          rng.Intn(4) != 0,
				SubscriptionEndAt: randEnd(),
			}
		}

		state := catalog.Evaluate(p, s, now)
		c.Assert(catalog.Listable(p, s, now), qt.Equals, !state.Hidden(),
			qt.Commentf("state %q product=%+v seller=%+v", state, p, s))

		// Out-of-stock rows stay listed; only the three hidden states drop out.
		if state == catalog.StateOutOfStock || state == catalog.StateLowStock {
			c.Assert(catalog.Listable(p, s, now), qt.IsTrue)
		}
	}
}
