package catalog

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// Sort keys accepted by the public listing endpoint.
const (
	SortNewest = "newest"
	SortSales  = "sales"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListingQuery describes a buyer-facing catalog page request.
type ListingQuery struct {
	CategoryCode string
	Search       string
	Sort         string
	Page         int
	Limit        int
}

// Normalize clamps pagination to sane bounds and defaults the sort key.
func (q *ListingQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageSize
	}
	if q.Limit > maxPageSize {
		q.Limit = maxPageSize
	}
	if q.Sort != SortSales {
		q.Sort = SortNewest
	}
}

// ListedProduct is a catalog row annotated with its computed visibility
// state for UI rendering.
type ListedProduct struct {
	domain.Product
	CategoryName string          `json:"category_name"`
	CategoryCode string          `json:"category_code"`
	SellerName   string          `json:"seller_name"`
	Visibility   VisibilityState `json:"visibility"`
}

// Listing is one page of the buyer-facing catalog with pagination metadata.
// Total is computed under the same filter predicate as the page fetch.
type Listing struct {
	Items      []ListedProduct `json:"products"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int64           `json:"total"`
	TotalPages int64           `json:"totalPages"`
}

// ListableScope is the SQL form of the visibility rule: it keeps exactly the
// products whose evaluated state is visible, low_stock or out_of_stock, so
// hidden products are excluded at the query level rather than row by row in
// application memory. It must stay equivalent to Listable below.
func ListableScope(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN sellers ON sellers.id = products.seller_id").
			Where("products.is_active = ?", true).
			Where("sellers.id IS NOT NULL AND sellers.is_active = ?", true).
			Where("(sellers.subscription_end_at IS NULL OR sellers.subscription_end_at >= ?)", now)
	}
}

// Listable is the in-memory equivalent of ListableScope: true iff the
// evaluated state is not one of the hidden states.
func Listable(p *domain.Product, s *domain.Seller, now time.Time) bool {
	return !Evaluate(p, s, now).Hidden()
}

type listingRow struct {
	domain.Product          `gorm:"embedded"`
	CategoryName            string
	CategoryCode            string
	SellerName              string
	SellerActive            bool
	SellerSubscriptionEndAt *time.Time
}

// ListProducts runs the buyer-facing catalog query. Every returned row is
// re-evaluated against its seller snapshot so the visibility label matches
// the filter that selected it.
func ListProducts(db *gorm.DB, q ListingQuery, now time.Time) (*Listing, error) {
	q.Normalize()

	base := db.Table("products").
		Scopes(ListableScope(now)).
		Joins("LEFT JOIN categories ON categories.id = products.category_id")

	if q.CategoryCode != "" {
		base = base.Where("categories.code = ?", q.CategoryCode)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		if strings.EqualFold(db.Name(), "postgres") {
			base = base.Where("products.name ILIKE ? OR products.description ILIKE ?", "%"+s+"%", "%"+s+"%")
		} else {
			like := "%" + strings.ToLower(s) + "%"
			base = base.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", like, like)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	orderBy := "products.created_at DESC"
	if q.Sort == SortSales {
		orderBy = "products.sold_count DESC"
	}

	var rows []listingRow
	err := base.
		Select("products.*, categories.name AS category_name, categories.code AS category_code, " +
			"sellers.name AS seller_name, sellers.is_active AS seller_active, " +
			"sellers.subscription_end_at AS seller_subscription_end_at").
		Order(orderBy).
		Offset((q.Page - 1) * q.Limit).
		Limit(q.Limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]ListedProduct, 0, len(rows))
	for _, r := range rows {
		seller := &domain.Seller{
			ID:                r.Product.SellerID,
			IsActive:          r.SellerActive,
			SubscriptionEndAt: r.SellerSubscriptionEndAt,
		}
		items = append(items, ListedProduct{
			Product:      r.Product,
			CategoryName: r.CategoryName,
			CategoryCode: r.CategoryCode,
			SellerName:   r.SellerName,
			Visibility:   Evaluate(&r.Product, seller, now),
		})
	}

	totalPages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		totalPages++
	}

	return &Listing{
		Items:      items,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
