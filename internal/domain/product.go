package domain

import "time"

// Product is a marketplace listing owned by a seller.
// IsActive may be toggled by the seller or the admin; AdminDeactivated is the
// admin-only override flag: while it is set, seller writes must not flip
// IsActive back to true.
type Product struct {
	ID               int64     `json:"id,string" form:"id"`
	SellerID         int64     `gorm:"index" json:"seller_id,string" form:"seller_id"`
	CategoryID       int64     `gorm:"index" json:"category_id,string" form:"category_id"`
	Name             string    `gorm:"index" json:"name" form:"name"`
	Description      string    `json:"description" form:"description"`
	Subtype          string    `gorm:"size:64" json:"subtype" form:"subtype"`
	Badge            string    `gorm:"size:64" json:"badge" form:"badge"`
	Price            float64   `json:"price" form:"price"`
	ImageURL         string    `gorm:"size:1024" json:"image_url" form:"image_url"`
	StockQty         int       `json:"stock_qty" form:"stock_qty"`
	SoldCount        int64     `json:"sold_count"`
	Rating           float64   `json:"rating"`
	ReviewCount      int       `json:"review_count"`
	IsActive         bool      `json:"is_active" form:"is_active"`
	AdminDeactivated bool      `json:"admin_deactivated"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
