package domain

import "time"

// Order statuses. Payment is mocked: orders are created directly as paid.
const (
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

// Order is a buyer purchase. UserOrderNumber is a per-user sequential
// number shown on the confirmation page; RefCode is the public reference.
type Order struct {
	ID              int64     `json:"id,string" form:"id"`
	UserID          int64     `gorm:"index" json:"user_id,string"`
	UserOrderNumber int       `json:"user_order_number"`
	RefCode         string    `gorm:"size:16;index" json:"ref_code"`
	TotalAmount     float64   `json:"total_amount"`
	Status          string    `gorm:"size:16" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        int64   `json:"id,string"`
	OrderID   int64   `gorm:"index" json:"order_id,string"`
	ProductID int64   `gorm:"index" json:"product_id,string"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// TableName Specify table name
func (OrderItem) TableName() string {
	return "order_items"
}
