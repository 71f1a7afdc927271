package domain

import "time"

// Subscription plan codes, matching the storefront pricing table.
const (
	PlanTrial    = "trial"
	PlanMonthly  = "1m"
	PlanHalfYear = "6m"
	PlanYearly   = "1y"
)

// PlanDurationDays returns the subscription length of a plan in days,
// 0 for an unknown plan code.
func PlanDurationDays(plan string) int {
	switch plan {
	case PlanTrial:
		return 7
	case PlanMonthly:
		return 30
	case PlanHalfYear:
		return 180
	case PlanYearly:
		return 365
	}
	return 0
}

// Seller owns a set of products. Deactivating a seller does not delete its
// products. A SubscriptionEndAt in the past makes the seller inactive for
// visibility purposes even while IsActive is still stored as true; only the
// expiry sweep flips the stored flag.
type Seller struct {
	ID                int64      `json:"id,string" form:"id"`
	UserID            int64      `gorm:"uniqueIndex" json:"user_id,string" form:"user_id"`
	Name              string     `gorm:"index" json:"name" form:"name"`
	Phone             string     `gorm:"size:32" json:"phone" form:"phone"`
	Email             string     `json:"email" form:"email"`
	Region            string     `gorm:"size:128" json:"region" form:"region"`
	Plan              string     `gorm:"size:16" json:"plan" form:"plan"`
	IsActive          bool       `json:"is_active" form:"is_active"`
	SubscriptionEndAt *time.Time `json:"subscription_end_at" form:"subscription_end_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// TableName Specify table name
func (Seller) TableName() string {
	return "sellers"
}
