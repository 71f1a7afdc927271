package domain

import "time"

// MarketRate is a daily arecanut price quote from a regional market,
// in rupees per quintal.
type MarketRate struct {
	ID         int64     `json:"id,string" form:"id"`
	Variety    string    `gorm:"index;size:64" json:"variety" form:"variety"`
	Market     string    `gorm:"index;size:128" json:"market" form:"market"`
	PriceMin   float64   `json:"price_min" form:"price_min"`
	PriceMax   float64   `json:"price_max" form:"price_max"`
	PriceModal float64   `json:"price_modal" form:"price_modal"`
	RecordedOn time.Time `gorm:"index" json:"recorded_on" form:"recorded_on"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName Specify table name
func (MarketRate) TableName() string {
	return "market_rates"
}
