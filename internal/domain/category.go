package domain

import "time"

type Category struct {
	ID        int64     `json:"id,string" form:"id"`
	Code      string    `gorm:"uniqueIndex;size:64" json:"code" form:"code"`
	Name      string    `json:"name" form:"name"`
	Sort      int       `json:"sort" form:"sort"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Category) TableName() string {
	return "categories"
}
