package domain

import "time"

// BlogPost is an editorial article for the storefront blog.
type BlogPost struct {
	ID          int64     `json:"id,string" form:"id"`
	Slug        string    `gorm:"uniqueIndex;size:128" json:"slug" form:"slug"`
	Category    string    `gorm:"index;size:64" json:"category" form:"category"`
	Title       string    `json:"title" form:"title"`
	Summary     string    `json:"summary" form:"summary"`
	Content     string    `json:"content" form:"content"`
	Author      string    `gorm:"size:128" json:"author" form:"author"`
	ReadTimeMin int       `json:"read_time_min" form:"read_time_min"`
	IsActive    bool      `json:"is_active" form:"is_active"`
	PublishedAt time.Time `json:"published_at" form:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName Specify table name
func (BlogPost) TableName() string {
	return "blog_posts"
}

// Faq is a storefront help entry.
type Faq struct {
	ID           int64     `json:"id,string" form:"id"`
	Question     string    `json:"question" form:"question"`
	Answer       string    `json:"answer" form:"answer"`
	DisplayOrder int       `json:"display_order" form:"display_order"`
	IsActive     bool      `json:"is_active" form:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Faq) TableName() string {
	return "faqs"
}

// Testimonial is a buyer quote shown on the landing page.
type Testimonial struct {
	ID           int64     `json:"id,string" form:"id"`
	Name         string    `gorm:"size:128" json:"name" form:"name"`
	Location     string    `gorm:"size:128" json:"location" form:"location"`
	Quote        string    `json:"quote" form:"quote"`
	Rating       int       `json:"rating" form:"rating"`
	DisplayOrder int       `json:"display_order" form:"display_order"`
	IsActive     bool      `json:"is_active" form:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName Specify table name
func (Testimonial) TableName() string {
	return "testimonials"
}
