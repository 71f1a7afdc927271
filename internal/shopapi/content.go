package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// listBlogPosts returns published articles, newest first, optionally
// filtered by category.
func listBlogPosts(c echo.Context) error {
	q := GetDB(c).Model(&domain.BlogPost{}).Where("is_active = ?", true)
	if category := c.QueryParam("category"); category != "" && category != "All" {
		q = q.Where("category = ?", category)
	}

	var posts []domain.BlogPost
	if err := q.Order("published_at DESC").Find(&posts).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query blog posts", nil)
	}
	return ok(c, posts)
}

// getBlogPost resolves a published article by slug.
func getBlogPost(c echo.Context) error {
	var post domain.BlogPost
	err := GetDB(c).
		Where("slug = ? AND is_active = ?", c.Param("slug"), true).
		First(&post).Error
	if err != nil {
		return fail(c, http.StatusNotFound, "POST_NOT_FOUND", "Blog post not found", nil)
	}
	return ok(c, post)
}

func listFaqs(c echo.Context) error {
	var faqs []domain.Faq
	err := GetDB(c).Where("is_active = ?", true).
		Order("display_order ASC, id DESC").Find(&faqs).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query FAQs", nil)
	}
	return ok(c, faqs)
}

func listTestimonials(c echo.Context) error {
	var testimonials []domain.Testimonial
	err := GetDB(c).Where("is_active = ?", true).
		Order("display_order ASC, id DESC").Find(&testimonials).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query testimonials", nil)
	}
	return ok(c, testimonials)
}
