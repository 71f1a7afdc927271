package adminapi

import (
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func registerContentRoutes() {
	webserver.AdminGET("/blog", listBlogPosts)
	webserver.AdminPOST("/blog", createBlogPost)
	webserver.AdminPATCH("/blog/:id", updateBlogPost)
	webserver.AdminDELETE("/blog/:id", deleteBlogPost)
	webserver.AdminPOST("/faqs", createFaq)
	webserver.AdminDELETE("/faqs/:id", deleteFaq)
	webserver.AdminPOST("/testimonials", createTestimonial)
	webserver.AdminDELETE("/testimonials/:id", deleteTestimonial)
}

// slugify turns a title into a URL slug: lowercase, runs of
// non-alphanumerics collapsed to single hyphens.
func slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// estimateReadMinutes assumes 200 words per minute, minimum one minute.
func estimateReadMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

type blogPostPayload struct {
	Slug        *string `json:"slug"`
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Summary     *string `json:"summary"`
	Content     *string `json:"content"`
	Author      *string `json:"author"`
	IsActive    *bool   `json:"is_active"`
	PublishedAt *string `json:"published_at"`
}

func listBlogPosts(c echo.Context) error {
	var posts []domain.BlogPost
	if err := GetDB(c).Order("published_at DESC").Find(&posts).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query blog posts", err.Error())
	}
	return ok(c, posts)
}

func createBlogPost(c echo.Context) error {
	var payload blogPostPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse blog post", nil)
	}
	if payload.Title == nil || strings.TrimSpace(*payload.Title) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
	}

	post := domain.BlogPost{
		ID:          common.UUIDint64(),
		Title:       strings.TrimSpace(*payload.Title),
		IsActive:    true,
		PublishedAt: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	post.Slug = slugify(post.Title)
	if payload.Slug != nil && *payload.Slug != "" {
		post.Slug = slugify(*payload.Slug)
	}
	if payload.Category != nil {
		post.Category = *payload.Category
	}
	if payload.Summary != nil {
		post.Summary = *payload.Summary
	}
	if payload.Content != nil {
		post.Content = *payload.Content
	}
	if payload.Author != nil {
		post.Author = *payload.Author
	}
	if payload.IsActive != nil {
		post.IsActive = *payload.IsActive
	}
	post.ReadTimeMin = estimateReadMinutes(post.Content)

	var dup domain.BlogPost
	if err := GetDB(c).Where("slug = ?", post.Slug).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "DUPLICATE_SLUG", "A post with this slug already exists", nil)
	}

	if err := GetDB(c).Create(&post).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create blog post", err.Error())
	}
	logOpr(c, "create_blog_post", post.Slug)
	return ok(c, post)
}

func updateBlogPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID", nil)
	}
	var post domain.BlogPost
	if err := GetDB(c).Where("id = ?", id).First(&post).Error; err != nil {
		return fail(c, http.StatusNotFound, "POST_NOT_FOUND", "Blog post not found", nil)
	}

	var payload blogPostPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse blog post", nil)
	}
	if payload.Title != nil {
		title := strings.TrimSpace(*payload.Title)
		if title == "" {
			return fail(c, http.StatusBadRequest, "MISSING_TITLE", "Title is required", nil)
		}
		post.Title = title
	}
	if payload.Slug != nil && *payload.Slug != "" {
		post.Slug = slugify(*payload.Slug)
	}
	if payload.Category != nil {
		post.Category = *payload.Category
	}
	if payload.Summary != nil {
		post.Summary = *payload.Summary
	}
	if payload.Content != nil {
		post.Content = *payload.Content
		post.ReadTimeMin = estimateReadMinutes(post.Content)
	}
	if payload.Author != nil {
		post.Author = *payload.Author
	}
	if payload.IsActive != nil {
		post.IsActive = *payload.IsActive
	}
	post.UpdatedAt = time.Now()

	if err := GetDB(c).Save(&post).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update blog post", err.Error())
	}
	logOpr(c, "update_blog_post", post.Slug)
	return ok(c, post)
}

func deleteBlogPost(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid post ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.BlogPost{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete blog post", err.Error())
	}
	logOpr(c, "delete_blog_post", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}

func createFaq(c echo.Context) error {
	var faq domain.Faq
	if err := c.Bind(&faq); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse FAQ", nil)
	}
	if strings.TrimSpace(faq.Question) == "" || strings.TrimSpace(faq.Answer) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Question and answer are required", nil)
	}
	faq.ID = common.UUIDint64()
	faq.IsActive = true
	faq.CreatedAt = time.Now()
	faq.UpdatedAt = time.Now()
	if err := GetDB(c).Create(&faq).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create FAQ", err.Error())
	}
	logOpr(c, "create_faq", faq.Question)
	return ok(c, faq)
}

func deleteFaq(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid FAQ ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Faq{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete FAQ", err.Error())
	}
	logOpr(c, "delete_faq", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}

func createTestimonial(c echo.Context) error {
	var tm domain.Testimonial
	if err := c.Bind(&tm); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse testimonial", nil)
	}
	if strings.TrimSpace(tm.Name) == "" || strings.TrimSpace(tm.Quote) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name and quote are required", nil)
	}
	if tm.Rating < 0 || tm.Rating > 5 {
		return fail(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 0 and 5", nil)
	}
	tm.ID = common.UUIDint64()
	tm.IsActive = true
	tm.CreatedAt = time.Now()
	tm.UpdatedAt = time.Now()
	if err := GetDB(c).Create(&tm).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create testimonial", err.Error())
	}
	logOpr(c, "create_testimonial", tm.Name)
	return ok(c, tm)
}

func deleteTestimonial(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid testimonial ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Testimonial{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete testimonial", err.Error())
	}
	logOpr(c, "delete_testimonial", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}
