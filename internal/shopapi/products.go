package shopapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// listProducts is the buyer-facing catalog. Hidden products are filtered at
// the query level; every returned row carries its visibility label.
func listProducts(c echo.Context) error {
	q := catalog.ListingQuery{
		CategoryCode: c.QueryParam("category"),
		Search:       c.QueryParam("search"),
		Sort:         c.QueryParam("sort"),
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", 0),
	}

	listing, err := catalog.ListProducts(GetDB(c), q, time.Now())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", nil)
	}
	return ok(c, listing)
}

func listCategories(c echo.Context) error {
	var categories []domain.Category
	if err := GetDB(c).Order("sort ASC").Find(&categories).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", nil)
	}
	return ok(c, categories)
}
