package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

type adminProductPayload struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id,string"`
	SellerID    *int64   `json:"seller_id,string"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Subtype     *string  `json:"subtype"`
	Badge       *string  `json:"badge"`
	StockQty    *int     `json:"stock_qty"`
	IsActive    *bool    `json:"is_active"`
	ForceHide   *bool    `json:"force_hide"`
}

// adminProductRow is a raw grid row: not visibility-filtered, but labeled
// with the computed state so the dashboard can show why a product is hidden.
type adminProductRow struct {
	domain.Product          `gorm:"embedded"`
	CategoryName            string                  `json:"category_name"`
	SellerName              string                  `json:"seller_name"`
	SellerActive            bool                    `json:"seller_active"`
	SellerSubscriptionEndAt *time.Time              `json:"seller_subscription_end_at"`
	Visibility              catalog.VisibilityState `json:"visibility" gorm:"-"`
}

// registerProductRoutes registers the admin product grid endpoints
func registerProductRoutes() {
	webserver.AdminGET("/products", listProducts)
	webserver.AdminGET("/products/export", exportProducts)
	webserver.AdminGET("/products/:id", getProduct)
	webserver.AdminPATCH("/products/:id", updateProduct)
	webserver.AdminDELETE("/products/:id", deleteProduct)
}

func adminProductQuery(c echo.Context) *gorm.DB {
	db := GetDB(c).Table("products").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN sellers ON sellers.id = products.seller_id")

	if q := strings.TrimSpace(c.QueryParam("q")); q != "" {
		if strings.EqualFold(GetDB(c).Name(), "postgres") {
			db = db.Where("products.name ILIKE ?", "%"+q+"%")
		} else {
			db = db.Where("LOWER(products.name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	}
	if sellerID := strings.TrimSpace(c.QueryParam("seller_id")); sellerID != "" {
		db = db.Where("products.seller_id = ?", sellerID)
	}
	return db
}

func scanProductRows(db *gorm.DB, order string, offset, limit int) ([]adminProductRow, error) {
	var rows []adminProductRow
	q := db.Select("products.*, categories.name AS category_name, " +
		"sellers.name AS seller_name, sellers.is_active AS seller_active, " +
		"sellers.subscription_end_at AS seller_subscription_end_at").
		Order(order)
	if limit > 0 {
		q = q.Offset(offset).Limit(limit)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range rows {
		seller := &domain.Seller{
			ID:                rows[i].Product.SellerID,
			IsActive:          rows[i].SellerActive,
			SubscriptionEndAt: rows[i].SellerSubscriptionEndAt,
		}
		rows[i].Visibility = catalog.Evaluate(&rows[i].Product, seller, now)
	}
	return rows, nil
}

func listProducts(c echo.Context) error {
	page, pageSize := parsePagination(c)

	// whitelist allowed sort columns to avoid SQL injection
	allowed := map[string]string{
		"id":         "products.id",
		"name":       "products.name",
		"price":      "products.price",
		"stock_qty":  "products.stock_qty",
		"sold_count": "products.sold_count",
		"created_at": "products.created_at",
		"updated_at": "products.updated_at",
	}
	sortCol, okCol := allowed[strings.TrimSpace(c.QueryParam("sort"))]
	if !okCol {
		sortCol = "products.id"
	}
	order := strings.ToUpper(strings.TrimSpace(c.QueryParam("order")))
	if order != "ASC" && order != "DESC" {
		order = "DESC"
	}

	base := adminProductQuery(c)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	rows, err := scanProductRows(base, sortCol+" "+order, (page-1)*pageSize, pageSize)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	return paged(c, rows, total, page, pageSize)
}

type productCsvRow struct {
	ID         int64   `csv:"id"`
	Name       string  `csv:"name"`
	Seller     string  `csv:"seller"`
	Category   string  `csv:"category"`
	Price      float64 `csv:"price"`
	StockQty   int     `csv:"stock_qty"`
	SoldCount  int64   `csv:"sold_count"`
	Visibility string  `csv:"visibility"`
}

func exportProducts(c echo.Context) error {
	rows, err := scanProductRows(adminProductQuery(c), "products.id DESC", 0, 0)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", err.Error())
	}

	out := make([]productCsvRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, productCsvRow{
			ID:         r.Product.ID,
			Name:       r.Product.Name,
			Seller:     r.SellerName,
			Category:   r.CategoryName,
			Price:      r.Product.Price,
			StockQty:   r.Product.StockQty,
			SoldCount:  r.Product.SoldCount,
			Visibility: string(r.Visibility),
		})
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	return gocsv.Marshal(out, c.Response())
}

func getProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	rows, err := scanProductRows(adminProductQuery(c).Where("products.id = ?", id), "products.id", 0, 1)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query product", err.Error())
	}
	if len(rows) == 0 {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, rows[0])
}

// updateProduct is the admin mutation entry point. Re-enabling a product
// clears the admin override; force_hide sets the override and hides the
// product in the same write.
func updateProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	var p domain.Product
	if err := GetDB(c).Where("id = ?", id).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload adminProductPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		if name == "" {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
		}
		p.Name = name
	}
	if payload.Price != nil {
		if *payload.Price < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must be >= 0", nil)
		}
		p.Price = *payload.Price
	}
	if payload.StockQty != nil {
		if *payload.StockQty < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Stock quantity must be >= 0", nil)
		}
		p.StockQty = *payload.StockQty
	}
	if payload.CategoryID != nil {
		p.CategoryID = *payload.CategoryID
	}
	if payload.SellerID != nil {
		p.SellerID = *payload.SellerID
	}
	if payload.Description != nil {
		p.Description = *payload.Description
	}
	if payload.ImageURL != nil {
		p.ImageURL = strings.TrimSpace(*payload.ImageURL)
	}
	if payload.Subtype != nil {
		p.Subtype = *payload.Subtype
	}
	if payload.Badge != nil {
		p.Badge = *payload.Badge
	}
	if payload.IsActive != nil {
		p.IsActive = *payload.IsActive
		if *payload.IsActive {
			// admin re-enable clears the override
			p.AdminDeactivated = false
		}
	}
	if payload.ForceHide != nil && *payload.ForceHide {
		p.IsActive = false
		p.AdminDeactivated = true
	}
	p.UpdatedAt = time.Now()

	if err := GetDB(c).Save(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	logOpr(c, "update_product", p.Name)
	return ok(c, p)
}

func deleteProduct(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Product{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete product", err.Error())
	}
	logOpr(c, "delete_product", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}
