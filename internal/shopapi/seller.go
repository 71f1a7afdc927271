package shopapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

// currentSeller resolves the seller profile of the authenticated account.
func currentSeller(c echo.Context) (*domain.Seller, error) {
	uid := webserver.CurrentUserID(c)
	if uid == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var seller domain.Seller
	err := GetDB(c).Where("user_id = ?", uid).First(&seller).Error
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

type sellerProductView struct {
	domain.Product
	Visibility catalog.VisibilityState `json:"visibility"`
}

// listSellerProducts returns the seller's own products, including hidden
// ones, labeled with their computed state.
func listSellerProducts(c echo.Context) error {
	seller, err := currentSeller(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller profile not found", nil)
	}

	var products []domain.Product
	if err := GetDB(c).Where("seller_id = ?", seller.ID).Order("updated_at DESC").Find(&products).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query products", nil)
	}

	now := time.Now()
	views := make([]sellerProductView, 0, len(products))
	for i := range products {
		views = append(views, sellerProductView{
			Product:    products[i],
			Visibility: catalog.Evaluate(&products[i], seller, now),
		})
	}
	return ok(c, views)
}

type sellerProductPayload struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	CategoryID  *int64   `json:"category_id,string"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Subtype     *string  `json:"subtype"`
	Badge       *string  `json:"badge"`
	StockQty    *int     `json:"stock_qty"`
	IsActive    *bool    `json:"is_active"`
}

func createSellerProduct(c echo.Context) error {
	seller, err := currentSeller(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller profile not found", nil)
	}

	var payload sellerProductPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	if payload.Name == nil || strings.TrimSpace(*payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Name is required", nil)
	}
	if payload.Price == nil || *payload.Price <= 0 {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Price must be > 0", nil)
	}
	if payload.CategoryID == nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Category is required", nil)
	}
	stock := 0
	if payload.StockQty != nil {
		if *payload.StockQty < 0 {
			return fail(c, http.StatusBadRequest, "INVALID_STOCK", "Stock quantity must be >= 0", nil)
		}
		stock = *payload.StockQty
	}

	var cat domain.Category
	if err := GetDB(c).Where("id = ?", *payload.CategoryID).First(&cat).Error; err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown category", nil)
	}

	now := time.Now()
	p := domain.Product{
		ID:         common.UUIDint64(),
		SellerID:   seller.ID,
		CategoryID: cat.ID,
		Name:       strings.TrimSpace(*payload.Name),
		Price:      *payload.Price,
		StockQty:   stock,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
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
	}

	if err := GetDB(c).Create(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create product", err.Error())
	}
	return ok(c, p)
}

var (
	errAdminDeactivated = errors.New("product is deactivated by an admin")
	errInvalidStock     = errors.New("stock quantity must be >= 0")
	errMissingName      = errors.New("Name is required")
	errInvalidPrice     = errors.New("Price must be > 0")
)

// applySellerUpdate validates and applies a seller's edit to its own
// product. The one rule that must hold: while the admin override is set,
// the product cannot be flipped back to active, and the validation failure
// leaves the product untouched.
func applySellerUpdate(p *domain.Product, payload sellerProductPayload) error {
	if payload.IsActive != nil && *payload.IsActive && p.AdminDeactivated {
		return errAdminDeactivated
	}
	if payload.StockQty != nil && *payload.StockQty < 0 {
		return errInvalidStock
	}
	if payload.Name != nil && strings.TrimSpace(*payload.Name) == "" {
		return errMissingName
	}
	if payload.Price != nil && *payload.Price <= 0 {
		return errInvalidPrice
	}

	if payload.Name != nil {
		p.Name = strings.TrimSpace(*payload.Name)
	}
	if payload.Price != nil {
		p.Price = *payload.Price
	}
	if payload.CategoryID != nil {
		p.CategoryID = *payload.CategoryID
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
	if payload.StockQty != nil {
		p.StockQty = *payload.StockQty
	}
	if payload.IsActive != nil {
		p.IsActive = *payload.IsActive
	}
	p.UpdatedAt = time.Now()
	return nil
}

// updateSellerProduct lets a seller edit its own product.
func updateSellerProduct(c echo.Context) error {
	seller, err := currentSeller(c)
	if err != nil {
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller profile not found", nil)
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
	}

	var p domain.Product
	if err := GetDB(c).Where("id = ? AND seller_id = ?", id, seller.ID).First(&p).Error; err != nil {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}

	var payload sellerProductPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}

	if err := applySellerUpdate(&p, payload); err != nil {
		switch err {
		case errAdminDeactivated:
			return fail(c, http.StatusForbidden, "ADMIN_DEACTIVATED",
				"This product has been deactivated by an admin and cannot be reactivated by the seller.", nil)
		case errInvalidStock:
			return fail(c, http.StatusBadRequest, "INVALID_STOCK", "Stock quantity must be >= 0", nil)
		default:
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
		}
	}

	if err := GetDB(c).Save(&p).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to update product", err.Error())
	}
	return ok(c, sellerProductView{
		Product:    p,
		Visibility: catalog.Evaluate(&p, seller, time.Now()),
	})
}
