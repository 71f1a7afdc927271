package adminapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/subscription"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func registerSellerRoutes() {
	webserver.AdminGET("/sellers", listSellers)
	webserver.AdminGET("/sellers/:id", getSeller)
	webserver.AdminPOST("/sellers", createSeller)
	webserver.AdminPATCH("/sellers/:id", updateSeller)
	webserver.AdminDELETE("/sellers/:id", deleteSeller)
	webserver.AdminPOST("/subscription/sweep", runSubscriptionSweep)
}

// adminSellerRow carries per-state product counts for the dashboard. The
// CASE buckets mirror the visibility evaluator: in-stock and low-stock are
// the purchasable states; oos covers out-of-stock plus every hidden state.
type adminSellerRow struct {
	domain.Seller    `gorm:"embedded"`
	TotalProducts    int64 `json:"total_products"`
	InStockProducts  int64 `json:"in_stock_products"`
	LowStockProducts int64 `json:"low_stock_products"`
	OosProducts      int64 `json:"oos_products"`
}

func listSellers(c echo.Context) error {
	now := time.Now()
	var rows []adminSellerRow
	err := GetDB(c).Raw(`
SELECT s.*,
       COUNT(p.id) AS total_products,
       SUM(CASE WHEN p.id IS NOT NULL
                 AND p.is_active AND s.is_active
                 AND (s.subscription_end_at IS NULL OR s.subscription_end_at >= ?)
                 AND p.stock_qty > 10
            THEN 1 ELSE 0 END) AS in_stock_products,
       SUM(CASE WHEN p.id IS NOT NULL
                 AND p.is_active AND s.is_active
                 AND (s.subscription_end_at IS NULL OR s.subscription_end_at >= ?)
                 AND p.stock_qty > 0 AND p.stock_qty <= 10
            THEN 1 ELSE 0 END) AS low_stock_products,
       SUM(CASE WHEN p.id IS NOT NULL
                 AND (p.stock_qty <= 0
                  OR NOT p.is_active
                  OR NOT s.is_active
                  OR (s.subscription_end_at IS NOT NULL AND s.subscription_end_at < ?))
            THEN 1 ELSE 0 END) AS oos_products
FROM sellers s
LEFT JOIN products p ON p.seller_id = s.id
GROUP BY s.id
ORDER BY s.id DESC`, now, now, now).Scan(&rows).Error
	if err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query sellers", err.Error())
	}
	return ok(c, rows)
}

func getSeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid seller ID", nil)
	}
	var s domain.Seller
	if err := GetDB(c).Where("id = ?", id).First(&s).Error; err != nil {
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller not found", nil)
	}
	return ok(c, s)
}

type sellerPayload struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
	Region string `json:"region"`
	Plan   string `json:"plan"`
	UserID int64  `json:"user_id,string"`
}

func createSeller(c echo.Context) error {
	var payload sellerPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse seller parameters", nil)
	}
	if strings.TrimSpace(payload.Name) == "" {
		return fail(c, http.StatusBadRequest, "MISSING_NAME", "Seller name is required", nil)
	}
	if payload.Plan == "" {
		payload.Plan = domain.PlanTrial
	}
	days := domain.PlanDurationDays(payload.Plan)
	if days == 0 {
		return fail(c, http.StatusBadRequest, "INVALID_PLAN", "Unknown subscription plan", payload.Plan)
	}
	if payload.Plan == domain.PlanTrial {
		if d := webserver.GetApp(c).ConfigMgr().GetInt("marketplace", "TrialDays"); d > 0 {
			days = d
		}
	}
	// ensure phone uniqueness
	if payload.Phone != "" {
		var dup domain.Seller
		if err := GetDB(c).Where("phone = ?", payload.Phone).First(&dup).Error; err == nil {
			return fail(c, http.StatusConflict, "DUPLICATE_SELLER", "Seller with this phone already exists", nil)
		}
	}

	end := time.Now().AddDate(0, 0, days)
	s := domain.Seller{
		ID:                common.UUIDint64(),
		UserID:            payload.UserID,
		Name:              strings.TrimSpace(payload.Name),
		Phone:             payload.Phone,
		Email:             payload.Email,
		Region:            payload.Region,
		Plan:              payload.Plan,
		IsActive:          true,
		SubscriptionEndAt: &end,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := GetDB(c).Create(&s).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create seller", err.Error())
	}
	logOpr(c, "create_seller", s.Name)
	return ok(c, s)
}

type sellerUpdatePayload struct {
	IsActive          *bool  `json:"is_active"`
	SubscriptionEndAt string `json:"subscription_end_at"`
}

// updateSeller routes activation, deactivation and renewal through the
// lifecycle service so the product cascade stays atomic. Renewal takes
// precedence: it always reactivates.
func updateSeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid seller ID", nil)
	}
	var payload sellerUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse seller parameters", nil)
	}

	svc := webserver.GetApp(c).Subscriptions()
	ctx := c.Request().Context()

	if payload.SubscriptionEndAt != "" {
		newEnd, perr := dateparse.ParseAny(payload.SubscriptionEndAt)
		if perr != nil {
			return fail(c, http.StatusBadRequest, "INVALID_DATE", "Unable to parse subscription end date", perr.Error())
		}
		if err := svc.RenewSubscription(ctx, id, newEnd); err != nil {
			return failLifecycle(c, err)
		}
	} else if payload.IsActive != nil {
		if *payload.IsActive {
			err = svc.ActivateSeller(ctx, id)
		} else {
			err = svc.DeactivateSeller(ctx, id)
		}
		if err != nil {
			return failLifecycle(c, err)
		}
	}

	var s domain.Seller
	if err := GetDB(c).Where("id = ?", id).First(&s).Error; err != nil {
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller not found", nil)
	}
	logOpr(c, "update_seller", s.Name)
	return ok(c, s)
}

func failLifecycle(c echo.Context, err error) error {
	switch {
	case errors.Is(err, subscription.ErrSellerNotFound):
		return fail(c, http.StatusNotFound, "SELLER_NOT_FOUND", "Seller not found", nil)
	case errors.Is(err, subscription.ErrInvalidRenewal):
		return fail(c, http.StatusBadRequest, "INVALID_DATE", "Renewal end date must be in the future", nil)
	default:
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Seller update failed", err.Error())
	}
}

func deleteSeller(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid seller ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Seller{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete seller", err.Error())
	}
	logOpr(c, "delete_seller", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}

func runSubscriptionSweep(c echo.Context) error {
	result, err := webserver.GetApp(c).RunExpireSweepNow(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "SWEEP_FAILED", "Subscription sweep failed", err.Error())
	}
	logOpr(c, "subscription_sweep", fmt.Sprintf("deactivated=%d warned=%d", result.Deactivated, result.Warned))
	return ok(c, result)
}
