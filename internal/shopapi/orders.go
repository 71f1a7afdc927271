package shopapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/catalog"
	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/notify"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

type orderItemPayload struct {
	ProductID int64 `json:"product_id,string"`
	Quantity  int   `json:"quantity"`
}

type orderPayload struct {
	Items []orderItemPayload `json:"items"`
}

// createOrder is the mock checkout: payment always succeeds. Each item must
// be purchasable per the visibility evaluator at order time; prices are
// taken from the catalog, not the client.
func createOrder(c echo.Context) error {
	uid := webserver.CurrentUserID(c)
	if uid == 0 {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required", nil)
	}

	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}
	if len(payload.Items) == 0 {
		return fail(c, http.StatusBadRequest, "EMPTY_CART", "Cart is empty", nil)
	}
	for _, item := range payload.Items {
		if item.Quantity <= 0 {
			return fail(c, http.StatusBadRequest, "INVALID_QUANTITY", "Item quantity must be > 0", nil)
		}
	}

	now := time.Now()
	var order domain.Order
	var items []domain.OrderItem

	err := GetDB(c).Transaction(func(tx *gorm.DB) error {
		total := 0.0
		items = items[:0]
		for _, item := range payload.Items {
			var p domain.Product
			if err := tx.Where("id = ?", item.ProductID).First(&p).Error; err != nil {
				return echo.NewHTTPError(http.StatusNotFound, "product not found")
			}
			var seller *domain.Seller
			var s domain.Seller
			if err := tx.Where("id = ?", p.SellerID).First(&s).Error; err == nil {
				seller = &s
			}
			if !catalog.Evaluate(&p, seller, now).Purchasable() {
				return echo.NewHTTPError(http.StatusConflict, "product is not available for purchase: "+p.Name)
			}

			items = append(items, domain.OrderItem{
				ID:        common.UUIDint64(),
				ProductID: p.ID,
				Name:      p.Name,
				Quantity:  item.Quantity,
				UnitPrice: p.Price,
			})
			total += p.Price * float64(item.Quantity)

			if err := tx.Model(&domain.Product{}).Where("id = ?", p.ID).
				Update("sold_count", gorm.Expr("sold_count + ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		var userOrderCount int64
		if err := tx.Model(&domain.Order{}).Where("user_id = ?", uid).Count(&userOrderCount).Error; err != nil {
			return err
		}

		order = domain.Order{
			ID:              common.UUIDint64(),
			UserID:          uid,
			UserOrderNumber: int(userOrderCount) + 1,
			RefCode:         random.String(10, random.Uppercase, random.Numeric),
			TotalAmount:     total,
			Status:          domain.OrderStatusPaid,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		if httpErr, okErr := err.(*echo.HTTPError); okErr {
			return fail(c, httpErr.Code, "ORDER_REJECTED", httpErr.Message.(string), nil)
		}
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create order", nil)
	}

	var opr domain.SysOpr
	phone := ""
	if err := GetDB(c).Where("id = ?", uid).First(&opr).Error; err == nil {
		phone = opr.Mobile
	}
	webserver.GetApp(c).Notifier().OrderPlaced(notify.OrderEvent{
		Order: order,
		Phone: phone,
		Items: items,
	})

	return ok(c, map[string]interface{}{
		"order_id":          order.ID,
		"ref_code":          order.RefCode,
		"user_order_number": order.UserOrderNumber,
		"total_amount":      order.TotalAmount,
	})
}

// listUserOrders returns the caller's order history, newest first.
func listUserOrders(c echo.Context) error {
	uid := webserver.CurrentUserID(c)
	if uid == 0 {
		return fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Login required", nil)
	}

	var orders []domain.Order
	if err := GetDB(c).Where("user_id = ?", uid).Order("id DESC").Find(&orders).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders", nil)
	}
	return ok(c, orders)
}

func getUserOrder(c echo.Context) error {
	uid := webserver.CurrentUserID(c)
	id, err := parseID(c.Param("id"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID", nil)
	}

	var order domain.Order
	if err := GetDB(c).Where("id = ? AND user_id = ?", id, uid).First(&order).Error; err != nil {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	}
	var items []domain.OrderItem
	if err := GetDB(c).Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query order items", nil)
	}
	return ok(c, map[string]interface{}{
		"order": order,
		"items": items,
	})
}
