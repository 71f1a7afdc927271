package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

func registerOrderRoutes() {
	webserver.AdminGET("/orders", listOrders)
	webserver.AdminGET("/orders/:id", getOrder)
}

func listOrders(c echo.Context) error {
	page, pageSize := parsePagination(c)

	base := GetDB(c).Model(&domain.Order{})
	if status := c.QueryParam("status"); status != "" {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders", err.Error())
	}

	var orders []domain.Order
	if err := base.Order("id DESC").Offset((page-1)*pageSize).Limit(pageSize).Find(&orders).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query orders", err.Error())
	}
	return paged(c, orders, total, page, pageSize)
}

func getOrder(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid order ID", nil)
	}
	var order domain.Order
	if err := GetDB(c).Where("id = ?", id).First(&order).Error; err != nil {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	}
	var items []domain.OrderItem
	if err := GetDB(c).Where("order_id = ?", id).Find(&items).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query order items", err.Error())
	}
	return ok(c, map[string]interface{}{
		"order": order,
		"items": items,
	})
}
