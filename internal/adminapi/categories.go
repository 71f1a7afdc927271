package adminapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func registerCategoryRoutes() {
	webserver.AdminGET("/categories", listCategories)
	webserver.AdminPOST("/categories", createCategory)
	webserver.AdminDELETE("/categories/:id", deleteCategory)
}

func listCategories(c echo.Context) error {
	var categories []domain.Category
	if err := GetDB(c).Order("sort ASC").Find(&categories).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query categories", err.Error())
	}
	return ok(c, categories)
}

type categoryPayload struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Sort int    `json:"sort"`
}

func createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category", nil)
	}
	payload.Code = strings.TrimSpace(payload.Code)
	payload.Name = strings.TrimSpace(payload.Name)
	if payload.Code == "" || payload.Name == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Code and name are required", nil)
	}

	var dup domain.Category
	if err := GetDB(c).Where("code = ?", payload.Code).First(&dup).Error; err == nil {
		return fail(c, http.StatusConflict, "DUPLICATE_CATEGORY", "Category code already exists", nil)
	}

	cat := domain.Category{
		ID:        common.UUIDint64(),
		Code:      payload.Code,
		Name:      payload.Name,
		Sort:      payload.Sort,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := GetDB(c).Create(&cat).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to create category", err.Error())
	}
	logOpr(c, "create_category", cat.Code)
	return ok(c, cat)
}

func deleteCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid category ID", nil)
	}
	if err := GetDB(c).Where("id = ?", id).Delete(&domain.Category{}).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to delete category", err.Error())
	}
	logOpr(c, "delete_category", c.Param("id"))
	return ok(c, map[string]interface{}{"id": id})
}
