package adminapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetDB(c)
}

func oprLogEntry(username, ip, action, desc string) domain.SysOprLog {
	return domain.SysOprLog{
		ID:        common.UUIDint64(),
		OprName:   username,
		OprIp:     ip,
		OptAction: action,
		OptDesc:   desc,
		OptTime:   time.Now(),
	}
}

// logOpr records an admin mutation in the operator log. Failures are
// ignored; the log must never block the mutation it describes.
func logOpr(c echo.Context, action, desc string) {
	username := ""
	if claims := webserver.CurrentClaims(c); claims != nil {
		username = claims.Username
	}
	entry := oprLogEntry(username, c.RealIP(), action, desc)
	GetDB(c).Create(&entry)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"success": false,
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}

func paged(c echo.Context, rows interface{}, total int64, page, pageSize int) error {
	totalPages := total / int64(pageSize)
	if total%int64(pageSize) != 0 {
		totalPages++
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    rows,
		"pagination": map[string]interface{}{
			"page":       page,
			"limit":      pageSize,
			"total":      total,
			"totalPages": totalPages,
		},
	})
}

func parsePagination(c echo.Context) (page, pageSize int) {
	page = 1
	pageSize = 20
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && ps > 0 && ps <= 500 {
		pageSize = ps
	}
	return page, pageSize
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
