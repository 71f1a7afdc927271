package shopapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

func GetDB(c echo.Context) *gorm.DB {
	return webserver.GetDB(c)
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

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func queryInt(c echo.Context, name string, def int) int {
	if v, err := strconv.Atoi(c.QueryParam(name)); err == nil {
		return v
	}
	return def
}
