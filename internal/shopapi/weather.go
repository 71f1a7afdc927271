package shopapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
)

func getWeather(c echo.Context) error {
	client := webserver.GetApp(c).Weather()

	if c.QueryParam("list") == "1" {
		return ok(c, client.Districts())
	}

	report, err := client.Fetch(c.QueryParam("district"))
	if err != nil {
		return fail(c, http.StatusBadGateway, "WEATHER_UNAVAILABLE", "Weather service unavailable", nil)
	}
	return ok(c, report)
}
