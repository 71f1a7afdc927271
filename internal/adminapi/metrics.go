package adminapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sagar1314-oops/ArecaMart/internal/webserver"
	"github.com/sagar1314-oops/ArecaMart/pkg/metrics"
)

func registerMetricsRoutes() {
	webserver.AdminGET("/metrics/:name", getMetric)
}

const defaultMetricWindow = time.Hour

// parseMetricRange reads the start/end query params (unix seconds),
// defaulting to the last hour ending now.
func parseMetricRange(startParam, endParam string, now time.Time) (int64, int64) {
	end := now.Unix()
	if v, err := strconv.ParseInt(endParam, 10, 64); err == nil && v > 0 {
		end = v
	}
	start := end - int64(defaultMetricWindow/time.Second)
	if v, err := strconv.ParseInt(startParam, 10, 64); err == nil && v > 0 && v < end {
		start = v
	}
	return start, end
}

// getMetric returns the gauge points collected by the monitor jobs, for the
// dashboard charts.
func getMetric(c echo.Context) error {
	start, end := parseMetricRange(c.QueryParam("start"), c.QueryParam("end"), time.Now())
	points, err := metrics.Select(c.Param("name"), start, end)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "METRICS_ERROR", "Failed to query metric", err.Error())
	}
	return ok(c, map[string]interface{}{
		"metric": c.Param("name"),
		"start":  start,
		"end":    end,
		"points": points,
	})
}
