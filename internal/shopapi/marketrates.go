package shopapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/montanaflynn/stats"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

// rateSummary aggregates modal prices over the returned window.
type rateSummary struct {
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	StdDev  float64 `json:"std_dev"`
	Samples int     `json:"samples"`
}

// listMarketRates returns daily arecanut quotes, optionally filtered by
// variety and market, for the last N days (default 30), plus a price
// summary over the same window.
func listMarketRates(c echo.Context) error {
	days := queryInt(c, "days", 30)
	if days < 1 || days > 365 {
		days = 30
	}

	q := GetDB(c).Model(&domain.MarketRate{}).
		Where("recorded_on >= ?", time.Now().AddDate(0, 0, -days))
	if variety := c.QueryParam("variety"); variety != "" {
		q = q.Where("variety = ?", variety)
	}
	if market := c.QueryParam("market"); market != "" {
		q = q.Where("market = ?", market)
	}

	var rates []domain.MarketRate
	if err := q.Order("recorded_on DESC").Find(&rates).Error; err != nil {
		return fail(c, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query market rates", nil)
	}

	return ok(c, map[string]interface{}{
		"rates":   rates,
		"summary": summarizeRates(rates),
	})
}

func summarizeRates(rates []domain.MarketRate) rateSummary {
	if len(rates) == 0 {
		return rateSummary{}
	}
	prices := make(stats.Float64Data, 0, len(rates))
	for _, r := range rates {
		prices = append(prices, r.PriceModal)
	}
	avg, _ := prices.Mean()
	min, _ := prices.Min()
	max, _ := prices.Max()
	sd, _ := prices.StandardDeviation()
	return rateSummary{
		Average: avg,
		Min:     min,
		Max:     max,
		StdDev:  sd,
		Samples: len(rates),
	}
}
