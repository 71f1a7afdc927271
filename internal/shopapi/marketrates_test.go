package shopapi

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/internal/domain"
)

func TestSummarizeRates(t *testing.T) {
	c := qt.New(t)

	c.Run("empty window", func(c *qt.C) {
		c.Assert(summarizeRates(nil), qt.Equals, rateSummary{})
	})

	c.Run("single quote", func(c *qt.C) {
		got := summarizeRates([]domain.MarketRate{
			{Variety: "rashi", Market: "Shivamogga", PriceModal: 52000},
		})
		c.Assert(got, qt.Equals, rateSummary{
			Average: 52000, Min: 52000, Max: 52000, StdDev: 0, Samples: 1,
		})
	})

	c.Run("spread over a week", func(c *qt.C) {
		day := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		rates := []domain.MarketRate{
			{PriceModal: 50000, RecordedOn: day},
			{PriceModal: 51000, RecordedOn: day.AddDate(0, 0, 1)},
			{PriceModal: 52000, RecordedOn: day.AddDate(0, 0, 2)},
			{PriceModal: 53000, RecordedOn: day.AddDate(0, 0, 3)},
		}
		got := summarizeRates(rates)
		c.Assert(got.Samples, qt.Equals, 4)
		c.Assert(got.Average, qt.Equals, 51500.0)
		c.Assert(got.Min, qt.Equals, 50000.0)
		c.Assert(got.Max, qt.Equals, 53000.0)
		c.Assert(got.StdDev > 0, qt.IsTrue)
	})
}
