package adminapi

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestParseMetricRange(t *testing.T) {
	c := qt.New(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Run("defaults to the last hour", func(c *qt.C) {
		start, end := parseMetricRange("", "", now)
		c.Assert(end, qt.Equals, now.Unix())
		c.Assert(start, qt.Equals, now.Unix()-3600)
	})

	c.Run("explicit window", func(c *qt.C) {
		start, end := parseMetricRange("1000", "2000", now)
		c.Assert(start, qt.Equals, int64(1000))
		c.Assert(end, qt.Equals, int64(2000))
	})

	c.Run("start at or after end is ignored", func(c *qt.C) {
		start, end := parseMetricRange("2000", "2000", now)
		c.Assert(end, qt.Equals, int64(2000))
		c.Assert(start, qt.Equals, int64(2000-3600))
	})

	c.Run("garbage params fall back", func(c *qt.C) {
		start, end := parseMetricRange("abc", "-5", now)
		c.Assert(end, qt.Equals, now.Unix())
		c.Assert(start, qt.Equals, now.Unix()-3600)
	})
}
