package metrics_test

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/pkg/metrics"
)

func TestGaugeRoundTrip(t *testing.T) {
	c := qt.New(t)

	c.Assert(metrics.InitMetrics(t.TempDir()), qt.IsNil)
	defer func() { c.Assert(metrics.Close(), qt.IsNil) }()

	now := time.Now().Unix()
	metrics.SetGauge("arecamart_cpuuse", 4200)

	points, err := metrics.Select("arecamart_cpuuse", now-60, now+60)
	c.Assert(err, qt.IsNil)
	c.Assert(len(points) >= 1, qt.IsTrue)
	c.Assert(points[len(points)-1].Value, qt.Equals, 4200.0)

	// An unknown metric is empty, not an error.
	points, err = metrics.Select("no_such_metric", now-60, now+60)
	c.Assert(err, qt.IsNil)
	c.Assert(points, qt.HasLen, 0)
}

func TestSelectWithoutStore(t *testing.T) {
	c := qt.New(t)
	points, err := metrics.Select("anything", 0, time.Now().Unix())
	c.Assert(err, qt.IsNil)
	c.Assert(points, qt.HasLen, 0)
}
