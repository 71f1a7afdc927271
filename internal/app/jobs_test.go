package app

import (
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
)

func TestSweepCronSpec(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		name string
		hour int64
		want string
	}{
		{"configured hour", 5, "0 5 * * *"},
		{"last hour of day", 23, "0 23 * * *"},
		{"unset setting falls back", 0, "0 2 * * *"},
		{"negative falls back", -1, "0 2 * * *"},
		{"out of range falls back", 24, "0 2 * * *"},
	}
	for _, tt := range tests {
		tt := tt
		c.Run(tt.name, func(c *qt.C) {
			spec := sweepCronSpec(tt.hour)
			c.Assert(spec, qt.Equals, tt.want)
			_, err := cronParser.Parse(spec)
			c.Assert(err, qt.IsNil)
		})
	}
}

func TestOprlogRetention(t *testing.T) {
	c := qt.New(t)

	c.Assert(oprlogRetention(30), qt.Equals, 30*24*time.Hour)
	c.Assert(oprlogRetention(0), qt.Equals, 365*24*time.Hour)
	c.Assert(oprlogRetention(-7), qt.Equals, 365*24*time.Hour)
}
