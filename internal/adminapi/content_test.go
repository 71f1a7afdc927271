package adminapi

import (
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestSlugify(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		in   string
		want string
	}{
		{"Arecanut Price Outlook 2026", "arecanut-price-outlook-2026"},
		{"  Drying & Grading: a primer  ", "drying-grading-a-primer"},
		{"already-a-slug", "already-a-slug"},
		{"Trailing punctuation!!!", "trailing-punctuation"},
		{"", ""},
	}
	for _, tt := range tests {
		c.Assert(slugify(tt.in), qt.Equals, tt.want, qt.Commentf("input %q", tt.in))
	}
}

func TestEstimateReadMinutes(t *testing.T) {
	c := qt.New(t)

	c.Assert(estimateReadMinutes(""), qt.Equals, 1)
	c.Assert(estimateReadMinutes("a short note"), qt.Equals, 1)
	c.Assert(estimateReadMinutes(strings.Repeat("word ", 200)), qt.Equals, 1)
	c.Assert(estimateReadMinutes(strings.Repeat("word ", 201)), qt.Equals, 2)
	c.Assert(estimateReadMinutes(strings.Repeat("word ", 1000)), qt.Equals, 5)
}
