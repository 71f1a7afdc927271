package adminapi

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestOprLogEntry(t *testing.T) {
	c := qt.New(t)

	entry := oprLogEntry("admin", "10.0.0.7", "update_product", "Rashi Grade Arecanut")
	c.Assert(entry.OprName, qt.Equals, "admin")
	c.Assert(entry.OprIp, qt.Equals, "10.0.0.7")
	c.Assert(entry.OptAction, qt.Equals, "update_product")
	c.Assert(entry.OptDesc, qt.Equals, "Rashi Grade Arecanut")
	c.Assert(entry.ID > 0, qt.IsTrue)
	c.Assert(entry.OptTime.IsZero(), qt.IsFalse)

	// Entries get distinct ids.
	other := oprLogEntry("admin", "10.0.0.7", "update_product", "again")
	c.Assert(other.ID == entry.ID, qt.IsFalse)
}
