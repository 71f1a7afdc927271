package common_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/pkg/common"
)

func TestUUIDint64(t *testing.T) {
	c := qt.New(t)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		id := common.UUIDint64()
		c.Assert(id > 0, qt.IsTrue)
		c.Assert(seen[id], qt.IsFalse)
		seen[id] = true
	}
}

func TestSha256HashWithSalt(t *testing.T) {
	c := qt.New(t)

	h := common.Sha256HashWithSalt("arecamart", "salt1")
	c.Assert(h, qt.HasLen, 64)
	c.Assert(common.Sha256HashWithSalt("arecamart", "salt1"), qt.Equals, h)
	c.Assert(common.Sha256HashWithSalt("arecamart", "salt2"), qt.Not(qt.Equals), h)
	c.Assert(common.Sha256HashWithSalt("other", "salt1"), qt.Not(qt.Equals), h)
}
