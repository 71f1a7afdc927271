package app

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/sagar1314-oops/ArecaMart/internal/notify"
)

func TestLifecycleNotifierNilPointer(t *testing.T) {
	c := qt.New(t)

	// A failed notifier init must yield a nil interface, not a typed nil
	// that would slip past the sweep's != nil check.
	c.Assert(lifecycleNotifier(nil) == nil, qt.IsTrue)

	var broken *notify.Notifier
	c.Assert(lifecycleNotifier(broken) == nil, qt.IsTrue)

	n := &notify.Notifier{}
	c.Assert(lifecycleNotifier(n) == nil, qt.IsFalse)
}
