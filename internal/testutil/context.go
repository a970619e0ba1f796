package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that walk a full quiz session.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test finishes. Its deadline
// stays inside the test binary's own -timeout budget so a hung session fails
// the single test instead of the whole run.
func Context(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		headroom := time.Until(deadline) - time.Second
		if headroom > 0 && headroom < timeout {
			timeout = headroom
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
