package scraper

import (
	"context"
	"time"
)

// Browser hands out sessions. One session per logical operation, never shared.
type Browser interface {
	NewSession(ctx context.Context) (Session, error)
}

// Session is one browser-automation handle. Implementations must make Close
// safe to call exactly once per session and must release the underlying
// browser resources on every exit path.
type Session interface {
	// Navigate loads the URL. Fails with *NavigationError on timeout or
	// unreachable host.
	Navigate(ctx context.Context, url string) error

	// WaitFor polls until the selector is present, failing with *TimeoutError
	// when the budget runs out. Results render asynchronously after Navigate,
	// so parsing without a successful WaitFor reads a half-built page.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error

	// Settle runs human-like scroll and mouse movement to trigger lazy
	// loading and look less like automation. Best effort.
	Settle(ctx context.Context) error

	// Content returns the rendered HTML snapshot of the current page.
	Content() (string, error)

	Close() error
}
