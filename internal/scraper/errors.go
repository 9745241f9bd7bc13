package scraper

import (
	"fmt"
	"time"
)

// Error taxonomy for one scrape operation. Validation errors are returned to the
// caller directly; the other three are converted into success=false results at
// the engine boundary.

// ValidationError means the request itself is bad. It is raised before any
// navigation, so no browser session is opened for an invalid request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NavigationError means the target page could not be reached at all.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string {
	return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// TimeoutError means the page was reached but never became ready within budget.
type TimeoutError struct {
	Condition string
	Budget    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for %q", e.Budget, e.Condition)
}

// ParseError means the page rendered but its structure was not recognized,
// which usually means the source markup changed or the posting is gone.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse failed: " + e.Reason
}
