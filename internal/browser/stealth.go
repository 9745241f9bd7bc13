package browser

import (
	"context"
	"math/rand"
	"time"

	"github.com/playwright-community/playwright-go"
)

// RandomDelay waits for a random duration between min and max milliseconds.
// Returns early with the context error if the caller is cancelled; the
// randomized pacing keeps request timing from looking machine-regular.
func RandomDelay(ctx context.Context, min, max int) error {
	ms := min
	if max > min {
		ms += rand.Intn(max - min + 1)
	}
	timer := time.NewTimer(time.Duration(ms) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// HumanScroll simulates human-like scrolling behavior and nudges lazy-loaded
// cards into the DOM.
func HumanScroll(page playwright.Page) error {
	// Scroll down in steps
	for i := 0; i < 5; i++ {
		if _, err := page.Evaluate("window.scrollBy(0, window.innerHeight / 2)"); err != nil {
			return err
		}
		time.Sleep(time.Duration(rand.Intn(500)+250) * time.Millisecond)
	}
	// Scroll back up a bit (random behavior)
	if _, err := page.Evaluate("window.scrollBy(0, -200)"); err != nil {
		return err
	}
	return nil
}

// MouseJiggle simulates random mouse movements to prevent idle detection
func MouseJiggle(page playwright.Page) {
	viewportSize := page.ViewportSize()
	if viewportSize == nil {
		return
	}
	for i := 0; i < 3; i++ {
		x := rand.Intn(viewportSize.Width)
		y := rand.Intn(viewportSize.Height)
		if err := page.Mouse().Move(float64(x), float64(y)); err != nil {
			return
		}
		time.Sleep(time.Duration(rand.Intn(200)+100) * time.Millisecond)
	}
}
