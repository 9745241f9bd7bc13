package browser

import (
	"context"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/scraper"
)

// session implements scraper.Session on top of one playwright browser context.
type session struct {
	bctx    playwright.BrowserContext
	page    playwright.Page
	cfg     config.ScrapeConfig
	release func()
	once    sync.Once
}

func (s *session) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return &scraper.NavigationError{URL: url, Err: err}
	}
	if _, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
		Timeout:   playwright.Float(float64(s.cfg.NavTimeoutMs)),
	}); err != nil {
		return &scraper.NavigationError{URL: url, Err: err}
	}
	return nil
}

func (s *session) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	if err := ctx.Err(); err != nil {
		return &scraper.TimeoutError{Condition: selector, Budget: timeout}
	}
	if _, err := s.page.WaitForSelector(selector, playwright.PageWaitForSelectorOptions{
		Timeout: playwright.Float(float64(timeout.Milliseconds())),
	}); err != nil {
		return &scraper.TimeoutError{Condition: selector, Budget: timeout}
	}
	return nil
}

func (s *session) Settle(ctx context.Context) error {
	MouseJiggle(s.page)
	if err := HumanScroll(s.page); err != nil {
		return err
	}
	return RandomDelay(ctx, 500, 1500)
}

func (s *session) Content() (string, error) {
	return s.page.Content()
}

// Close tears down the browser context and frees the session slot. Safe to
// call from a defer on every exit path; only the first call does the work.
func (s *session) Close() error {
	var err error
	s.once.Do(func() {
		err = s.bctx.Close()
		s.release()
	})
	return err
}
