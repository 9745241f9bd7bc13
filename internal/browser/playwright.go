package browser

import (
	"context"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/sync/semaphore"

	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/scraper"
)

// Manager owns the playwright runtime and the single Chromium process. Each
// logical operation gets its own browser context via NewSession; contexts are
// cheap and isolated, the browser launch is not.
type Manager struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	cfg     config.ScrapeConfig
	slots   *semaphore.Weighted
}

func NewManager(cfg config.ScrapeConfig) (*Manager, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(!cfg.Headful),
		Args: []string{
			"--no-sandbox",
			"--disable-gpu",
			"--disable-dev-shm-usage",
		},
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	return &Manager{
		pw:      pw,
		browser: browser,
		cfg:     cfg,
		slots:   semaphore.NewWeighted(int64(cfg.MaxSessions)),
	}, nil
}

// NewSession blocks until a session slot is free, so the number of open
// browser contexts never exceeds scrape.max_sessions. The slot is returned
// when the session is closed.
func (m *Manager) NewSession(ctx context.Context) (scraper.Session, error) {
	if err := m.slots.Acquire(ctx, 1); err != nil {
		return nil, err
	}

	bctx, err := m.browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(m.cfg.UserAgent),
		Viewport: &playwright.Size{
			Width:  m.cfg.ViewportWidth,
			Height: m.cfg.ViewportHeight,
		},
	})
	if err != nil {
		m.slots.Release(1)
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}

	page, err := bctx.NewPage()
	if err != nil {
		bctx.Close()
		m.slots.Release(1)
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	return &session{
		bctx:    bctx,
		page:    page,
		cfg:     m.cfg,
		release: func() { m.slots.Release(1) },
	}, nil
}

func (m *Manager) Close() error {
	if err := m.browser.Close(); err != nil {
		return err
	}
	return m.pw.Stop()
}
