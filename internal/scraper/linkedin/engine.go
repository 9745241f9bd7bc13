package linkedin

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/scraper"
)

// Engine composes the query builder, session driver, parsers and pagination
// into the two public operations. It owns no cross-call state; every call
// opens its own session and closes it on every exit path.
//
// Failure contract: the error return carries validation errors only (bad
// request, nothing was navigated). Navigation, timeout and parse failures are
// converted into success=false results with a message, so callers can tell
// "bad request" from "source unavailable" without unpacking error chains.
type Engine struct {
	browser scraper.Browser
	cfg     config.ScrapeConfig
}

func NewEngine(b scraper.Browser, cfg config.ScrapeConfig) *Engine {
	return &Engine{browser: b, cfg: cfg}
}

// Search runs one keyword/filter search and returns up to MaxResults
// summaries in source order, deduplicated by job URL.
func (e *Engine) Search(ctx context.Context, req scraper.SearchRequest) (*scraper.SearchResult, error) {
	req = req.WithDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	searchURL := BuildSearchURL(e.cfg.BaseURL, req)
	log.Printf("🔍 Searching LinkedIn jobs: %s", searchURL)

	sess, err := e.browser.NewSession(ctx)
	if err != nil {
		return searchFailure(req, fmt.Errorf("could not open browser session: %w", err)), nil
	}
	defer sess.Close()

	jobs, err := e.collect(ctx, sess, searchURL, req.MaxResults)
	if err != nil {
		log.Printf("❌ Search failed: %v", err)
		return searchFailure(req, err), nil
	}

	if jobs == nil {
		jobs = []scraper.JobSummary{}
	}

	log.Printf("✅ Search finished: %d jobs", len(jobs))
	return &scraper.SearchResult{
		TotalResults:     len(jobs),
		SearchParameters: req,
		Jobs:             jobs,
		Success:          true,
		Message:          fmt.Sprintf("Found %d jobs", len(jobs)),
	}, nil
}

// GetDetails fetches one posting page and extracts the full record. Detail
// retrieval is independent of any prior search and idempotent per URL.
func (e *Engine) GetDetails(ctx context.Context, jobURL string) (*scraper.DetailResult, error) {
	if err := ValidateJobURL(jobURL); err != nil {
		return nil, err
	}

	sess, err := e.browser.NewSession(ctx)
	if err != nil {
		return detailFailure(fmt.Errorf("could not open browser session: %w", err)), nil
	}
	defer sess.Close()

	if err := sess.Navigate(ctx, jobURL); err != nil {
		return detailFailure(err), nil
	}
	readyTimeout := time.Duration(e.cfg.ReadyTimeoutMs) * time.Millisecond
	if err := sess.WaitFor(ctx, detailDescriptionSelector, readyTimeout); err != nil {
		return detailFailure(err), nil
	}

	html, err := sess.Content()
	if err != nil {
		return detailFailure(&scraper.NavigationError{URL: jobURL, Err: err}), nil
	}

	detail, err := ParseDetail(html, canonicalJobURL(jobURL))
	if err != nil {
		return detailFailure(err), nil
	}

	log.Printf("✅ Fetched details: %s @ %s", detail.Title, detail.Company)
	return &scraper.DetailResult{
		JobDetails: detail,
		Success:    true,
	}, nil
}

func searchFailure(req scraper.SearchRequest, err error) *scraper.SearchResult {
	return &scraper.SearchResult{
		TotalResults:     0,
		SearchParameters: req,
		Jobs:             []scraper.JobSummary{},
		Success:          false,
		Message:          err.Error(),
	}
}

func detailFailure(err error) *scraper.DetailResult {
	return &scraper.DetailResult{
		Success: false,
		Message: err.Error(),
	}
}
