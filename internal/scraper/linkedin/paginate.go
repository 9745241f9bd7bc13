package linkedin

import (
	"context"
	"log"
	"time"

	"go-linkedin-jobs/internal/browser"
	"go-linkedin-jobs/internal/dedup"
	"go-linkedin-jobs/internal/scraper"
)

// collect walks result pages via the start offset until maxResults summaries
// are gathered, the source runs out, or the page cap is hit. The cap
// guarantees termination even if the page keeps advertising more results.
// Pagination is strictly sequential; the randomized delay between pages is an
// anti-automation requirement and is never skipped.
func (e *Engine) collect(ctx context.Context, sess scraper.Session, searchURL string, maxResults int) ([]scraper.JobSummary, error) {
	readyTimeout := time.Duration(e.cfg.ReadyTimeoutMs) * time.Millisecond

	var jobs []scraper.JobSummary
	seen := dedup.NewSet()

	for page := 0; page < e.cfg.MaxPages; page++ {
		target := pageURL(searchURL, page*pageSize)

		if err := sess.Navigate(ctx, target); err != nil {
			return nil, err
		}
		if err := sess.WaitFor(ctx, resultsListSelector, readyTimeout); err != nil {
			return nil, err
		}
		//nudge lazy-loaded cards into the DOM, best effort
		if err := sess.Settle(ctx); err != nil && ctx.Err() != nil {
			return nil, err
		}

		html, err := sess.Content()
		if err != nil {
			return nil, &scraper.NavigationError{URL: target, Err: err}
		}

		pageJobs, hasMore, err := ParseListing(html)
		if err != nil {
			return nil, err
		}

		added := 0
		for _, job := range pageJobs {
			if !seen.Add(job.JobURL) {
				continue
			}
			jobs = append(jobs, job)
			added++
			if len(jobs) >= maxResults {
				return jobs[:maxResults], nil
			}
		}
		log.Printf("  📄 Page %d: %d cards, %d new (total %d/%d)", page+1, len(pageJobs), added, len(jobs), maxResults)

		//a page of nothing-but-repeats means the offset ran past the end
		if !hasMore || added == 0 {
			break
		}

		if err := browser.RandomDelay(ctx, e.cfg.DelayMinMs, e.cfg.DelayMaxMs); err != nil {
			return nil, err
		}
	}

	return jobs, nil
}
