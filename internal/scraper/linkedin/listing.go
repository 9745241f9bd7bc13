package linkedin

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-linkedin-jobs/internal/scraper"
)

var errMalformedCard = errors.New("malformed result card")

// ParseListing extracts job summaries from a rendered search-results page and
// reports whether a next-page affordance is present. A malformed card is
// skipped, not fatal; a page with no recognizable result structure at all is a
// ParseError, the signal that LinkedIn's markup has drifted.
func ParseListing(html string) ([]scraper.JobSummary, bool, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false, &scraper.ParseError{Reason: "results page is not parseable HTML: " + err.Error()}
	}

	cards := doc.Find(resultCardSelector)
	if cards.Length() == 0 {
		if doc.Find(resultsListSelector).Length() == 0 {
			return nil, false, &scraper.ParseError{Reason: "no job results structure found on page"}
		}
		//results list rendered but empty: zero matches, not a parse failure
		return []scraper.JobSummary{}, false, nil
	}

	jobs := make([]scraper.JobSummary, 0, cards.Length())
	cards.Each(func(_ int, card *goquery.Selection) {
		job, err := parseCard(card)
		if err != nil {
			//card-level failure, skip and keep going
			return
		}
		jobs = append(jobs, job)
	})

	hasMore := doc.Find(seeMoreSelector).Length() > 0 || cards.Length() >= pageSize
	return jobs, hasMore, nil
}

// parseCard pulls one summary out of a result card. Title and link are
// required; everything else degrades to an empty field.
func parseCard(card *goquery.Selection) (scraper.JobSummary, error) {
	link := card.Find(cardLinkSelector).First()
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return scraper.JobSummary{}, errMalformedCard
	}

	title := text(card, cardTitleSelector)
	if title == "" {
		title = strings.TrimSpace(link.Text())
	}
	if title == "" {
		return scraper.JobSummary{}, errMalformedCard
	}

	posted := ""
	if timeEl := card.Find(cardDateSelector).First(); timeEl.Length() > 0 {
		if dt, ok := timeEl.Attr("datetime"); ok && dt != "" {
			posted = dt
		} else {
			posted = strings.TrimSpace(timeEl.Text())
		}
	}

	return scraper.JobSummary{
		Title:              title,
		Company:            text(card, cardCompanySelector),
		Location:           text(card, cardLocationSelector),
		PostedDate:         posted,
		JobURL:             canonicalJobURL(href),
		DescriptionPreview: truncate(text(card, cardSnippetSelector), previewLimit),
	}, nil
}

func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
