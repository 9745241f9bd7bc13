package linkedin

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-linkedin-jobs/internal/scraper"
)

// ParseDetail extracts the full record from a rendered posting page. The
// description region is the marker that this is actually a posting page; when
// it is absent the posting was removed, expired or the markup changed, and
// that is a ParseError rather than a half-empty record.
func ParseDetail(html, jobURL string) (*scraper.JobDetail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &scraper.ParseError{Reason: "posting page is not parseable HTML: " + err.Error()}
	}

	desc := doc.Find(detailDescriptionSelector).First()
	if desc.Length() == 0 {
		return nil, &scraper.ParseError{Reason: "job description region not found, posting may be removed or expired"}
	}

	return &scraper.JobDetail{
		Title:       text(doc.Selection, detailTitleSelector),
		Company:     text(doc.Selection, detailCompanySelector),
		Location:    text(doc.Selection, detailLocationSelector),
		Description: strings.TrimSpace(desc.Text()),
		JobURL:      jobURL,
	}, nil
}
