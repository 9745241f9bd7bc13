package linkedin

import (
	"fmt"
	"net/url"
	"strings"

	"go-linkedin-jobs/internal/scraper"
)

// Fixed tables mapping filter values to LinkedIn's query encoding.
var experienceTokens = map[string]string{
	"internship": "1",
	"entry":      "2",
	"associate":  "3",
	"mid":        "4",
	"senior":     "5",
	"director":   "6",
	"executive":  "7",
}

var jobTypeTokens = map[string]string{
	"full-time":  "F",
	"part-time":  "P",
	"contract":   "C",
	"temporary":  "T",
	"internship": "I",
}

// BuildSearchURL translates a validated request into a guest search URL.
// Pure and deterministic; an unset filter omits its query component entirely.
func BuildSearchURL(baseURL string, req scraper.SearchRequest) string {
	params := url.Values{}
	params.Set("keywords", req.Keywords)
	if req.Location != "" {
		params.Set("location", req.Location)
	}
	if token, ok := experienceTokens[req.ExperienceLevel]; ok {
		params.Set("f_E", token)
	}
	if token, ok := jobTypeTokens[req.JobType]; ok {
		params.Set("f_JT", token)
	}
	return baseURL + "?" + params.Encode()
}

// pageURL appends the start offset for pagination. Offset zero is the search
// URL itself.
func pageURL(searchURL string, offset int) string {
	if offset <= 0 {
		return searchURL
	}
	return fmt.Sprintf("%s&start=%d", searchURL, offset)
}

// ValidateJobURL rejects anything that is not an absolute LinkedIn http(s)
// URL, before any session is opened or navigation attempted.
func ValidateJobURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &scraper.ValidationError{Field: "job_url", Reason: fmt.Sprintf("not a valid URL: %v", err)}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &scraper.ValidationError{Field: "job_url", Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}
	host := strings.ToLower(u.Hostname())
	if host != "linkedin.com" && !strings.HasSuffix(host, ".linkedin.com") {
		return &scraper.ValidationError{Field: "job_url", Reason: fmt.Sprintf("host %q is not a LinkedIn domain", u.Hostname())}
	}
	return nil
}

// canonicalJobURL resolves a card href to an absolute URL and strips query
// parameters. LinkedIn hrefs carry dynamic tracking params (?refId=...,
// ?trackingId=...) which make the same job appear as different URLs, so the
// bare URL is the identity key for deduplication.
func canonicalJobURL(href string) string {
	full := href
	if !strings.HasPrefix(href, "http") {
		full = "https://www.linkedin.com" + href
	}
	parts := strings.SplitN(full, "?", 2)
	return strings.TrimSuffix(parts[0], "/")
}
