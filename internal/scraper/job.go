// Shared value objects for the extraction engine
// and the two public operations (search, details)

package scraper

import "fmt"

// Valid filter values. Unknown values are rejected before any navigation happens.
var (
	ExperienceLevels = []string{"internship", "entry", "associate", "mid", "senior", "director", "executive"}
	JobTypes         = []string{"full-time", "part-time", "contract", "temporary", "internship"}
)

const (
	DefaultMaxResults = 25
	MaxMaxResults     = 100
)

// SearchRequest is one job search as received from the API layer.
type SearchRequest struct {
	Keywords        string `json:"keywords" yaml:"keywords"`
	Location        string `json:"location,omitempty" yaml:"location"`
	MaxResults      int    `json:"max_results" yaml:"max_results"`
	ExperienceLevel string `json:"experience_level,omitempty" yaml:"experience_level"`
	JobType         string `json:"job_type,omitempty" yaml:"job_type"`
}

// WithDefaults fills in unset fields and returns the request by value.
func (r SearchRequest) WithDefaults() SearchRequest {
	if r.MaxResults == 0 {
		r.MaxResults = DefaultMaxResults
	}
	return r
}

// Validate fails fast on bad input so no browser session is ever opened for it.
func (r SearchRequest) Validate() error {
	if r.Keywords == "" {
		return &ValidationError{Field: "keywords", Reason: "must not be empty"}
	}
	if r.MaxResults < 1 || r.MaxResults > MaxMaxResults {
		return &ValidationError{
			Field:  "max_results",
			Reason: fmt.Sprintf("must be between 1 and %d, got %d", MaxMaxResults, r.MaxResults),
		}
	}
	if r.ExperienceLevel != "" && !contains(ExperienceLevels, r.ExperienceLevel) {
		return &ValidationError{
			Field:  "experience_level",
			Reason: fmt.Sprintf("unknown value %q, want one of %v", r.ExperienceLevel, ExperienceLevels),
		}
	}
	if r.JobType != "" && !contains(JobTypes, r.JobType) {
		return &ValidationError{
			Field:  "job_type",
			Reason: fmt.Sprintf("unknown value %q, want one of %v", r.JobType, JobTypes),
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

// JobSummary is one result card from a search-results page.
// JobURL is the canonical posting URL and acts as the identity key for dedup.
type JobSummary struct {
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	PostedDate         string `json:"posted_date"`
	JobURL             string `json:"job_url"`
	DescriptionPreview string `json:"description_preview,omitempty"`
}

// JobDetail is the full record scraped from a single posting page.
type JobDetail struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	JobURL      string `json:"job_url"`
}

// SearchResult is what the search operation always returns, success or not.
type SearchResult struct {
	TotalResults     int           `json:"total_results"`
	SearchParameters SearchRequest `json:"search_parameters"`
	Jobs             []JobSummary  `json:"jobs"`
	Success          bool          `json:"success"`
	Message          string        `json:"message,omitempty"`
}

// DetailResult wraps a single-posting fetch the same way.
type DetailResult struct {
	JobDetails *JobDetail `json:"job_details"`
	Success    bool       `json:"success"`
	Message    string     `json:"message,omitempty"`
}
