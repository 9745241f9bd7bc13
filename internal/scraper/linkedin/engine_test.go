package linkedin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-linkedin-jobs/internal/config"
	"go-linkedin-jobs/internal/scraper"
)

// fakeSession serves canned HTML per URL and counts lifecycle calls so tests
// can verify that sessions are always closed and that validation failures
// never navigate.
type fakeSession struct {
	pages    map[string]string
	current  string
	navCalls []string
	navErr   error
	waitErr  error
	closed   int
}

func (s *fakeSession) Navigate(_ context.Context, url string) error {
	s.navCalls = append(s.navCalls, url)
	if s.navErr != nil {
		return s.navErr
	}
	if _, ok := s.pages[url]; !ok {
		return &scraper.NavigationError{URL: url, Err: errors.New("no such page")}
	}
	s.current = url
	return nil
}

func (s *fakeSession) WaitFor(context.Context, string, time.Duration) error {
	return s.waitErr
}

func (s *fakeSession) Settle(context.Context) error { return nil }

func (s *fakeSession) Content() (string, error) { return s.pages[s.current], nil }

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type fakeBrowser struct {
	sess  *fakeSession
	err   error
	calls int
}

func (b *fakeBrowser) NewSession(context.Context) (scraper.Session, error) {
	b.calls++
	if b.err != nil {
		return nil, b.err
	}
	return b.sess, nil
}

func testEngine(sess *fakeSession) (*Engine, *fakeBrowser) {
	b := &fakeBrowser{sess: sess}
	cfg := config.ScrapeConfig{
		BaseURL:        testBaseURL,
		ReadyTimeoutMs: 50,
		DelayMinMs:     0,
		DelayMaxMs:     1,
		MaxPages:       9,
		MaxSessions:    1,
	}
	return NewEngine(b, cfg), b
}

func TestSearch_ValidationFailsFast(t *testing.T) {
	tests := []struct {
		name string
		req  scraper.SearchRequest
	}{
		{"empty keywords", scraper.SearchRequest{}},
		{"bad experience level", scraper.SearchRequest{Keywords: "go", ExperienceLevel: "wizard"}},
		{"bad job type", scraper.SearchRequest{Keywords: "go", JobType: "gig"}},
		{"max results too high", scraper.SearchRequest{Keywords: "go", MaxResults: 101}},
		{"negative max results", scraper.SearchRequest{Keywords: "go", MaxResults: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, browser := testEngine(&fakeSession{})

			_, err := engine.Search(context.Background(), tt.req)

			var vErr *scraper.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, 0, browser.calls, "no session may be opened for an invalid request")
		})
	}
}

func TestSearch_EndToEnd(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "python developer", Location: "New York", MaxResults: 2}
	searchURL := BuildSearchURL(testBaseURL, req)

	sess := &fakeSession{pages: map[string]string{
		searchURL: resultsPage(false,
			resultCard("Python Developer", "Acme", "New York, NY", "https://www.linkedin.com/jobs/view/1"),
			resultCard("Backend Developer", "Globex", "New York, NY", "https://www.linkedin.com/jobs/view/2"),
			resultCard("Data Engineer", "Initech", "New York, NY", "https://www.linkedin.com/jobs/view/3"),
		),
	}}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 2, result.TotalResults)
	assert.Len(t, result.Jobs, 2)
	assert.NotEqual(t, result.Jobs[0].JobURL, result.Jobs[1].JobURL)
	assert.Equal(t, req, result.SearchParameters)
	assert.Equal(t, 1, sess.closed, "session must be closed after a successful search")
}

func TestSearch_DefaultMaxResults(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "golang"}
	searchURL := BuildSearchURL(testBaseURL, req.WithDefaults())

	sess := &fakeSession{pages: map[string]string{
		searchURL: resultsPage(false,
			resultCard("Go Developer", "Acme", "Remote", "https://www.linkedin.com/jobs/view/1"),
		),
	}}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, scraper.DefaultMaxResults, result.SearchParameters.MaxResults)
	assert.Equal(t, 1, result.TotalResults)
}

func TestSearch_MaxResultsOne(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "golang", MaxResults: 1}
	searchURL := BuildSearchURL(testBaseURL, req)

	sess := &fakeSession{pages: map[string]string{
		searchURL: resultsPage(false,
			resultCard("Job A", "A", "NY", "https://www.linkedin.com/jobs/view/1"),
			resultCard("Job B", "B", "NY", "https://www.linkedin.com/jobs/view/2"),
		),
	}}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalResults)
	assert.Len(t, result.Jobs, 1)
}

func TestSearch_PaginatesAndDedups(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "golang", MaxResults: 10}
	searchURL := BuildSearchURL(testBaseURL, req)

	sess := &fakeSession{pages: map[string]string{
		searchURL: resultsPage(true,
			resultCard("Job 1", "A", "NY", "https://www.linkedin.com/jobs/view/1"),
			resultCard("Job 2", "B", "NY", "https://www.linkedin.com/jobs/view/2"),
			resultCard("Job 3", "C", "NY", "https://www.linkedin.com/jobs/view/3"),
		),
		searchURL + "&start=25": resultsPage(false,
			// same posting again under a tracking URL, must not repeat
			resultCard("Job 3", "C", "NY", "https://www.linkedin.com/jobs/view/3?trackingId=zzz"),
			resultCard("Job 4", "D", "NY", "https://www.linkedin.com/jobs/view/4"),
		),
	}}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 4, result.TotalResults)
	assert.Equal(t, []string{searchURL, searchURL + "&start=25"}, sess.navCalls)

	seen := map[string]bool{}
	for _, job := range result.Jobs {
		assert.False(t, seen[job.JobURL], "duplicate job_url %s", job.JobURL)
		seen[job.JobURL] = true
	}
	// first occurrence wins, source order preserved
	assert.Equal(t, "https://www.linkedin.com/jobs/view/1", result.Jobs[0].JobURL)
	assert.Equal(t, "https://www.linkedin.com/jobs/view/4", result.Jobs[3].JobURL)
}

func TestSearch_TimeoutBecomesFailureResult(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "golang"}
	sess := &fakeSession{
		pages:   map[string]string{BuildSearchURL(testBaseURL, req.WithDefaults()): "<html></html>"},
		waitErr: &scraper.TimeoutError{Condition: resultsListSelector, Budget: 50 * time.Millisecond},
	}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err, "runtime failures must not surface as errors")
	assert.False(t, result.Success)
	assert.Equal(t, 0, result.TotalResults)
	assert.Empty(t, result.Jobs)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 1, sess.closed, "session must be closed after a timeout")
}

func TestSearch_NavigationFailureBecomesFailureResult(t *testing.T) {
	sess := &fakeSession{pages: map[string]string{}} // every navigation fails
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), scraper.SearchRequest{Keywords: "golang"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 1, sess.closed)
}

func TestSearch_UnrecognizedMarkupBecomesFailureResult(t *testing.T) {
	req := scraper.SearchRequest{Keywords: "golang"}
	sess := &fakeSession{pages: map[string]string{
		BuildSearchURL(testBaseURL, req.WithDefaults()): "<html><body>nothing here</body></html>",
	}}
	engine, _ := testEngine(sess)

	result, err := engine.Search(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "no job results structure")
	assert.Equal(t, 1, sess.closed)
}

func TestGetDetails_ValidatesURLBeforeOpeningSession(t *testing.T) {
	sess := &fakeSession{}
	engine, browser := testEngine(sess)

	_, err := engine.GetDetails(context.Background(), "https://www.example.com/jobs/view/1")

	var vErr *scraper.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, 0, browser.calls)
	assert.Empty(t, sess.navCalls, "no navigation may happen for an invalid URL")
}

func TestGetDetails_HappyPath(t *testing.T) {
	jobURL := "https://www.linkedin.com/jobs/view/123"
	sess := &fakeSession{pages: map[string]string{jobURL: detailPage}}
	engine, _ := testEngine(sess)

	result, err := engine.GetDetails(context.Background(), jobURL)

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.JobDetails)
	assert.Equal(t, "Senior Go Developer", result.JobDetails.Title)
	assert.Equal(t, jobURL, result.JobDetails.JobURL)
	assert.Equal(t, 1, sess.closed)
}

func TestGetDetails_RemovedPostingBecomesFailureResult(t *testing.T) {
	jobURL := "https://www.linkedin.com/jobs/view/123"
	sess := &fakeSession{pages: map[string]string{
		jobURL: "<html><body><h1>No longer accepting applications</h1></body></html>",
	}}
	engine, _ := testEngine(sess)

	result, err := engine.GetDetails(context.Background(), jobURL)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Nil(t, result.JobDetails)
	assert.Contains(t, result.Message, "description region not found")
	assert.Equal(t, 1, sess.closed)
}

func TestGetDetails_NavigationFailure(t *testing.T) {
	jobURL := "https://www.linkedin.com/jobs/view/123"
	sess := &fakeSession{
		navErr: &scraper.NavigationError{URL: jobURL, Err: errors.New("dns lookup failed")},
	}
	engine, _ := testEngine(sess)

	result, err := engine.GetDetails(context.Background(), jobURL)

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Equal(t, 1, sess.closed)
}

func TestSearch_SessionOpenFailure(t *testing.T) {
	engine, browser := testEngine(&fakeSession{})
	browser.err = errors.New("browser crashed")

	result, err := engine.Search(context.Background(), scraper.SearchRequest{Keywords: "golang"})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "could not open browser session")
}
