package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanBisht33/trustscan-app/internal/classify"
)

func TestURL_FetchesAndExtractsHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<body><h1>Backend Engineer</h1><p>We are hiring in Pune.</p></body>`))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Text, "Backend Engineer")
	assert.Contains(t, result.Text, "We are hiring in Pune.")
	assert.Contains(t, result.HTML, "<h1>")
}

func TestURL_PlainTextPassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("A plain text job description."))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, "A plain text job description.", result.Text)
}

func TestURL_SetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultUserAgent, gotUA)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not a url", nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
}

func TestURL_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := URL(context.Background(), srv.URL, nil)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("tiny shell page"))
	assert.True(t, ShouldUseBrowser("   \n  "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long rendered content ", 30)))
}

func TestIsJobBoard(t *testing.T) {
	assert.True(t, IsJobBoard("https://www.linkedin.com/jobs/view/123"))
	assert.True(t, IsJobBoard("https://boards.greenhouse.io/acme/jobs/456"))
	assert.True(t, IsJobBoard("https://jobs.lever.co/acme/789"))
	assert.False(t, IsJobBoard("https://example.com/careers"))
	assert.False(t, IsJobBoard("not a url at all"))
}

func TestIsJobBoard_NoSubstringFalsePositives(t *testing.T) {
	// Host matching is suffix-on-label, not substring.
	assert.False(t, IsJobBoard("https://notlinkedin.com/jobs"))
	assert.False(t, IsJobBoard("https://linkedin.com.evil.example/jobs"))
}

func TestOriginHint(t *testing.T) {
	assert.Equal(t, classify.HintJobBoard, OriginHint("https://indeed.com/viewjob?jk=1"))
	assert.Equal(t, classify.HintNone, OriginHint("https://example.com/post"))
	assert.Equal(t, classify.HintNone, OriginHint(""))
}
