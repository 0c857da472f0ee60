package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanBisht33/trustscan-app/internal/types"
)

const scamListing = "We are hiring! Send a $50 registration fee via Western Union to " +
	"jobsoffer@gmail.com to secure your position. No experience needed, apply now!"

const shortResume = "My name is Priya. I am a designer. My skills: typography and layout. " +
	"References available upon request. My education covers fine arts."

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(Config{Port: 0})
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:54321"

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHandleAnalyze_TextInput(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/analyze", AnalyzeRequest{Text: scamListing})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.ID)
	require.NotNil(t, resp.Result)
	assert.Equal(t, types.DocJobListing, resp.Result.Type)
	require.NotNil(t, resp.Result.Job)
	assert.Contains(t, resp.Result.Job.RedFlags, "Payment required upfront")
}

func TestHandleAnalyze_MissingTextAndURL(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/analyze", AnalyzeRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestHandleAnalyze_TextAndURLTogether(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/analyze", AnalyzeRequest{
		Text: scamListing,
		URL:  "https://example.com/job",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_MalformedBody(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{not json")))
	req.RemoteAddr = "192.0.2.1:54321"
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAnalyze_URLFetchesFromServer(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<body><p>" + scamListing + "</p></body>"))
	}))
	defer upstream.Close()

	srv := newTestServer(t)

	rec := postJSON(t, srv, "/analyze", AnalyzeRequest{URL: upstream.URL})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, upstream.URL, resp.Source)
	require.NotNil(t, resp.Result)
	assert.Equal(t, types.DocJobListing, resp.Result.Type)
}

func TestHandleAnalyze_URLFetchFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer upstream.Close()

	srv := newTestServer(t)

	rec := postJSON(t, srv, "/analyze", AnalyzeRequest{URL: upstream.URL})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleClassify(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/classify", TextRequest{Text: scamListing})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ClassifyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, types.DocJobListing, resp.Classification.Label)
}

func TestHandleClassify_EmptyText(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/classify", TextRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleResume_ShortTextReturnsNullInsights(t *testing.T) {
	srv := newTestServer(t)

	rec := postJSON(t, srv, "/resume", TextRequest{Text: shortResume})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ResumeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Insights)
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/analyze", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWithRateLimit_EventuallyRejects(t *testing.T) {
	srv := newTestServer(t)

	rejected := false
	for i := 0; i < 100; i++ {
		rec := postJSON(t, srv, "/classify", TextRequest{Text: "hello there"})
		if rec.Code == http.StatusTooManyRequests {
			rejected = true
			break
		}
	}

	assert.True(t, rejected, "expected the per-client limit to trip within 100 rapid requests")
}
