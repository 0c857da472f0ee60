// Package analyze is the top-level dispatch layer: it classifies raw text,
// routes it to the matching scorer, and wraps the outcome into the uniform
// AnalysisResult consumed by the CLI and HTTP surfaces.
package analyze

import (
	"golang.org/x/sync/singleflight"

	"github.com/RohanBisht33/trustscan-app/internal/classify"
	"github.com/RohanBisht33/trustscan-app/internal/profiles"
	"github.com/RohanBisht33/trustscan-app/internal/scoring"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// Analyzer bundles a scoring profile with an optional memo cache. Analysis
// itself is pure and stateless; the cache only skips recomputing identical
// texts and is injected explicitly rather than hidden in package state.
type Analyzer struct {
	profile *profiles.Profile
	cache   Cache
	group   singleflight.Group
}

// New creates an Analyzer with the given profile. A nil profile uses the
// canonical default.
func New(p *profiles.Profile) *Analyzer {
	if p == nil {
		p = profiles.Default()
	}
	return &Analyzer{profile: p}
}

// WithCache returns the analyzer with an injected memo cache. Concurrent
// analyses of the same text are collapsed into one computation.
func (a *Analyzer) WithCache(c Cache) *Analyzer {
	a.cache = c
	return a
}

// Classify exposes the raw classifier outcome.
func (a *Analyzer) Classify(text string) types.Classification {
	return classify.Classify(text, a.profile)
}

// Analyze runs classification, dispatch, and formatting for text with no
// origin context.
func (a *Analyzer) Analyze(text string) *types.AnalysisResult {
	return a.AnalyzeSource(text, classify.HintNone)
}

// AnalyzeSource is Analyze with weak origin context (e.g. the text came from
// a known job board).
func (a *Analyzer) AnalyzeSource(text string, hint classify.Hint) *types.AnalysisResult {
	if a.cache == nil {
		return a.analyze(text, hint)
	}

	key := cacheKey(text, string(hint))
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	v, _, _ := a.group.Do(key, func() (any, error) {
		result := a.analyze(text, hint)
		a.cache.Set(key, result)
		return result, nil
	})
	return v.(*types.AnalysisResult)
}

// ResumeDetail returns the richer resume-only breakdown, bypassing
// classification. Returns nil when the text is too short to assess.
func (a *Analyzer) ResumeDetail(text string) *types.ResumeInsights {
	return scoring.ScoreResume(text, a.profile)
}

func (a *Analyzer) analyze(text string, hint classify.Hint) *types.AnalysisResult {
	cls := classify.ClassifyWithHint(text, hint, a.profile)

	switch cls.Label {
	case types.DocJobListing:
		return a.jobResult(text, false)

	case types.DocResume:
		insights := scoring.ScoreResume(text, a.profile)
		if insights == nil {
			// Classified as resume but too short to assess.
			return unknownResult()
		}
		return &types.AnalysisResult{
			Type:    types.DocResume,
			Resume:  insights,
			Summary: resumeSummary(insights.ATSScore, text),
		}

	default:
		// Many real pages are ambiguous; a cheaper structural heuristic
		// decides whether to treat them as job-like anyway.
		if classify.LikelyJob(text) {
			return a.jobResult(text, true)
		}
		return unknownResult()
	}
}

func (a *Analyzer) jobResult(text string, heuristic bool) *types.AnalysisResult {
	report := scoring.ScoreJob(text, a.profile)
	return &types.AnalysisResult{
		Type:      types.DocJobListing,
		Job:       report,
		Summary:   jobSummary(report.TrustScore),
		Heuristic: heuristic,
	}
}

func unknownResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Type:    types.DocUnknown,
		Summary: unknownSummary,
	}
}
