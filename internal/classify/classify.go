// Package classify decides whether a block of text is a job listing, a
// resume, or neither, using the weighted signal catalog in patterns.
package classify

import (
	"github.com/RohanBisht33/trustscan-app/internal/patterns"
	"github.com/RohanBisht33/trustscan-app/internal/profiles"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// Hint is weak context about where the text came from. It biases thresholds;
// it never hard-codes the answer.
type Hint string

const (
	// HintNone means no origin context is available.
	HintNone Hint = ""
	// HintJobBoard means the text came from a known job-hosting domain.
	HintJobBoard Hint = "job_board"
)

// Bonus applied to the job side when the text came from a known job board.
const jobBoardBias = 2

// Classify runs the full classification pipeline over text using the given
// profile. It always returns a complete Classification; insufficient or
// ambiguous input yields the unknown label with whatever scores accumulated.
func Classify(text string, p *profiles.Profile) types.Classification {
	return ClassifyWithHint(text, HintNone, p)
}

// ClassifyWithHint is Classify with optional origin context.
func ClassifyWithHint(text string, hint Hint, p *profiles.Profile) types.Classification {
	if len(text) < p.MinClassifyChars {
		return types.Classification{Label: types.DocUnknown}
	}

	jobScore := 0
	resumeScore := 0

	for _, sig := range patterns.JobExclusive() {
		if sig.Pattern.MatchString(text) {
			jobScore += sig.Weight
		}
	}
	for _, sig := range patterns.ResumeExclusive() {
		if sig.Pattern.MatchString(text) {
			resumeScore += sig.Weight
		}
	}

	// Mutually exclusive phrasing decides alone, but only when the other side
	// produced no evidence at all.
	if jobScore >= p.ShortCircuitScore && resumeScore == 0 {
		return types.Classification{Label: types.DocJobListing, JobScore: jobScore}
	}
	if resumeScore >= p.ShortCircuitScore && jobScore == 0 {
		return types.Classification{Label: types.DocResume, ResumeScore: resumeScore}
	}

	for _, sig := range patterns.JobWeak() {
		if sig.Pattern.MatchString(text) {
			jobScore += sig.Weight
		}
	}
	for _, sig := range patterns.ResumeWeak() {
		if sig.Pattern.MatchString(text) {
			resumeScore += sig.Weight
		}
	}

	// Structural tie-breaks: resumes speak in first person, postings talk
	// about the company.
	if patterns.CountFirstPerson(text) >= 5 {
		resumeScore += 3
	}
	if reAboutCompany.MatchString(text) {
		jobScore += 3
	}

	if hint == HintJobBoard {
		jobScore += jobBoardBias
	}

	result := types.Classification{JobScore: jobScore, ResumeScore: resumeScore}

	// Double threshold: the winner needs both enough absolute evidence and a
	// clear margin over the loser. Ties stay unknown.
	diff := jobScore - resumeScore
	if diff < 0 {
		diff = -diff
	}
	switch {
	case resumeScore >= p.DecisionScore && resumeScore > jobScore && diff >= p.DecisionMargin:
		result.Label = types.DocResume
	case jobScore >= p.DecisionScore && jobScore > resumeScore && diff >= p.DecisionMargin:
		result.Label = types.DocJobListing
	default:
		result.Label = types.DocUnknown
	}

	return result
}
