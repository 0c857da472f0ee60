// Package types provides type definitions for classification and analysis
// results shared across the trustscan system.
package types

// DocType discriminates the kind of document an analysis produced.
type DocType string

const (
	// DocJobListing marks text recognized as a job posting.
	DocJobListing DocType = "job_listing"
	// DocResume marks text recognized as a resume or CV.
	DocResume DocType = "resume"
	// DocUnknown marks text that could not be confidently classified.
	DocUnknown DocType = "unknown"
)

// RiskLevel is the coarse legitimacy band derived from a trust score.
type RiskLevel string

const (
	// RiskLow means no major red flags were found.
	RiskLow RiskLevel = "Low"
	// RiskModerate means the listing is plausible but warrants caution.
	RiskModerate RiskLevel = "Moderate"
	// RiskHigh means multiple red flags fired.
	RiskHigh RiskLevel = "High"
)

// Classification is the raw outcome of the type classifier: the decided label
// plus the accumulated evidence scores for each side.
type Classification struct {
	Label       DocType `json:"label"`
	JobScore    int     `json:"job_score"`
	ResumeScore int     `json:"resume_score"`
}

// JobReport holds the job-listing arm of an analysis result.
type JobReport struct {
	TrustScore int       `json:"trust_score"`
	RedFlags   []string  `json:"red_flags"`
	GreenFlags []string  `json:"green_flags"`
	RiskLevel  RiskLevel `json:"risk_level"`
}

// ResumeInsights holds the resume arm of an analysis result: the ATS score
// plus the qualitative breakdown shown to the user.
type ResumeInsights struct {
	ATSScore    int      `json:"ats_score"`
	Highlights  []string `json:"highlights"`
	Badges      []string `json:"badges"`
	Tone        string   `json:"tone"`
	FocusArea   string   `json:"focus_area"`
	SignalLabel string   `json:"signal_label"`
}

// AnalysisResult is the externally consumed artifact of a single analysis
// call. Type is the discriminant: exactly one of Job or Resume is non-nil for
// job_listing and resume respectively, and both are nil for unknown.
type AnalysisResult struct {
	Type      DocType         `json:"type"`
	Job       *JobReport      `json:"job,omitempty"`
	Resume    *ResumeInsights `json:"resume,omitempty"`
	Summary   string          `json:"summary"`
	Heuristic bool            `json:"heuristic,omitempty"` // label came from the likely-job fallback, not the classifier
}

// AppendUnique appends msg to list only if it is not already present,
// preserving insertion order. Flag lists have set semantics.
func AppendUnique(list []string, msg string) []string {
	for _, existing := range list {
		if existing == msg {
			return list
		}
	}
	return append(list, msg)
}
