// Package profiles defines named scoring profiles: the baselines, caps,
// thresholds and bands that parameterize the classifier and scorers. One
// canonical profile ships built in; alternates can be loaded from JSON files
// validated against schemas/profile.schema.json.
package profiles

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RohanBisht33/trustscan-app/internal/schemas"
)

// Profile is an immutable-by-convention bundle of scoring constants. Scorers
// receive it as a parameter; nothing in the core mutates it after load.
type Profile struct {
	Name string `json:"name"`

	// Classifier thresholds
	MinClassifyChars  int `json:"min_classify_chars"`  // below this the classifier returns unknown
	ShortCircuitScore int `json:"short_circuit_score"` // exclusive score that decides alone when the other side is zero
	DecisionScore     int `json:"decision_score"`      // minimum absolute winning score
	DecisionMargin    int `json:"decision_margin"`     // minimum winner-loser gap

	// Job scorer
	JobBaseline         int `json:"job_baseline"`
	TrustCap            int `json:"trust_cap"`
	RiskCap             int `json:"risk_cap"`
	SevereRiskThreshold int `json:"severe_risk_threshold"` // risk total beyond which the ceiling applies
	SevereRiskCeiling   int `json:"severe_risk_ceiling"`
	JitterRange         int `json:"jitter_range"` // cosmetic +/-N from a text hash, 0 disables

	// Resume scorer
	MinResumeChars int `json:"min_resume_chars"`
	ResumeBaseline int `json:"resume_baseline"`
	ResumeFloor    int `json:"resume_floor"`
	ResumeCeiling  int `json:"resume_ceiling"`
	SaturationKnee int `json:"saturation_knee"` // gains above this count at half credit
}

// Default returns the canonical scoring profile.
func Default() *Profile {
	return &Profile{
		Name:                "default",
		MinClassifyChars:    100,
		ShortCircuitScore:   20,
		DecisionScore:       12,
		DecisionMargin:      5,
		JobBaseline:         60,
		TrustCap:            30,
		RiskCap:             55,
		SevereRiskThreshold: 35,
		SevereRiskCeiling:   42,
		JitterRange:         0,
		MinResumeChars:      200,
		ResumeBaseline:      32,
		ResumeFloor:         25,
		ResumeCeiling:       94,
		SaturationKnee:      78,
	}
}

// Load reads a profile JSON file, validates it against the profile schema,
// and applies it on top of the default profile so partial files work.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read profile file", Cause: err}
	}

	if err := schemas.ValidateProfile(data); err != nil {
		return nil, &LoadError{Path: path, Message: "profile failed schema validation", Cause: err}
	}

	p := Default()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to parse profile JSON", Cause: err}
	}

	if err := p.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid profile values", Cause: err}
	}

	return p, nil
}

// Validate checks internal consistency of the profile values.
func (p *Profile) Validate() error {
	if p.MinClassifyChars < 0 || p.MinResumeChars < 0 {
		return fmt.Errorf("minimum lengths must be non-negative")
	}
	if p.DecisionMargin < 0 || p.DecisionScore < 0 {
		return fmt.Errorf("decision thresholds must be non-negative")
	}
	if p.ResumeFloor >= p.ResumeCeiling {
		return fmt.Errorf("resume_floor %d must be below resume_ceiling %d", p.ResumeFloor, p.ResumeCeiling)
	}
	if p.ResumeCeiling > 100 || p.ResumeFloor < 0 {
		return fmt.Errorf("resume score bounds must stay within [0,100]")
	}
	if p.SevereRiskCeiling > 100 || p.SevereRiskCeiling < 0 {
		return fmt.Errorf("severe_risk_ceiling must stay within [0,100]")
	}
	if p.JitterRange < 0 || p.JitterRange > 10 {
		return fmt.Errorf("jitter_range must be within [0,10]")
	}
	return nil
}
