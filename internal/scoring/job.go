// Package scoring computes trust scores for job listings and ATS scores for
// resumes from the signal catalog in patterns. Each call is a pure function
// of the input text and the profile; there is no shared state.
package scoring

import (
	"github.com/RohanBisht33/trustscan-app/internal/patterns"
	"github.com/RohanBisht33/trustscan-app/internal/profiles"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// Structural thresholds for the job scorer.
const (
	minListingChars   = 400
	longListingChars  = 2000
	minListingWords   = 220
	longListingWords  = 900
	minBulletCount    = 4
	bulletCreditCap   = 12
	minActionVerbs    = 12
	shoutingThreshold = 0.08
)

// ScoreJob computes the legitimacy report for job-classified (or job-like)
// text: a 0-100 trust score plus the red and green flag messages behind it.
func ScoreJob(text string, p *profiles.Profile) *types.JobReport {
	riskTotal := 0
	trustTotal := 0
	redFlags := []string{}
	greenFlags := []string{}

	for _, sig := range patterns.JobRisk() {
		if sig.Pattern.MatchString(text) {
			riskTotal += sig.Weight
			redFlags = types.AppendUnique(redFlags, sig.Message)
		}
	}

	for _, sig := range patterns.JobTrust() {
		if sig.Pattern.MatchString(text) {
			trustTotal += sig.Weight
			greenFlags = types.AppendUnique(greenFlags, sig.Message)
		}
	}

	// Structural checks that need more than a single regex hit.
	if !patterns.HasStructureSections(text) {
		riskTotal += 8
		redFlags = types.AppendUnique(redFlags, "Missing responsibilities/requirements section")
	}
	if !patterns.HasEmail(text) {
		riskTotal += 15
		redFlags = types.AppendUnique(redFlags, "No valid company email")
	}
	if len(text) < minListingChars {
		riskTotal += 10
		redFlags = types.AppendUnique(redFlags, "Very short description")
	} else if len(text) > longListingChars {
		trustTotal += 6
		greenFlags = types.AppendUnique(greenFlags, "Detailed listing")
	}
	if patterns.UppercaseRatio(text) > shoutingThreshold {
		riskTotal += 6
		redFlags = types.AppendUnique(redFlags, "Excessive uppercase text")
	}

	words := patterns.WordCount(text)
	if words >= longListingWords {
		trustTotal += 6
		greenFlags = types.AppendUnique(greenFlags, "Thorough role breakdown")
	} else if words < minListingWords {
		riskTotal += 6
		redFlags = types.AppendUnique(redFlags, "Too little information")
	}

	if bullets := patterns.CountBullets(text); bullets >= minBulletCount {
		credit := bullets * 3 / 2
		if credit > bulletCreditCap {
			credit = bulletCreditCap
		}
		trustTotal += credit
		greenFlags = types.AppendUnique(greenFlags, "Structured bullet-point details")
	}

	if patterns.CountActionVerbs(text) >= minActionVerbs {
		trustTotal += 5
		greenFlags = types.AppendUnique(greenFlags, "Uses concrete action verbs")
	}

	trustDelta := trustTotal
	if trustDelta > p.TrustCap {
		trustDelta = p.TrustCap
	}
	riskDelta := riskTotal
	if riskDelta > p.RiskCap {
		riskDelta = p.RiskCap
	}

	score := p.JobBaseline + trustDelta - riskDelta + Jitter(text, p.JitterRange)
	score = clamp(score, 0, 100)

	// A severe risk indicator must dominate: positive signals cannot buy the
	// score back above the ceiling.
	if riskTotal > p.SevereRiskThreshold && score > p.SevereRiskCeiling {
		score = p.SevereRiskCeiling
	}

	return &types.JobReport{
		TrustScore: score,
		RedFlags:   redFlags,
		GreenFlags: greenFlags,
		RiskLevel:  RiskLevelFor(score),
	}
}

// RiskLevelFor maps a trust score to its coarse risk band.
func RiskLevelFor(score int) types.RiskLevel {
	switch {
	case score >= 75:
		return types.RiskLow
	case score >= 55:
		return types.RiskModerate
	default:
		return types.RiskHigh
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
