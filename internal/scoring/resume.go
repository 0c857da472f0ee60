package scoring

import (
	"strings"

	"github.com/RohanBisht33/trustscan-app/internal/patterns"
	"github.com/RohanBisht33/trustscan-app/internal/profiles"
	"github.com/RohanBisht33/trustscan-app/internal/types"
)

// Keyword coverage tiers, in distinct recognized keywords.
const (
	keywordOptimized = 11
	keywordGood      = 7
	keywordSparse    = 4
)

// Other resume thresholds.
const (
	idealWordsLow   = 400
	idealWordsHigh  = 850
	thinWords       = 250
	bloatedWords    = 1500
	personalTone    = 20
	professionalMax = 5
	maxPlausibleYoE = 25
	maxYearSpan     = 45
	buzzwordLimit   = 4
	duplicateLines  = 3
	sectionCap      = 30
)

// ScoreResume computes the ATS/profile report for resume text. Returns nil
// when the text is too short to assess; callers must treat nil as "not enough
// information", not an error.
func ScoreResume(text string, p *profiles.Profile) *types.ResumeInsights {
	if len(text) < p.MinResumeChars {
		return nil
	}

	score := p.ResumeBaseline
	highlights := []string{}
	badges := []string{}

	sectionCredit := 0
	for _, sec := range patterns.ResumeSections() {
		if sec.Pattern.MatchString(text) {
			sectionCredit += sec.Weight
			badges = types.AppendUnique(badges, sec.Badge)
		}
	}
	if sectionCredit > sectionCap {
		sectionCredit = sectionCap
	}
	score += sectionCredit

	switch kw := patterns.CountATSKeywords(text); {
	case kw >= keywordOptimized:
		score += 10
		badges = types.AppendUnique(badges, "Keyword optimized")
	case kw >= keywordGood:
		score += 7
		badges = types.AppendUnique(badges, "Good keyword coverage")
	case kw >= keywordSparse:
		score += 3
		highlights = types.AppendUnique(highlights, "Add more role keywords to improve ATS matching.")
	default:
		score -= 4
		highlights = types.AppendUnique(highlights, "Few recognizable role keywords found.")
	}

	switch metrics := patterns.CountQuantifiedAchievements(text); {
	case metrics >= 4:
		score += 8
		highlights = types.AppendUnique(highlights, "Strong quantified impact throughout the resume.")
	case metrics >= 2:
		score += 5
		highlights = types.AppendUnique(highlights, "Some measurable achievements detected.")
	}

	if patterns.CountLeadershipVerbs(text) >= 2 {
		score += 4
		highlights = types.AppendUnique(highlights, "Leadership verbs showcase ownership.")
	}
	if patterns.CountActionVerbs(text) >= minActionVerbs {
		score += 3
	}

	if bullets := patterns.CountBullets(text); bullets >= minBulletCount {
		credit := bullets
		if credit > 6 {
			credit = 6
		}
		score += credit
		badges = types.AppendUnique(badges, "Structured formatting")
	}

	words := patterns.WordCount(text)
	switch {
	case words >= idealWordsLow && words <= idealWordsHigh:
		score += 6
	case words < thinWords:
		score -= 6
		highlights = types.AppendUnique(highlights, "Resume is thin; expand on experience.")
	case words > bloatedWords:
		score -= 4
		highlights = types.AppendUnique(highlights, "Resume runs long; trim to the strongest content.")
	}

	tone := "Balanced"
	switch firstPerson := patterns.CountFirstPerson(text); {
	case firstPerson >= personalTone:
		tone = "Personal"
		score -= 4
	case firstPerson <= professionalMax:
		tone = "Professional"
		score += 3
	}

	if patterns.HasEmail(text) {
		score += 2
	}
	if patterns.HasPhone(text) {
		score += 2
	}
	if patterns.HasLinkedIn(text) {
		score += 3
		badges = types.AppendUnique(badges, "LinkedIn linked")
	}
	if patterns.HasGitHub(text) {
		score += 2
	}
	if patterns.HasDegree(text) {
		score += 3
	}
	if patterns.HasWorkSamples(text) {
		score += 3
		badges = types.AppendUnique(badges, "Work samples linked")
	}

	if patterns.CountBuzzwords(text) >= buzzwordLimit {
		score -= 6
		highlights = types.AppendUnique(highlights, "Generic buzzword overload weakens the profile.")
	}
	if patterns.HasSuspiciousCertification(text) {
		score -= 5
		highlights = types.AppendUnique(highlights, "Non-standard certification claims detected.")
	}
	if patterns.DuplicateLineCount(text) >= duplicateLines {
		score -= 8
		highlights = types.AppendUnique(highlights, "Repeated template lines detected.")
	}

	span, hasYears := patterns.YearSpan(text)
	switch {
	case !hasYears:
		score -= 5
		highlights = types.AppendUnique(highlights, "No dates found; add a timeline.")
	case span > maxYearSpan:
		score -= 8
		highlights = types.AppendUnique(highlights, "Employment dates span an implausible range.")
	}

	if patterns.MaxClaimedYears(text) >= maxPlausibleYoE && !patterns.HasSeniorTitle(text) {
		score -= 6
		highlights = types.AppendUnique(highlights, "High claimed experience without senior-level titles.")
	}

	// Diminishing returns near the top of the scale: gains above the knee
	// count at half credit so well-formatted resumes don't all cluster at the
	// ceiling.
	if score > p.SaturationKnee {
		score = p.SaturationKnee + (score-p.SaturationKnee)/2
	}
	score = clamp(score, p.ResumeFloor, p.ResumeCeiling)

	return &types.ResumeInsights{
		ATSScore:    score,
		Highlights:  highlights,
		Badges:      badges,
		Tone:        tone,
		FocusArea:   focusArea(text),
		SignalLabel: signalLabel(score),
	}
}

func signalLabel(score int) string {
	switch {
	case score >= 80:
		return "ATS Optimized"
	case score >= 65:
		return "Strong Match"
	case score >= 50:
		return "Moderate Match"
	default:
		return "Needs Improvement"
	}
}

func focusArea(text string) string {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "engineer") || strings.Contains(normalized, "developer") || strings.Contains(normalized, "software"):
		return "Technical"
	case strings.Contains(normalized, "design") || strings.Contains(normalized, "ux") || strings.Contains(normalized, "figma"):
		return "Design"
	case strings.Contains(normalized, "marketing") || strings.Contains(normalized, "sales") || strings.Contains(normalized, "seo"):
		return "Growth"
	case strings.Contains(normalized, "product manager") || strings.Contains(normalized, "roadmap"):
		return "Product"
	case strings.Contains(normalized, "data analy") || strings.Contains(normalized, "machine learning") || strings.Contains(normalized, "data science"):
		return "Data"
	default:
		return "General"
	}
}
