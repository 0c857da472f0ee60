package patterns

import (
	"regexp"
	"strings"
)

// SectionSignal is a resume section cue: matching it earns score weight and a
// short badge shown in the insights panel.
type SectionSignal struct {
	Pattern *regexp.Regexp
	Weight  int
	Badge   string
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var resumeSections = []SectionSignal{
	{regexp.MustCompile(`(?i)\b(work experience|professional experience|employment history)\b`), 8, "Experience depth"},
	{regexp.MustCompile(`(?i)\b(education|academic background)\b`), 6, "Education detailed"},
	{regexp.MustCompile(`(?i)\b(skills?|core competencies|technical skills)\b`), 6, "Skill stack"},
	{regexp.MustCompile(`(?i)\b(professional summary|career (objective|summary)|about me)\b`), 5, "Summary present"},
	{regexp.MustCompile(`(?i)\b(projects?|case studies|portfolio)\b`), 5, "Project showcase"},
	{regexp.MustCompile(`(?i)\b(certifications?|awards|recognition)\b`), 4, "Credentials"},
}

// ResumeSections returns the resume section table.
func ResumeSections() []SectionSignal { return resumeSections }

// ATS keyword vocabulary. Coverage is measured in distinct keywords, so the
// alternation is matched over the whole text and deduplicated. Longer variants
// sit before their prefixes.
//
//nolint:gochecknoglobals // compiled once at init
var reATSKeyword = regexp.MustCompile(`(?i)\b(javascript|typescript|python|java|golang|react|angular|node|sql|nosql|postgres|mongodb|aws|azure|gcp|docker|kubernetes|terraform|git|agile|scrum|machine learning|data science|analytics|analysis|ai|ml|figma|ux|design|marketing|sales|seo|product|roadmap|finance|leadership)\b`)

// CountATSKeywords returns the number of distinct recognized ATS keywords in
// the text.
func CountATSKeywords(text string) int {
	seen := make(map[string]bool)
	for _, kw := range reATSKeyword.FindAllString(text, -1) {
		seen[strings.ToLower(kw)] = true
	}
	return len(seen)
}

//nolint:gochecknoglobals // compiled once at init
var (
	rePercentMetric = regexp.MustCompile(`\b\d+(\.\d+)?%`)
	reOutcomeMetric = regexp.MustCompile(`(?i)\b(increased|reduced|grew|improved|saved|boosted|cut|accelerated|optimized|delivered)\b[^.\n]{0,60}\b\d+`)
	reLeadership    = regexp.MustCompile(`(?i)\b(led|managed|mentored|spearheaded|directed|orchestrated|coordinated|supervised)\b`)
	reBuzzword      = regexp.MustCompile(`(?i)\b(team player|hard[- ]working|go[- ]getter|synergy|think outside the box|results[- ]driven|self[- ]starter|detail[- ]oriented)\b`)
	reOddCert       = regexp.MustCompile(`(?i)\bcertified\s+(ninja|guru|rockstar|wizard|genius)\b`)
	reYear          = regexp.MustCompile(`\b(19[5-9]\d|20[0-4]\d)\b`)
	reClaimedYoE    = regexp.MustCompile(`(?i)\b(\d{1,2})\+?\s*years? of experience\b`)
	reSeniorTitle   = regexp.MustCompile(`(?i)\b(senior|principal|staff|director|vp|chief|head of|lead)\b`)
	rePhone         = regexp.MustCompile(`\+?\d[\d ().-]{8,}\d`)
	reLinkedIn      = regexp.MustCompile(`(?i)linkedin\.com/in/`)
	reGitHub        = regexp.MustCompile(`(?i)github\.com/`)
	reDegree        = regexp.MustCompile(`(?i)\b(bachelor|master|phd|mba|b\.?tech|m\.?tech|b\.?sc|m\.?sc|degree|diploma)\b`)
	reWorkSample    = regexp.MustCompile(`(?i)\b(portfolio|behance\.net|dribbble\.com|github\.io|personal website)\b`)
)

// CountQuantifiedAchievements counts percentage figures and number-plus-outcome
// phrases, the quantified-impact evidence in a resume.
func CountQuantifiedAchievements(text string) int {
	return len(rePercentMetric.FindAllString(text, -1)) + len(reOutcomeMetric.FindAllString(text, -1))
}

// CountLeadershipVerbs counts leadership/ownership verbs.
func CountLeadershipVerbs(text string) int { return len(reLeadership.FindAllString(text, -1)) }

// CountBuzzwords counts generic filler phrases.
func CountBuzzwords(text string) int { return len(reBuzzword.FindAllString(text, -1)) }

// HasSuspiciousCertification reports non-standard certification claims.
func HasSuspiciousCertification(text string) bool { return reOddCert.MatchString(text) }

// YearSpan returns the spread between the earliest and latest 4-digit year in
// the text, and whether any year was found at all.
func YearSpan(text string) (span int, found bool) {
	years := reYear.FindAllString(text, -1)
	if len(years) == 0 {
		return 0, false
	}
	minY, maxY := 9999, 0
	for _, y := range years {
		v := int(y[0]-'0')*1000 + int(y[1]-'0')*100 + int(y[2]-'0')*10 + int(y[3]-'0')
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	return maxY - minY, true
}

// MaxClaimedYears returns the largest "N years of experience" claim, 0 if none.
func MaxClaimedYears(text string) int {
	maxYoE := 0
	for _, m := range reClaimedYoE.FindAllStringSubmatch(text, -1) {
		v := 0
		for _, c := range m[1] {
			v = v*10 + int(c-'0')
		}
		if v > maxYoE {
			maxYoE = v
		}
	}
	return maxYoE
}

// HasSeniorTitle reports whether senior-level title words appear.
func HasSeniorTitle(text string) bool { return reSeniorTitle.MatchString(text) }

// HasPhone reports whether a phone number appears.
func HasPhone(text string) bool { return rePhone.MatchString(text) }

// HasLinkedIn reports whether a LinkedIn profile link appears.
func HasLinkedIn(text string) bool { return reLinkedIn.MatchString(text) }

// HasGitHub reports whether a GitHub link appears.
func HasGitHub(text string) bool { return reGitHub.MatchString(text) }

// HasDegree reports whether education credential keywords appear.
func HasDegree(text string) bool { return reDegree.MatchString(text) }

// HasWorkSamples reports whether portfolio/work-sample links appear.
func HasWorkSamples(text string) bool { return reWorkSample.MatchString(text) }

// DuplicateLineCount returns how many distinct normalized lines longer than 20
// characters occur two or more times. Template copy-paste shows up as several
// near-identical bullet lines.
func DuplicateLineCount(text string) int {
	counts := make(map[string]int)
	for _, line := range strings.Split(text, "\n") {
		norm := strings.ToLower(strings.TrimSpace(line))
		norm = strings.TrimLeft(norm, "-•* \t")
		norm = strings.Join(strings.Fields(norm), " ")
		if len(norm) > 20 {
			counts[norm]++
		}
	}
	dupes := 0
	for _, n := range counts {
		if n >= 2 {
			dupes++
		}
	}
	return dupes
}

// WordCount counts whitespace-separated tokens.
func WordCount(text string) int { return len(strings.Fields(text)) }
