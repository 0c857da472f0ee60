package classify

import (
	"regexp"
	"strings"

	"github.com/RohanBisht33/trustscan-app/internal/patterns"
)

//nolint:gochecknoglobals // compiled once at init
var reAboutCompany = regexp.MustCompile(`(?i)\b(about (us|the company)|company overview)\b`)

// Keyword pairs that co-occur in real job descriptions. Both words present
// scores double what either alone does.
//
//nolint:gochecknoglobals // static keyword catalog
var jobKeywordSets = [][2]string{
	{"responsibilities", "role"},
	{"requirements", "qualifications"},
	{"experience", "years"},
	{"salary", "compensation"},
	{"apply", "application"},
	{"benefits", "perks"},
	{"team", "company"},
}

// Threshold the combined keyword/structure/length score must reach.
const likelyJobThreshold = 12

// LikelyJob is the cheap fallback used when the classifier stays unknown: it
// scores keyword co-occurrence, bullet density, section structure, and length
// to decide whether the text is nonetheless probably a job description.
func LikelyJob(text string) bool {
	if text == "" {
		return false
	}
	normalized := strings.ToLower(text)

	lengthScore := len(text) / 600
	if lengthScore > 10 {
		lengthScore = 10
	}

	hitScore := 0
	for _, set := range jobKeywordSets {
		first := strings.Contains(normalized, set[0])
		second := strings.Contains(normalized, set[1])
		switch {
		case first && second:
			hitScore += 4
		case first || second:
			hitScore += 2
		}
	}

	bulletScore := patterns.CountBullets(text) * 3 / 2
	if bulletScore > 6 {
		bulletScore = 6
	}

	structureScore := patterns.CountColonSections(text) * 6 / 5
	if structureScore > 6 {
		structureScore = 6
	}

	return hitScore+bulletScore+structureScore+lengthScore >= likelyJobThreshold
}
