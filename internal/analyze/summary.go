package analyze

import (
	"fmt"

	"github.com/RohanBisht33/trustscan-app/internal/patterns"
)

const unknownSummary = "Content type unclear."

// jobSummary picks the one-line verdict for a job listing by score band.
func jobSummary(trustScore int) string {
	switch {
	case trustScore >= 75:
		return "This appears to be a legitimate job posting with no major red flags."
	case trustScore >= 50:
		return "This job posting seems reasonable but exercise caution."
	default:
		return "This job posting has several red flags. Proceed with extreme caution."
	}
}

// resumeSummary picks the one-line verdict for a resume by score band.
func resumeSummary(atsScore int, text string) string {
	words := patterns.WordCount(text)
	switch {
	case atsScore >= 80:
		return fmt.Sprintf("Polished resume: strong structure and keyword coverage across roughly %d words.", words)
	case atsScore >= 65:
		return fmt.Sprintf("Solid resume of about %d words; a few additions would strengthen it further.", words)
	case atsScore >= 50:
		return fmt.Sprintf("Average resume of about %d words; add quantified achievements and role keywords.", words)
	default:
		return fmt.Sprintf("Resume of about %d words needs work: structure, keywords, and measurable impact are thin.", words)
	}
}
