package patterns

import "regexp"

// Risk and trust signals consumed by the job scorer. Weights are positive
// magnitudes; the scorer subtracts risk weights and adds trust weights.

//nolint:gochecknoglobals // static signal catalog, read-only after init
var jobRisk = []Signal{
	{regexp.MustCompile(`(?i)\b(pay.{0,20}upfront|wire transfer|western union|money ?gram)\b`), 30, "Payment required upfront", JobContextual},
	{regexp.MustCompile(`(?i)\b(guaranteed.{0,20}income|get rich quick|easy money)\b`), 25, "Unrealistic promises", JobContextual},
	{regexp.MustCompile(`(?i)\b(send|share|upload)\b.{0,40}\b(id card|passport|driver'?s licen[sc]e|aadhaar|ssn|social security)\b`), 25, "Requests sensitive personal documents", JobContextual},
	{regexp.MustCompile(`(?i)\b(work from home|no experience (required|needed))\b[\s\S]{0,120}\$\d{3,}`), 20, "Suspicious work-from-home offer", JobContextual},
	{regexp.MustCompile(`(?i)\b(bitcoin|crypto|gift card|skrill)\b`), 20, "Suspicious payment method", JobContextual},
	{regexp.MustCompile(`(?i)\b(refundable deposit|training bond)\b`), 20, "Mentions deposit/bond", JobContextual},
	{regexp.MustCompile(`(?i)\b(registration fee|training fee|security deposit|processing fee|application fee)\b`), 18, "Fee mentioned in hiring process", JobContextual},
	{regexp.MustCompile(`(?i)\b(telegram|whatsapp|signal|wechat|imo)\b`), 15, "Requests chat apps for hiring", JobContextual},
	{regexp.MustCompile(`(?i)(tinyurl\.com|bit\.ly|goo\.gl|t\.co/)`), 12, "Uses shortened links", JobContextual},
	{regexp.MustCompile(`(?i)@(gmail|yahoo|hotmail)\.`), 10, "Uses generic email provider", JobContextual},
	{regexp.MustCompile(`(?i)\bclick\s+(here|this link)\b`), 8, "Generic click-here instruction", JobContextual},
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var jobTrust = []Signal{
	{regexp.MustCompile(`(?i)\b(benefits|insurance|401k|pto|paid time off)\b`), 10, "Mentions employee benefits", JobContextual},
	{regexp.MustCompile(`(?i)\b(company website|official site|career page)\b`), 10, "Has company website", JobContextual},
	{regexp.MustCompile(`(?i)\b(salary|ctc|compensation|pay range)\b[^$€₹£\n]{0,40}(\$|€|₹|£)?\d+`), 8, "Shares compensation details", JobContextual},
	{regexp.MustCompile(`(?i)\b(llc|inc\.?|ltd|corp\.?|gmbh|pte)\b`), 6, "Registered company reference", JobContextual},
	{regexp.MustCompile(`(?i)\b(interview process|application process)\b`), 5, "Clear hiring process", JobContextual},
	{regexp.MustCompile(`(?i)\b(equal opportunity|eeo|background check|employment verification)\b`), 5, "Mentions compliance policies", JobContextual},
	{regexp.MustCompile(`(?i)\b(remote|hybrid|onsite|on-site|relocation)\b`), 4, "Clarifies work model", JobContextual},
	{regexp.MustCompile(`(?i)\b(employment type|job type|schedule)\b`), 4, "States employment type", JobContextual},
	{regexp.MustCompile(`(?i)\b(hiring manager|talent acquisition|recruiter|hr team)\b`), 3, "Mentions hiring contact", JobContextual},
}

// JobRisk returns the risk signal table, strongest weight first.
func JobRisk() []Signal { return jobRisk }

// JobTrust returns the trust signal table, strongest weight first.
func JobTrust() []Signal { return jobTrust }

// Structural patterns shared by the job scorer and the likely-job fallback.
//
//nolint:gochecknoglobals // compiled once at init
var (
	reAnyEmail     = regexp.MustCompile(`@[A-Za-z0-9-]+\.[A-Za-z]{2,}`)
	reStructureHdr = regexp.MustCompile(`(?i)\b(responsibilities|requirements|qualifications)\b`)
	reBullet       = regexp.MustCompile(`[\r\n]+[ \t]*([-•*]|[0-9]+\.)`)
	reColonSection = regexp.MustCompile(`\b[A-Z][A-Za-z ]{2,40}:`)
	reUppercaseRun = regexp.MustCompile(`[A-Z]{4,}`)
	reFirstPerson  = regexp.MustCompile(`(?i)\b(i|my|me)\b`)
	reActionVerb   = regexp.MustCompile(`(?i)\b(design|build|lead|coordinate|deliver|implement|support|optimize|drive|scale|mentor)(s|ed|ing)?\b`)
)

// HasEmail reports whether the text contains anything shaped like an email address.
func HasEmail(text string) bool { return reAnyEmail.MatchString(text) }

// HasStructureSections reports whether standard listing sections
// (responsibilities, requirements, qualifications) appear in the text.
func HasStructureSections(text string) bool { return reStructureHdr.MatchString(text) }

// CountBullets counts bullet or numbered list markers at line starts.
func CountBullets(text string) int { return len(reBullet.FindAllString(text, -1)) }

// CountColonSections counts capitalized colon-terminated section headers.
func CountColonSections(text string) int { return len(reColonSection.FindAllString(text, -1)) }

// CountFirstPerson counts first-person pronoun occurrences.
func CountFirstPerson(text string) int { return len(reFirstPerson.FindAllString(text, -1)) }

// CountActionVerbs counts occurrences of concrete action verbs.
func CountActionVerbs(text string) int { return len(reActionVerb.FindAllString(text, -1)) }

// UppercaseRatio returns the share of the text made up of shouted
// (4+ consecutive uppercase letter) runs.
func UppercaseRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	total := 0
	for _, run := range reUppercaseRun.FindAllString(text, -1) {
		total += len(run)
	}
	return float64(total) / float64(len(text))
}
