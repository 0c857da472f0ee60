// Package patterns holds the fixed catalog of regular-expression signals used
// by the classifier and scorers. The catalog is built once at init and never
// mutated; an invalid pattern is a programming error and panics at startup.
package patterns

import "regexp"

// Category groups signals by how much weight a single hit carries.
type Category string

const (
	// JobOnly signals are phrasing found almost exclusively in job postings.
	JobOnly Category = "job_only"
	// ResumeOnly signals are phrasing found almost exclusively in resumes.
	ResumeOnly Category = "resume_only"
	// JobContextual signals weakly favor job postings and are only trusted in aggregate.
	JobContextual Category = "job_contextual"
	// ResumeContextual signals weakly favor resumes and are only trusted in aggregate.
	ResumeContextual Category = "resume_contextual"
)

// Signal is one piece of classification or scoring evidence: a compiled
// pattern, the weight a hit contributes, and the human-readable message
// attached to the hit. Signals are independent; each is checked against the
// full input text regardless of the others.
type Signal struct {
	Pattern  *regexp.Regexp
	Weight   int
	Message  string
	Category Category
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var jobOnly = []Signal{
	{regexp.MustCompile(`(?i)\b(we are (hiring|looking for|seeking)|join our team|work with us)\b`), 10, "hiring language", JobOnly},
	{regexp.MustCompile(`(?i)\b(apply (now|here|today)|submit (your )?application)\b`), 10, "application call to action", JobOnly},
	{regexp.MustCompile(`(?i)\b(our company|our team|our organization) (is|seeks|needs)\b`), 10, "employer voice", JobOnly},
	{regexp.MustCompile(`(?i)\bjob (opening|vacancy|position|opportunity)\b`), 10, "vacancy wording", JobOnly},
	{regexp.MustCompile(`(?i)\b(salary range|compensation package|ctc|pay scale)\s*:`), 10, "compensation header", JobOnly},
	{regexp.MustCompile(`(?i)\b(interview process|selection process|hiring process)\b`), 10, "hiring process wording", JobOnly},
	{regexp.MustCompile(`(?i)\b(what (you'll|you will) do|your responsibilities will include)\b`), 10, "second-person role pitch", JobOnly},
	{regexp.MustCompile(`(?i)\b(we offer|benefits include|perks)\s*:`), 10, "benefits header", JobOnly},
	{regexp.MustCompile(`(?i)\babout (the role|this position|this job)\b`), 10, "role introduction", JobOnly},
	{regexp.MustCompile(`(?i)\b(reporting to|reports to|work under)\b`), 10, "reporting line", JobOnly},
	{regexp.MustCompile(`(?i)\b(posted|published)\s+\d+\s+(day|hour|week)s?\s+ago`), 10, "posting timestamp", JobOnly},
	{regexp.MustCompile(`(?i)\b(deadline|last date to apply|apply before)\b`), 10, "application deadline", JobOnly},
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var resumeOnly = []Signal{
	{regexp.MustCompile(`(?i)\b(my (name is|objective|goal)|i am (a|an)|about me)\b`), 10, "first-person introduction", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(personal (information|details|profile)|contact information)\s*:`), 10, "personal details header", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(career (objective|goal|summary)|professional summary|objective statement)\s*:`), 10, "summary header", ResumeOnly},
	{regexp.MustCompile(`(?i)\bmy (skills|experience|education|projects|achievements)\b`), 10, "first-person credentials", ResumeOnly},
	{regexp.MustCompile(`(?i)\bi (have|possess|developed|worked|built|created|led|managed)\b`), 10, "first-person achievements", ResumeOnly},
	{regexp.MustCompile(`(?i)\breferences (available|upon request)\b`), 10, "references line", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(hobbies and interests|personal interests|extracurricular)\s*:`), 10, "interests header", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(cgpa|gpa|percentage|marks obtained)\s*[:=]`), 10, "grade disclosure", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(declaration|i hereby declare)\b`), 10, "declaration line", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(date of birth|father'?s name|mother'?s name|nationality)\s*:`), 10, "biographical fields", ResumeOnly},
	{regexp.MustCompile(`(?i)\b(languages known|language proficiency)\s*:`), 10, "language proficiency header", ResumeOnly},
	{regexp.MustCompile(`(?i)linkedin\.com/in/\w+`), 10, "LinkedIn profile URL", ResumeOnly},
	{regexp.MustCompile(`(?i)github\.com/\w+`), 10, "GitHub profile URL", ResumeOnly},
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var jobContextual = []Signal{
	{regexp.MustCompile(`(?i)\b(requirements?|eligibility)\s*:`), 3, "requirements header", JobContextual},
	{regexp.MustCompile(`(?i)\b(responsibilities|duties|role description)\s*:`), 3, "responsibilities header", JobContextual},
	{regexp.MustCompile(`(?i)\b(must have|should have|required)\s*:`), 2, "must-have header", JobContextual},
	{regexp.MustCompile(`(?i)\b(preferred|nice to have|bonus)\s*:`), 2, "nice-to-have header", JobContextual},
	{regexp.MustCompile(`(?i)\b\d+\+?\s*years? of experience (required|needed)\b`), 3, "experience requirement", JobContextual},
	{regexp.MustCompile(`(?i)\b(full[\s-]?time|part[\s-]?time|contract|freelance|remote|hybrid)\s+(position|role|job)\b`), 3, "employment type phrase", JobContextual},
}

//nolint:gochecknoglobals // static signal catalog, read-only after init
var resumeContextual = []Signal{
	{regexp.MustCompile(`(?i)\b(work experience|professional experience|employment history)\s*:`), 3, "experience header", ResumeContextual},
	{regexp.MustCompile(`(?i)\b(education|academic background)\s*:`), 3, "education header", ResumeContextual},
	{regexp.MustCompile(`(?i)\b(skills?|technical skills|core competencies)\s*:`), 2, "skills header", ResumeContextual},
	{regexp.MustCompile(`(?i)\b(projects?|portfolio|work samples)\s*:`), 2, "projects header", ResumeContextual},
	{regexp.MustCompile(`(?i)\b(certifications?|training|courses)\s*:`), 2, "certifications header", ResumeContextual},
}

// JobExclusive returns the job-only signal group. Callers must not modify the
// returned slice.
func JobExclusive() []Signal { return jobOnly }

// ResumeExclusive returns the resume-only signal group.
func ResumeExclusive() []Signal { return resumeOnly }

// JobWeak returns the job contextual signal group.
func JobWeak() []Signal { return jobContextual }

// ResumeWeak returns the resume contextual signal group.
func ResumeWeak() []Signal { return resumeContextual }
