package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RohanBisht33/trustscan-app/internal/profiles"
)

const analystResume = "Jane Doe\n" +
	"jane.doe@example.com | +1 (555) 123-4567 | linkedin.com/in/janedoe\n" +
	"\n" +
	"Professional Summary:\n" +
	"Data analyst with 6 years of experience turning messy datasets into clear product decisions.\n" +
	"\n" +
	"Work Experience:\n" +
	"Senior Data Analyst, Acme Corp (2019 - 2024)\n" +
	"- Increased reporting efficiency by 20% after migrating dashboards to SQL pipelines.\n" +
	"- Reduced monthly cloud spend by 15% through AWS usage analysis.\n" +
	"- Led a team of 3 analysts and mentored two junior hires.\n" +
	"\n" +
	"Data Analyst, Widget Inc (2016 - 2019)\n" +
	"- Built Python models that improved forecast accuracy by 12%.\n" +
	"- Delivered weekly analytics reports to leadership.\n" +
	"\n" +
	"Education:\n" +
	"B.Sc. Statistics, State University (2012 - 2016)\n" +
	"\n" +
	"Skills: Python, SQL, AWS, analytics, agile, git, docker\n"

func TestScoreResume_NilBelowMinimumLength(t *testing.T) {
	p := profiles.Default()

	insights := ScoreResume("My skills: typography. I am a designer.", p)

	assert.Nil(t, insights)
}

func TestScoreResume_StrongResume(t *testing.T) {
	p := profiles.Default()

	insights := ScoreResume(analystResume, p)
	require.NotNil(t, insights)

	assert.GreaterOrEqual(t, insights.ATSScore, 65)
	assert.LessOrEqual(t, insights.ATSScore, p.ResumeCeiling)
	assert.Contains(t, insights.Badges, "Skill stack")
	assert.Contains(t, insights.Badges, "Structured formatting")
	assert.Contains(t, insights.Badges, "LinkedIn linked")
	assert.Equal(t, "Professional", insights.Tone)
	assert.Equal(t, "Data", insights.FocusArea)
}

func TestScoreResume_ScoreStaysWithinBounds(t *testing.T) {
	p := profiles.Default()

	// A long rambling text with every penalty stacked still floors at the
	// profile minimum rather than collapsing to zero.
	weak := "I am a results-driven self-starter and team player who thinks outside the box. " +
		"I am a hard-working go-getter with synergy. I have 30 years of experience as a certified ninja. " +
		"I did many things. I did them again. My work was good and I liked it very much. " +
		"- I was responsible for handling the daily workload every day\n" +
		"- I was responsible for handling the daily workload every day\n" +
		"- I was responsible for handling the daily workload every day\n" +
		"- I was responsible for handling the daily workload every day\n" +
		"- I was responsible for handling the daily workload every day\n" +
		"- I was responsible for handling the daily workload every day\n"

	insights := ScoreResume(weak, p)
	require.NotNil(t, insights)

	assert.GreaterOrEqual(t, insights.ATSScore, p.ResumeFloor)
	assert.LessOrEqual(t, insights.ATSScore, p.ResumeCeiling)
	assert.Equal(t, "Needs Improvement", insights.SignalLabel)
}

func TestScoreResume_AddingSectionNeverLowersScore(t *testing.T) {
	p := profiles.Default()

	base := ScoreResume(analystResume, p)
	augmented := ScoreResume(analystResume+"\nCertifications: AWS Certified Solutions Architect.\n", p)

	require.NotNil(t, base)
	require.NotNil(t, augmented)
	assert.GreaterOrEqual(t, augmented.ATSScore, base.ATSScore)
	assert.Contains(t, augmented.Badges, "Credentials")
}

func TestScoreResume_PersonalToneDetected(t *testing.T) {
	p := profiles.Default()

	text := "Work Experience: my first job was great and I loved it.\n" +
		"I did what I could, and my manager liked me, so I stayed, and my role grew as I learned.\n" +
		"I think my best work came when I trusted my instincts, and my team backed me, as I hoped.\n" +
		"Education: I finished my degree while I worked, which my family supported.\n" +
		"Skills: I can do whatever my project needs me to do, and I enjoy it.\n"

	insights := ScoreResume(text, p)
	require.NotNil(t, insights)

	assert.Equal(t, "Personal", insights.Tone)
}

func TestScoreResume_ImplausibleClaimsPenalized(t *testing.T) {
	p := profiles.Default()

	// Strip the senior title so the claim has nothing to back it up.
	plain := strings.ReplaceAll(analystResume, "Senior ", "")
	inflated := plain + "\nOver 30 years of experience delivering results.\n"

	base := ScoreResume(plain, p)
	penalized := ScoreResume(inflated, p)

	require.NotNil(t, base)
	require.NotNil(t, penalized)
	assert.Less(t, penalized.ATSScore, base.ATSScore)
	assert.Contains(t, penalized.Highlights, "High claimed experience without senior-level titles.")
}

func TestScoreResume_ThinContentHighlighted(t *testing.T) {
	text := "Professional Summary: analyst.\nWork Experience: one internship in 2023.\n" +
		"Education: graduated in 2022.\nSkills: spreadsheets.\nContact: someone@example.com\n" +
		"A short resume without much detail beyond the section names themselves."

	insights := ScoreResume(text, profiles.Default())
	require.NotNil(t, insights)

	assert.Contains(t, insights.Highlights, "Resume is thin; expand on experience.")
}

func TestSignalLabel_Bands(t *testing.T) {
	assert.Equal(t, "ATS Optimized", signalLabel(80))
	assert.Equal(t, "Strong Match", signalLabel(79))
	assert.Equal(t, "Strong Match", signalLabel(65))
	assert.Equal(t, "Moderate Match", signalLabel(64))
	assert.Equal(t, "Moderate Match", signalLabel(50))
	assert.Equal(t, "Needs Improvement", signalLabel(49))
}

func TestFocusArea_Detection(t *testing.T) {
	assert.Equal(t, "Technical", focusArea("software engineer with backend experience"))
	assert.Equal(t, "Design", focusArea("ux practitioner fluent in figma"))
	assert.Equal(t, "Growth", focusArea("seo and content marketing specialist"))
	assert.Equal(t, "Product", focusArea("owns the quarterly roadmap reviews"))
	assert.Equal(t, "Data", focusArea("machine learning practitioner"))
	assert.Equal(t, "General", focusArea("operations coordinator for a logistics firm"))
}
