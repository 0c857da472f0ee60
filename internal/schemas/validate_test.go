package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsProfileSchema(t *testing.T) {
	path := ResolveSchemaPath(ProfileSchemaPath)

	assert.NotEmpty(t, path, "profile schema should resolve from the package directory")
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does-not-exist.json"))
}

func TestValidateProfile_AcceptsMinimalProfile(t *testing.T) {
	err := ValidateProfile([]byte(`{"name": "lenient"}`))
	assert.NoError(t, err)
}

func TestValidateProfile_AcceptsFullProfile(t *testing.T) {
	doc := `{
		"name": "strict",
		"min_classify_chars": 120,
		"decision_score": 14,
		"decision_margin": 6,
		"job_baseline": 55,
		"jitter_range": 3
	}`
	assert.NoError(t, ValidateProfile([]byte(doc)))
}

func TestValidateProfile_RejectsMissingName(t *testing.T) {
	err := ValidateProfile([]byte(`{"decision_margin": 4}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)
}

func TestValidateProfile_RejectsWrongType(t *testing.T) {
	err := ValidateProfile([]byte(`{"name": "x", "decision_margin": "four"}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateProfile_RejectsUnknownProperty(t *testing.T) {
	err := ValidateProfile([]byte(`{"name": "x", "unknown_knob": 1}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateProfile_RejectsOutOfRange(t *testing.T) {
	err := ValidateProfile([]byte(`{"name": "x", "jitter_range": 99}`))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidationError_MessageListsFields(t *testing.T) {
	verr := &ValidationError{Errors: []FieldError{
		{Field: "jitter_range", Message: "Must be less than or equal to 10"},
	}}

	assert.Contains(t, verr.Error(), "jitter_range")
}
