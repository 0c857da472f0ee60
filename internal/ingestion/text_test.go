package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizeLineEndings(t *testing.T) {
	input := "Line 1\r\nLine 2\rLine 3\nLine 4"
	result := CleanText(input)

	assert.NotContains(t, result, "\r")
	assert.Contains(t, result, "Line 2\nLine 3")
}

func TestCleanText_CollapsesInnerSpaces(t *testing.T) {
	result := CleanText("Line    with    multiple    spaces")

	assert.Equal(t, "Line with multiple spaces", result)
}

func TestCleanText_SquashesBlankRuns(t *testing.T) {
	result := CleanText("Line 1\n\n\n\n\nLine 2")

	assert.Equal(t, "Line 1\n\nLine 2", result)
}

func TestCleanText_PreservesBulletIndent(t *testing.T) {
	input := "Section:\n  - first item\n  - second item\nafter"
	result := CleanText(input)

	assert.Contains(t, result, "  - first item")
	assert.Contains(t, result, "  - second item")
}

func TestCleanText_DropsNonBulletIndent(t *testing.T) {
	result := CleanText("    plain indented line")

	assert.Equal(t, "plain indented line", result)
}

func TestCleanText_EmptyAndWhitespaceInput(t *testing.T) {
	assert.Empty(t, CleanText(""))
	assert.Empty(t, CleanText("   \n \t \n"))
}

func TestCleanText_Deterministic(t *testing.T) {
	input := "Some   text\n\n\nwith   noise\r\n- and a bullet"

	assert.Equal(t, CleanText(input), CleanText(input))
}

func TestFromFile_ReadsAndCleans(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listing.txt")
	require.NoError(t, os.WriteFile(path, []byte("We are   hiring\r\n\r\n\r\nApply now"), 0o644))

	text, meta, err := FromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "We are hiring\n\nApply now", text)
	require.NotNil(t, meta)
	assert.Equal(t, len(text), meta.Chars)
	assert.Empty(t, meta.URL)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, _, err := FromFile(filepath.Join(t.TempDir(), "absent.txt"))

	var readErr *ReadError
	require.ErrorAs(t, err, &readErr)
}
