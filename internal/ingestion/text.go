// Package ingestion turns files and raw strings into cleaned text suitable
// for analysis, plus structural metadata about what was ingested.
package ingestion

import (
	"os"
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // compiled once at init
var (
	reInnerSpace = regexp.MustCompile(`[ \t]+`)
	reBlankRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving line structure:
// line endings become LF, runs of spaces collapse, bullets keep their
// indentation, and blank-line runs shrink to at most one blank line.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = reBlankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

func cleanLine(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.TrimSpace(trimmed) == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := reInnerSpace.ReplaceAllString(strings.TrimSpace(trimmed), " ")
	if indent > 0 && isBulletLine(trimmed) {
		// Bullets keep their indentation so list structure survives cleanup.
		return strings.Repeat(" ", indent) + content
	}
	return content
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}

// FromFile reads a text file, cleans it, and returns the text with metadata.
func FromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", nil, &ReadError{Path: path, Cause: err}
	}

	text := CleanText(string(content))
	return text, NewMetadata(text, ""), nil
}
