package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/RohanBisht33/trustscan-app/internal/patterns"
)

// Metadata describes an ingested text block: provenance plus the structural
// counts the scorers also consult.
type Metadata struct {
	URL          string `json:"url,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339
	Hash         string `json:"hash"`      // SHA256 hex digest of the cleaned text
	Chars        int    `json:"chars"`
	Words        int    `json:"words"`
	BulletLines  int    `json:"bullet_lines"`
	SectionHints int    `json:"section_hints"` // colon-terminated headers
}

// NewMetadata computes metadata for cleaned text.
func NewMetadata(text string, url string) *Metadata {
	return &Metadata{
		URL:          url,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Hash:         computeHash(text),
		Chars:        len(text),
		Words:        patterns.WordCount(text),
		BulletLines:  patterns.CountBullets(text),
		SectionHints: patterns.CountColonSections(text),
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ToJSON marshals the metadata to pretty-printed JSON.
func (m *Metadata) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return data, nil
}
