package fetch

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Selectors whose content is never visible text.
//
//nolint:gochecknoglobals // static selector list
var noiseSelectors = []string{
	"script",
	"style",
	"noscript",
	"iframe",
	"svg",
	"nav",
	"footer",
	".cookie-banner",
	".cookie-consent",
}

//nolint:gochecknoglobals // compiled once at init
var reSpaceRuns = regexp.MustCompile(`[ \t]{2,}`)

// ExtractText reduces an HTML document to its visible text, dropping script,
// style, and navigation noise. Block elements become line breaks so bullet
// and section structure survives for the analyzer.
func ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	var sb strings.Builder
	doc.Find("body").Each(func(_ int, body *goquery.Selection) {
		appendBlockText(body, &sb)
	})
	if sb.Len() == 0 {
		// Fragment without a body element.
		appendBlockText(doc.Selection, &sb)
	}

	text := reSpaceRuns.ReplaceAllString(sb.String(), " ")
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// Elements that imply a line break around their content.
//
//nolint:gochecknoglobals // static element set
var blockElements = map[string]bool{
	"p": true, "div": true, "section": true, "article": true,
	"li": true, "ul": true, "ol": true, "br": true, "tr": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func appendBlockText(sel *goquery.Selection, sb *strings.Builder) {
	sel.Contents().Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			sb.WriteString(node.Text())
			return
		}
		name := goquery.NodeName(node)
		if blockElements[name] {
			sb.WriteString("\n")
			if name == "li" {
				sb.WriteString("- ")
			}
		}
		appendBlockText(node, sb)
		if blockElements[name] {
			sb.WriteString("\n")
		}
	})
}
