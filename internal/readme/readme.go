// Package readme turns a loosely structured competition README into a
// PolicyDocument the remediation tasks can act on. The input markup is
// treated as adversarial: headings may be missing, tags malformed, phrasing
// inconsistent. Every extraction pass is best-effort and a miss is silent;
// parsing never fails the caller.
package readme

import (
	"errors"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

// Parse reads the README at path and extracts the policy it describes.
// A missing or unreadable file is reported and yields an empty but valid
// document; the automation run must never die before remediation starts.
func Parse(path string) *PolicyDocument {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Warn().Str("path", path).Msg("readme file not found")
		} else {
			log.Warn().Err(err).Str("path", path).Msg("readme read failed")
		}
		return NewPolicyDocument()
	}
	return ParseText(string(raw))
}

// ParseText runs the extraction pipeline over already-loaded markup.
// Deterministic: the same text always yields a structurally equal document.
func ParseText(markup string) *PolicyDocument {
	doc := NewPolicyDocument()
	text := decodeEntities(markup)

	extractSections(doc, text)
	extractMetadata(doc, text)
	extractAuthorizedUsers(doc, text)
	extractSoftware(doc, text)
	extractServices(doc, text)
	extractGroups(doc, text)
	extractNewUsers(doc, text)
	extractGuidelines(doc, text)
	extractActionableItems(doc, text)

	return doc
}

var (
	titleTagRe = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	h1Re       = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	osRe       = regexp.MustCompile(`(?i)\b(Windows\s+(?:Server\s+)?(?:\d{4}\s*R?\d?|1[01]|[78]|Vista|XP)(?:\s+(?:Pro|Professional|Enterprise|Home|Education))?)\b`)
)

// extractMetadata fills the descriptive header fields. All three are
// best-effort; an absent value stays empty.
func extractMetadata(doc *PolicyDocument, text string) {
	if m := titleTagRe.FindStringSubmatch(text); m != nil {
		doc.Title = stripTags(m[1])
	}
	if doc.Title == "" {
		if m := h1Re.FindStringSubmatch(text); m != nil {
			doc.Title = stripTags(m[1])
		}
	}
	if m := osRe.FindStringSubmatch(text); m != nil {
		doc.OperatingSystem = strings.TrimSpace(m[1])
	}
	for _, key := range []string{"scenario", "background", "unique scenario"} {
		if body, ok := doc.Section(key); ok {
			doc.Scenario = textContent(body)
			break
		}
	}
}
