package readme

import (
	"regexp"
	"strings"
)

// ScoringServiceName is the scoring-engine service. It must never be
// disabled regardless of what the README text pattern-matches to.
const ScoringServiceName = "CCS Client"

var (
	// Tolerant of the heading/list boundary: the label may sit inside a
	// heading tag, before a colon, or on its own line.
	// The lazy capture stops at the next heading or end of input, which
	// keeps it from swallowing the rest of the document.
	criticalSectionRe = regexp.MustCompile(`(?is)critical services\s*:?\s*(?:</h[1-6]>)?(.*?)(?:<h[1-6]|\z)`)

	disableIntentRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)disable the ([A-Za-z0-9][A-Za-z0-9 ._-]{0,58}?) service`),
		regexp.MustCompile(`(?i)the ([A-Za-z0-9][A-Za-z0-9 ._-]{0,58}?) service (?:should|must) be disabled`),
	}

	noneRe = regexp.MustCompile(`(?i)\bnone\b`)
)

const maxServiceNameLen = 50

// extractServices fills the critical and prohibited service lists, then
// applies the scoring-engine override. The override is a final correction
// step on purpose: it must win over every other pattern match, so it cannot
// be interleaved with the passes it corrects.
func extractServices(doc *PolicyDocument, text string) {
	extractCriticalServices(doc, text)
	extractProhibitedServices(doc, text)
	applyScoringServiceOverride(doc, text)
}

func extractCriticalServices(doc *PolicyDocument, text string) {
	m := criticalSectionRe.FindStringSubmatch(text)
	if m == nil {
		return
	}
	body := m[1]
	items := listItems(body)
	if len(items) == 0 {
		// Bare "Critical Services: (none)" with no list at all.
		return
	}
	for _, item := range items {
		if noneRe.MatchString(item) {
			continue
		}
		doc.addCriticalService(item)
	}
}

func extractProhibitedServices(doc *PolicyDocument, text string) {
	for _, re := range disableIntentRes {
		for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
			// Go regexp has no lookbehind; inspect a short window before the
			// match so "Do not stop or disable the X service" warnings are
			// not read as disable instructions.
			if precededByNegation(text, m[0]) {
				continue
			}
			name := strings.TrimSpace(text[m[2]:m[3]])
			if name == "" || len(name) >= maxServiceNameLen {
				continue
			}
			if doc.HasCriticalService(name) {
				continue
			}
			doc.addProhibitedService(name)
		}
	}
}

func precededByNegation(text string, pos int) bool {
	start := pos - 24
	if start < 0 {
		start = 0
	}
	window := strings.ToLower(text[start:pos])
	return strings.Contains(window, "do not ") || strings.Contains(window, "don't ")
}

// applyScoringServiceOverride enforces the scoring-engine invariant: when
// the README warns "do not stop ... ccs client", any CCS entry is purged
// from the prohibited list and the client is pinned as critical, even if an
// explicit critical-services list said "none".
func applyScoringServiceOverride(doc *PolicyDocument, text string) {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "do not stop") || !strings.Contains(lower, "ccs client") {
		return
	}
	kept := doc.ProhibitedServices[:0]
	for _, svc := range doc.ProhibitedServices {
		if strings.Contains(strings.ToLower(svc), "ccs") {
			continue
		}
		kept = append(kept, svc)
	}
	doc.ProhibitedServices = kept
	doc.addCriticalService(ScoringServiceName)
}
