package readme

import "regexp"

// Second-level headings delimit sections. Open and close tags are located
// separately so a heading may carry nested inline markup, and an unclosed or
// overlapping <h2> cannot swallow the following real heading; the scan simply
// resumes at the next opening tag.
var (
	h2OpenRe  = regexp.MustCompile(`(?i)<h2[^>]*>`)
	h2CloseRe = regexp.MustCompile(`(?i)</h2\s*>`)
)

// extractSections splits the decoded markup into heading -> raw body pairs.
// Keys are lower-cased heading text; bodies are the literal markup between
// one heading and the next (or end of document). No headings, no sections.
func extractSections(doc *PolicyDocument, text string) {
	opens := h2OpenRe.FindAllStringIndex(text, -1)
	for i, open := range opens {
		limit := len(text)
		if i+1 < len(opens) {
			limit = opens[i+1][0]
		}
		// Heading content runs to the matching close tag. A missing close tag
		// ends the heading at the next opening instead.
		contentEnd := limit
		bodyStart := limit
		if close := h2CloseRe.FindStringIndex(text[open[1]:limit]); close != nil {
			contentEnd = open[1] + close[0]
			bodyStart = open[1] + close[1]
		}
		heading := normalizeWord(stripTags(text[open[1]:contentEnd]))
		if heading == "" {
			continue
		}
		if _, seen := doc.Sections[heading]; seen {
			continue
		}
		doc.Sections[heading] = text[bodyStart:limit]
		doc.SectionOrder = append(doc.SectionOrder, heading)
	}
}
