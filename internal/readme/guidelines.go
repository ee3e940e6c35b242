package readme

import "regexp"

const guidelinesHeading = "competition guidelines"

// Fallback for documents whose guidelines heading is not an <h2> the section
// splitter recognizes.
var guidelinesFallbackRe = regexp.MustCompile(`(?is)competition guidelines\s*(?:</h[1-6]>)?\s*(<[uo]l.*?</[uo]l>)`)

// extractGuidelines copies every list item under the guidelines section
// verbatim (tag-stripped, trimmed). A README without the section is normal.
func extractGuidelines(doc *PolicyDocument, text string) {
	body, ok := doc.Section(guidelinesHeading)
	if !ok {
		m := guidelinesFallbackRe.FindStringSubmatch(text)
		if m == nil {
			return
		}
		body = m[1]
	}
	doc.Guidelines = append(doc.Guidelines, listItems(body)...)
}
