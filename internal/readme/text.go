package readme

import (
	stdhtml "html"
	"regexp"
	"strings"
	"unicode"
)

// MaxUsernameLineLen is the cutoff above which a line in the authorized-user
// block is assumed to be prose rather than a username. Kept as a constant so
// the threshold is tunable without touching the scanner.
const MaxUsernameLineLen = 100

// PrimaryUserMarker flags the account the player operates as.
const PrimaryUserMarker = "(you)"

var (
	tagRe           = regexp.MustCompile(`<[^>]*>`)
	listItemRe      = regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`)
	trailingPunctRe = regexp.MustCompile(`[.,;:!?)]+$`)
	nameListSplitRe = regexp.MustCompile(`(?i)\s*(?:,|\band\b|&)\s*`)
)

// stripTags removes markup tags, decodes character entities, and collapses
// whitespace runs left behind by tag removal. Safe on already-plain text.
func stripTags(s string) string {
	plain := stdhtml.UnescapeString(tagRe.ReplaceAllString(s, " "))
	return strings.Join(strings.Fields(plain), " ")
}

var lineBreakTagRe = regexp.MustCompile(`(?i)<(?:br\s*/?|/p|/li|/h[1-6]|/div|/tr)>`)

// stripTagsToLines is stripTags with line structure kept: break-level tags
// become newlines so line-oriented scanners see one entry per line even when
// the source used <br> instead of literal newlines.
func stripTagsToLines(s string) string {
	withBreaks := lineBreakTagRe.ReplaceAllString(s, "\n")
	plain := stdhtml.UnescapeString(tagRe.ReplaceAllString(withBreaks, " "))
	lines := strings.Split(plain, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// decodeEntities turns markup character entities into literal characters.
func decodeEntities(s string) string {
	return stdhtml.UnescapeString(s)
}

// nonEmptyLines splits s into trimmed lines, dropping blanks.
func nonEmptyLines(s string) []string {
	raw := strings.Split(s, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if t := strings.TrimSpace(line); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// trimTrailingPunct drops sentence punctuation left over from clause capture.
func trimTrailingPunct(s string) string {
	return strings.TrimSpace(trailingPunctRe.ReplaceAllString(strings.TrimSpace(s), ""))
}

// splitNameList breaks "a, b and c" style clauses into individual names.
func splitNameList(clause string) []string {
	parts := nameListSplitRe.Split(clause, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := trimTrailingPunct(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// isValidUsername is the shared predicate applied to every extracted identity
// token: non-empty, at most 50 characters, contains at least one letter, and
// does not smuggle in header or credential text.
func isValidUsername(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 50 {
		return false
	}
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return false
	}
	lower := strings.ToLower(s)
	if strings.Contains(lower, "password") || strings.Contains(lower, "authorized") || strings.Contains(lower, ":") {
		return false
	}
	return true
}

// listItems extracts the tag-stripped text of every <li> in a markup chunk.
func listItems(markup string) []string {
	matches := listItemRe.FindAllStringSubmatch(markup, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		if t := stripTags(m[1]); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func normalizeWord(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// startsUpper reports whether the first rune is an uppercase letter. Used as
// the product-name heuristic in the software detector.
func startsUpper(s string) bool {
	for _, r := range s {
		return unicode.IsUpper(r)
	}
	return false
}
