package readme

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var passwordLineRe = regexp.MustCompile(`(?i)^password\s?:\s*(.*)$`)

// extractAuthorizedUsers locates the block enumerating administrators and
// users and parses it line by line. The block is found either via a section
// titled with "Authorized Administrators" or, failing that, by scanning
// every preformatted region for one that looks like an account roster.
func extractAuthorizedUsers(doc *PolicyDocument, text string) {
	block := findUserBlock(doc, text)
	if block == "" {
		return
	}
	parseUserBlock(doc, block)
}

func findUserBlock(doc *PolicyDocument, text string) string {
	for _, heading := range doc.SectionOrder {
		if strings.Contains(heading, "authorized administrators") {
			return doc.Sections[heading]
		}
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return ""
	}
	var block string
	gq.Find("pre").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		lower := strings.ToLower(sel.Text())
		if strings.Contains(lower, "authorized") ||
			strings.Contains(lower, "administrator") ||
			strings.Contains(lower, "password") {
			block = sel.Text()
			return false
		}
		return true
	})
	return block
}

// parseUserBlock is a stateful scanner over the roster text. Headers and
// data are interleaved with no tabular structure, so two mutually exclusive
// mode flags attribute each line: entering the admin section clears the user
// section and vice versa. A password line always binds to the most recently
// seen user; before any user it is a no-op.
func parseUserBlock(doc *PolicyDocument, block string) {
	var inAdminSection, inUserSection bool
	var current *AuthorizedUser

	for _, line := range nonEmptyLines(stripTagsToLines(block)) {
		lower := strings.ToLower(line)

		if strings.Contains(lower, "authorized administrators") || strings.Contains(lower, "authorized admins") {
			inAdminSection, inUserSection = true, false
			continue
		}
		if strings.Contains(lower, "authorized user") {
			inAdminSection, inUserSection = false, true
			continue
		}

		if m := passwordLineRe.FindStringSubmatch(line); m != nil {
			if current != nil {
				current.Password = strings.TrimSpace(m[1])
			}
			continue
		}

		if !inAdminSection && !inUserSection {
			continue
		}
		if len(line) >= MaxUsernameLineLen {
			continue
		}

		username := line
		primary := false
		if idx := strings.Index(strings.ToLower(username), PrimaryUserMarker); idx >= 0 {
			username = username[:idx] + username[idx+len(PrimaryUserMarker):]
			primary = true
		}
		username = strings.TrimSpace(username)
		var notes string
		if fields := strings.Fields(username); len(fields) > 1 {
			// Anything after the account name is an annotation, not part
			// of the username.
			username = fields[0]
			notes = strings.Join(fields[1:], " ")
		}
		if !isValidUsername(username) {
			continue
		}

		user := AuthorizedUser{
			Username:      username,
			IsAdmin:       inAdminSection,
			IsPrimaryUser: primary,
			Notes:         notes,
		}
		if inAdminSection {
			doc.Administrators = append(doc.Administrators, user)
			current = &doc.Administrators[len(doc.Administrators)-1]
		} else {
			doc.Users = append(doc.Users, user)
			current = &doc.Users[len(doc.Users)-1]
		}
	}
}
