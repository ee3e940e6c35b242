package readme

import (
	"regexp"
)

var (
	// Spans newlines: "Make a new group called Accounting and add the
	// following users to the Accounting group: john, mary and sue."
	groupRe = regexp.MustCompile(`(?is)(?:make|create) a (?:new )?group(?: (?:called|named))? ([A-Za-z0-9_-]+)\b.{0,200}?add\b.{0,200}?users?\b[^:<]{0,80}:\s*([^<.]{1,300})`)

	newUserRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:create|make) a new (?:account|user)(?: (?:named|called))? ([A-Za-z][A-Za-z0-9._-]{1,48})`),
		regexp.MustCompile(`(?i)new employee\b[^.<]{0,120}?named ([A-Za-z][A-Za-z0-9._-]{1,48})`),
	}
)

const minNewUsernameLen = 3

// extractGroups captures "create a group X and add users: ..." clauses.
// A GroupRequirement is only recorded when both a group name and at least
// one valid member survive filtering; a name with no members is useless to
// the provisioning task.
func extractGroups(doc *PolicyDocument, text string) {
	for _, m := range groupRe.FindAllStringSubmatch(text, -1) {
		groupName := trimTrailingPunct(m[1])
		if groupName == "" {
			continue
		}
		var members []string
		for _, token := range splitNameList(stripTags(m[2])) {
			if isValidUsername(token) {
				members = append(members, token)
			}
		}
		if len(members) == 0 {
			continue
		}
		doc.GroupRequirements = append(doc.GroupRequirements, GroupRequirement{
			GroupName: groupName,
			Members:   members,
		})
	}
}

// extractNewUsers scans for account-creation phrasing anywhere in the text.
func extractNewUsers(doc *PolicyDocument, text string) {
	for _, re := range newUserRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			candidate := trimTrailingPunct(m[1])
			if !isValidUsername(candidate) || len(candidate) < minNewUsernameLen {
				continue
			}
			if isCommonEnglishWord(candidate) {
				continue
			}
			doc.addUserToCreate(candidate)
		}
	}
}
