package readme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// minActionParagraphLen skips fragments too short to carry an instruction.
const minActionParagraphLen = 10

// actionDetector pairs a cheap keyword predicate with a category extractor.
// The classifier is a fixed decision table: detectors run in declaration
// order and are not mutually exclusive, so one paragraph can yield items in
// several categories. An extractor that cannot pin down a concrete entity
// returns nothing rather than a vague "review manually" row.
type actionDetector struct {
	match   func(lower string) bool
	extract func(doc *PolicyDocument, paragraph, lower string) []ActionableItem
}

var actionDetectors = []actionDetector{
	{matchUserCreation, extractUserCreationItems},
	{matchGroupManagement, extractGroupItems},
	{matchServiceAction, extractServiceItems},
	{matchSoftwareAction, extractSoftwareItems},
	{matchSecurityPolicy, extractSecurityPolicyItems},
	{matchFileOperation, extractFileOperationItems},
}

var paragraphRe = regexp.MustCompile(`(?is)<p[^>]*>(.*?)</p>`)

// extractActionableItems classifies every paragraph-level element in the
// document. Paragraphs no detector recognizes are kept aside for the
// optional advisor.
func extractActionableItems(doc *PolicyDocument, text string) {
	for _, paragraph := range documentParagraphs(text) {
		if len(paragraph) < minActionParagraphLen {
			continue
		}
		lower := strings.ToLower(paragraph)
		matched := false
		for _, det := range actionDetectors {
			if !det.match(lower) {
				continue
			}
			matched = true
			for _, item := range det.extract(doc, paragraph, lower) {
				doc.addActionableItem(item)
			}
		}
		if !matched {
			doc.UnmatchedParagraphs = append(doc.UnmatchedParagraphs, paragraph)
		}
	}
}

func documentParagraphs(text string) []string {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err == nil {
		var out []string
		gq.Find("p").Each(func(_ int, sel *goquery.Selection) {
			if t := strings.TrimSpace(sel.Text()); t != "" {
				out = append(out, t)
			}
		})
		if len(out) > 0 {
			return out
		}
	}
	// Malformed enough that the DOM parser found nothing; fall back to a
	// non-greedy scan of the raw markup.
	var out []string
	for _, m := range paragraphRe.FindAllStringSubmatch(text, -1) {
		if t := stripTags(m[1]); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// --- user creation ---

var userCreationRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:create|make|add) (?:a |an )?new (?:user|account)(?: (?:named|called))? ([A-Za-z][A-Za-z0-9._-]+)`),
	regexp.MustCompile(`(?i)(?:user|account) (?:named|called) ([A-Za-z][A-Za-z0-9._-]+)`),
	regexp.MustCompile(`(?i)new employee\b[^.]{0,120}?named ([A-Za-z][A-Za-z0-9._-]+)`),
}

func matchUserCreation(lower string) bool {
	verb := strings.Contains(lower, "create") || strings.Contains(lower, "make") || strings.Contains(lower, "add")
	noun := strings.Contains(lower, "user") || strings.Contains(lower, "account") || strings.Contains(lower, "employee")
	return verb && noun
}

func extractUserCreationItems(doc *PolicyDocument, paragraph, lower string) []ActionableItem {
	for _, re := range userCreationRes {
		m := re.FindStringSubmatch(paragraph)
		if m == nil {
			continue
		}
		username := trimTrailingPunct(m[1])
		if !isValidUsername(username) || len(username) < minNewUsernameLen || isCommonEnglishWord(username) {
			continue
		}
		doc.addUserToCreate(username)
		return []ActionableItem{{
			Type:        ActionCreateUser,
			Description: fmt.Sprintf("Create user account: %s", username),
			RawText:     paragraph,
			Details:     map[string]string{"Username": username},
		}}
	}
	return nil
}

// --- group management ---

var (
	groupCreateItemRe = regexp.MustCompile(`(?i)(?:create|make)\b[^.]{0,40}?group(?: (?:named|called))? ([A-Za-z0-9_-]+)`)
	groupAddItemRe    = regexp.MustCompile(`(?i)add (?:user )?([A-Za-z][A-Za-z0-9._-]*) to (?:the )?([A-Za-z0-9_-]+) group`)
	groupRemoveItemRe = regexp.MustCompile(`(?i)remove (?:user )?([A-Za-z][A-Za-z0-9._-]*) from (?:the )?([A-Za-z0-9_-]+) group`)
)

func matchGroupManagement(lower string) bool {
	return strings.Contains(lower, "group")
}

// extractGroupItems sub-classifies by keyword priority: create beats
// add-to beats remove-from. A generic group mention yields nothing.
func extractGroupItems(_ *PolicyDocument, paragraph, lower string) []ActionableItem {
	switch {
	case strings.Contains(lower, "create") || strings.Contains(lower, "make"):
		m := groupCreateItemRe.FindStringSubmatch(paragraph)
		if m == nil {
			return nil
		}
		name := trimTrailingPunct(m[1])
		if name == "" {
			return nil
		}
		return []ActionableItem{{
			Type:        ActionCreateGroup,
			Description: fmt.Sprintf("Create group: %s", name),
			RawText:     paragraph,
			Details:     map[string]string{"GroupName": name},
		}}
	case strings.Contains(lower, "add"):
		m := groupAddItemRe.FindStringSubmatch(paragraph)
		if m == nil || !isValidUsername(m[1]) {
			return nil
		}
		return []ActionableItem{{
			Type:        ActionAddUserToGroup,
			Description: fmt.Sprintf("Add user %s to group %s", m[1], m[2]),
			RawText:     paragraph,
			Details:     map[string]string{"Username": m[1], "GroupName": m[2]},
		}}
	case strings.Contains(lower, "remove"):
		m := groupRemoveItemRe.FindStringSubmatch(paragraph)
		if m == nil || !isValidUsername(m[1]) {
			return nil
		}
		return []ActionableItem{{
			Type:        ActionRemoveUserFromGroup,
			Description: fmt.Sprintf("Remove user %s from group %s", m[1], m[2]),
			RawText:     paragraph,
			Details:     map[string]string{"Username": m[1], "GroupName": m[2]},
		}}
	}
	return nil
}

// --- services ---

var (
	serviceWarningRe = regexp.MustCompile(`(?i)do not (?:stop|disable)(?: or (?:stop|disable))?\s+(?:the )?([A-Za-z0-9][A-Za-z0-9 ._-]{0,38}?)\s+service`)
	serviceVerbRe    = regexp.MustCompile(`(?i)(?:enable|disable|start|stop)\s+(?:the )?([A-Za-z0-9][A-Za-z0-9 ._-]{0,38}?)\s+service`)
	serviceStateRe   = regexp.MustCompile(`(?i)(?:the )?([A-Za-z0-9][A-Za-z0-9 ._-]{0,38}?)\s+service\s+(?:should|must|needs to)\s+be\s+(?:enabled|disabled|running|stopped)`)
)

func matchServiceAction(lower string) bool {
	if !strings.Contains(lower, "service") {
		return false
	}
	for _, verb := range []string{"enable", "disable", "start", "stop", "running", "turn off", "turn on"} {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return strings.Contains(lower, "should be running")
}

func extractServiceItems(doc *PolicyDocument, paragraph, lower string) []ActionableItem {
	// A warning paragraph names a service that must stay up. Record it as
	// critical and emit no enable/disable item for it.
	if strings.Contains(lower, "do not stop") || strings.Contains(lower, "do not disable") {
		if m := serviceWarningRe.FindStringSubmatch(paragraph); m != nil {
			doc.addCriticalService(strings.TrimSpace(m[1]))
		}
		return nil
	}

	disable := strings.Contains(lower, "disable") || strings.Contains(lower, "stop") ||
		strings.Contains(lower, "turn off") || strings.Contains(lower, "should not be running")
	enable := strings.Contains(lower, "enable") || strings.Contains(lower, "start") ||
		strings.Contains(lower, "turn on") || strings.Contains(lower, "should be running")
	if !disable && !enable {
		return nil
	}

	var name string
	if m := serviceVerbRe.FindStringSubmatch(paragraph); m != nil {
		name = strings.TrimSpace(m[1])
	} else if m := serviceStateRe.FindStringSubmatch(paragraph); m != nil {
		name = strings.TrimSpace(m[1])
	}
	if name == "" || len(name) >= maxServiceNameLen {
		return nil
	}

	if disable {
		if doc.HasCriticalService(name) {
			return nil
		}
		return []ActionableItem{{
			Type:        ActionDisableService,
			Description: fmt.Sprintf("Disable service: %s", name),
			RawText:     paragraph,
			Details:     map[string]string{"ServiceName": name},
		}}
	}
	return []ActionableItem{{
		Type:        ActionEnableService,
		Description: fmt.Sprintf("Enable service: %s", name),
		RawText:     paragraph,
		Details:     map[string]string{"ServiceName": name},
	}}
}

// --- software ---

// Product names are capitalized; the capture deliberately requires each word
// to start uppercase so trailing prose ("Firefox from the machine") is cut
// at the first lowercase word.
var softwareNameRe = regexp.MustCompile(`(?:[Ii]nstall|[Rr]emove|[Uu]ninstall|[Uu]pdate)\s+(?:the\s+)?([A-Z][A-Za-z0-9.+-]*(?:\s+[A-Z][A-Za-z0-9.+-]*){0,2})`)

func matchSoftwareAction(lower string) bool {
	for _, kw := range []string{"install", "remove", "uninstall", "update", "software", "application", "program"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func extractSoftwareItems(_ *PolicyDocument, paragraph, lower string) []ActionableItem {
	// User-management prose shares the install/remove verbs; leave those
	// paragraphs to the user detectors.
	if strings.Contains(lower, "user") || strings.Contains(lower, "account") || strings.Contains(lower, "home director") {
		return nil
	}

	remove := strings.Contains(lower, "remove") || strings.Contains(lower, "uninstall") || strings.Contains(lower, "delete")
	install := strings.Contains(lower, "install") || strings.Contains(lower, "update") || strings.Contains(lower, "upgrade")
	if !remove && !install {
		return nil
	}

	m := softwareNameRe.FindStringSubmatch(paragraph)
	if m == nil {
		return nil
	}
	name := trimTrailingPunct(m[1])
	if len(name) < minSoftwareNameLen || len(name) > maxSoftwareNameLen || !startsUpper(name) {
		return nil
	}

	if remove {
		return []ActionableItem{{
			Type:        ActionRemoveSoftware,
			Description: fmt.Sprintf("Remove software: %s", name),
			RawText:     paragraph,
			Details:     map[string]string{"SoftwareName": name},
		}}
	}
	return []ActionableItem{{
		Type:        ActionInstallSoftware,
		Description: fmt.Sprintf("Install software: %s", name),
		RawText:     paragraph,
		Details:     map[string]string{"SoftwareName": name},
	}}
}

// --- security policy ---

// securityPolicyCategories is ordered by priority: the first keyword hit
// decides the category.
var securityPolicyCategories = []struct {
	keyword     string
	category    string
	description string
}{
	{"password", "Password Policy", "Review password policy: minimum length, complexity, history, and maximum age"},
	{"firewall", "Firewall", "Enable and configure the host firewall on all profiles"},
	{"audit", "Audit Policy", "Enable auditing for logon events and policy changes"},
	{"action center", "Action Center", "Review Action Center security and maintenance settings"},
	{"antivirus", "Antivirus", "Ensure antivirus protection is enabled and up to date"},
	{"defender", "Antivirus", "Ensure antivirus protection is enabled and up to date"},
	{"security polic", "General", "Review local security policy settings"},
	{"lockout", "General", "Review local security policy settings"},
}

func matchSecurityPolicy(lower string) bool {
	for _, c := range securityPolicyCategories {
		if strings.Contains(lower, c.keyword) {
			return true
		}
	}
	return false
}

// extractSecurityPolicyItems classifies rather than captures: there is no
// entity to extract, only a category to assign.
func extractSecurityPolicyItems(_ *PolicyDocument, paragraph, lower string) []ActionableItem {
	for _, c := range securityPolicyCategories {
		if !strings.Contains(lower, c.keyword) {
			continue
		}
		return []ActionableItem{{
			Type:        ActionSecurityPolicy,
			Description: c.description,
			RawText:     paragraph,
			Details:     map[string]string{"Category": c.category},
		}}
	}
	return nil
}

// --- file operations ---

func matchFileOperation(lower string) bool {
	verb := strings.Contains(lower, "delete") || strings.Contains(lower, "remove")
	noun := strings.Contains(lower, "file") || strings.Contains(lower, "media") ||
		strings.Contains(lower, "mp3") || strings.Contains(lower, "video") || strings.Contains(lower, "music")
	return verb && noun
}

func extractFileOperationItems(_ *PolicyDocument, paragraph, lower string) []ActionableItem {
	if strings.Contains(lower, "do not remove") || strings.Contains(lower, "do not delete") {
		return nil
	}

	switch {
	case strings.Contains(lower, "media") && strings.Contains(lower, "prohibited"):
		return []ActionableItem{{
			Type:        ActionFileOperation,
			Description: "Remove prohibited media files from user directories",
			RawText:     paragraph,
			Details:     map[string]string{"Category": "media"},
		}}
	case strings.Contains(lower, "hacking") || strings.Contains(lower, "unauthorized"):
		return []ActionableItem{{
			Type:        ActionFileOperation,
			Description: "Remove hacking tools and unauthorized files",
			RawText:     paragraph,
			Details:     map[string]string{"Category": "unauthorized"},
		}}
	}
	return nil
}
