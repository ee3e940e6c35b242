package readme

import (
	"regexp"
	"strings"
)

// Required-software phrasing varies wildly between images, so extraction is
// a union of alternative clause patterns rather than a single grammar. False
// positives are contained downstream by the stop-word and length filters.
var requiredSoftwareRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)latest stable version of ([^.<\n;]+)`),
	regexp.MustCompile(`(?i)access to the latest versions? of ([^.<\n;]+)`),
	regexp.MustCompile(`(?i)should be using ([A-Za-z0-9][A-Za-z0-9 .+_-]{0,48})`),
	regexp.MustCompile(`(?i)default browser should be ([A-Za-z0-9][A-Za-z0-9 .+_-]{0,48})`),
}

var storeProhibitedRe = regexp.MustCompile(`(?i)(?:do not|must not|should not|not allowed to)[^.<]{0,80}install[^.<]{0,80}(?:microsoft|windows) store`)

// A trailing numeric token on a product name is a pinned version, as in
// "Firefox ESR 115.2".
var versionSuffixRe = regexp.MustCompile(`^(.+[A-Za-z+])\s+v?(\d+(?:\.\d+)*)$`)

const (
	minSoftwareNameLen = 2
	maxSoftwareNameLen = 50
)

// extractSoftware runs the prohibited-keyword pass and the required-software
// pass over the full decoded text. Software mentions are scattered through
// the prose, so neither pass is limited to a section.
func extractSoftware(doc *PolicyDocument, text string) {
	lower := strings.ToLower(text)

	for _, keyword := range prohibitedSoftwareKeywords {
		if strings.Contains(lower, keyword) {
			doc.addProhibitedSoftware(keyword)
		}
	}

	for _, re := range requiredSoftwareRes {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			for _, candidate := range splitNameList(stripTags(m[1])) {
				name := trimTrailingPunct(candidate)
				var version string
				if vm := versionSuffixRe.FindStringSubmatch(name); vm != nil {
					name, version = vm[1], vm[2]
				}
				if len(name) < minSoftwareNameLen || len(name) > maxSoftwareNameLen {
					continue
				}
				if isSoftwareStopWord(name) {
					continue
				}
				doc.addRequiredSoftware(SoftwareRequirement{
					Name:           name,
					Version:        version,
					IsRequired:     true,
					ShouldBeLatest: strings.Contains(lower, "latest") && strings.Contains(lower, strings.ToLower(name)),
				})
			}
		}
	}

	annotateStoreProhibition(doc, text)
}

// annotateStoreProhibition notes every requirement when the README states
// Microsoft Store installs are disallowed. Runs after the extraction passes
// so the note reaches requirements regardless of which pattern found them.
func annotateStoreProhibition(doc *PolicyDocument, text string) {
	if !storeProhibitedRe.MatchString(text) {
		return
	}
	for i := range doc.RequiredSoftware {
		if doc.RequiredSoftware[i].Notes != "" {
			doc.RequiredSoftware[i].Notes += "; "
		}
		doc.RequiredSoftware[i].Notes += "do not install via store"
	}
}
