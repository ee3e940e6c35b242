package readme

// Fixed vocabularies used by the extraction passes. These are process
// constants: never mutated at runtime.

// prohibitedSoftwareKeywords are category labels tested by containment
// against the lower-cased document text. Matches land in
// PolicyDocument.ProhibitedSoftware verbatim.
var prohibitedSoftwareKeywords = []string{
	"hacking tools",
	"hacking software",
	"password cracking",
	"peer-to-peer",
	"p2p",
	"torrent",
	"keygen",
	"games",
	"game software",
	"pirated",
	"media sharing",
	"remote access tools",
	"packet sniffing",
	"port scanning",
}

// softwareStopWords are tokens that survive the capture patterns but are
// never product names.
var softwareStopWords = map[string]bool{
	"the":     true,
	"a":       true,
	"an":      true,
	"for":     true,
	"use":     true,
	"company": true,
}

// commonEnglishWords filters false positives out of new-user candidates.
// Capture patterns like "named X" occasionally grab ordinary prose words.
var commonEnglishWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "from": true,
	"this": true, "that": true, "have": true, "will": true, "your": true,
	"new": true, "user": true, "account": true, "named": true, "called": true,
	"all": true, "any": true, "are": true, "was": true, "been": true,
	"who": true, "him": true, "her": true, "them": true, "they": true,
}

func isSoftwareStopWord(s string) bool {
	return softwareStopWords[normalizeWord(s)]
}

func isCommonEnglishWord(s string) bool {
	return commonEnglishWords[normalizeWord(s)]
}
