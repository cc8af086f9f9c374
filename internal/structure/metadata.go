package structure

import (
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

var (
	immediateMarker = regexp.MustCompile(`(?i)^\s*FOR\s+IMMEDIATE\s+RELEASE`)
	embargoMarker   = regexp.MustCompile(`(?i)^\s*(?:EMBARGOED?|HOLD)\s+(?:UNTIL|FOR\s+RELEASE)[:\s]*(.*)$`)

	contactLabel = regexp.MustCompile(`(?i)^\s*(?:media\s+|press\s+)?contact(?:s)?\s*:`)
	emailToken   = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneToken   = regexp.MustCompile(`\(?\d{3}\)?[\s.\-]\d{3}[\s.\-]\d{4}`)

	bareDateLine = regexp.MustCompile(`^\s*(?:` + datePattern + `|\d{4}-\d{2}-\d{2}|\d{1,2}/\d{1,2}/\d{2,4})\s*$`)
)

// boilerplateIndicators flag the standard biographical paragraph near the end
// of a release.
var boilerplateIndicators = []string{
	"is a member of", "represents the", "was elected", "serves as",
	"is running for", "has served", "is the author of", "prior to",
	"learn more at", "for more information", "about ",
}

// releaseTypeMarker reports whether the line is a release-timing header
// rather than content.
func releaseTypeMarker(line string) bool {
	return immediateMarker.MatchString(line) || embargoMarker.MatchString(line)
}

// looksLikeContact reports whether a line belongs to a contact block.
func looksLikeContact(line string) bool {
	return contactLabel.MatchString(line) || emailToken.MatchString(line) || phoneToken.MatchString(line)
}

// looksLikeBoilerplate reports whether a paragraph reads as standard
// biographical boilerplate.
func looksLikeBoilerplate(paragraph string) bool {
	lower := strings.ToLower(paragraph)
	hits := 0
	for _, ind := range boilerplateIndicators {
		if strings.Contains(lower, ind) {
			hits++
		}
	}
	if strings.HasPrefix(lower, "about ") {
		hits++
	}
	return hits >= 2 || (hits >= 1 && strings.HasPrefix(lower, "about "))
}

// extractMetadata recovers release timing, contact block, and boilerplate.
func extractMetadata(lines []string, paragraphs []string) model.ReleaseMetadata {
	meta := model.ReleaseMetadata{Timing: model.TimingUnknown}

	limit := len(lines)
	if limit > 12 {
		limit = 12
	}
	for i := 0; i < limit; i++ {
		if immediateMarker.MatchString(lines[i]) {
			meta.Timing = model.TimingImmediate
			break
		}
		if m := embargoMarker.FindStringSubmatch(lines[i]); m != nil {
			meta.Timing = model.TimingEmbargoed
			meta.EmbargoDate = strings.TrimSpace(m[1])
			break
		}
	}

	// Contact block: a labeled contact line plus any adjacent email/phone
	// lines, searched from both ends of the document.
	for i, line := range lines {
		if !contactLabel.MatchString(line) {
			continue
		}
		var block []string
		for j := i; j < len(lines) && j < i+4; j++ {
			trimmed := strings.TrimSpace(lines[j])
			if trimmed == "" {
				break
			}
			if j > i && !looksLikeContact(lines[j]) && !nameShaped(trimmed) {
				break
			}
			block = append(block, trimmed)
		}
		meta.HasContact = true
		meta.ContactBlock = strings.Join(block, "\n")
		break
	}
	if !meta.HasContact {
		for _, line := range lines {
			if emailToken.MatchString(line) || phoneToken.MatchString(line) {
				meta.HasContact = true
				meta.ContactBlock = strings.TrimSpace(line)
				break
			}
		}
	}

	// Boilerplate lives in the trailing paragraphs.
	for i := len(paragraphs) - 1; i >= 0 && i >= len(paragraphs)-3; i-- {
		if looksLikeBoilerplate(paragraphs[i]) {
			meta.Boilerplate = paragraphs[i]
			break
		}
	}

	return meta
}

// nameShaped reports whether a line looks like a bare person name, as found
// inside contact blocks.
func nameShaped(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r := rune(w[0])
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
