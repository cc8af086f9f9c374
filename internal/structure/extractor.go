// Package structure recovers the structural components of a press release:
// headline, subhead, dateline, paragraphs, and release metadata. Extraction
// never fails; missing fields are left empty and recorded as issues.
package structure

import (
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// dashFlankedCaps matches a line with an em/en dash flanked by capitalized
// tokens, the loose dateline shape used as a headline locator fallback.
var dashFlankedCaps = regexp.MustCompile(`\b[A-Z][A-Za-z.,'\- ]*\s+(?:—|–)\s+[A-Z0-9]`)

// Extract decomposes raw press-release text into its structural components.
func Extract(text string) model.ContentStructure {
	doc := model.NewRawDocument(text)
	var issues []string

	if doc.Trimmed == "" {
		return model.ContentStructure{
			Dateline: model.Dateline{Confidence: model.ConfidenceNone, Issues: []string{"empty document"}},
			Issues:   []string{"empty document"},
		}
	}

	lines := strings.Split(doc.Text, "\n")
	dateline := extractDateline(doc.Text, lines)

	headline, headlineIdx := extractHeadline(lines)
	if headline == "" {
		issues = append(issues, "headline not found")
	}

	subhead := extractSubhead(lines, headline, headlineIdx, datelineLineIndex(lines))
	if subhead == "" {
		issues = append(issues, "subhead not found")
	}

	body := bodyContent(lines, headline, subhead)
	paragraphs := splitParagraphs(body)
	meta := extractMetadata(lines, paragraphs)

	// Drop the boilerplate paragraph from the body once identified.
	if meta.Boilerplate != "" {
		for i, p := range paragraphs {
			if p == meta.Boilerplate {
				paragraphs = append(paragraphs[:i], paragraphs[i+1:]...)
				break
			}
		}
	}

	cs := model.ContentStructure{
		Headline: headline,
		Subhead:  subhead,
		Dateline: dateline,
		Metadata: meta,
		Issues:   issues,
	}
	if len(paragraphs) > 0 {
		cs.LeadParagraph = paragraphs[0]
		cs.BodyParagraphs = paragraphs[1:]
	} else {
		cs.Issues = append(cs.Issues, "no body paragraphs recovered")
	}
	return cs
}

// datelineLineIndex returns the index of the first dateline-bearing line, or
// -1 when none exists.
func datelineLineIndex(lines []string) int {
	for i, line := range lines {
		if formalDashDateline.MatchString(line) || formalParenDateline.MatchString(line) {
			return i
		}
	}
	return -1
}

// extractHeadline tries the locator strategies in order and returns the
// chosen line plus its index (-1 when nothing qualified).
func extractHeadline(lines []string) (string, int) {
	// Strategy (a): best candidate line preceding the formal dateline.
	if idx := datelineLineIndex(lines); idx > 0 {
		if h, i := bestCandidateBefore(lines, idx); h != "" {
			return h, i
		}
	}

	// Strategy (b): a line with a dash flanked by capitalized tokens acts
	// as a loose locator; the headline precedes it.
	for i, line := range lines {
		if !dashFlankedCaps.MatchString(line) || datelineShaped(line) {
			continue
		}
		if h, j := bestCandidateBefore(lines, i); h != "" {
			return h, j
		}
		break
	}

	// Strategy (c): first line that is not a marker, contact, or bare date.
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || releaseTypeMarker(trimmed) || looksLikeContact(trimmed) ||
			bareDateLine.MatchString(trimmed) || datelineShaped(trimmed) {
			continue
		}
		return trimmed, i
	}
	return "", -1
}

// bestCandidateBefore picks the first non-boilerplate headline candidate
// among the lines before idx; deck lines below it are left for subhead
// extraction.
func bestCandidateBefore(lines []string, idx int) (string, int) {
	for i := 0; i < idx; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || releaseTypeMarker(trimmed) || looksLikeContact(trimmed) ||
			bareDateLine.MatchString(trimmed) || datelineShaped(trimmed) {
			continue
		}
		if looksLikeBoilerplate(trimmed) || len(trimmed) < 15 {
			continue
		}
		return trimmed, i
	}
	return "", -1
}

var fullPublicationDate = regexp.MustCompile(`^\s*` + datePattern + `\s*$`)

// quoteAttributionSentence matches a quote followed by an attribution clause,
// which disqualifies a line from being a subhead.
var quoteAttributionSentence = regexp.MustCompile(`["\x{201c}].+["\x{201d}]\s*,?\s+(?:said|says)\b`)

// extractSubhead scans the lines between headline and dateline for a
// deck/subhead line.
func extractSubhead(lines []string, headline string, headlineIdx, datelineIdx int) string {
	if headlineIdx < 0 {
		return ""
	}
	end := datelineIdx
	if end < 0 || end > headlineIdx+6 {
		end = headlineIdx + 6
	}
	if end > len(lines) {
		end = len(lines)
	}
	for i := headlineIdx + 1; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || trimmed == headline {
			continue
		}
		if datelineShaped(trimmed) || releaseTypeMarker(trimmed) || looksLikeContact(trimmed) {
			continue
		}
		if fullPublicationDate.MatchString(trimmed) || quoteAttributionSentence.MatchString(trimmed) {
			continue
		}
		if len(trimmed) < 15 || len(trimmed) > 200 {
			continue
		}
		if strings.Contains(trimmed, ":") || float64(len(trimmed)) < 1.2*float64(len(headline)) {
			return trimmed
		}
	}
	return ""
}

// bodyContent strips header apparatus (markers, contact lines, headline,
// subhead, bare dates) and returns the remaining content for paragraph
// segmentation. The dateline line itself is kept: the lead paragraph opens
// with it in most releases.
func bodyContent(lines []string, headline, subhead string) string {
	var kept []string
	seenBody := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !seenBody {
			switch {
			case trimmed == "":
				kept = append(kept, line)
				continue
			case releaseTypeMarker(trimmed), looksLikeContact(trimmed),
				bareDateLine.MatchString(trimmed),
				trimmed == headline, trimmed == subhead:
				continue
			}
			seenBody = true
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
