package structure

import (
	"regexp"
	"strings"
)

var blankLineSplit = regexp.MustCompile(`\n\s*\n`)

// topicShiftConnectives open sentences that start a new paragraph when
// falling back to sentence-boundary grouping.
var topicShiftConnectives = []string{
	"Meanwhile", "However", "In addition", "Additionally", "Separately",
	"Earlier", "Moreover", "Furthermore", "At the same time",
}

// minFallbackLength is the minimum content length before single-paragraph
// input is re-segmented with the heuristic splitters.
const minFallbackLength = 400

// splitParagraphs segments body content, preferring blank-line breaks and
// degrading to quote-boundary and sentence-grouping heuristics when the
// source lost its line structure.
func splitParagraphs(content string) []string {
	var paragraphs []string
	for _, p := range blankLineSplit.Split(content, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 1 || len(strings.TrimSpace(content)) < minFallbackLength {
		return paragraphs
	}

	flat := strings.Join(strings.Fields(content), " ")

	if qs := splitOnQuoteBoundaries(flat); len(qs) > 1 {
		return qs
	}
	return groupSentences(flat)
}

// splitOnQuoteBoundaries breaks before sentences that open with a quote mark.
func splitOnQuoteBoundaries(flat string) []string {
	var parts []string
	start := 0
	for i := 1; i < len(flat)-1; i++ {
		if !openQuoteAt(flat, i) {
			continue
		}
		// A quote opening a new paragraph follows sentence-ending
		// punctuation and a space.
		if flat[i-1] == ' ' && i >= 2 && isSentenceEnd(flat[i-2]) {
			part := strings.TrimSpace(flat[start:i])
			if part != "" {
				parts = append(parts, part)
			}
			start = i
		}
	}
	if rest := strings.TrimSpace(flat[start:]); rest != "" {
		parts = append(parts, rest)
	}
	return parts
}

// groupSentences accumulates sentences into paragraphs, breaking on length,
// quote openings, and topic-shift connectives.
func groupSentences(flat string) []string {
	sentences := splitFlatSentences(flat)
	var paragraphs []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			paragraphs = append(paragraphs, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, s := range sentences {
		shift := false
		if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "“") {
			shift = true
		}
		for _, conn := range topicShiftConnectives {
			if strings.HasPrefix(s, conn) {
				shift = true
				break
			}
		}
		if current.Len() >= 200 || shift {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(s)
	}
	flush()
	return paragraphs
}

// splitFlatSentences splits one-line text on sentence terminators followed by
// a capital, digit, or opening quote.
func splitFlatSentences(flat string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(flat)-1; i++ {
		if !isSentenceEnd(flat[i]) || flat[i+1] != ' ' {
			continue
		}
		j := i + 1
		for j < len(flat) && flat[j] == ' ' {
			j++
		}
		if j < len(flat) && sentenceOpener(flat[j:]) {
			s := strings.TrimSpace(flat[start : i+1])
			if s != "" {
				sentences = append(sentences, s)
			}
			start = j
			i = j - 1
		}
	}
	if rest := strings.TrimSpace(flat[start:]); rest != "" {
		sentences = append(sentences, rest)
	}
	return sentences
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// openQuoteAt reports whether an ASCII or curly opening quote starts at i.
func openQuoteAt(s string, i int) bool {
	return s[i] == '"' || strings.HasPrefix(s[i:], "“")
}

// sentenceOpener reports whether the remaining text opens a new sentence.
func sentenceOpener(rest string) bool {
	if rest == "" {
		return false
	}
	b := rest[0]
	if b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '"' || b == '(' || b == '[' {
		return true
	}
	return strings.HasPrefix(rest, "“")
}
