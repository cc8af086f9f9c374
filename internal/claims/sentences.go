package claims

import "strings"

// sentenceScanner is a lazy, restartable sentence iterator: it splits on
// sentence-ending punctuation followed by whitespace and a capital letter,
// digit, or opening quote. The scan is bounded by the document length.
type sentenceScanner struct {
	text string
	pos  int
}

func newSentenceScanner(text string) *sentenceScanner {
	return &sentenceScanner{text: text}
}

// Reset restarts the scan from the beginning of the text.
func (s *sentenceScanner) Reset() {
	s.pos = 0
}

// Next returns the next sentence and its byte offset. ok is false when the
// text is exhausted.
func (s *sentenceScanner) Next() (sentence string, offset int, ok bool) {
	for s.pos < len(s.text) {
		start := s.pos
		end := s.scanSentenceEnd(start)
		s.pos = end

		raw := strings.TrimSpace(s.text[start:end])
		if raw == "" {
			continue
		}
		// Report the offset of the first non-space byte.
		offset = start + strings.Index(s.text[start:end], raw[:1])
		return raw, offset, true
	}
	return "", 0, false
}

// scanSentenceEnd finds the end of the sentence starting at start.
func (s *sentenceScanner) scanSentenceEnd(start int) int {
	t := s.text
	for i := start; i < len(t); i++ {
		if t[i] != '.' && t[i] != '!' && t[i] != '?' {
			continue
		}
		// Consume trailing closing quotes and parens.
		j := i + 1
		for j < len(t) && (t[j] == '"' || t[j] == ')' || strings.HasPrefix(t[j:], "”")) {
			if t[j] == '"' || t[j] == ')' {
				j++
			} else {
				j += len("”")
			}
		}
		// Require whitespace then a sentence opener.
		k := j
		for k < len(t) && (t[k] == ' ' || t[k] == '\t' || t[k] == '\n' || t[k] == '\r') {
			k++
		}
		if k == j {
			continue
		}
		if k >= len(t) || sentenceOpener(t[k:]) {
			return j
		}
	}
	return len(t)
}

// sentenceOpener reports whether the remaining text begins a new sentence.
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
