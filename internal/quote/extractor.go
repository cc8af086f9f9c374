// Package quote finds quoted spans in press-release text and resolves each
// to a speaker. Resolution tries an ordered chain of attribution strategies;
// discovered quotes are merged across multi-part and multi-paragraph spans
// and returned sorted by source position.
package quote

import (
	"regexp"
	"sort"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

const (
	contextWindow = 200
	mergeGap      = 300
	minQuoteLen   = 10
)

var (
	quotedSpan = regexp.MustCompile(`["\x{201c}]([^"\x{201c}\x{201d}]+)["\x{201d}]`)
	dialogLine = regexp.MustCompile(`(?m)^([A-Z][A-Z .'\-]{2,30}):\s*["\x{201c}]?(.+)$`)
	jointBlock = regexp.MustCompile(`(?i)(?:released|issued)\s+(?:the\s+following\s+)?joint\s+statement:?\s*\n+`)
	background = regexp.MustCompile(`(?im)^background\s*:`)
	paraBreak  = regexp.MustCompile(`\n\s*\n`)
)

// Extract finds and attributes all quotes in the text. Headline and subhead
// are used to filter false positives; the dateline supplies location context
// for speaker titles.
func Extract(text, headline, subhead string, dateline model.Dateline) []model.Quote {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	state := scanState{seededSpeaker: seedStatementSpeaker(text)}
	consumed := &intervalSet{}
	var quotes []model.Quote

	quotes = append(quotes, extractDialogue(text, consumed)...)
	quotes = append(quotes, extractJointStatement(text, consumed)...)
	quotes = append(quotes, extractMultiParagraph(text, consumed)...)
	single, state2 := extractSingle(text, consumed, state)
	quotes = append(quotes, single...)
	state = state2

	quotes = filterQuotes(quotes, text, headline, subhead)

	// Backfill the seeded statement speaker onto unattributed quotes.
	if state.seededSpeaker != "" {
		name := resolveFullName(text, state.seededSpeaker)
		for i := range quotes {
			if !quotes[i].HasAttribution() {
				quotes[i].SpeakerName = name
				quotes[i].Attribution = name
				if quotes[i].Confidence < 0.6 {
					quotes[i].Confidence = 0.6
				}
			}
		}
	}

	for i := range quotes {
		if quotes[i].SpeakerName != "" && quotes[i].SpeakerTitle == "" {
			quotes[i].SpeakerTitle = resolveTitle(text, quotes[i].SpeakerName, dateline)
		}
	}

	sort.SliceStable(quotes, func(i, j int) bool { return quotes[i].Position < quotes[j].Position })
	return mergeMultiPart(quotes)
}

// extractDialogue pulls "SPEAKER: text" dialogue-form quotes and records
// their spans so the single-quote pass skips them.
func extractDialogue(text string, consumed *intervalSet) []model.Quote {
	var quotes []model.Quote
	for _, idx := range dialogLine.FindAllStringSubmatchIndex(text, -1) {
		speaker := text[idx[2]:idx[3]]
		body := strings.Trim(text[idx[4]:idx[5]], `"`+"“”")
		if len(body) < minQuoteLen {
			continue
		}
		// Require at least two dialogue lines before treating the
		// document as dialogue-form; a lone "Contact:" style line is
		// handled elsewhere.
		quotes = append(quotes, model.Quote{
			Text:        strings.TrimSpace(body),
			SpeakerName: titleCase(speaker),
			Attribution: titleCase(speaker),
			Position:    idx[0],
			Confidence:  0.9,
		})
		consumed.add(idx[0], idx[1])
	}
	if len(quotes) < 2 {
		// Not dialogue-form; release the spans for the single-quote pass.
		if len(quotes) == 1 {
			consumed.spans = consumed.spans[:len(consumed.spans)-1]
		}
		return nil
	}
	return quotes
}

// extractJointStatement captures the unquoted block following a joint
// statement declaration.
func extractJointStatement(text string, consumed *intervalSet) []model.Quote {
	m := jointBlock.FindStringIndex(text)
	if m == nil {
		return nil
	}
	rest := text[m[1]:]
	end := len(rest)
	if p := paraBreak.FindStringIndex(rest); p != nil {
		end = p[0]
	}
	body := strings.TrimSpace(rest[:end])
	if len(body) < minQuoteLen {
		return nil
	}
	consumed.add(m[1], m[1]+end)
	return []model.Quote{{
		Text:       strings.Trim(body, `"`+"“”"),
		Position:   m[1],
		Confidence: 0.6,
	}}
}

// extractMultiParagraph merges quote runs where each paragraph opens with a
// quote mark but only the last closes it.
func extractMultiParagraph(text string, consumed *intervalSet) []model.Quote {
	paras := paragraphSpans(text)
	var quotes []model.Quote

	for i := 0; i < len(paras); i++ {
		start := paras[i]
		body := text[start[0]:start[1]]
		if !openQuoteAt(body, 0) || closesQuote(body) {
			continue
		}
		// Open run: collect until a paragraph closes the quote.
		j := i + 1
		var parts []string
		parts = append(parts, trimQuoteMarks(body))
		closed := false
		for ; j < len(paras); j++ {
			next := text[paras[j][0]:paras[j][1]]
			if !openQuoteAt(next, 0) {
				break
			}
			parts = append(parts, trimQuoteMarks(next))
			if closesQuote(next) {
				closed = true
				break
			}
		}
		if !closed || len(parts) < 2 {
			continue
		}
		end := paras[j][1]
		consumed.add(start[0], end)

		q := model.Quote{
			Text:        strings.Join(parts, " "),
			Position:    start[0],
			Confidence:  0.5,
			IsMultiPart: true,
		}
		// Attribute from the closing paragraph's trailing context.
		after := text[paras[j][1]:min(len(text), paras[j][1]+contextWindow)]
		last := text[paras[j][0]:paras[j][1]]
		if attr, ok := resolveAttribution(text, "", trailingAttribution(last)+after, scanState{}); ok {
			applyAttribution(&q, text, attr)
		}
		quotes = append(quotes, q)
		i = j
	}
	return quotes
}

// trailingAttribution returns the text after the closing quote mark of a
// paragraph, where "said X" style attributions live.
func trailingAttribution(paragraph string) string {
	if i := strings.LastIndexAny(paragraph, "\"”"); i >= 0 && i+1 < len(paragraph) {
		return paragraph[i+1:]
	}
	return ""
}

// extractSingle finds remaining single-span quotes, resolving each through
// the strategy chain with pronoun fold-state threaded through the scan.
func extractSingle(text string, consumed *intervalSet, state scanState) ([]model.Quote, scanState) {
	var quotes []model.Quote
	for _, idx := range quotedSpan.FindAllStringSubmatchIndex(text, -1) {
		start, end := idx[0], idx[1]
		body := text[idx[2]:idx[3]]
		if len(body) < minQuoteLen || consumed.overlaps(start, end) {
			continue
		}

		before := text[max(0, start-contextWindow):start]
		after := text[end:min(len(text), end+contextWindow)]

		q := model.Quote{Text: body, Position: start, Confidence: 0.3}
		if attr, ok := resolveAttribution(text, before, after, state); ok {
			applyAttribution(&q, text, attr)
			state.previousSpeaker = q.SpeakerName
		}
		quotes = append(quotes, q)
	}
	return quotes, state
}

// applyAttribution resolves the captured name to its earliest full-name form
// and fills the quote's speaker fields.
func applyAttribution(q *model.Quote, text string, attr attribution) {
	full := resolveFullName(text, attr.Name)
	if full == "" {
		return
	}
	q.SpeakerName = full
	q.Attribution = full
	q.Confidence = attr.Confidence
}

// filterQuotes drops quotes embedded in the headline or subhead and quotes
// inside a "Background:" section.
func filterQuotes(quotes []model.Quote, text, headline, subhead string) []model.Quote {
	var banned intervalSet
	for _, part := range []string{headline, subhead} {
		if part == "" {
			continue
		}
		if i := strings.Index(text, part); i >= 0 {
			banned.add(i, i+len(part))
		}
	}
	if m := background.FindStringIndex(text); m != nil {
		end := len(text)
		if p := paraBreak.FindStringIndex(text[m[1]:]); p != nil {
			end = m[1] + p[0]
		}
		banned.add(m[0], end)
	}

	var kept []model.Quote
	for _, q := range quotes {
		if banned.contains(q.Position) {
			continue
		}
		kept = append(kept, q)
	}
	return kept
}

// mergeMultiPart combines a quote ending in a trailing comma with the next
// proximate quote from the same resolved speaker, continuing until a part
// ends in a terminal period. Two explicitly different attributions never
// merge; an unattributed part inherits the speaker it merges with.
func mergeMultiPart(quotes []model.Quote) []model.Quote {
	var merged []model.Quote
	for i := 0; i < len(quotes); i++ {
		q := quotes[i]
		endPos := q.Position + len(q.Text)
		for strings.HasSuffix(strings.TrimSpace(q.Text), ",") && i+1 < len(quotes) {
			next := quotes[i+1]
			gap := next.Position - endPos
			if gap >= mergeGap || gap < 0 {
				break
			}
			if q.HasAttribution() && next.HasAttribution() && q.Attribution != next.Attribution {
				break
			}
			q.Text = strings.TrimSpace(q.Text) + " " + next.Text
			q.IsMultiPart = true
			endPos = next.Position + len(next.Text)
			if !q.HasAttribution() && next.HasAttribution() {
				q.SpeakerName = next.SpeakerName
				q.SpeakerTitle = next.SpeakerTitle
				q.Attribution = next.Attribution
				q.Confidence = next.Confidence
			}
			i++
		}
		merged = append(merged, q)
	}
	return merged
}

// paragraphSpans returns [start, end) offsets of blank-line separated
// paragraphs.
func paragraphSpans(text string) [][2]int {
	var spans [][2]int
	start := 0
	for _, sep := range paraBreak.FindAllStringIndex(text, -1) {
		if sep[0] > start {
			spans = append(spans, trimSpan(text, start, sep[0]))
		}
		start = sep[1]
	}
	if start < len(text) {
		spans = append(spans, trimSpan(text, start, len(text)))
	}
	var nonEmpty [][2]int
	for _, s := range spans {
		if s[1] > s[0] {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return nonEmpty
}

// trimSpan shrinks a span to exclude leading and trailing whitespace.
func trimSpan(text string, start, end int) [2]int {
	for start < end && isSpace(text[start]) {
		start++
	}
	for end > start && isSpace(text[end-1]) {
		end--
	}
	return [2]int{start, end}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// openQuoteAt reports whether an opening quote mark starts at i.
func openQuoteAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	return s[i] == '"' || strings.HasPrefix(s[i:], "“")
}

// trimQuoteMarks strips surrounding whitespace and quote marks from a
// paragraph body.
func trimQuoteMarks(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"`+"“”")
}

// closesQuote reports whether the paragraph's quote is closed by its end.
func closesQuote(paragraph string) bool {
	if strings.ContainsRune(paragraph, '“') {
		return strings.ContainsRune(paragraph, '”')
	}
	return strings.Count(paragraph, `"`)%2 == 0
}
