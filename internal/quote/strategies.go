package quote

import (
	"regexp"
	"strings"
)

// attribution is the outcome of one resolution strategy.
type attribution struct {
	Name       string
	Confidence float64
}

// scanState is the fold-state threaded through the quote scan; pronoun
// resolution reads the most recently established speaker from it.
type scanState struct {
	previousSpeaker string
	seededSpeaker   string
}

// strategy attempts to resolve the speaker for one quote from its context
// window. Strategies are tried in declared order; the first success wins.
type strategy struct {
	name    string
	resolve func(text, before, after string, state scanState) (attribution, bool)
}

// namePart supports hyphenated and apostrophe names ("O'Brien",
// "Ocasio-Cortez").
const namePart = `[A-Z][A-Za-z'\-]+`
const captureName = `((?:` + namePart + `\.?\s+)?` + namePart + `(?:\s+[A-Z]\.)?(?:\s+` + namePart + `)?)`

var attributionVerbs = `(?:said|says|stated|added|continued|noted|explained|announced|emphasized|argued|concluded)`

var (
	saidXAfter   = regexp.MustCompile(`^[\s,.]*` + attributionVerbs + `\s+` + captureName)
	xSaidBefore  = regexp.MustCompile(captureName + `\s+` + attributionVerbs + `\s*[,:]?\s*$`)
	reversedVerb = regexp.MustCompile(`^[\s,.]*` + captureName + `\s+` + attributionVerbs)
	pronounAfter = regexp.MustCompile(`^[\s,.]*(?:she|he|they)\s+` + attributionVerbs)
	toldYColon   = regexp.MustCompile(captureName + `\s+told\s+(?:[A-Z][A-Za-z'\-]+|reporters|supporters|the\s+\w+)\s*:\s*$`)
	fuzzySaid    = regexp.MustCompile(captureName + `[^.!?]{0,80}\s` + attributionVerbs)
)

// strategies is the ordered resolution chain for single-span quotes.
var strategies = []strategy{
	{
		name: "said-x",
		resolve: func(text, before, after string, _ scanState) (attribution, bool) {
			if m := saidXAfter.FindStringSubmatch(after); m != nil {
				return attribution{Name: m[1], Confidence: 0.95}, true
			}
			return attribution{}, false
		},
	},
	{
		name: "x-said",
		resolve: func(text, before, after string, _ scanState) (attribution, bool) {
			if m := xSaidBefore.FindStringSubmatch(before); m != nil {
				return attribution{Name: m[1], Confidence: 0.95}, true
			}
			return attribution{}, false
		},
	},
	{
		name: "reversed-name-verb",
		resolve: func(text, before, after string, _ scanState) (attribution, bool) {
			m := reversedVerb.FindStringSubmatch(after)
			if m == nil {
				return attribution{}, false
			}
			// A bare surname here triggers a backward search for the
			// full name earlier in the document.
			return attribution{Name: m[1], Confidence: 0.85}, true
		},
	},
	{
		name: "pronoun",
		resolve: func(text, before, after string, state scanState) (attribution, bool) {
			if state.previousSpeaker == "" {
				return attribution{}, false
			}
			if pronounAfter.MatchString(after) {
				return attribution{Name: state.previousSpeaker, Confidence: 0.7}, true
			}
			return attribution{}, false
		},
	},
	{
		name: "told-y-colon",
		resolve: func(text, before, after string, _ scanState) (attribution, bool) {
			if m := toldYColon.FindStringSubmatch(before); m != nil {
				return attribution{Name: m[1], Confidence: 0.8}, true
			}
			return attribution{}, false
		},
	},
	{
		name: "fuzzy-window",
		resolve: func(text, before, after string, _ scanState) (attribution, bool) {
			window := before
			if len(window) > 200 {
				window = window[len(window)-200:]
			}
			matches := fuzzySaid.FindAllStringSubmatch(window, -1)
			if len(matches) == 0 {
				return attribution{}, false
			}
			// Take the nearest candidate before the quote.
			return attribution{Name: matches[len(matches)-1][1], Confidence: 0.5}, true
		},
	},
}

// resolveAttribution runs the strategy chain over the quote's context
// windows, rejecting captures that are nothing but title tokens.
func resolveAttribution(text, before, after string, state scanState) (attribution, bool) {
	for _, s := range strategies {
		attr, ok := s.resolve(text, before, after, state)
		if !ok {
			continue
		}
		if _, name := splitTitle(attr.Name); name == "" {
			continue
		}
		return attr, true
	}
	return attribution{}, false
}

// statementSeed matches "X released a statement" declarations that establish
// a default speaker for otherwise unattributed quotes.
var statementSeed = regexp.MustCompile(`((?:` + namePart + `\.?\s+)*` + namePart + `(?:\s+` + namePart + `)?)\s+(?:released|issued)\s+(?:the\s+following|a)\s+statement`)

// seedStatementSpeaker finds the declared statement speaker, if any.
func seedStatementSpeaker(text string) string {
	m := statementSeed.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	captured := strings.TrimSpace(m[1])
	if _, name := splitTitle(captured); name == "" {
		return ""
	}
	return captured
}
