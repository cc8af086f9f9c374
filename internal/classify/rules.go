package classify

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// rule is one weighted indicator: a matched rule adds its weight to the
// owning type's score and its label to the indicator list.
type rule struct {
	re     *regexp.Regexp
	weight int
	label  string
}

// typeRules maps each release type to its independently weighted rule set.
// Rules are tested against the full text; scores are additive.
var typeRules = map[model.ReleaseType][]rule{
	model.TypeStatement: {
		{regexp.MustCompile(`(?i)released\s+the\s+following\s+statement`), 5, "statement release phrase"},
		{regexp.MustCompile(`(?i)issued\s+the\s+following\s+statement`), 5, "statement issue phrase"},
		{regexp.MustCompile(`(?i)^\s*statement\s+(?:from|by|of)\b`), 4, "statement header"},
		{regexp.MustCompile(`(?i)in\s+response\s+to\b`), 2, "response framing"},
		{regexp.MustCompile(`(?i)\bstatement\s+on\b`), 2, "statement-on phrase"},
	},
	model.TypeNewsRelease: {
		{regexp.MustCompile(`(?i)^\s*FOR\s+IMMEDIATE\s+RELEASE`), 3, "immediate release marker"},
		{regexp.MustCompile(`(?i)\b(?:announced|announces|introduced|introduces|unveiled|launched)\b`), 3, "announcement verb"},
		{regexp.MustCompile(`(?i)\btoday\s+(?:announced|introduced|unveiled|released|signed)\b`), 2, "today-announcement phrase"},
		{regexp.MustCompile(`["\x{201c}][^"\x{201d}]{10,}["\x{201d}]\s*,?\s+said\b`), 2, "attributed quote"},
		{regexp.MustCompile(`(?i)\bpress\s+release\b`), 2, "press release self-reference"},
	},
	model.TypeFactSheet: {
		{regexp.MustCompile(`(?i)^\s*FACT\s*SHEET\b`), 6, "fact sheet header"},
		{regexp.MustCompile(`(?im)^\s*(?:KEY\s+FACTS|BACKGROUND|BY\s+THE\s+NUMBERS)\s*:`), 3, "section header"},
		{regexp.MustCompile(`(?m)^\s*\d+\.\s`), 2, "numbered list"},
	},
	model.TypeMediaAdvisory: {
		{regexp.MustCompile(`(?i)^\s*(?:MEDIA|PRESS)\s+ADVISORY\b`), 6, "media advisory header"},
		{regexp.MustCompile(`(?i)\bpress\s+conference\b`), 2, "press conference mention"},
		{regexp.MustCompile(`(?i)\bRSVP\b`), 2, "RSVP request"},
		{regexp.MustCompile(`(?i)\bphoto\s+opportunity\b|\bcredentialed\s+media\b`), 2, "media logistics"},
	},
	model.TypeLetter: {
		{regexp.MustCompile(`(?im)^\s*Dear\s+[A-Z]`), 5, "salutation"},
		{regexp.MustCompile(`(?im)^\s*(?:Sincerely|Respectfully|Regards|Yours\s+truly)\b`), 4, "closing"},
		{regexp.MustCompile(`(?i)\bI\s+(?:write|am\s+writing)\s+to\b`), 3, "letter opening"},
		{regexp.MustCompile(`(?i)\bwe\s+(?:urge|request|call\s+on)\s+you\b`), 2, "direct appeal"},
	},
	model.TypeTranscript: {
		{regexp.MustCompile(`(?m)^\s*(?:Q|QUESTION)\s*:`), 4, "question marker"},
		{regexp.MustCompile(`(?i)\[(?:applause|laughter|inaudible|crosstalk)\]|\((?:applause|laughter|inaudible|crosstalk)\)`), 3, "stage direction"},
		{regexp.MustCompile(`(?im)^\s*(?:MODERATOR|INTERVIEWER|OPERATOR)\s*:`), 3, "moderator marker"},
		{regexp.MustCompile(`(?i)\btranscript\b`), 3, "transcript self-reference"},
	},
}

// scanOrder is the declared type order; ties resolve to the first max-score
// type in this order.
var scanOrder = []model.ReleaseType{
	model.TypeStatement,
	model.TypeNewsRelease,
	model.TypeFactSheet,
	model.TypeMediaAdvisory,
	model.TypeLetter,
	model.TypeTranscript,
}

var (
	bulletLine = regexp.MustCompile(`(?m)^\s*[•\-*]\s+\S`)
	whHeader   = regexp.MustCompile(`(?im)^\s*(?:WHO|WHAT|WHEN|WHERE|WHY)\s*:`)
	dialogLine = regexp.MustCompile(`(?m)^\s*[A-Z][A-Z .'\-]{2,30}:\s+\S`)
)

// dynamicScores adds the density-based rules that depend on counting rather
// than a single pattern match.
func dynamicScores(text string, scores map[model.ReleaseType]int, indicators map[model.ReleaseType][]string) {
	add := func(t model.ReleaseType, w int, label string) {
		scores[t] += w
		indicators[t] = append(indicators[t], label)
	}

	if n := len(bulletLine.FindAllString(text, -1)); n >= 5 {
		add(model.TypeFactSheet, 4, fmt.Sprintf("high bullet density (%d)", n))
	} else if n >= 3 {
		add(model.TypeFactSheet, 2, fmt.Sprintf("bulleted list (%d)", n))
	}

	if n := len(whHeader.FindAllString(text, -1)); n >= 3 {
		add(model.TypeMediaAdvisory, 4, fmt.Sprintf("WH-question headers (%d)", n))
	} else if n >= 1 {
		add(model.TypeMediaAdvisory, 2, "WH-question header")
	}

	if n := len(dialogLine.FindAllString(text, -1)); n >= 6 {
		add(model.TypeTranscript, 4, fmt.Sprintf("dialogue markers (%d)", n))
	} else if n >= 3 {
		add(model.TypeTranscript, 2, fmt.Sprintf("dialogue markers (%d)", n))
	}

	// Short single-voice documents lean toward statements.
	if len(strings.TrimSpace(text)) < 1200 && strings.Contains(strings.ToLower(text), "statement") {
		add(model.TypeStatement, 1, "short statement-form document")
	}
}
