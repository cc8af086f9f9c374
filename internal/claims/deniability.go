package claims

import (
	"regexp"
	"strings"
)

// Plausible-deniability detection sums weights across independent pattern
// families, boosted by charged vocabulary and rhetorical-question stems, and
// caps the result at 1.0. A sentence qualifies at 0.50.

const (
	deniabilityThreshold = 0.50
	deniabilityMaxScore  = 1.0
	claiminessBoost      = 0.15
	rhetoricalBoost      = 0.20
)

// deniabilityPattern is one weighted pattern family.
type deniabilityPattern struct {
	id     string
	label  string
	weight float64
	re     *regexp.Regexp
}

var deniabilityPatterns = []deniabilityPattern{
	{"anon_source", "anonymous-attribution", 0.35,
		regexp.MustCompile(`(?i)\b(?:people\s+are\s+saying|some\s+(?:people\s+)?say|many\s+people\s+are\s+saying|folks\s+are\s+telling\s+me|i'?ve\s+been\s+hearing|sources\s+say|every(?:one|body)\s+knows)\b`)},
	{"reported_belief", "reported-belief", 0.30,
		regexp.MustCompile(`(?i)\b(?:some\s+believe|many\s+believe|it\s+is\s+believed|it'?s\s+believed|a\s+lot\s+of\s+people\s+think)\b`)},
	{"passive_authority", "passive-authority", 0.35,
		regexp.MustCompile(`(?i)\b(?:it\s+has\s+been\s+reported|it\s+was\s+reported|reports\s+indicate|it\s+has\s+been\s+suggested|it\s+is\s+said)\b`)},
	{"jaq", "just-asking-questions", 0.40,
		regexp.MustCompile(`(?i)\b(?:just\s+asking|i'?m\s+just\s+asking|just\s+a\s+question|worth\s+asking|someone\s+should\s+ask)\b`)},
	{"hedged_modal", "hedged-modality", 0.20,
		regexp.MustCompile(`(?i)\b(?:allegedly|reportedly|supposedly|apparently|(?:might|may|could)\s+(?:well\s+)?(?:be|have))\b`)},
	{"distancing", "speaker-distancing", 0.40,
		regexp.MustCompile(`(?i)\b(?:i'?m\s+not\s+saying|not\s+to\s+say|who\s+knows|you\s+tell\s+me|make\s+of\s+that\s+what\s+you\s+will|draw\s+your\s+own\s+conclusions)\b`)},
	{"innuendo", "innuendo", 0.30,
		regexp.MustCompile(`(?i)\b(?:funny\s+how|interesting\s+that|curious\s+that|strange\s+that|awfully\s+convenient|quite\s+a\s+coincidence)\b`)},
	{"truthy_framing", "truthy-framing", 0.20,
		regexp.MustCompile(`(?i)\b(?:the\s+truth\s+is|everyone\s+can\s+see|it'?s\s+obvious|plain\s+as\s+day)\b`)},
	{"conspiracy_cue", "concealment-cue", 0.35,
		regexp.MustCompile(`(?i)\b(?:they\s+don'?t\s+want\s+you\s+to\s+know|what\s+they\s+won'?t\s+tell\s+you|cover[\s\-]?up|the\s+real\s+story)\b`)},
	{"viral_scale", "viral-scale", 0.25,
		regexp.MustCompile(`(?i)\b(?:thousands\s+of\s+people\s+are\s+saying|millions\s+of\s+people|all\s+over\s+the\s+internet)\b`)},
	{"deniable_conditional", "deniable-conditional", 0.25,
		regexp.MustCompile(`(?i)\b(?:if\s+true|if\s+that'?s\s+the\s+case|should\s+(?:it|this)\s+(?:be|prove)\s+true)\b`)},
	{"attribution_shield", "attribution-shield", 0.30,
		regexp.MustCompile(`(?i)\b(?:according\s+to\s+some|by\s+some\s+accounts|in\s+some\s+circles|word\s+is)\b`)},
	{"look_into", "calls-for-investigation", 0.30,
		regexp.MustCompile(`(?i)\b(?:we\s+should\s+look\s+into|needs?\s+to\s+be\s+investigated|deserves\s+scrutiny|demands\s+answers)\b`)},
	{"hearsay_echo", "secondhand-echo", 0.25,
		regexp.MustCompile(`(?i)\b(?:that'?s\s+what\s+i'?m\s+told|so\s+i'?m\s+told|or\s+so\s+they\s+say)\b`)},
	{"question_assert", "question-as-assertion", 0.25,
		regexp.MustCompile(`(?i)\b(?:what\s+are\s+they\s+hiding|why\s+won'?t\s+(?:he|she|they)|how\s+do\s+we\s+know)\b`)},
}

// claimyWords is the charged vocabulary that boosts a deniability score.
var claimyWords = regexp.MustCompile(`(?i)\b(?:fraud|fraudulent|rigged|stolen|corrupt(?:ion)?|crime|criminal|illegal|hoax|proof|scandal|treason|bribe)\b`)

// rhetoricalStems open rhetorical questions.
var rhetoricalStems = regexp.MustCompile(`(?i)^(?:isn'?t\s+it|doesn'?t\s+it|don'?t\s+you|why\s+won'?t|why\s+hasn'?t|how\s+come|wouldn'?t\s+you|could\s+it\s+be)\b`)

// deniabilityScore returns the cumulative weight, the matched family labels,
// and whether the sentence qualifies as plausible deniability.
func deniabilityScore(sentence string) (float64, []string, bool) {
	var score float64
	var labels []string
	for _, p := range deniabilityPatterns {
		if p.re.MatchString(sentence) {
			score += p.weight
			labels = append(labels, p.label)
		}
	}
	if len(labels) > 0 && claimyWords.MatchString(sentence) {
		score += claiminessBoost
	}
	if strings.HasSuffix(strings.TrimSpace(sentence), "?") && rhetoricalStems.MatchString(strings.TrimSpace(sentence)) {
		score += rhetoricalBoost
		labels = append(labels, "rhetorical-question")
	}
	if score > deniabilityMaxScore {
		score = deniabilityMaxScore
	}
	return score, labels, len(labels) > 0 && score >= deniabilityThreshold
}
