package claims

import (
	"regexp"

	"github.com/edforman-75/presscheck/internal/model"
)

// Comparative-claim detection matches comparison operators combined with a
// recognized metric or any numeral and emits an ordered four-step
// verification plan.

var (
	comparisonOperator = regexp.MustCompile(`(?i)\b(?:more\s+than|less\s+than|fewer\s+than|greater\s+than|higher\s+than|lower\s+than|exceed(?:s|ed)?|doubled?|tripled|half\s+of|twice\s+as)\b`)
	temporalComparison = regexp.MustCompile(`(?i)\bthan\s+(?:it|they)\s+(?:was|were)\s+in\s+((?:19|20)\d{2})\b`)
	comparedTo         = regexp.MustCompile(`(?i)\b(?:compared\s+(?:to|with)|since|up\s+from|down\s+from)\s+((?:19|20)\d{2})\b`)
	ongoingTrend       = regexp.MustCompile(`(?i)\bcontinues?\s+to\s+(?:rise|fall|grow|decline|climb|drop)\b`)
	metricName         = regexp.MustCompile(`(?i)\b(?:unemployment|inflation|crime|wages|jobs|deficit|debt|spending|taxes|enrollment|graduation\s+rate|turnout|prices|costs|revenue|population|income|gdp|growth)\b`)
	anyNumeral         = regexp.MustCompile(`\d`)
	yearToken          = regexp.MustCompile(`\b((?:19|20)\d{2})\b`)
)

// comparativeMatch reports whether the sentence asserts a comparison and
// returns its verification plan.
func comparativeMatch(sentence string) (*model.VerificationPlan, bool) {
	hasOperator := comparisonOperator.MatchString(sentence) ||
		temporalComparison.MatchString(sentence) ||
		comparedTo.MatchString(sentence) ||
		ongoingTrend.MatchString(sentence)
	if !hasOperator {
		return nil, false
	}
	if !metricName.MatchString(sentence) && !anyNumeral.MatchString(sentence) {
		return nil, false
	}

	timeRef := ""
	if m := temporalComparison.FindStringSubmatch(sentence); m != nil {
		timeRef = m[1]
	} else if m := comparedTo.FindStringSubmatch(sentence); m != nil {
		timeRef = m[1]
	} else if m := yearToken.FindStringSubmatch(sentence); m != nil {
		timeRef = m[1]
	}

	return &model.VerificationPlan{
		Steps: []string{
			"identify the compared metrics and timeframe",
			"look up the current value",
			"look up the historical or second value",
			"compare the values against the claimed relationship",
		},
		TimeReference: timeRef,
	}, true
}
