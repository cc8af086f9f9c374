package classify

import (
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// subtypeRule detects one subtype via keyword hits. Subtypes are not scored
// against each other; each emits an independent confidence-tagged result.
type subtypeRule struct {
	subtype   string
	appliesTo []model.ReleaseType
	keywords  []string
}

var subtypeRules = []subtypeRule{
	{
		subtype:   "attack",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease, model.TypeFactSheet, model.TypeStatement},
		keywords: []string{
			"failed to", "refuses to", "broken promise", "can't be trusted",
			"wrong for", "out of touch", "record of", "voted against",
			"hypocrisy", "scandal",
		},
	},
	{
		subtype:   "endorsement",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease, model.TypeFactSheet},
		keywords: []string{
			"endorse", "endorsed", "endorsement", "proud to support",
			"backing", "threw their support",
		},
	},
	{
		subtype:   "policy",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease, model.TypeFactSheet, model.TypeStatement},
		keywords: []string{
			"introduced legislation", "unveiled a plan", "policy proposal",
			"bill would", "the act", "signed into law", "legislation",
		},
	},
	{
		subtype:   "fundraising",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease},
		keywords: []string{
			"raised", "fundraising", "contributions", "donors",
			"grassroots supporters", "quarterly filing",
		},
	},
	{
		subtype:   "crisis_response",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease, model.TypeStatement},
		keywords: []string{
			"deeply saddened", "tragedy", "our thoughts", "emergency",
			"disaster", "responded to reports",
		},
	},
	{
		subtype:   "personnel",
		appliesTo: []model.ReleaseType{model.TypeNewsRelease},
		keywords: []string{
			"named", "appointed", "joins the campaign", "hired",
			"will serve as", "steps down",
		},
	},
}

// issueRule tags a topic/issue area by keyword hits.
type issueRule struct {
	issue    string
	keywords []string
}

var issueRules = []issueRule{
	{"economy", []string{"economy", "jobs", "inflation", "wages", "unemployment", "small business", "taxes"}},
	{"healthcare", []string{"health care", "healthcare", "medicaid", "medicare", "prescription drug", "insurance"}},
	{"education", []string{"education", "schools", "teachers", "students", "tuition", "classroom"}},
	{"public_safety", []string{"crime", "police", "public safety", "law enforcement", "gun violence", "fentanyl"}},
	{"environment", []string{"climate", "clean energy", "environment", "pollution", "clean water", "emissions"}},
	{"elections", []string{"election", "voters", "ballot", "voting rights", "polling place", "campaign"}},
	{"immigration", []string{"immigration", "border", "asylum", "immigrants", "visa"}},
	{"housing", []string{"housing", "rent", "affordable housing", "homeowners", "eviction"}},
	{"veterans", []string{"veterans", "servicemembers", "va benefits", "military families"}},
}

// detectSubtypes runs the subtype detectors relevant to the winning type.
func detectSubtypes(text string, winner model.ReleaseType) []model.SubtypeResult {
	lower := strings.ToLower(text)
	var results []model.SubtypeResult
	for _, sr := range subtypeRules {
		applies := false
		for _, t := range sr.appliesTo {
			if t == winner {
				applies = true
				break
			}
		}
		if !applies {
			continue
		}
		var hits []string
		for _, kw := range sr.keywords {
			if strings.Contains(lower, kw) {
				hits = append(hits, kw)
			}
		}
		if len(hits) == 0 {
			continue
		}
		results = append(results, model.SubtypeResult{
			Subtype:    sr.subtype,
			Confidence: hitConfidence(len(hits)),
			Keywords:   hits,
		})
	}
	return results
}

// detectIssues tags topic areas regardless of the winning type.
func detectIssues(text string) []model.IssueResult {
	lower := strings.ToLower(text)
	var results []model.IssueResult
	for _, ir := range issueRules {
		hits := 0
		for _, kw := range ir.keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		results = append(results, model.IssueResult{
			Issue:      ir.issue,
			Confidence: hitConfidence(hits),
		})
	}
	return results
}

// hitConfidence maps keyword hit counts to a confidence tier.
func hitConfidence(hits int) model.Confidence {
	switch {
	case hits >= 3:
		return model.ConfidenceHigh
	case hits == 2:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
