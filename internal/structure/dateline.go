package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// Dateline recovery runs tiered strategies from most to least formal and
// stops at the first one that yields both a location and a date. Lower tiers
// record why they were needed in the dateline issues.

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sept?(?:ember)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

const datePattern = monthPattern + `\.?\s+\d{1,2}(?:,)?\s+\d{4}`

// locationPattern matches "CITY, ST", "City, St." and multi-word forms, upper
// or mixed case.
const locationPattern = `[A-Z][A-Za-z.'\-]*(?:\s+[A-Z][A-Za-z.'\-]*){0,3},\s*(?:[A-Z]{2}|[A-Z][a-z]+\.?(?:\s+[A-Z][a-z]+\.?)?|D\.C\.)`

var (
	// "RICHMOND, VA — March 3, 2024" and "Richmond, Va. - March 3, 2024"
	formalDashDateline = regexp.MustCompile(`(?m)^\s*(` + locationPattern + `)\s*(?:—|–|--|-)\s*(` + datePattern + `)`)
	// "Richmond, Va. (March 3, 2024)"
	formalParenDateline = regexp.MustCompile(`(?m)^\s*(` + locationPattern + `)\s*\(\s*(` + datePattern + `)\s*\)`)

	isoDateLine   = regexp.MustCompile(`^\s*(\d{4}-\d{2}-\d{2})\s*$`)
	plainDateLine = regexp.MustCompile(`^\s*(` + datePattern + `)\s*$`)
	locationLine  = regexp.MustCompile(`^\s*(` + locationPattern + `)\s*$`)

	embeddedDate     = regexp.MustCompile(datePattern)
	embeddedLocation = regexp.MustCompile(locationPattern)
)

// datelineShaped reports whether the line looks like a dateline, with or
// without a recoverable date. Used by headline/subhead rejection.
func datelineShaped(line string) bool {
	return formalDashDateline.MatchString(line) ||
		formalParenDateline.MatchString(line) ||
		locationLine.MatchString(line)
}

// extractDateline runs the tiered strategies over the document.
func extractDateline(text string, lines []string) model.Dateline {
	// Tier 1: formal dateline regex, either dash or parenthesized form.
	for _, re := range []*regexp.Regexp{formalDashDateline, formalParenDateline} {
		if m := re.FindStringSubmatch(text); m != nil {
			return model.Dateline{
				Location:   strings.TrimSpace(m[1]),
				Date:       strings.TrimSpace(m[2]),
				Confidence: model.ConfidenceHigh,
			}
		}
	}

	issues := []string{"no formal dateline matched"}

	// Tier 2: a standalone date header with a location line nearby.
	limit := len(lines)
	if limit > 10 {
		limit = 10
	}
	dateIdx, date := -1, ""
	for i := 0; i < limit; i++ {
		if m := isoDateLine.FindStringSubmatch(lines[i]); m != nil {
			dateIdx, date = i, m[1]
			break
		}
		if m := plainDateLine.FindStringSubmatch(lines[i]); m != nil {
			dateIdx, date = i, m[1]
			break
		}
	}
	if dateIdx >= 0 {
		for off := 1; off <= 3; off++ {
			for _, j := range []int{dateIdx - off, dateIdx + off} {
				if j < 0 || j >= limit {
					continue
				}
				if m := locationLine.FindStringSubmatch(lines[j]); m != nil {
					issues = append(issues, "combined standalone date header with nearby location line")
					return model.Dateline{
						Location:   strings.TrimSpace(m[1]),
						Date:       date,
						Confidence: model.ConfidenceMedium,
						Issues:     issues,
					}
				}
			}
		}
	}
	issues = append(issues, "no date header with nearby location line")

	// Tier 3: scan the first lines for any embedded location and date.
	var loc string
	date = ""
	for i := 0; i < limit; i++ {
		if loc == "" {
			if m := embeddedLocation.FindString(lines[i]); m != "" && !looksLikeContact(lines[i]) {
				loc = strings.TrimSpace(m)
			}
		}
		if date == "" {
			if m := embeddedDate.FindString(lines[i]); m != "" {
				date = strings.TrimSpace(m)
			}
		}
	}
	if loc != "" && date != "" {
		issues = append(issues, "location and date inferred from separate lines")
		return model.Dateline{
			Location:   loc,
			Date:       date,
			Confidence: model.ConfidenceLow,
			Issues:     issues,
		}
	}

	// Partial results keep whatever was found at low confidence.
	dl := model.Dateline{Location: loc, Date: date, Confidence: model.ConfidenceNone, Issues: issues}
	if loc != "" || date != "" {
		dl.Confidence = model.ConfidenceLow
		missing := "date"
		if loc == "" {
			missing = "location"
		}
		dl.Issues = append(dl.Issues, fmt.Sprintf("dateline %s not found", missing))
	} else {
		dl.Issues = append(dl.Issues, "no dateline recovered")
	}
	return dl
}
