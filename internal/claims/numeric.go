package claims

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

var (
	currencyValue   = regexp.MustCompile(`\$\s?(\d[\d,]*(?:\.\d+)?)\s*(million|billion|trillion|thousand)?`)
	percentageValue = regexp.MustCompile(`(\d[\d,]*(?:\.\d+)?)\s*(?:%|percent(?:age\s+points?)?)`)
	countValue      = regexp.MustCompile(`\b(\d[\d,]*(?:\.\d+)?)\s*(million|billion|trillion|thousand)?\s+(?:people|residents|voters|jobs|families|students|workers|households|veterans|children|doses|homes)\b`)
)

// unitMultipliers scales suffixed magnitudes into absolute values.
var unitMultipliers = map[string]float64{
	"thousand": 1e3,
	"million":  1e6,
	"billion":  1e9,
	"trillion": 1e12,
}

// ExtractNumericClaims pulls currency, percentage, and population-count
// assertions out of a sentence. Values are normalized to absolute floats
// with the magnitude suffix recorded as the unit.
func ExtractNumericClaims(sentence string) []model.NumericClaim {
	var out []model.NumericClaim
	seen := map[string]bool{}

	add := func(kind model.NumericKind, raw, digits, unit string) {
		if seen[raw] {
			return
		}
		seen[raw] = true
		value, err := strconv.ParseFloat(strings.ReplaceAll(digits, ",", ""), 64)
		if err != nil {
			return
		}
		if mult, ok := unitMultipliers[strings.ToLower(unit)]; ok {
			value *= mult
		}
		out = append(out, model.NumericClaim{
			Kind:    kind,
			Value:   value,
			Unit:    strings.ToLower(unit),
			RawText: strings.TrimSpace(raw),
		})
	}

	for _, m := range currencyValue.FindAllStringSubmatch(sentence, -1) {
		add(model.NumericCurrency, m[0], m[1], m[2])
	}
	for _, m := range percentageValue.FindAllStringSubmatch(sentence, -1) {
		add(model.NumericPercentage, m[0], m[1], "")
	}
	for _, m := range countValue.FindAllStringSubmatch(sentence, -1) {
		// Skip counts already captured as currency.
		if strings.Contains(sentence, "$"+m[1]) || strings.Contains(sentence, "$ "+m[1]) {
			continue
		}
		add(model.NumericCount, m[0], m[1], m[2])
	}
	return out
}
