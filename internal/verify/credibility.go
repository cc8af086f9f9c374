package verify

import (
	"net/url"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// Source credibility maps a fetched URL's domain to a fixed tier table.
// Congressional and official sources rank highest; unrecognized domains
// bottom out at 0.3 rather than zero so weak evidence still registers.

// tierScores is the fixed credibility score per tier.
var tierScores = map[model.CredibilityTier]float64{
	model.TierCongressional: 1.0,
	model.TierFederalAgency: 0.95,
	model.TierFactChecking:  0.9,
	model.TierResearch:      0.85,
	model.TierNationalNews:  0.8,
	model.TierBroadcastNews: 0.7,
	model.TierStateLocal:    0.6,
	model.TierUnknownSource: 0.3,
}

// domainTiers holds exact domain assignments checked before suffix rules.
var domainTiers = map[string]model.CredibilityTier{
	"congress.gov":       model.TierCongressional,
	"clerk.house.gov":    model.TierCongressional,
	"cbo.gov":            model.TierFederalAgency,
	"bls.gov":            model.TierFederalAgency,
	"census.gov":         model.TierFederalAgency,
	"gao.gov":            model.TierFederalAgency,
	"cdc.gov":            model.TierFederalAgency,
	"factcheck.org":      model.TierFactChecking,
	"politifact.com":     model.TierFactChecking,
	"snopes.com":         model.TierFactChecking,
	"fullfact.org":       model.TierFactChecking,
	"pewresearch.org":    model.TierResearch,
	"brookings.edu":      model.TierResearch,
	"rand.org":           model.TierResearch,
	"urban.org":          model.TierResearch,
	"nber.org":           model.TierResearch,
	"nytimes.com":        model.TierNationalNews,
	"washingtonpost.com": model.TierNationalNews,
	"wsj.com":            model.TierNationalNews,
	"apnews.com":         model.TierNationalNews,
	"reuters.com":        model.TierNationalNews,
	"usatoday.com":       model.TierNationalNews,
	"politico.com":       model.TierNationalNews,
	"cnn.com":            model.TierBroadcastNews,
	"nbcnews.com":        model.TierBroadcastNews,
	"abcnews.go.com":     model.TierBroadcastNews,
	"cbsnews.com":        model.TierBroadcastNews,
	"foxnews.com":        model.TierBroadcastNews,
	"npr.org":            model.TierBroadcastNews,
	"pbs.org":            model.TierBroadcastNews,
}

// ClassifyDomain maps a URL to its credibility tier and score.
func ClassifyDomain(rawURL string) (string, model.CredibilityTier, float64) {
	host := hostOf(rawURL)
	tier := classifyHost(host)
	return host, tier, tierScores[tier]
}

func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return strings.ToLower(rawURL)
	}
	host := strings.ToLower(parsed.Host)
	host = strings.TrimPrefix(host, "www.")
	if idx := strings.Index(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

func classifyHost(host string) model.CredibilityTier {
	// Exact and parent-domain table lookups first.
	for h := host; h != ""; {
		if tier, ok := domainTiers[h]; ok {
			return tier
		}
		idx := strings.Index(h, ".")
		if idx < 0 {
			break
		}
		h = h[idx+1:]
	}

	switch {
	case strings.HasSuffix(host, ".senate.gov"), strings.HasSuffix(host, ".house.gov"):
		return model.TierCongressional
	case strings.HasSuffix(host, ".state.gov"):
		return model.TierFederalAgency
	case stateLocalHost(host):
		return model.TierStateLocal
	case strings.HasSuffix(host, ".gov"):
		return model.TierFederalAgency
	case strings.HasSuffix(host, ".edu"):
		return model.TierResearch
	}
	return model.TierUnknownSource
}

// stateLocalHost recognizes state and municipal government domains like
// virginia.gov, richmondgov.com, and *.va.us.
func stateLocalHost(host string) bool {
	if strings.HasSuffix(host, ".us") {
		return true
	}
	for _, state := range stateNames {
		if host == state+".gov" || strings.HasSuffix(host, "."+state+".gov") {
			return true
		}
	}
	return false
}

var stateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"newhampshire", "newjersey", "newmexico", "newyork", "northcarolina",
	"northdakota", "ohio", "oklahoma", "oregon", "pennsylvania",
	"rhodeisland", "southcarolina", "southdakota", "tennessee", "texas",
	"utah", "vermont", "virginia", "washington", "westvirginia",
	"wisconsin", "wyoming",
}
