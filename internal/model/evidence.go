package model

// CredibilityTier ranks evidence source domains. Tiers map to fixed scores;
// the table lives in the verify package.
type CredibilityTier string

const (
	TierCongressional CredibilityTier = "congressional_official"
	TierFederalAgency CredibilityTier = "federal_agency"
	TierFactChecking  CredibilityTier = "fact_checking"
	TierResearch      CredibilityTier = "research_institution"
	TierNationalNews  CredibilityTier = "national_news"
	TierBroadcastNews CredibilityTier = "broadcast_news"
	TierStateLocal    CredibilityTier = "state_local"
	TierUnknownSource CredibilityTier = "unknown"
)

// SearchResult is one candidate returned by an injected search collaborator,
// in descending rank order.
type SearchResult struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Evidence is one fetched source evaluated against a claim.
type Evidence struct {
	URL              string          `json:"url"`
	Domain           string          `json:"domain"`
	CredibilityTier  CredibilityTier `json:"credibility_tier"`
	CredibilityScore float64         `json:"credibility_score"`
	SupportsClaim    bool            `json:"supports_claim"`
	MatchConfidence  float64         `json:"match_confidence"`
	Excerpt          string          `json:"excerpt,omitempty"`
}
