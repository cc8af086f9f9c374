package model

// ClaimCategory classifies the verifiability of a sentence. Assignment is
// mutually exclusive: each sentence is tested against the categories in a
// fixed priority order and takes the first that matches.
type ClaimCategory string

const (
	CategoryPrivateData          ClaimCategory = "private_data"
	CategoryPlausibleDeniability ClaimCategory = "plausible_deniability"
	CategoryHearsay              ClaimCategory = "hearsay"
	CategoryComparative          ClaimCategory = "comparative"
	CategoryStandard             ClaimCategory = "standard"
)

// VerificationType describes how a claim in a given category can be checked.
type VerificationType string

const (
	VerifyUnverifiable         VerificationType = "unverifiable"
	VerifyExtractUnderlying    VerificationType = "extract_underlying"
	VerifyTwoStep              VerificationType = "two_step"
	VerifyMultiStepComparative VerificationType = "multi_step_comparative"
	VerifyStandard             VerificationType = "standard"
)

// NumericKind classifies an extracted numeric assertion.
type NumericKind string

const (
	NumericCurrency   NumericKind = "currency"
	NumericPercentage NumericKind = "percentage"
	NumericCount      NumericKind = "count"
)

// NumericClaim is a number asserted inside a claim sentence, normalized to a
// float value with its unit context preserved.
type NumericClaim struct {
	Kind    NumericKind `json:"kind"`
	Value   float64     `json:"value"`
	Unit    string      `json:"unit,omitempty"`
	RawText string      `json:"raw_text"`
}

// VerificationPlan is the ordered step list emitted for comparative claims.
type VerificationPlan struct {
	Steps         []string `json:"steps"`
	TimeReference string   `json:"time_reference,omitempty"`
}

// Claim is a sentence-level factual assertion with its verifiability
// classification.
type Claim struct {
	Statement         string            `json:"statement"`
	SentenceIndex     int               `json:"sentence_index"`
	Category          ClaimCategory     `json:"category"`
	Verifiable        bool              `json:"verifiable"`
	VerificationType  VerificationType  `json:"verification_type"`
	Confidence        float64           `json:"confidence"`
	NumericClaims     []NumericClaim    `json:"numeric_claims,omitempty"`
	Attribution       string            `json:"attribution,omitempty"`
	Plan              *VerificationPlan `json:"plan,omitempty"`
	DeniabilityLabels []string          `json:"deniability_labels,omitempty"`
	Notes             string            `json:"notes,omitempty"`
}

// HasDeniabilityMarkers reports whether deniability patterns matched the
// claim sentence; the verifier penalizes confidence for such claims.
func (c Claim) HasDeniabilityMarkers() bool {
	return len(c.DeniabilityLabels) > 0
}

// NonFactualStatement is a sentence rejected from claim extraction, kept with
// the reason it was rejected.
type NonFactualStatement struct {
	Statement     string  `json:"statement"`
	SentenceIndex int     `json:"sentence_index"`
	Reason        string  `json:"reason"`
	Score         float64 `json:"score"`
}
