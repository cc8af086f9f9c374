package model

// VerificationStatus is the final verdict for a claim.
type VerificationStatus string

const (
	StatusTrue        VerificationStatus = "true"
	StatusFalse       VerificationStatus = "false"
	StatusMisleading  VerificationStatus = "misleading"
	StatusUnsupported VerificationStatus = "unsupported"
)

// VerificationMethod records how the claim was compared against evidence.
type VerificationMethod string

const (
	MethodExact        VerificationMethod = "exact"
	MethodNumericRange VerificationMethod = "numeric_range"
)

// GroundingAttempt records one candidate-evidence evaluation during
// grounding, including failed fetches.
type GroundingAttempt struct {
	URL    string `json:"url"`
	Status string `json:"status"` // "evaluated", "error", "skipped"
	Error  string `json:"error,omitempty"`
}

// VerificationResult is produced exactly once per claim. Callers always
// receive one, even when grounding found nothing.
type VerificationResult struct {
	Status     VerificationStatus `json:"status"`
	Confidence float64            `json:"confidence"`
	Method     VerificationMethod `json:"method"`
	Evidence   []Evidence         `json:"evidence,omitempty"`
	Attempts   []GroundingAttempt `json:"attempts,omitempty"`
	Notes      string             `json:"notes,omitempty"`
}
