package model

// ReleaseType is the document-level type assigned by the classifier.
type ReleaseType string

const (
	TypeStatement     ReleaseType = "statement"
	TypeNewsRelease   ReleaseType = "news_release"
	TypeFactSheet     ReleaseType = "fact_sheet"
	TypeMediaAdvisory ReleaseType = "media_advisory"
	TypeLetter        ReleaseType = "letter"
	TypeTranscript    ReleaseType = "transcript"
	TypeUnknown       ReleaseType = "unknown"
)

// SubtypeResult is a confidence-tagged subtype detection; subtypes are not
// scored against each other.
type SubtypeResult struct {
	Subtype    string     `json:"subtype"`
	Confidence Confidence `json:"confidence"`
	Keywords   []string   `json:"keywords,omitempty"`
}

// IssueResult is a confidence-tagged topic/issue detection.
type IssueResult struct {
	Issue      string     `json:"issue"`
	Confidence Confidence `json:"confidence"`
}

// ClassificationResult is the classifier output: the winning type with its
// score breakdown, plus independent subtype and issue detections.
type ClassificationResult struct {
	ReleaseType ReleaseType            `json:"release_type"`
	Confidence  Confidence             `json:"confidence"`
	Score       int                    `json:"score"`
	Indicators  []string               `json:"indicators,omitempty"`
	AllScores   map[ReleaseType]int    `json:"all_scores"`
	Subtypes    []SubtypeResult        `json:"subtypes,omitempty"`
	Issues      []IssueResult          `json:"issues,omitempty"`
}
