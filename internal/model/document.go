package model

import "strings"

// Confidence is a coarse confidence tier used by extractors whose output is
// assembled from fallback strategies rather than a single score.
type Confidence string

const (
	ConfidenceNone   Confidence = "none"
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// RawDocument wraps the immutable input text. All position offsets in
// downstream entities index into Text, never into Trimmed.
type RawDocument struct {
	Text    string
	Trimmed string
}

// NewRawDocument builds a RawDocument from raw input text.
func NewRawDocument(text string) RawDocument {
	return RawDocument{Text: text, Trimmed: strings.TrimSpace(text)}
}

// Dateline is the "CITY, STATE — Month Day, Year" header locating and dating
// a release. Location and Date are empty when not found; Issues records which
// fallback strategies ran and why.
type Dateline struct {
	Location   string     `json:"location,omitempty"`
	Date       string     `json:"date,omitempty"`
	Confidence Confidence `json:"confidence"`
	Issues     []string   `json:"issues,omitempty"`
}

// ReleaseTiming distinguishes immediate releases from embargoed ones.
type ReleaseTiming string

const (
	TimingImmediate ReleaseTiming = "immediate"
	TimingEmbargoed ReleaseTiming = "embargoed"
	TimingUnknown   ReleaseTiming = "unknown"
)

// ReleaseMetadata carries document-level release markers recovered from the
// header and footer regions of a press release.
type ReleaseMetadata struct {
	Timing       ReleaseTiming `json:"timing"`
	EmbargoDate  string        `json:"embargo_date,omitempty"`
	HasContact   bool          `json:"has_contact"`
	ContactBlock string        `json:"contact_block,omitempty"`
	Boilerplate  string        `json:"boilerplate,omitempty"`
}

// ContentStructure is the structural decomposition of a press release.
// It is computed once per parse and never mutated afterwards.
type ContentStructure struct {
	Headline       string          `json:"headline,omitempty"`
	Subhead        string          `json:"subhead,omitempty"`
	Dateline       Dateline        `json:"dateline"`
	LeadParagraph  string          `json:"lead_paragraph,omitempty"`
	BodyParagraphs []string        `json:"body_paragraphs,omitempty"`
	Metadata       ReleaseMetadata `json:"metadata"`
	Issues         []string        `json:"issues,omitempty"`
}

// ParseResult is the combined output of the parse entry point: structure,
// quotes, and classification over one document.
type ParseResult struct {
	Structure      ContentStructure     `json:"structure"`
	Quotes         []Quote              `json:"quotes"`
	Classification ClassificationResult `json:"classification"`
}
