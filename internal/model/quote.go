package model

// Quote represents a quoted span resolved to a speaker. Position is a byte
// offset of the opening quote mark in the source text; the final quote list
// for a document is sorted ascending by Position.
type Quote struct {
	Text         string  `json:"text"`
	SpeakerName  string  `json:"speaker_name,omitempty"`
	SpeakerTitle string  `json:"speaker_title,omitempty"`
	Attribution  string  `json:"attribution"`
	Position     int     `json:"position"`
	Confidence   float64 `json:"confidence"`
	IsMultiPart  bool    `json:"is_multi_part"`
}

// UnknownSpeaker is the attribution placeholder for quotes no strategy could
// resolve. Merge logic treats it the same as an empty attribution.
const UnknownSpeaker = "Unknown"

// HasAttribution reports whether the quote carries a real resolved speaker.
func (q Quote) HasAttribution() bool {
	return q.Attribution != "" && q.Attribution != UnknownSpeaker
}
