package quote

import (
	"regexp"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// titleTokens are honorifics and office titles that precede names. A title
// token is never treated as a first name.
var titleTokens = map[string]bool{
	"senator": true, "sen.": true, "sen": true,
	"representative": true, "rep.": true, "rep": true,
	"congressman": true, "congresswoman": true,
	"governor": true, "gov.": true, "gov": true,
	"mayor": true, "president": true, "secretary": true,
	"dr.": true, "dr": true, "mr.": true, "mrs.": true, "ms.": true,
	"speaker": true, "sheriff": true, "councilmember": true,
	"delegate": true, "chairman": true, "chairwoman": true, "chair": true,
	"attorney": true, "general": true, "lt.": true, "lieutenant": true,
	"state": true,
}

// governorClassTitles take a state suffix from the dateline; mayorClassTitles
// take the city.
var governorClassTitles = map[string]bool{
	"governor": true, "gov.": true, "lieutenant governor": true,
	"lt. governor": true, "attorney general": true, "state senator": true,
	"state delegate": true,
}

var mayorClassTitles = map[string]bool{
	"mayor": true, "councilmember": true, "sheriff": true,
}

// fullNamePattern matches two- to four-token capitalized names, supporting
// hyphenated and apostrophe surnames.
var fullNamePattern = regexp.MustCompile(`\b[A-Z][a-z'\-]+(?:\s+[A-Z]\.)?(?:\s+[A-Z][A-Za-z'\-]+){1,2}\b`)

// splitTitle separates leading title tokens from a captured name. The
// returned name never begins with a title token.
func splitTitle(captured string) (title, name string) {
	words := strings.Fields(captured)
	i := 0
	for i < len(words) && titleTokens[strings.ToLower(words[i])] {
		i++
	}
	return strings.Join(words[:i], " "), strings.Join(words[i:], " ")
}

// resolveFullName prefers the earliest full-name occurrence in the document
// whose surname matches the captured name. A bare surname is expanded to the
// first full name ending with it; a full name passes through unchanged.
func resolveFullName(text, captured string) string {
	_, name := splitTitle(captured)
	if name == "" {
		return ""
	}
	words := strings.Fields(name)
	if len(words) >= 2 {
		if earliest := earliestOccurrence(text, name); earliest != "" {
			return earliest
		}
		return name
	}

	surname := words[0]
	for _, m := range fullNamePattern.FindAllString(text, -1) {
		parts := strings.Fields(m)
		if titleTokens[strings.ToLower(parts[0])] {
			parts = parts[1:]
		}
		if len(parts) >= 2 && parts[len(parts)-1] == surname {
			return strings.Join(parts, " ")
		}
	}
	return surname
}

// earliestOccurrence returns the name as it first appears in the document,
// or "" when it never appears verbatim.
func earliestOccurrence(text, name string) string {
	if strings.Contains(text, name) {
		return name
	}
	return ""
}

// resolveTitle finds the title used with the name in the document and
// appends dateline location context for state- and city-level offices.
func resolveTitle(text, fullName string, dateline model.Dateline) string {
	title := ""
	surname := fullName
	if parts := strings.Fields(fullName); len(parts) > 0 {
		surname = parts[len(parts)-1]
	}

	// Look for "Title Name" or "Title Surname" usage anywhere in the text.
	re := regexp.MustCompile(`(?i)\b((?:state\s+|lt\.\s+|lieutenant\s+)?(?:senator|sen\.|representative|rep\.|congressman|congresswoman|governor|gov\.|mayor|president|secretary|speaker|sheriff|councilmember|delegate|attorney\s+general|dr\.))\s+` + regexp.QuoteMeta(surname))
	if m := re.FindStringSubmatch(text); m != nil {
		title = normalizeTitle(m[1])
	}
	if title == "" {
		return ""
	}

	lower := strings.ToLower(title)
	city, state := splitLocation(dateline.Location)
	switch {
	case governorClassTitles[lower] && state != "":
		return title + " (" + state + ")"
	case mayorClassTitles[lower] && city != "":
		return title + " of " + titleCase(city)
	}
	return title
}

// normalizeTitle canonicalizes whitespace and casing of a matched title.
func normalizeTitle(raw string) string {
	words := strings.Fields(strings.ToLower(raw))
	for i, w := range words {
		if w == "lt." || w == "dr." || w == "sen." || w == "rep." || w == "gov." {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// splitLocation splits a dateline location "CITY, ST" into its parts.
func splitLocation(location string) (city, state string) {
	parts := strings.SplitN(location, ",", 2)
	if len(parts) == 0 {
		return "", ""
	}
	city = strings.TrimSpace(parts[0])
	if len(parts) == 2 {
		state = strings.TrimSpace(parts[1])
	}
	return city, state
}

// titleCase lowercases then capitalizes each word of an all-caps city name.
func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
