package structure

import (
	"strings"
	"testing"

	"github.com/edforman-75/presscheck/internal/model"
)

const sampleRelease = `FOR IMMEDIATE RELEASE

Senator Doe Announces New Bill

RICHMOND, VA — March 3, 2024 — Senator Jane Doe today introduced the Clean Water Act. "This bill will protect our rivers," Doe said.`

func TestExtract_FormalRelease(t *testing.T) {
	cs := Extract(sampleRelease)

	if cs.Headline != "Senator Doe Announces New Bill" {
		t.Errorf("Expected headline 'Senator Doe Announces New Bill', got %q", cs.Headline)
	}
	if cs.Dateline.Confidence != model.ConfidenceHigh {
		t.Errorf("Expected high dateline confidence, got %q", cs.Dateline.Confidence)
	}
	if cs.Dateline.Location != "RICHMOND, VA" {
		t.Errorf("Expected location 'RICHMOND, VA', got %q", cs.Dateline.Location)
	}
	if cs.Dateline.Date != "March 3, 2024" {
		t.Errorf("Expected date 'March 3, 2024', got %q", cs.Dateline.Date)
	}
	if cs.Metadata.Timing != model.TimingImmediate {
		t.Errorf("Expected immediate timing, got %q", cs.Metadata.Timing)
	}
	if cs.LeadParagraph == "" || !strings.Contains(cs.LeadParagraph, "Clean Water Act") {
		t.Errorf("Expected lead paragraph with the announcement, got %q", cs.LeadParagraph)
	}
}

func TestExtract_ParenthesizedDateline(t *testing.T) {
	text := `Governor Signs Budget Into Law After Long Session

Richmond, Va. (March 3, 2024) - The governor signed the state budget today.`

	cs := Extract(text)
	if cs.Dateline.Confidence != model.ConfidenceHigh {
		t.Errorf("Expected high confidence, got %q", cs.Dateline.Confidence)
	}
	if cs.Dateline.Location != "Richmond, Va." {
		t.Errorf("Expected 'Richmond, Va.', got %q", cs.Dateline.Location)
	}
}

func TestExtract_SubheadBetweenHeadlineAndDateline(t *testing.T) {
	text := `Smith Unveils Education Plan For Rural Schools

Plan targets teacher shortages: 500 new positions statewide

SPRINGFIELD, IL — March 3, 2024 — Today the campaign released its education plan.`

	cs := Extract(text)
	if cs.Headline != "Smith Unveils Education Plan For Rural Schools" {
		t.Errorf("Unexpected headline %q", cs.Headline)
	}
	if !strings.Contains(cs.Subhead, "teacher shortages") {
		t.Errorf("Expected subhead about teacher shortages, got %q", cs.Subhead)
	}
}

func TestExtractDateline_DateHeaderWithLocationLine(t *testing.T) {
	text := `March 3, 2024
RICHMOND, VA

Campaign Opens Tenth Field Office

The campaign opened its tenth field office today.`

	dl := extractDateline(text, strings.Split(text, "\n"))
	if dl.Confidence != model.ConfidenceMedium {
		t.Errorf("Expected medium confidence, got %q", dl.Confidence)
	}
	if dl.Location != "RICHMOND, VA" || dl.Date != "March 3, 2024" {
		t.Errorf("Unexpected dateline %q / %q", dl.Location, dl.Date)
	}
	if len(dl.Issues) == 0 {
		t.Error("Expected issues recording the fallback tier")
	}
}

func TestExtractDateline_EmbeddedScan(t *testing.T) {
	text := `Campaign Update
The team gathered in Richmond, VA for the announcement.
Supporters have been organizing since March 3, 2024 across the state.`

	dl := extractDateline(text, strings.Split(text, "\n"))
	if dl.Confidence != model.ConfidenceLow {
		t.Errorf("Expected low confidence, got %q", dl.Confidence)
	}
	if dl.Location == "" || dl.Date == "" {
		t.Errorf("Expected both fields recovered, got %q / %q", dl.Location, dl.Date)
	}
}

func TestExtractDateline_NothingFound(t *testing.T) {
	text := "A short note with no location or date information at all."
	dl := extractDateline(text, strings.Split(text, "\n"))
	if dl.Confidence != model.ConfidenceNone {
		t.Errorf("Expected none confidence, got %q", dl.Confidence)
	}
	if len(dl.Issues) == 0 {
		t.Error("Expected issues explaining the miss")
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	cs := Extract("   \n\n  ")
	if cs.Headline != "" || cs.Dateline.Confidence != model.ConfidenceNone {
		t.Errorf("Expected empty result, got %+v", cs)
	}
	if len(cs.Issues) == 0 {
		t.Error("Expected an issue for the empty document")
	}
}

func TestExtractMetadata_Embargo(t *testing.T) {
	text := `EMBARGOED UNTIL 6:00 AM ET, March 4, 2024

Doe Campaign Launches Statewide Bus Tour

RICHMOND, VA — March 3, 2024 — The campaign announced a bus tour.`

	cs := Extract(text)
	if cs.Metadata.Timing != model.TimingEmbargoed {
		t.Errorf("Expected embargoed timing, got %q", cs.Metadata.Timing)
	}
	if !strings.Contains(cs.Metadata.EmbargoDate, "March 4, 2024") {
		t.Errorf("Expected embargo date captured, got %q", cs.Metadata.EmbargoDate)
	}
}

func TestExtractMetadata_ContactBlock(t *testing.T) {
	text := `FOR IMMEDIATE RELEASE
Media Contact: Alex Rivera
press@doeforsenate.example
(804) 555-0142

Doe Campaign Announces Record Fundraising Quarter

RICHMOND, VA — March 3, 2024 — The campaign raised $2.4 million this quarter.`

	cs := Extract(text)
	if !cs.Metadata.HasContact {
		t.Fatal("Expected a contact block")
	}
	if !strings.Contains(cs.Metadata.ContactBlock, "Alex Rivera") ||
		!strings.Contains(cs.Metadata.ContactBlock, "press@doeforsenate.example") {
		t.Errorf("Expected name and email in contact block, got %q", cs.Metadata.ContactBlock)
	}
	if cs.Headline != "Doe Campaign Announces Record Fundraising Quarter" {
		t.Errorf("Contact lines leaked into headline selection: %q", cs.Headline)
	}
}

func TestExtract_BoilerplateRemovedFromBody(t *testing.T) {
	text := `Doe Secures Federal Funding For Bridge Repairs

RICHMOND, VA — March 3, 2024 — Senator Jane Doe announced $12 million in federal funding for bridge repairs.

The funding was included in the transportation bill passed last week.

About Jane Doe: Jane Doe represents the 4th district and was elected in 2020.`

	cs := Extract(text)
	if cs.Metadata.Boilerplate == "" {
		t.Fatal("Expected boilerplate detected")
	}
	for _, p := range append([]string{cs.LeadParagraph}, cs.BodyParagraphs...) {
		if p == cs.Metadata.Boilerplate {
			t.Error("Boilerplate paragraph should be removed from the body")
		}
	}
}

func TestSplitParagraphs_BlankLines(t *testing.T) {
	paras := splitParagraphs("First paragraph.\n\nSecond paragraph.\n\n\nThird.")
	if len(paras) != 3 {
		t.Fatalf("Expected 3 paragraphs, got %d: %v", len(paras), paras)
	}
}

func TestSplitParagraphs_QuoteBoundaryFallback(t *testing.T) {
	flat := strings.Repeat("The campaign knocked on thousands of doors across the district this fall. ", 4) +
		`"We are proud of this effort and the volunteers who made it happen across every county," said the field director. ` +
		strings.Repeat("Organizers will continue through the final weekend before the election. ", 3)

	paras := splitParagraphs(flat)
	if len(paras) < 2 {
		t.Fatalf("Expected quote-boundary split to produce multiple paragraphs, got %d", len(paras))
	}
	foundQuoteOpen := false
	for _, p := range paras {
		if strings.HasPrefix(p, `"`) {
			foundQuoteOpen = true
		}
	}
	if !foundQuoteOpen {
		t.Error("Expected a paragraph opening with the quote")
	}
}

func TestSplitParagraphs_ShortContentNoFallback(t *testing.T) {
	paras := splitParagraphs("One short line without blank-line breaks.")
	if len(paras) != 1 {
		t.Fatalf("Expected single paragraph, got %d", len(paras))
	}
}
