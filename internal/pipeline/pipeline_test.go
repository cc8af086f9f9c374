package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edforman-75/presscheck/internal/model"
)

const sampleRelease = "FOR IMMEDIATE RELEASE\n\n" +
	"Senator Doe Announces New Bill\n\n" +
	"RICHMOND, VA — March 3, 2024 — Senator Jane Doe today introduced the Clean Water Act. " +
	"\"This bill will protect our rivers,\" Doe said. " +
	"The bill allocates $5 million for river cleanup across 40 counties."

func testPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.HTTP.RatePerSecond = 0
	return NewPipeline(cfg)
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleRelease); err != nil {
		t.Errorf("Expected valid input, got %v", err)
	}
	if err := Validate("   \n\t  "); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
	if err := Validate("headline\x00body"); !errors.Is(err, ErrBinaryInput) {
		t.Errorf("Expected ErrBinaryInput for NUL bytes, got %v", err)
	}
	if err := Validate("bad utf8: \xff\xfe"); !errors.Is(err, ErrBinaryInput) {
		t.Errorf("Expected ErrBinaryInput for invalid UTF-8, got %v", err)
	}

	err := validateInput(strings.Repeat("a", 100), 50)
	var sizeErr *SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("Expected SizeError, got %v", err)
	}
	if sizeErr.Size != 100 || sizeErr.Max != 50 {
		t.Errorf("Unexpected SizeError fields: %+v", sizeErr)
	}
}

func TestPipeline_Parse(t *testing.T) {
	p := testPipeline(t)
	parsed, err := p.Parse(sampleRelease)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	st := parsed.Structure
	if st.Headline != "Senator Doe Announces New Bill" {
		t.Errorf("Unexpected headline %q", st.Headline)
	}
	if st.Dateline.Confidence != model.ConfidenceHigh {
		t.Errorf("Expected high dateline confidence, got %q", st.Dateline.Confidence)
	}
	if st.Dateline.Location != "RICHMOND, VA" {
		t.Errorf("Unexpected dateline location %q", st.Dateline.Location)
	}

	if len(parsed.Quotes) != 1 {
		t.Fatalf("Expected 1 quote, got %d", len(parsed.Quotes))
	}
	if parsed.Quotes[0].SpeakerName != "Jane Doe" {
		t.Errorf("Expected speaker 'Jane Doe', got %q", parsed.Quotes[0].SpeakerName)
	}

	if parsed.Classification.ReleaseType != model.TypeNewsRelease {
		t.Errorf("Expected news_release, got %q", parsed.Classification.ReleaseType)
	}
}

func TestPipeline_ParseRejectsEmptyInput(t *testing.T) {
	p := testPipeline(t)
	if _, err := p.Parse(""); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestPipeline_ExtractClaims(t *testing.T) {
	p := testPipeline(t)
	extracted, _, err := p.ExtractClaims(sampleRelease)
	if err != nil {
		t.Fatalf("ExtractClaims: %v", err)
	}
	found := false
	for _, c := range extracted {
		if strings.Contains(c.Statement, "$5 million") {
			found = true
			if !c.Verifiable {
				t.Error("The funding claim should be verifiable")
			}
		}
	}
	if !found {
		t.Error("Expected a claim about the $5 million allocation")
	}
}

func TestPipeline_CheckWithoutSearchEndpoint(t *testing.T) {
	// With no search endpoint every grounding attempt fails closed; the
	// report must still carry one verdict per verifiable claim.
	p := testPipeline(t)
	report, err := p.Check(context.Background(), "sample.txt", sampleRelease)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	verifiable := 0
	for _, c := range report.Claims {
		if c.Verifiable {
			verifiable++
		}
	}
	if len(report.Verifications) != verifiable {
		t.Fatalf("Expected %d verifications, got %d", verifiable, len(report.Verifications))
	}
	for i, v := range report.Verifications {
		if v.Status != model.StatusUnsupported {
			t.Errorf("Verification %d: expected unsupported, got %s", i, v.Status)
		}
	}
	if report.Source != "sample.txt" {
		t.Errorf("Unexpected source %q", report.Source)
	}
	if report.CheckedAt.IsZero() {
		t.Error("CheckedAt must be set")
	}
}

func TestRenderer_WritesFiles(t *testing.T) {
	p := testPipeline(t)
	report, err := p.Check(context.Background(), "sample.txt", sampleRelease)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")
	if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}

	jsonData, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON report: %v", err)
	}
	if !strings.Contains(string(jsonData), `"checked_at"`) {
		t.Error("JSON report missing checked_at")
	}

	mdData, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown report: %v", err)
	}
	md := string(mdData)
	if !strings.Contains(md, "# Press Release Analysis: Senator Doe Announces New Bill") {
		t.Error("Markdown report missing title")
	}
	if !strings.Contains(md, "## Quotes") {
		t.Error("Markdown report missing quotes section")
	}
	if !strings.Contains(md, "Generated by presscheck.") {
		t.Error("Markdown report missing footer")
	}
}

func TestRenderer_FooterDisabled(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Output.IncludeFooter = false
	p := NewPipeline(cfg)

	report, err := p.Check(context.Background(), "", sampleRelease)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	mdPath := filepath.Join(t.TempDir(), "report.md")
	if err := p.RenderReport(report, "", mdPath, false); err != nil {
		t.Fatalf("RenderReport: %v", err)
	}
	data, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if strings.Contains(string(data), "Generated by presscheck.") {
		t.Error("Footer must be omitted when disabled")
	}
}
