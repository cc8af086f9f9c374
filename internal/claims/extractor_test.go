package claims

import (
	"reflect"
	"testing"

	"github.com/edforman-75/presscheck/internal/model"
)

func classifyOne(t *testing.T, sentence string) model.Claim {
	t.Helper()
	claim, ok := classifySentence(sentence, 0)
	if !ok {
		t.Fatalf("Expected sentence to classify as a claim: %q", sentence)
	}
	return claim
}

func TestClassify_PrivateData(t *testing.T) {
	claim := classifyOne(t, "Our internal polling shows we are 20 points ahead.")
	if claim.Category != model.CategoryPrivateData {
		t.Fatalf("Expected private_data, got %q", claim.Category)
	}
	if claim.Verifiable {
		t.Error("Private-data claims are not verifiable")
	}
	if claim.VerificationType != model.VerifyUnverifiable {
		t.Errorf("Expected unverifiable, got %q", claim.VerificationType)
	}
}

func TestClassify_PrivateDataPublicSourceShortCircuit(t *testing.T) {
	claim := classifyOne(t, "Polling from Gallup shows unemployment concerns rose 12 percent in March.")
	if claim.Category == model.CategoryPrivateData {
		t.Error("A named public source must short-circuit private-data detection")
	}
}

func TestClassify_PlausibleDeniability(t *testing.T) {
	claim := classifyOne(t, "People are saying the election was rigged.")
	if claim.Category != model.CategoryPlausibleDeniability {
		t.Fatalf("Expected plausible_deniability, got %q", claim.Category)
	}
	if claim.Confidence < 0.50 {
		t.Errorf("Expected confidence >= 0.50, got %f", claim.Confidence)
	}
	if !claim.HasDeniabilityMarkers() {
		t.Error("Expected deniability labels")
	}
	if claim.VerificationType != model.VerifyExtractUnderlying {
		t.Errorf("Expected extract_underlying, got %q", claim.VerificationType)
	}
}

func TestClassify_RhetoricalQuestionBoost(t *testing.T) {
	_, labels, matched := deniabilityScore("Isn't it funny how the numbers changed right after the audit was announced?")
	if !matched {
		t.Fatal("Expected deniability match")
	}
	found := false
	for _, l := range labels {
		if l == "rhetorical-question" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected rhetorical-question label, got %v", labels)
	}
}

func TestDeniabilityScore_CappedAtOne(t *testing.T) {
	score, _, _ := deniabilityScore(
		"People are saying, and reports indicate, that this rigged cover-up is just asking to be investigated, or so they say.")
	if score > 1.0 {
		t.Errorf("Score must cap at 1.0, got %f", score)
	}
}

func TestClassify_Hearsay(t *testing.T) {
	claim := classifyOne(t, "Smith admitted that the program ran over budget by millions.")
	if claim.Category != model.CategoryHearsay {
		t.Fatalf("Expected hearsay, got %q", claim.Category)
	}
	if !claim.Verifiable || claim.VerificationType != model.VerifyTwoStep {
		t.Errorf("Hearsay should be verifiable two-step, got %v/%q", claim.Verifiable, claim.VerificationType)
	}
}

func TestClassify_Comparative(t *testing.T) {
	claim := classifyOne(t, "Unemployment is now lower than it was in 2019.")
	if claim.Category != model.CategoryComparative {
		t.Fatalf("Expected comparative, got %q", claim.Category)
	}
	if claim.VerificationType != model.VerifyMultiStepComparative {
		t.Errorf("Expected multi_step_comparative, got %q", claim.VerificationType)
	}
	if claim.Plan == nil {
		t.Fatal("Expected a verification plan")
	}
	if len(claim.Plan.Steps) != 4 {
		t.Errorf("Expected a 4-step plan, got %d steps", len(claim.Plan.Steps))
	}
	if claim.Plan.TimeReference != "2019" {
		t.Errorf("Expected time reference '2019', got %q", claim.Plan.TimeReference)
	}
}

func TestClassify_Standard(t *testing.T) {
	claim := classifyOne(t, "The campaign raised $2.4 million from donors across the state in March 2024.")
	if claim.Category != model.CategoryStandard {
		t.Fatalf("Expected standard, got %q", claim.Category)
	}
	if !claim.Verifiable || claim.VerificationType != model.VerifyStandard {
		t.Errorf("Expected verifiable standard claim, got %v/%q", claim.Verifiable, claim.VerificationType)
	}
	if len(claim.NumericClaims) == 0 {
		t.Error("Expected numeric claims extracted")
	}
	if claim.Confidence <= 0.5 {
		t.Errorf("Dense factual sentence should score above 0.5, got %f", claim.Confidence)
	}
}

func TestClassify_HedgedSentenceRejected(t *testing.T) {
	sentence := "We believe this plan might be transformative for many families."
	if _, ok := classifySentence(sentence, 0); ok {
		t.Fatal("Expected hedged sentence to be rejected")
	}

	nonFactual := ExtractNonFactual(sentence)
	if len(nonFactual) != 1 {
		t.Fatalf("Expected 1 rejected statement, got %d", len(nonFactual))
	}
	if nonFactual[0].Reason != "hedged or speculative language" {
		t.Errorf("Unexpected rejection reason %q", nonFactual[0].Reason)
	}
}

func TestClassify_LowDensityRejected(t *testing.T) {
	sentence := "Our communities deserve leaders who truly listen."
	if _, ok := classifySentence(sentence, 0); ok {
		t.Fatal("Expected vague sentence to be rejected")
	}

	nonFactual := ExtractNonFactual(sentence)
	if len(nonFactual) != 1 {
		t.Fatalf("Expected 1 rejected statement, got %d", len(nonFactual))
	}
	if nonFactual[0].Reason != "insufficient factual specifics" {
		t.Errorf("Unexpected rejection reason %q", nonFactual[0].Reason)
	}
}

func TestExtract_CategoryTotalityAndExclusivity(t *testing.T) {
	text := `Our internal polling shows we are 20 points ahead. People are saying the election was rigged. Smith admitted that the program ran over budget. Unemployment is now lower than it was in 2019. The campaign raised $2.4 million in March 2024. We believe this plan might be transformative for many families.`

	valid := map[model.ClaimCategory]bool{
		model.CategoryPrivateData:          true,
		model.CategoryPlausibleDeniability: true,
		model.CategoryHearsay:              true,
		model.CategoryComparative:          true,
		model.CategoryStandard:             true,
	}

	extracted := Extract(text)
	if len(extracted) < 5 {
		t.Fatalf("Expected at least 5 claims, got %d", len(extracted))
	}
	for _, c := range extracted {
		if !valid[c.Category] {
			t.Errorf("Invalid category %q", c.Category)
		}
		if c.Confidence < 0 || c.Confidence > 1 {
			t.Errorf("Confidence %f out of [0,1]", c.Confidence)
		}
	}

	// Accepted and rejected sentence indexes never overlap.
	claimed := map[int]bool{}
	for _, c := range extracted {
		claimed[c.SentenceIndex] = true
	}
	for _, nf := range ExtractNonFactual(text) {
		if claimed[nf.SentenceIndex] {
			t.Errorf("Sentence %d both claimed and rejected", nf.SentenceIndex)
		}
	}
}

func TestExtract_Deterministic(t *testing.T) {
	text := `The campaign raised $2.4 million in March 2024. People are saying the election was rigged. Unemployment is now lower than it was in 2019.`
	first := Extract(text)
	second := Extract(text)
	if !reflect.DeepEqual(first, second) {
		t.Error("Extraction must be deterministic")
	}
}

func TestExtract_ShortSentencesSkippedButIndexed(t *testing.T) {
	text := `Vote now. The campaign raised $2.4 million from supporters in March 2024.`
	extracted := Extract(text)
	if len(extracted) != 1 {
		t.Fatalf("Expected 1 claim, got %d", len(extracted))
	}
	if extracted[0].SentenceIndex != 1 {
		t.Errorf("Short sentences still advance the index; expected 1, got %d", extracted[0].SentenceIndex)
	}
}

func TestCaptureAttribution(t *testing.T) {
	if got := captureAttribution("Crime fell 12 percent according to FBI data released in June."); got == "" {
		t.Error("Expected an attribution capture")
	}
	if got := captureAttribution("Crime fell 12 percent in the latest reporting period."); got != "" {
		t.Errorf("Expected no attribution, got %q", got)
	}
}
