package claims

import (
	"testing"

	"github.com/edforman-75/presscheck/internal/model"
)

func findNumeric(claims []model.NumericClaim, kind model.NumericKind) (model.NumericClaim, bool) {
	for _, c := range claims {
		if c.Kind == kind {
			return c, true
		}
	}
	return model.NumericClaim{}, false
}

func TestExtractNumericClaims_Currency(t *testing.T) {
	claims := ExtractNumericClaims("The bill allocates $5.2 million for river cleanup.")
	c, ok := findNumeric(claims, model.NumericCurrency)
	if !ok {
		t.Fatal("Expected a currency claim")
	}
	if c.Value != 5.2e6 {
		t.Errorf("Expected 5.2e6, got %f", c.Value)
	}
	if c.Unit != "million" {
		t.Errorf("Expected unit 'million', got %q", c.Unit)
	}
	if c.RawText != "$5.2 million" {
		t.Errorf("Unexpected raw text %q", c.RawText)
	}
}

func TestExtractNumericClaims_Percentage(t *testing.T) {
	claims := ExtractNumericClaims("Crime fell 12.5 percent over two years.")
	c, ok := findNumeric(claims, model.NumericPercentage)
	if !ok {
		t.Fatal("Expected a percentage claim")
	}
	if c.Value != 12.5 {
		t.Errorf("Expected 12.5, got %f", c.Value)
	}
}

func TestExtractNumericClaims_Count(t *testing.T) {
	claims := ExtractNumericClaims("The program serves 300,000 people across the region.")
	c, ok := findNumeric(claims, model.NumericCount)
	if !ok {
		t.Fatal("Expected a count claim")
	}
	if c.Value != 300000 {
		t.Errorf("Expected 300000, got %f", c.Value)
	}
}

func TestExtractNumericClaims_CountWithMagnitude(t *testing.T) {
	claims := ExtractNumericClaims("More than 2 million voters cast ballots early.")
	c, ok := findNumeric(claims, model.NumericCount)
	if !ok {
		t.Fatal("Expected a count claim")
	}
	if c.Value != 2e6 {
		t.Errorf("Expected 2e6, got %f", c.Value)
	}
}

func TestExtractNumericClaims_CurrencyNotDoubleCountedAsCount(t *testing.T) {
	claims := ExtractNumericClaims("The campaign raised $2.4 million from donors.")
	if _, ok := findNumeric(claims, model.NumericCount); ok {
		t.Error("Currency amounts must not also appear as counts")
	}
	if len(claims) != 1 {
		t.Errorf("Expected 1 claim, got %d", len(claims))
	}
}

func TestExtractNumericClaims_MultipleKinds(t *testing.T) {
	claims := ExtractNumericClaims("A $3 billion plan would cut rates by 4 percent for 50,000 families.")
	if len(claims) != 3 {
		t.Fatalf("Expected 3 claims, got %d", len(claims))
	}
	if c, _ := findNumeric(claims, model.NumericCurrency); c.Value != 3e9 {
		t.Errorf("Expected 3e9 currency, got %f", c.Value)
	}
	if c, _ := findNumeric(claims, model.NumericPercentage); c.Value != 4 {
		t.Errorf("Expected 4 percent, got %f", c.Value)
	}
	if c, _ := findNumeric(claims, model.NumericCount); c.Value != 50000 {
		t.Errorf("Expected 50000 count, got %f", c.Value)
	}
}

func TestExtractNumericClaims_None(t *testing.T) {
	if claims := ExtractNumericClaims("This plan is good for the whole state."); len(claims) != 0 {
		t.Errorf("Expected no numeric claims, got %d", len(claims))
	}
}
