package claims

import (
	"strings"
	"testing"
)

func allSentences(text string) []string {
	var out []string
	scanner := newSentenceScanner(text)
	for {
		sentence, _, ok := scanner.Next()
		if !ok {
			return out
		}
		out = append(out, sentence)
	}
}

func TestSentenceScanner_SplitsOnTerminators(t *testing.T) {
	got := allSentences("First sentence here. Second one follows! Does a third work? Yes.")
	want := []string{"First sentence here.", "Second one follows!", "Does a third work?", "Yes."}
	if len(got) != len(want) {
		t.Fatalf("Expected %d sentences, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Sentence %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSentenceScanner_NoSplitOnLowercaseContinuation(t *testing.T) {
	got := allSentences("The budget hit $3.5 million this year. vs last year it was lower.")
	if len(got) != 1 {
		t.Fatalf("Lowercase continuation must not split; got %d sentences: %v", len(got), got)
	}
}

func TestSentenceScanner_ConsumesClosingQuote(t *testing.T) {
	got := allSentences(`"We will win this fight." Doe said nothing further.`)
	if len(got) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(got), got)
	}
	if !strings.HasSuffix(got[0], `."`) {
		t.Errorf("Closing quote belongs to the first sentence, got %q", got[0])
	}
}

func TestSentenceScanner_Offsets(t *testing.T) {
	text := "  Leading space trimmed. Second sentence starts here."
	scanner := newSentenceScanner(text)

	first, offset, ok := scanner.Next()
	if !ok {
		t.Fatal("Expected a first sentence")
	}
	if offset != 2 {
		t.Errorf("Expected offset 2, got %d", offset)
	}
	if text[offset:offset+len(first)] != first {
		t.Error("Offset must index the sentence in the original text")
	}

	second, offset, ok := scanner.Next()
	if !ok {
		t.Fatal("Expected a second sentence")
	}
	if text[offset:offset+len(second)] != second {
		t.Error("Offset must index the sentence in the original text")
	}
}

func TestSentenceScanner_Reset(t *testing.T) {
	scanner := newSentenceScanner("One sentence only.")
	first, _, _ := scanner.Next()
	if _, _, ok := scanner.Next(); ok {
		t.Fatal("Expected exhaustion")
	}
	scanner.Reset()
	again, _, ok := scanner.Next()
	if !ok || again != first {
		t.Errorf("Reset must restart the scan; got %q", again)
	}
}

func TestSentenceScanner_Empty(t *testing.T) {
	if got := allSentences("   \n\n  "); got != nil {
		t.Errorf("Expected no sentences, got %v", got)
	}
}
