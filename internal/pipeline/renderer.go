package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/edforman-75/presscheck/internal/model"
)

// Renderer writes analysis reports as JSON or Markdown.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderMarkdown writes the report as a human-readable Markdown document.
func (r *Renderer) RenderMarkdown(report *Report, path string) error {
	var b strings.Builder

	headline := report.Parse.Structure.Headline
	if headline == "" {
		headline = "Untitled release"
	}
	fmt.Fprintf(&b, "# Press Release Analysis: %s\n\n", headline)
	if report.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", report.Source)
	}
	fmt.Fprintf(&b, "Checked: %s\n\n", report.CheckedAt.Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Structure\n\n")
	cls := report.Parse.Classification
	fmt.Fprintf(&b, "- Type: %s (%s confidence, score %d)\n", cls.ReleaseType, cls.Confidence, cls.Score)
	dl := report.Parse.Structure.Dateline
	if dl.Location != "" || dl.Date != "" {
		fmt.Fprintf(&b, "- Dateline: %s, %s (%s confidence)\n", dl.Location, dl.Date, dl.Confidence)
	}
	if sub := report.Parse.Structure.Subhead; sub != "" {
		fmt.Fprintf(&b, "- Subhead: %s\n", sub)
	}
	for _, st := range cls.Subtypes {
		fmt.Fprintf(&b, "- Subtype: %s (%s)\n", st.Subtype, st.Confidence)
	}
	for _, is := range cls.Issues {
		fmt.Fprintf(&b, "- Issue: %s (%s)\n", is.Issue, is.Confidence)
	}
	b.WriteString("\n")

	if len(report.Parse.Quotes) > 0 {
		b.WriteString("## Quotes\n\n")
		for _, q := range report.Parse.Quotes {
			speaker := q.Attribution
			if speaker == "" {
				speaker = model.UnknownSpeaker
			}
			fmt.Fprintf(&b, "> %s\n>\n> — %s\n\n", q.Text, speaker)
		}
	}

	if len(report.Claims) > 0 {
		b.WriteString("## Claims\n\n")
		verdicts := verdictsByIndex(report)
		for _, c := range report.Claims {
			fmt.Fprintf(&b, "- **%s** [%s]", c.Statement, c.Category)
			if v, ok := verdicts[c.SentenceIndex]; ok {
				fmt.Fprintf(&b, " — %s (%.2f)", v.Status, v.Confidence)
			} else if !c.Verifiable {
				b.WriteString(" — not verifiable")
			}
			b.WriteString("\n")
			if c.Notes != "" {
				fmt.Fprintf(&b, "  - %s\n", c.Notes)
			}
			for _, label := range c.DeniabilityLabels {
				fmt.Fprintf(&b, "  - deniability: %s\n", label)
			}
		}
		b.WriteString("\n")
	}

	if len(report.NonFactual) > 0 {
		b.WriteString("## Rejected statements\n\n")
		for _, nf := range report.NonFactual {
			fmt.Fprintf(&b, "- %s (%s)\n", nf.Statement, nf.Reason)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("---\n\nGenerated by presscheck.\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// RenderSummary prints a short verdict summary to stdout.
func (r *Renderer) RenderSummary(report *Report) {
	cls := report.Parse.Classification
	fmt.Printf("Type: %s (%s)\n", cls.ReleaseType, cls.Confidence)
	fmt.Printf("Quotes: %d  Claims: %d  Rejected: %d\n",
		len(report.Parse.Quotes), len(report.Claims), len(report.NonFactual))

	if len(report.Verifications) == 0 {
		return
	}
	counts := map[model.VerificationStatus]int{}
	for _, v := range report.Verifications {
		counts[v.Status]++
	}
	fmt.Printf("Verdicts: %d true, %d misleading, %d false, %d unsupported\n",
		counts[model.StatusTrue], counts[model.StatusMisleading],
		counts[model.StatusFalse], counts[model.StatusUnsupported])
}

// verdictsByIndex maps sentence index to verification result. Verifications
// are in verifiable-claim order, so walk claims in parallel.
func verdictsByIndex(report *Report) map[int]model.VerificationResult {
	out := make(map[int]model.VerificationResult)
	i := 0
	for _, c := range report.Claims {
		if !c.Verifiable {
			continue
		}
		if i >= len(report.Verifications) {
			break
		}
		out[c.SentenceIndex] = report.Verifications[i]
		i++
	}
	return out
}
