package qecc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Summary is the serializable view of a CorrectionResult.
type Summary struct {
	Code          string `json:"code" yaml:"code"`
	Basis         string `json:"basis" yaml:"basis"`
	Positions     []int  `json:"positions" yaml:"positions"`
	Original      []int  `json:"original" yaml:"original"`
	Erroneous     []int  `json:"erroneous" yaml:"erroneous"`
	Syndrome      []int  `json:"syndrome" yaml:"syndrome"`
	Corrected     []int  `json:"corrected" yaml:"corrected"`
	Success       bool   `json:"success" yaml:"success"`
	Uncorrectable bool   `json:"uncorrectable" yaml:"uncorrectable"`
	Outcome       string `json:"outcome" yaml:"outcome"`
}

func (r *CorrectionResult) Summary() Summary {
	positions := make([]int, len(r.Positions))
	copy(positions, r.Positions)

	return Summary{
		Code:          r.Code,
		Basis:         r.Basis.String(),
		Positions:     positions,
		Original:      r.Original.Ints(),
		Erroneous:     r.Erroneous.Ints(),
		Syndrome:      r.Syndrome.Ints(),
		Corrected:     r.Corrected.Ints(),
		Success:       r.Success,
		Uncorrectable: r.Uncorrectable,
		Outcome:       r.Outcome().String(),
	}
}

// Report renders the run as plain text, one stage per line.
func (r *CorrectionResult) Report() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "code:      %s\n", r.Code)
	fmt.Fprintf(&sb, "basis:     %v\n", r.Basis)
	fmt.Fprintf(&sb, "errors:    %v\n", r.Positions)
	fmt.Fprintf(&sb, "original:  %v\n", r.Original)
	fmt.Fprintf(&sb, "erroneous: %v\n", r.Erroneous)
	fmt.Fprintf(&sb, "syndrome:  %v\n", r.Syndrome)
	fmt.Fprintf(&sb, "corrected: %v\n", r.Corrected)

	switch r.Outcome() {
	case OutcomeClean, OutcomeCorrected:
		sb.WriteString("result:    error correction successful\n")
	case OutcomeDetected:
		sb.WriteString("result:    error detected, not repaired\n")
	default:
		sb.WriteString("result:    error correction failed\n")
	}

	return sb.String()
}

var (
	chartLabel = lipgloss.NewStyle().Width(10)
	chartBars  = map[string]lipgloss.Style{
		"Original":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"Erroneous": lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		"Corrected": lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	}
)

/*
RenderChart draws one bar per block showing how many of its bits are in
state |1⟩, followed by the syndrome.
*/
func RenderChart(r *CorrectionResult) string {
	rows := make([]string, 0, 4)
	for _, bar := range []struct {
		label string
		block Block
	}{
		{"Original", r.Original},
		{"Erroneous", r.Erroneous},
		{"Corrected", r.Corrected},
	} {
		weight := bar.block.Weight()
		rows = append(rows, lipgloss.JoinHorizontal(
			lipgloss.Top,
			chartLabel.Render(bar.label),
			chartBars[bar.label].Render(strings.Repeat("█", weight)),
			fmt.Sprintf(" %d", weight),
		))
	}
	rows = append(rows, fmt.Sprintf("Syndrome: %v", r.Syndrome))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// EncodeSummary writes v as "json" or "yaml".
func EncodeSummary(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("%w: unknown format %q", ErrInvalidInput, format)
}
