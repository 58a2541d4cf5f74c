// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs a ranked keyword set under the given title
func (p *Printer) PrintKeywords(title string, set types.KeywordSet) {
	if set.Len() == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total terms: %d\n\n", set.Len()))

	count := min(set.Len(), maxItemsToShow)
	for i := 0; i < count; i++ {
		kw := set.Keywords[i]
		sb.WriteString(fmt.Sprintf("#%-2d %-30s %.4f\n", i+1, kw.Term, kw.Score))
	}
	if set.Len() > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more terms\n", set.Len()-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the generated professional summary
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}
	p.printBox("PROFESSIONAL SUMMARY", wrapText(summary, boxWidth-4))
}

// PrintBullets outputs the generated achievement bullets
func (p *Printer) PrintBullets(bullets []string) {
	if len(bullets) == 0 {
		return
	}
	p.printBox("STAR ACHIEVEMENTS", strings.Join(bullets, "\n"))
}

// PrintExports outputs the list of files written by an enhancement run
func (p *Printer) PrintExports(paths []string) {
	if len(paths) == 0 {
		return
	}
	p.printBox("GENERATED FILES", strings.Join(paths, "\n"))
}

// wrapText breaks text into lines no longer than width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var sb strings.Builder
	lineLen := 0
	for i, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			sb.WriteString("\n")
			lineLen = 0
		} else if i > 0 {
			sb.WriteString(" ")
			lineLen++
		}
		sb.WriteString(word)
		lineLen += len(word)
	}
	return sb.String()
}
