package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/lehigh-university-libraries/dupeval/internal/duplicates"
)

// Summary describes a finished run for the console
type Summary struct {
	RunID      string
	Mode       duplicates.Mode
	Threshold  int
	Sources    int
	Candidates int
	Output     string
	Report     *duplicates.Report
}

// Printer writes run summaries
type Printer struct {
	w      io.Writer
	colors map[string]*color.Color
}

// NewPrinter creates a printer; noColor disables ANSI output
func NewPrinter(w io.Writer, noColor bool) *Printer {
	if noColor {
		color.NoColor = true
	}
	return &Printer{
		w: w,
		colors: map[string]*color.Color{
			"title":    color.New(color.FgWhite, color.Bold),
			"item":     color.New(color.FgCyan),
			"positive": color.New(color.FgGreen),
			"warning":  color.New(color.FgYellow),
		},
	}
}

// Banner announces which evaluation is about to run
func (p *Printer) Banner(mode duplicates.Mode) {
	p.colors["title"].Fprintln(p.w, mode.Description())
}

// Found reports the number of duplicates
func (p *Printer) Found(n int) {
	c := p.colors["positive"]
	if n > 0 {
		c = p.colors["warning"]
	}
	c.Fprintf(p.w, "%d duplicates found\n", n)
}

// Saving reports where the output goes
func (p *Printer) Saving(path string) {
	fmt.Fprintf(p.w, "saving duplicates to %s\n", path)
}

// Elapsed prints the closing line of a run
func (p *Printer) Elapsed(prog string, d time.Duration) {
	fmt.Fprintf(p.w, "end %s (elapsed time: %s)\n", prog, d)
}

// Summary prints run counters and likelihood statistics
func (p *Printer) Summary(s Summary) {
	p.colors["title"].Fprintln(p.w, "\nSummary")
	p.line("run id", s.RunID)
	p.line("mode", string(s.Mode))
	p.line("threshold", fmt.Sprintf("%d", s.Threshold))
	if s.Mode == duplicates.ModeRPA {
		p.line("rpa records", fmt.Sprintf("%d", s.Sources))
	}
	p.line("collaboration records", fmt.Sprintf("%d", s.Candidates))

	if s.Report != nil {
		p.line("comparisons", fmt.Sprintf("%d", s.Report.Compared))
		p.line("skipped (empty)", fmt.Sprintf("%d", s.Report.Skipped))
		if s.Mode == duplicates.ModeRPA {
			p.line("suppressed (already matched)", fmt.Sprintf("%d", s.Report.Suppressed))
		}
		p.line("duplicates", fmt.Sprintf("%d", s.Report.Len()))

		if stats := s.Report.Statistics(); stats.Count > 0 {
			p.line("likelihood", fmt.Sprintf("avg %.2f  median %.2f  min %.2f  max %.2f",
				stats.Average, stats.Median, stats.Min, stats.Max))
		}
	}

	if s.Output != "" {
		p.line("output", s.Output)
	}
}

func (p *Printer) line(label, value string) {
	p.colors["item"].Fprintf(p.w, "  %-30s", label+":")
	fmt.Fprintln(p.w, value)
}
