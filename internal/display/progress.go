package display

import (
	"fmt"
	"io"
)

// ProgressIndicator manages multi-target progress display with ANSI colors
type ProgressIndicator struct {
	writer       io.Writer
	totalTargets int
	current      int
}

// NewProgressIndicator creates a new progress indicator
func NewProgressIndicator(w io.Writer, total int) *ProgressIndicator {
	return &ProgressIndicator{
		writer:       w,
		totalTargets: total,
		current:      0,
	}
}

// Start displays the header message
func (p *ProgressIndicator) Start() {
	fmt.Fprintf(p.writer, "Processing targets:\n")
}

// Step displays progress for current item: [N/Total] path (cyan)
func (p *ProgressIndicator) Step(path string) {
	p.current++
	fmt.Fprintf(p.writer, "\x1b[36m  [%d/%d] %s\x1b[0m\n", p.current, p.totalTargets, path)
}

// Complete displays success message with green checkmark
func (p *ProgressIndicator) Complete() {
	fmt.Fprintf(p.writer, "\x1b[32m✓\x1b[0m Processed %d targets\n", p.totalTargets)
}
