// Package cli provides the command-line interface of the encoding converter.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"EncodingConverter/internal/app"
	"EncodingConverter/internal/errors"
	"EncodingConverter/internal/util"

	"golang.org/x/term"
)

// Ensure Reporter implements app.Reporter
var _ app.Reporter = (*Reporter)(nil)

// Reporter renders run progress for a terminal.
// The progress line is redrawn in place and only drawn when the output is
// a terminal; skipped files are always listed unless quiet.
type Reporter struct {
	mu       sync.Mutex
	out      io.Writer
	quiet    bool
	tty      bool
	total    int
	lastLine int // Length of last printed line (for clearing)
}

// NewReporter creates a reporter writing to out.
// If quiet is true, only errors are printed.
func NewReporter(out io.Writer, quiet bool) *Reporter {
	return &Reporter{
		out:   out,
		quiet: quiet,
		tty:   isTerminal(out),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// OnStart implements app.Reporter.
func (r *Reporter) OnStart(_ string, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total = total
}

// OnFile implements app.Reporter.
func (r *Reporter) OnFile(index, total int, path string) {
	if r.quiet || !r.tty {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fraction, info := util.Countify(index, total)
	r.drawLocked(fraction, info, path)
}

// OnOutcome implements app.Reporter.
func (r *Reporter) OnOutcome(o app.ConversionOutcome) {
	if r.quiet || o.Warning == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
	fmt.Fprintf(r.out, "Skipped %s: %v\n", o.Path, errors.KindOf(o.Warning))
}

func (r *Reporter) drawLocked(fraction float32, info, status string) {
	barWidth := 30
	filled := min(int(fraction*float32(barWidth)), barWidth)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	// Format: [████████░░░░░░░░░░░░░░░░░░░░░░] 3/12 | /data/a.txt
	line := fmt.Sprintf("\r[%s] %s | %s", bar, info, status)

	// Clear previous line if it was longer
	if len(line) < r.lastLine {
		line += strings.Repeat(" ", r.lastLine-len(line))
	}
	r.lastLine = len(line)

	fmt.Fprint(r.out, line)
}

func (r *Reporter) clearLocked() {
	if r.lastLine > 0 {
		fmt.Fprint(r.out, "\r"+strings.Repeat(" ", r.lastLine)+"\r")
		r.lastLine = 0
	}
}

// Finish removes the progress line.
func (r *Reporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
}

// PrintError prints an error message.
func (r *Reporter) PrintError(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearLocked()
	fmt.Fprintf(r.out, "Error: "+format+"\n", args...)
}

// PrintSuccess prints a success message.
func (r *Reporter) PrintSuccess(format string, args ...any) {
	if r.quiet {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}
