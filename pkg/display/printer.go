package display

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/dmitrymomot/holotype/pkg/binomial"
)

// Printer writes decoded names for people to read.
type Printer struct {
	out    io.Writer
	styled bool
	header lipgloss.Style
	now    func() time.Time
}

// Option configures a Printer.
type Option func(*Printer)

// WithStyle forces the styled header on or off. By default it is used only
// when the output is a terminal.
func WithStyle(enabled bool) Option {
	return func(p *Printer) { p.styled = enabled }
}

// WithClock sets the source of "today" for relative dates.
func WithClock(now func() time.Time) Option {
	return func(p *Printer) {
		if now != nil {
			p.now = now
		}
	}
}

// NewPrinter writes to w, styling the header only when w is a terminal
// unless WithStyle says otherwise.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		out:    w,
		styled: IsTerminal(w),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	renderer := lipgloss.NewRenderer(w)
	if p.styled {
		renderer.SetColorProfile(termenv.ANSI)
	}
	p.header = renderer.NewStyle().Bold(true).Underline(true)
	return p
}

// Print writes the name as a header followed by the provenance line.
func (p *Printer) Print(r binomial.Result) error {
	header := r.Name
	if p.styled {
		header = p.header.Render(r.Name)
	}
	_, err := fmt.Fprintf(p.out, "%s\n%s\n", header, p.Line(r))
	return err
}

// Line renders "[salt] No. N, dated D.M.YYYY (relative)" for salted names
// and "Op. N, dated ..." otherwise.
func (p *Printer) Line(r binomial.Result) string {
	dated := Dated(r.Date, p.now())
	if r.Salt == "" {
		return fmt.Sprintf("Op. %d, dated %s", r.Number, dated)
	}
	return fmt.Sprintf("[%s] No. %d, dated %s", r.Salt, r.Number, dated)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
