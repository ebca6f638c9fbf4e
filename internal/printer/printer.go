// Package printer writes styled status lines for the non-interactive
// commands. Commands fetch it from the context with Ctx.
package printer

import (
	"context"
	"fmt"
	"io"
	"os"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/citeview/internal/core/styles"
)

type ctxKey struct{}

// Printer writes human-readable output. Colours are downsampled to what the
// writer supports.
type Printer struct {
	out io.Writer
}

// New returns a printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{out: w}
}

// NewContext returns ctx carrying p.
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx returns the printer stored in ctx, or one writing to stderr.
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

func (p *Printer) line(s string) {
	_, _ = lipgloss.Fprintln(p.out, s)
}

// Printf writes an unstyled line.
func (p *Printer) Printf(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

// Section writes a bold heading.
func (p *Printer) Section(title string) {
	p.line(styles.TextPrimaryBoldStyle.Render(title))
}

// Success writes a success line with a muted detail.
func (p *Printer) Success(msg, detail string) {
	p.line(styles.TextSuccessStyle.Render(styles.IconSeverityOK+" "+msg) + " " + styles.TextMutedStyle.Render(detail))
}

func (p *Printer) Successf(format string, args ...any) {
	p.line(styles.TextSuccessStyle.Render(styles.IconSeverityOK + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Infof(format string, args ...any) {
	p.line(styles.TextMutedStyle.Render(styles.IconBullet + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Warnf(format string, args ...any) {
	p.line(styles.TextWarningStyle.Render(styles.IconSeverityWarning + " " + fmt.Sprintf(format, args...)))
}

func (p *Printer) Errorf(format string, args ...any) {
	p.line(styles.TextErrorStyle.Render(styles.IconSeverityCritical + " " + fmt.Sprintf(format, args...)))
}
