// Package linear provides a synchronous, line-oriented renderer for build reports.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/rnbundle/internal/core/ports"
)

const rule = 60

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by writing plain lines to stdout.
// Colors are applied through termenv and disabled when NO_COLOR is set.
type Renderer struct {
	mu     sync.Mutex
	w      io.Writer
	output *termenv.Output
}

// NewRenderer creates a new Renderer writing to w (stdout when nil).
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{
		w:      w,
		output: termenv.NewOutput(w, termenv.WithProfile(colorProfile())),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Banner prints title framed by horizontal rules.
func (r *Renderer) Banner(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	line := strings.Repeat("=", rule)
	r.printf("%s\n%s\n%s\n", line, r.output.String(title).Bold().String(), line)
}

// Step prints a "[i/n] title" progress line preceded by a blank line.
func (r *Renderer) Step(index, total int, title string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	prefix := r.output.String(fmt.Sprintf("[%d/%d]", index, total)).Faint().String()
	r.printf("\n%s %s...\n", prefix, title)
}

// Heading prints "title:" preceded by a blank line.
func (r *Renderer) Heading(title string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("\n%s:\n", r.output.String(title).Bold().String())
}

// Field prints "label: value".
func (r *Renderer) Field(label, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("%s: %s\n", label, value)
}

// Item prints an indented bullet.
func (r *Renderer) Item(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("   - %s\n", text)
}

// Success prints msg in green. Leading newlines are printed unstyled.
func (r *Renderer) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, text := splitLeadingNewlines(msg)
	r.printf("%s%s\n", lead, r.output.String(text).Foreground(r.output.Color("2")).String())
}

// Note prints msg dimmed. Leading newlines are printed unstyled.
func (r *Renderer) Note(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, text := splitLeadingNewlines(msg)
	r.printf("%s%s\n", lead, r.output.String(text).Faint().String())
}

func splitLeadingNewlines(msg string) (lead, text string) {
	text = strings.TrimLeft(msg, "\n")
	return msg[:len(msg)-len(text)], text
}

func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.w, format, args...)
}
