package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// outputStyles colours labels when writing to a terminal.
// Document text is never styled.
type outputStyles struct {
	plain  bool
	title  lipgloss.Style
	label  lipgloss.Style
	muted  lipgloss.Style
	errMsg lipgloss.Style
}

func newOutputStyles(w io.Writer) outputStyles {
	if !isTerminal(w) {
		return outputStyles{plain: true}
	}
	return outputStyles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")),
		muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		errMsg: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F38BA8")),
	}
}

func (s outputStyles) render(style lipgloss.Style, text string) string {
	if s.plain {
		return text
	}
	return style.Render(text)
}

func (s outputStyles) Title(text string) string { return s.render(s.title, text) }
func (s outputStyles) Label(text string) string { return s.render(s.label, text) }
func (s outputStyles) Muted(text string) string { return s.render(s.muted, text) }
func (s outputStyles) Error(text string) string { return s.render(s.errMsg, text) }

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
