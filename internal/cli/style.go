package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles are bound to the output writer, so they render as plain text
// whenever that writer is not a terminal.
type styles struct {
	title   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true),
		success: r.NewStyle().Foreground(lipgloss.Color("42")),
		failure: r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		muted:   r.NewStyle().Faint(true),
	}
}

func (a *App) heading(s string) {
	a.println("\n" + a.style.title.Render("=== "+s+" ==="))
}

func (a *App) ok(s string) {
	a.println(a.style.success.Render(s))
}

func (a *App) fail(s string) {
	a.println(a.style.failure.Render(s))
}

func (a *App) note(s string) {
	a.println(a.style.muted.Render(s))
}
