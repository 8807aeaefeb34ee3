package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"skinatlas/internal/selection"
)

type renderer struct {
	out     io.Writer
	title   lipgloss.Style
	label   lipgloss.Style
	heading lipgloss.Style
}

func newRenderer(out io.Writer) *renderer {
	r := lipgloss.NewRenderer(out)
	return &renderer{
		out:     out,
		title:   r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Bold(true),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
	}
}

// payload prints a panel the way the page does: bold labels, one paragraph
// per field.
func (r *renderer) payload(p selection.DisplayPayload) {
	if p.Title != "" {
		fmt.Fprintln(r.out, r.title.Render(p.Title))
		fmt.Fprintln(r.out)
	}
	if len(p.Sections) == 0 {
		fmt.Fprintln(r.out, p.Body)
		return
	}
	for i, s := range p.Sections {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintf(r.out, "%s %s\n", r.label.Render(s.Label+":"), s.Value)
	}
}

func (r *renderer) list(heading string, items []string) {
	fmt.Fprintln(r.out, r.heading.Render(heading))
	for _, item := range items {
		fmt.Fprintf(r.out, "  %s\n", item)
	}
}
