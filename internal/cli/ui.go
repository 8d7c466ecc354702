package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorDim    = lipgloss.Color("240")
)

type styles struct {
	title, label, number, success, warning lipgloss.Style
}

// newStyles binds the palette to w, so output that isn't a terminal gets
// no escape sequences.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		label:   r.NewStyle().Foreground(colorDim),
		number:  r.NewStyle().Foreground(colorCyan),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
	}
}

func joinInts(s []int) string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// render writes a human readable summary of res.
func render(w io.Writer, title string, res *Result) {
	st := newStyles(w)
	fmt.Fprintln(w, st.title.Render(title))
	fmt.Fprintf(w, "  %s %s\n", st.label.Render("variant "), res.Variant)
	fmt.Fprintf(w, "  %s [%s]\n", st.label.Render("keys    "), st.number.Render(joinInts(res.Keys)))
	fmt.Fprintf(w, "  %s %s\n", st.label.Render("size    "), st.number.Render(fmt.Sprint(res.Size)))
	fmt.Fprintf(w, "  %s %s\n", st.label.Render("height  "), st.number.Render(fmt.Sprint(res.Height)))
	bal := st.success.Render("yes")
	if !res.Balanced {
		bal = st.warning.Render("no")
	}
	fmt.Fprintf(w, "  %s %s\n", st.label.Render("balanced"), bal)
	for d, level := range res.Levels {
		fmt.Fprintf(w, "  %s %s\n", st.label.Render(fmt.Sprintf("depth %-2d", d)), joinInts(level))
	}
	if res.Warnings > 0 {
		fmt.Fprintln(w, st.warning.Render(fmt.Sprintf("  %d unexpected result(s)", res.Warnings)))
	}
}
