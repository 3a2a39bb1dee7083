package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/biomodelkit/mex/internal/model"
)

// styles holds the terminal styling for summary output.
type styles struct {
	label   lipgloss.Style
	count   lipgloss.Style
	success lipgloss.Style
}

// newStyles builds the styles, plain when stdout is not a terminal or
// color is disabled.
func newStyles(noColor bool) styles {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		plain := lipgloss.NewStyle()
		return styles{label: plain, count: plain, success: plain}
	}
	return styles{
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7")),
		count:   lipgloss.NewStyle().Bold(true),
		success: lipgloss.NewStyle().Foreground(lipgloss.Color("#00D787")).Bold(true),
	}
}

// typeCounts tallies the per-type breakdown of one entity table.
type typeCounts struct {
	fixed      int
	assignment int
	ode        int
	reactions  int
}

func (c *typeCounts) add(t model.QuantityType) {
	switch t {
	case model.Fixed:
		c.fixed++
	case model.Assignment:
		c.assignment++
	case model.ODE:
		c.ode++
	case model.Reactions:
		c.reactions++
	}
}

// printSummary writes the seed model's element counts, one line per table
// with the per-type breakdown.
func printSummary(w io.Writer, st styles, m *model.Model) {
	var pc, cc, sc typeCounts
	for _, p := range m.Parameters() {
		pc.add(p.Type)
	}
	for _, c := range m.Compartments() {
		cc.add(c.Type)
	}
	for _, s := range m.Species() {
		sc.add(s.Type)
	}

	line := func(label string, count int, detail string) {
		fmt.Fprintf(w, "%s %s%s\n",
			st.label.Render(fmt.Sprintf("%-18s", label+":")),
			st.count.Render(fmt.Sprintf("%d", count)),
			detail)
	}

	line("Reactions", len(m.Reactions()), "")
	line("Species", len(m.Species()), fmt.Sprintf("\t(Reactions: %d, Fixed: %d, Assignment: %d, ODE: %d)",
		sc.reactions, sc.fixed, sc.assignment, sc.ode))
	line("Compartments", len(m.Compartments()), fmt.Sprintf("\t(Fixed: %d, Assignment: %d, ODE: %d)",
		cc.fixed, cc.assignment, cc.ode))
	line("Global quantities", len(m.Parameters()), fmt.Sprintf("\t(Fixed: %d, Assignment: %d, ODE: %d)",
		pc.fixed, pc.assignment, pc.ode))
	line("Events", len(m.Events()), "")
}
