package ui

import (
	"fmt"
	"strings"

	"github.com/shreyasren/popos-boot-health-check/engine"
	"github.com/shreyasren/popos-boot-health-check/model"
)

const nameW = 12 // fixed-width name column

// RenderReport renders the full run report for the terminal.
func RenderReport(r *model.Report, version string, color bool) string {
	s := newStyles(color)
	var b strings.Builder

	ts := r.Timestamp.Format("2006-01-02 15:04:05")
	fmt.Fprintf(&b, "\n %s — %s  %s  %s\n\n",
		s.title.Render("boot-health-check v"+version),
		s.value.Render(r.Hostname),
		s.dim.Render(ts),
		s.dim.Render("["+r.Mode+"]"))

	b.WriteString(RenderChecks(r.Checks, color))

	b.WriteString(" ---\n")
	switch r.WorstStatus {
	case model.CheckCrit:
		b.WriteString(" " + s.crit.Render("boot configuration needs repair") + "\n")
	case model.CheckWarn:
		b.WriteString(" " + s.warn.Render("boot configuration has warnings") + "\n")
	default:
		b.WriteString(" " + s.ok.Render("boot configuration healthy") + "\n")
	}
	return b.String()
}

// RenderChecks renders a list of checks grouped by category. Multi-line
// details keep their shape, indented under the check name.
func RenderChecks(checks []model.CheckResult, color bool) string {
	s := newStyles(color)
	var b strings.Builder

	lastCategory := ""
	for _, c := range checks {
		if c.Category != lastCategory {
			b.WriteString(" " + s.category.Render(c.Category) + "\n")
			lastCategory = c.Category
		}

		lines := strings.Split(c.Detail, "\n")
		fmt.Fprintf(&b, "  %s %-*s %s\n", s.icon(c.Status), nameW, c.Name, lines[0])
		for _, line := range lines[1:] {
			fmt.Fprintf(&b, "    %*s %s\n", nameW, "", line)
		}
		if c.Advice != "" {
			fmt.Fprintf(&b, "    %*s %s\n", nameW, "", s.dim.Render("→ "+c.Advice))
		}
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	return b.String()
}

// RenderPlan renders the planned edits with their before values, for the
// interactive confirmation prompt.
func RenderPlan(obs *engine.Observations, plan *model.RepairPlan, color bool) string {
	s := newStyles(color)
	var b strings.Builder

	b.WriteString(" " + s.category.Render("Planned repairs") + "\n")
	for _, e := range plan.Edits {
		before := beforeValue(obs, e)
		fmt.Fprintf(&b, "  %s %s: %s %s %s\n",
			s.warn.Render("~"),
			s.value.Render(e.Mountpoint+" "+e.Field.String()),
			before,
			s.dim.Render("→"),
			s.value.Render(e.NewValue))
	}
	return b.String()
}

func beforeValue(obs *engine.Observations, e model.Edit) string {
	var entry *model.ConfigEntry
	for _, st := range []engine.MountState{obs.Root, obs.Esp, obs.Recovery} {
		if st.Entry != nil && st.Entry.Mountpoint == e.Mountpoint {
			entry = st.Entry
			break
		}
	}
	if entry == nil {
		return "?"
	}
	switch e.Field {
	case model.FieldSpec:
		return entry.Spec.Token()
	case model.FieldOptions:
		return strings.Join(entry.Options, ",")
	case model.FieldPass:
		return fmt.Sprintf("%d", entry.Pass)
	}
	return "?"
}
