package tui

import (
	"strings"
)

const uiDivider = "──────────────────────────────────────────────────────"

func (p *palette) renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(p.styles.title.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(p.styles.help.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(p.styles.help.Render("f1: about │ ctrl+c: quit"))

	return b.String()
}

func (p *palette) feedback(status, errMsg string) string {
	var b strings.Builder
	if errMsg != "" {
		b.WriteString(p.styles.err.Render("Error: " + errMsg))
		b.WriteString("\n")
	}
	if status != "" {
		b.WriteString(p.styles.status.Render(status))
		b.WriteString("\n")
	}
	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...". Newlines are
// flattened so a note fits on one list row.
func fitText(v string, max int) string {
	v = strings.Join(strings.Fields(v), " ")
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
