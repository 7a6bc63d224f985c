// Package overlay draws panels on top of a rendered view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Center places panel in the middle of a width x height base view.
func Center(base, panel string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
	return Compose(base, placed, width)
}

// Compose overlays content on top of a base view.
// On each line the span from the first to the last non-space column of the
// overlay replaces the base. Blank overlay lines leave the base untouched.
func Compose(base, overlay string, width int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for i, overlayLine := range overlayLines {
		if i >= len(baseLines) {
			break
		}

		plain := ansi.Strip(overlayLine)
		if strings.TrimSpace(plain) == "" {
			continue
		}

		// Visible bounds in display columns
		lead := len(plain) - len(strings.TrimLeft(plain, " "))
		startCol := lead
		endCol := startCol + ansi.StringWidth(strings.TrimSpace(plain))

		content := ansi.Cut(overlayLine, startCol, endCol)

		baseLine := baseLines[i]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		line := ansi.Cut(baseLine, 0, startCol) + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[i] = line
	}

	return strings.Join(baseLines, "\n")
}
