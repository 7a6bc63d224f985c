package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui"
	"github.com/llehouerou/songlist/internal/ui/overlay"
	"github.com/llehouerou/songlist/internal/ui/render"
	"github.com/llehouerou/songlist/internal/ui/styles"
)

const emptyText = "No songs"

// View renders the playlist view, or the add-song form while it is open.
// The key binding help is drawn over the playlist.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	if m.adding {
		return m.form.View()
	}

	innerWidth := m.Width() - ui.BorderHeight
	separator := styles.T().S().Subtle.Render(render.Separator(innerWidth))

	content := strings.Join([]string{
		m.renderHeader(innerWidth),
		separator,
		m.renderSongList(innerWidth, m.listHeight()),
		separator,
		m.renderFooter(innerWidth),
	}, "\n")

	view := styles.PanelStyle().
		Width(innerWidth).
		Render(content)
	if m.helping {
		view = overlay.Center(view, m.help.View(), m.Width(), m.Height())
	}
	return view
}

// renderHeader renders "Playlist (i/n)" with the key hints on the right.
func (m Model) renderHeader(innerWidth int) string {
	left := fmt.Sprintf("Playlist (%d/%d)", m.queue.CurrentIndex()+1, m.queue.Len())
	if m.ranked {
		left += " by ranking"
	}
	hints := "a add  e erase  ^z undo  ? help"
	if lipgloss.Width(left)+lipgloss.Width(hints)+1 > innerWidth {
		return headerStyle().Render(render.TruncateAndPad(left, innerWidth))
	}
	return render.Row(headerStyle().Render(left), styles.T().S().Subtle.Render(hints), innerWidth)
}

func (m Model) renderSongList(innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}
	songs := m.songs()
	current := m.currentRow()

	lines := make([]string, 0, listHeight)
	if len(songs) == 0 {
		lines = append(lines, styles.T().S().Muted.Render(render.TruncateAndPad(emptyText, innerWidth)))
	}
	for i := 0; len(lines) < listHeight; i++ {
		idx := i + m.offset
		if idx >= len(songs) {
			lines = append(lines, render.EmptyLine(innerWidth))
			continue
		}
		lines = append(lines, m.renderSongLine(songs[idx], idx == current, innerWidth))
	}
	return strings.Join(lines, "\n")
}

// renderSongLine renders one song: marker, title, artist and ranking stars.
func (m Model) renderSongLine(s song.Song, playing bool, width int) string {
	prefix := "  "
	style := songStyle()
	if playing {
		prefix = playingSymbol + " "
		style = playingStyle()
	}

	const prefixWidth = 2
	starsWidth := song.MaxRanking + 1
	contentWidth := max(width-prefixWidth-starsWidth, 0)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	text := prefix +
		render.TruncateAndPad(s.Title, titleWidth) +
		render.TruncateAndPad(s.Artist, artistWidth)
	return style.Render(text) + " " + styles.RankingStars(s.Ranking, song.MaxRanking)
}

// renderFooter shows the last status message, or the cursor position.
func (m Model) renderFooter(innerWidth int) string {
	text := m.status.text
	if text == "" {
		text = m.position()
	}
	return footerStyle(m.status.kind).Render(render.TruncateAndPad(text, innerWidth))
}

func (m Model) position() string {
	if m.queue.IsEmpty() {
		return emptyText
	}
	return fmt.Sprintf("Playing the %s of %d songs",
		humanize.Ordinal(m.queue.CurrentIndex()+1), m.queue.Len())
}
