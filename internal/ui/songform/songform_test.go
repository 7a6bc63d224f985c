package songform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songlist/internal/song"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m Model, text string) Model {
	m, _ = m.Update(key(text))
	return m
}

func fill(title, artist, ranking string) Model {
	m := New()
	m = typeText(m, title)
	m, _ = m.Update(key("enter"))
	m = typeText(m, artist)
	m, _ = m.Update(key("enter"))
	return typeText(m, ranking)
}

func TestNew_FocusesTitle(t *testing.T) {
	m := New()

	assert.Equal(t, FieldTitle, m.Focused())
	assert.Empty(t, m.Err())
}

func TestUpdate_TypingGoesToFocusedField(t *testing.T) {
	m := New()

	m = typeText(m, "Elfida")
	m, _ = m.Update(key("tab"))
	m = typeText(m, "Haluk Levent")

	assert.Equal(t, "Elfida", m.Value(FieldTitle))
	assert.Equal(t, "Haluk Levent", m.Value(FieldArtist))
	assert.Empty(t, m.Value(FieldRanking))
}

func TestUpdate_FocusCycles(t *testing.T) {
	m := New()

	m, _ = m.Update(key("tab"))
	assert.Equal(t, FieldArtist, m.Focused())
	m, _ = m.Update(key("tab"))
	assert.Equal(t, FieldRanking, m.Focused())
	m, _ = m.Update(key("tab"))
	assert.Equal(t, FieldTitle, m.Focused())
	m, _ = m.Update(key("shift+tab"))
	assert.Equal(t, FieldRanking, m.Focused())
}

func TestUpdate_Submit(t *testing.T) {
	m := fill("Elfida", "Haluk Levent", "4")

	m, cmd := m.Update(key("enter"))

	require.NotNil(t, cmd)
	msg, ok := cmd().(SubmittedMsg)
	require.True(t, ok, "expected SubmittedMsg")
	assert.Equal(t, song.New("Elfida", "Haluk Levent", 4), msg.Song)
	assert.Empty(t, m.Err())
}

func TestUpdate_InvalidRanking(t *testing.T) {
	for _, ranking := range []string{"", "0", "6", "x"} {
		t.Run(ranking, func(t *testing.T) {
			m := fill("Elfida", "Haluk Levent", ranking)

			m, cmd := m.Update(key("enter"))

			assert.Nil(t, cmd)
			assert.Equal(t, MsgInvalidRanking, m.Err())
			assert.Equal(t, FieldRanking, m.Focused())
			assert.Empty(t, m.Value(FieldRanking), "rejected ranking is cleared")

			m = typeText(m, "2")
			_, cmd = m.Update(key("enter"))
			require.NotNil(t, cmd)
			assert.IsType(t, SubmittedMsg{}, cmd())
		})
	}
}

func TestUpdate_RankingAcceptsOneCharacter(t *testing.T) {
	m := fill("Song", "", "34")

	assert.Equal(t, "3", m.Value(FieldRanking))
}

func TestUpdate_EmptyTitle(t *testing.T) {
	m := fill("   ", "Artist", "3")

	m, cmd := m.Update(key("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, MsgEmptyTitle, m.Err())
	assert.Equal(t, FieldTitle, m.Focused())
}

func TestUpdate_EmptyArtistAllowed(t *testing.T) {
	m := fill("Song", "", "1")

	s, err := m.Song()

	require.NoError(t, err)
	assert.Equal(t, song.New("Song", "", 1), s)
}

func TestUpdate_Esc(t *testing.T) {
	m := fill("Song", "Artist", "1")

	_, cmd := m.Update(key("esc"))

	require.NotNil(t, cmd)
	assert.IsType(t, CanceledMsg{}, cmd())
}

func TestReset(t *testing.T) {
	m := fill("Song", "Artist", "9")
	m, _ = m.Update(key("enter"))
	require.NotEmpty(t, m.Err())

	m.Reset()

	assert.Empty(t, m.Value(FieldTitle))
	assert.Empty(t, m.Value(FieldArtist))
	assert.Empty(t, m.Err())
	assert.Equal(t, FieldTitle, m.Focused())
}

func TestView(t *testing.T) {
	m := fill("Song", "Artist", "9")
	m, _ = m.Update(key("enter"))
	m.SetSize(70, 12)

	out := ansi.Strip(m.View())

	assert.Contains(t, out, song.PromptTitle)
	assert.Contains(t, out, song.PromptArtist)
	assert.Contains(t, out, song.PromptRanking)
	assert.Contains(t, out, "Song")
	assert.Contains(t, out, MsgInvalidRanking)
}
