// Package songform provides the add-song form of the playlist view.
package songform

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui"
	"github.com/llehouerou/songlist/internal/ui/styles"
)

// Field indexes.
const (
	FieldTitle = iota
	FieldArtist
	FieldRanking
	fieldCount
)

// Messages shown under the form when validation fails.
const (
	MsgInvalidRanking = "Invalid input! Try again"
	MsgEmptyTitle     = "Name of the song is required"
)

var errEmptyTitle = errors.New(MsgEmptyTitle)

// SubmittedMsg is sent when the form holds a valid song and the user confirms.
type SubmittedMsg struct {
	Song song.Song
}

// CanceledMsg is sent when the user leaves the form with esc.
type CanceledMsg struct{}

var labels = [fieldCount]string{
	FieldTitle:   song.PromptTitle,
	FieldArtist:  song.PromptArtist,
	FieldRanking: song.PromptRanking,
}

// Model is the add-song form.
type Model struct {
	ui.Base
	inputs [fieldCount]textinput.Model
	focus  int
	err    string
}

// New creates an empty form focused on the title.
func New() Model {
	var m Model
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		ti.Width = 40
		m.inputs[i] = ti
	}
	placeholder := song.Default()
	m.inputs[FieldTitle].Placeholder = placeholder.Title
	m.inputs[FieldArtist].Placeholder = placeholder.Artist
	m.inputs[FieldRanking].CharLimit = 1
	m.inputs[FieldRanking].Width = 2
	m.inputs[FieldRanking].Placeholder = "1-5"
	m.inputs[FieldTitle].Focus()
	return m
}

// Reset clears every field and focuses the title.
func (m *Model) Reset() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.err = ""
	m.setFocus(FieldTitle)
}

// Focused returns the index of the focused field.
func (m Model) Focused() int {
	return m.focus
}

// Value returns the raw text of a field.
func (m Model) Value(field int) string {
	return m.inputs[field].Value()
}

// SetValue replaces the text of a field.
func (m *Model) SetValue(field int, value string) {
	m.inputs[field].SetValue(value)
}

// Err returns the current validation message, or "" if there is none.
func (m Model) Err() string {
	return m.err
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles navigation between fields and submission.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CanceledMsg{} }
	case "tab", "down":
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
		return m, nil
	case "enter":
		if m.focus < FieldRanking {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// Song validates the form and returns the song it describes.
func (m Model) Song() (song.Song, error) {
	title := strings.TrimSpace(m.inputs[FieldTitle].Value())
	if title == "" {
		return song.Song{}, errEmptyTitle
	}
	ranking, err := song.ParseRanking(strings.TrimSpace(m.inputs[FieldRanking].Value()))
	if err != nil {
		return song.Song{}, err
	}
	return song.New(title, m.inputs[FieldArtist].Value(), ranking), nil
}

func (m Model) submit() (Model, tea.Cmd) {
	s, err := m.Song()
	switch {
	case errors.Is(err, errEmptyTitle):
		m.err = MsgEmptyTitle
		m.setFocus(FieldTitle)
		return m, nil
	case err != nil:
		m.err = MsgInvalidRanking
		m.inputs[FieldRanking].Reset()
		m.setFocus(FieldRanking)
		return m, nil
	}
	m.err = ""
	return m, func() tea.Msg { return SubmittedMsg{Song: s} }
}

func (m *Model) setFocus(field int) {
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	m.focus = field
}

// View renders the form.
func (m Model) View() string {
	t := styles.T()
	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, lipgloss.Width(l))
	}

	lines := make([]string, 0, fieldCount+3)
	lines = append(lines, t.S().Title.Render("Add and play a new song"), "")
	for i, input := range m.inputs {
		label := lipgloss.NewStyle().Width(labelWidth).Render(labels[i])
		if i == m.focus {
			label = t.S().Playing.Render(label)
		} else {
			label = t.S().Muted.Render(label)
		}
		lines = append(lines, label+input.View())
	}
	if m.err != "" {
		lines = append(lines, "", t.S().Error.Render(m.err))
	}
	lines = append(lines, "", t.S().Subtle.Render("Tab: next field, Enter: confirm, Esc: cancel"))

	content := strings.Join(lines, "\n")
	if m.Width() > 0 {
		content = styles.PanelStyle().Width(m.Width() - ui.BorderHeight).Render(content)
	}
	return content
}
