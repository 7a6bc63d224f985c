// Package queuepanel provides the full-screen playlist view: the song list
// with its cursor, the add-song form and undo/redo of playlist edits.
package queuepanel

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/songlist/internal/keymap"
	"github.com/llehouerou/songlist/internal/playlist"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui"
	"github.com/llehouerou/songlist/internal/ui/helpbindings"
	"github.com/llehouerou/songlist/internal/ui/songform"
)

// HistorySize is the number of playlist states kept for undo.
const HistorySize = 100

// Compile-time check that Model implements tea.Model.
var _ tea.Model = Model{}

// Model represents the playlist view state.
type Model struct {
	ui.Base
	queue   *playlist.PlayingQueue
	history *playlist.QueueHistory
	keys    *keymap.Resolver
	form    songform.Model
	adding  bool
	help    helpbindings.Model
	helping bool
	ranked  bool
	offset  int
	status  status
}

// New creates a playlist view over queue. The queue's current state is the
// oldest undo point.
func New(queue *playlist.PlayingQueue) Model {
	history := playlist.NewQueueHistory(HistorySize)
	history.Push(queue.Snapshot())
	return Model{
		queue:   queue,
		history: history,
		keys:    keymap.ForContext(keymap.ContextView),
		form:    songform.New(),
	}
}

// Queue returns the queue shown by the view.
func (m Model) Queue() *playlist.PlayingQueue {
	return m.queue
}

// Adding reports whether the add-song form is open.
func (m Model) Adding() bool {
	return m.adding
}

// Helping reports whether the key binding help is shown.
func (m Model) Helping() bool {
	return m.helping
}

// Ranked reports whether songs are listed by ranking instead of play order.
func (m Model) Ranked() bool {
	return m.ranked
}

// Status returns the text of the status line.
func (m Model) Status() string {
	return m.status.text
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.form.SetSize(msg.Width, 0)
		m.help.SetSize(msg.Width, msg.Height)
		m.ensureCurrentVisible()
		return m, nil
	case songform.SubmittedMsg:
		m.adding = false
		m.addAndPlay(msg)
		return m, nil
	case songform.CanceledMsg:
		m.adding = false
		return m, nil
	case helpbindings.CloseMsg:
		m.helping = false
		return m, nil
	}

	if m.helping {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}
	if m.adding {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	return m.handleAction(m.keys.Resolve(keyMsg.String()))
}

func (m Model) handleAction(action keymap.Action) (tea.Model, tea.Cmd) {
	switch action {
	case keymap.ActionPlayCurrent:
		m.play(m.queue.Current())
	case keymap.ActionNextSong:
		m.play(m.queue.Next())
	case keymap.ActionPrevSong:
		m.play(m.queue.Previous())
	case keymap.ActionAddAndPlay:
		m.adding = true
		m.form.Reset()
		return m, m.form.Init()
	case keymap.ActionEraseCurrent:
		m.erase()
	case keymap.ActionMoveUp:
		m.move(-1)
	case keymap.ActionMoveDown:
		m.move(1)
	case keymap.ActionToggleRanked:
		m.ranked = !m.ranked
	case keymap.ActionUndo:
		m.undo()
	case keymap.ActionRedo:
		m.redo()
	case keymap.ActionHelp:
		m.helping = true
		m.help = helpbindings.New(keymap.ContextView, keymap.ContextMenu)
		m.help.SetSize(m.Width(), m.Height())
	case keymap.ActionQuit:
		return m, tea.Quit
	}
	m.ensureCurrentVisible()
	return m, nil
}

// songs returns the songs in display order.
func (m Model) songs() []song.Song {
	if m.ranked {
		return m.queue.Sorted()
	}
	return m.queue.Songs()
}

// currentRow returns the display row of the current song, or -1.
func (m Model) currentRow() int {
	if !m.ranked {
		return m.queue.CurrentIndex()
	}
	cur := m.queue.Current()
	if cur == nil {
		return -1
	}
	return slices.IndexFunc(m.songs(), cur.Equal)
}

func (m Model) listHeight() int {
	return m.Height() - ui.PanelOverhead
}

// ensureCurrentVisible adjusts the scroll offset to keep the current song in view.
func (m *Model) ensureCurrentVisible() {
	listHeight := m.listHeight()
	if listHeight <= 0 {
		m.offset = 0
		return
	}
	cur := max(m.currentRow(), 0)
	if cur < m.offset {
		m.offset = cur
	}
	if cur >= m.offset+listHeight {
		m.offset = cur - listHeight + 1
	}
	m.offset = max(min(m.offset, m.queue.Len()-listHeight), 0)
}
