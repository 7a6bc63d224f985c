package queuepanel

import (
	"errors"
	"fmt"

	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/playlist"
	"github.com/llehouerou/songlist/internal/song"
	"github.com/llehouerou/songlist/internal/ui/songform"
)

var (
	errNothingToUndo = errors.New("nothing to undo")
	errNothingToRedo = errors.New("nothing to redo")
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusWarning
)

type status struct {
	text string
	kind statusKind
}

func describe(s song.Song) string {
	if s.Artist == "" {
		return s.Title
	}
	return s.Title + " by " + s.Artist
}

func (m *Model) play(cur *song.Song) {
	if cur == nil {
		m.status = status{errmsg.Format(errmsg.OpPlay, playlist.ErrEmpty), statusWarning}
		return
	}
	m.status = status{"Playing " + describe(*cur), statusInfo}
}

func (m *Model) addAndPlay(msg songform.SubmittedMsg) {
	cur, err := m.queue.InsertAtCursor(msg.Song)
	if err != nil {
		m.status = status{errmsg.FormatWith(errmsg.OpSongAdd, msg.Song.Title, err), statusWarning}
		return
	}
	m.history.Push(m.queue.Snapshot())
	m.status = status{"Added and playing " + describe(*cur), statusSuccess}
	m.ensureCurrentVisible()
}

func (m *Model) erase() {
	removed, ok := m.queue.RemoveCurrent()
	if !ok {
		m.status = status{errmsg.Format(errmsg.OpSongErase, playlist.ErrEmpty), statusWarning}
		return
	}
	m.history.Push(m.queue.Snapshot())
	m.status = status{fmt.Sprintf("Erased %s", describe(removed)), statusSuccess}
}

func (m *Model) move(delta int) {
	cur := m.queue.Current()
	if cur == nil {
		m.status = status{errmsg.Format(errmsg.OpSongMove, playlist.ErrEmpty), statusWarning}
		return
	}
	moved := *cur
	if !m.queue.MoveCurrent(delta) {
		return
	}
	m.history.Push(m.queue.Snapshot())
	direction := "down"
	if delta < 0 {
		direction = "up"
	}
	m.status = status{fmt.Sprintf("Moved %s %s", describe(moved), direction), statusInfo}
}

func (m *Model) undo() {
	snap, ok := m.history.Undo()
	if !ok {
		m.status = status{errmsg.Format(errmsg.OpUndo, errNothingToUndo), statusWarning}
		return
	}
	m.queue.Restore(snap)
	m.status = status{"Undone", statusInfo}
}

func (m *Model) redo() {
	snap, ok := m.history.Redo()
	if !ok {
		m.status = status{errmsg.Format(errmsg.OpRedo, errNothingToRedo), statusWarning}
		return
	}
	m.queue.Restore(snap)
	m.status = status{"Redone", statusInfo}
}
