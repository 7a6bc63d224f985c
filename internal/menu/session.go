// Package menu runs the one-letter console menu over a playing queue.
package menu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/keymap"
	"github.com/llehouerou/songlist/internal/playlist"
	"github.com/llehouerou/songlist/internal/prompt"
	"github.com/llehouerou/songlist/internal/song"
)

// Messages printed by the menu.
const (
	MsgHeader    = "What do you want to do?"
	MsgNoSongs   = "No songs"
	MsgDuplicate = "Sorry! The song is already in the playlist!"
	MsgUndefined = "Undefined input!"
	MsgGoodbye   = "Goodbye!"
)

// Session holds everything one menu run works on.
type Session struct {
	queue    *playlist.PlayingQueue
	in       prompt.Source
	out      io.Writer
	layout   song.Layout
	keys     *keymap.Resolver
	bindings []keymap.Binding
}

// New creates a session over queue reading commands from in and writing to
// out. Songs are printed with layout.
func New(queue *playlist.PlayingQueue, in prompt.Source, out io.Writer, layout song.Layout) *Session {
	bindings := keymap.ByContext(keymap.ContextMenu)
	return &Session{
		queue:    queue,
		in:       in,
		out:      out,
		layout:   layout,
		keys:     keymap.NewResolver(bindings),
		bindings: bindings,
	}
}

// Queue returns the queue the session works on.
func (s *Session) Queue() *playlist.PlayingQueue {
	return s.queue
}

// Run shows the menu and executes commands until the user quits or input
// ends. End of input counts as quitting.
func (s *Session) Run() error {
	for {
		done, err := s.Step()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// Step shows the menu once, reads one command and executes it.
// Returns true once the user quits.
func (s *Session) Step() (bool, error) {
	s.printMenu()

	token, err := s.in.ReadToken()
	if err != nil {
		return false, errmsg.Wrap(errmsg.OpReadCommand, err)
	}
	fmt.Fprintln(s.out)

	return s.Dispatch(s.resolve(token))
}

// resolve maps a command token to an action. Only single-character tokens
// are commands; they are matched case-insensitively.
func (s *Session) resolve(token string) keymap.Action {
	if len([]rune(token)) != 1 {
		return ""
	}
	return s.keys.Resolve(strings.ToUpper(token))
}

// Dispatch executes one action. Returns true for quit.
func (s *Session) Dispatch(action keymap.Action) (bool, error) {
	switch action {
	case keymap.ActionPlayCurrent:
		s.PlayCurrent()
	case keymap.ActionNextSong:
		s.PlayNext()
	case keymap.ActionPrevSong:
		s.PlayPrevious()
	case keymap.ActionAddAndPlay:
		if err := s.AddAndPlay(); err != nil {
			return false, err
		}
	case keymap.ActionEraseCurrent:
		s.EraseCurrent()
	case keymap.ActionShow:
		s.Show()
	case keymap.ActionQuit:
		fmt.Fprintln(s.out, MsgGoodbye)
		return true, nil
	default:
		fmt.Fprintln(s.out, MsgUndefined)
	}
	return false, nil
}

func (s *Session) printMenu() {
	var b strings.Builder
	b.WriteString(MsgHeader + "\n\n")
	for _, kb := range s.bindings {
		fmt.Fprintf(&b, "%s: %s\n", kb.Keys[0], kb.Description)
	}
	b.WriteString("\n")
	fmt.Fprint(s.out, b.String())
}
