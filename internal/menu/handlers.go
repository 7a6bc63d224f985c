package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/llehouerou/songlist/internal/errmsg"
	"github.com/llehouerou/songlist/internal/playlist"
	"github.com/llehouerou/songlist/internal/song"
)

// PlayCurrent prints the current song.
func (s *Session) PlayCurrent() {
	s.play(s.queue.Current())
}

// PlayNext moves to the next song, wrapping to the first, and prints it.
func (s *Session) PlayNext() {
	s.play(s.queue.Next())
}

// PlayPrevious moves to the previous song, wrapping to the last, and prints it.
func (s *Session) PlayPrevious() {
	s.play(s.queue.Previous())
}

func (s *Session) play(cur *song.Song) {
	if cur == nil {
		fmt.Fprintln(s.out, MsgNoSongs)
		return
	}
	s.writeSong(*cur)
	fmt.Fprintln(s.out)
}

// AddAndPlay reads a song and inserts it before the current one, making it
// current. Duplicates are reported and leave the playlist unchanged.
func (s *Session) AddAndPlay() error {
	newSong, err := song.Read(s.in, s.out)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return err
		}
		return errmsg.Wrap(errmsg.OpReadSong, err)
	}

	cur, err := s.queue.InsertAtCursor(newSong)
	if errors.Is(err, playlist.ErrDuplicate) {
		fmt.Fprintln(s.out, MsgDuplicate)
		return nil
	}
	if err != nil {
		return errmsg.Wrap(errmsg.OpSongAdd, err)
	}

	s.writeSong(*cur)
	fmt.Fprintln(s.out)
	return nil
}

// EraseCurrent removes the current song. The cursor moves to the song that
// followed it, or per the queue's delete policy if it was the last one.
func (s *Session) EraseCurrent() {
	if _, ok := s.queue.RemoveCurrent(); !ok {
		fmt.Fprintln(s.out, MsgNoSongs)
	}
}

// Show prints every song in play order.
func (s *Session) Show() {
	songs := s.queue.Songs()
	if len(songs) == 0 {
		fmt.Fprintln(s.out, MsgNoSongs)
	}
	for _, x := range songs {
		s.writeSong(x)
	}
	fmt.Fprint(s.out, "\n\n")
}

func (s *Session) writeSong(x song.Song) {
	_ = s.layout.Format(s.out, x)
}
