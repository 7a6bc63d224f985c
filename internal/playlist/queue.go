// Package playlist implements the ordered song list and the cursor that
// tracks the current song.
package playlist

import (
	"errors"
	"fmt"
	"slices"

	"github.com/llehouerou/songlist/internal/song"
)

// ErrDuplicate is returned when a song with the same title and artist is
// already in the queue.
var ErrDuplicate = errors.New("song is already in the playlist")

// ErrEmpty describes an operation attempted on an empty queue.
var ErrEmpty = errors.New("no songs")

// DeletePolicy decides where the cursor goes when the last song is removed.
type DeletePolicy int

const (
	// DeleteWrap moves the cursor to the first song.
	DeleteWrap DeletePolicy = iota
	// DeleteClamp moves the cursor to the new last song.
	DeleteClamp
)

// String returns the config name of the policy.
func (p DeletePolicy) String() string {
	switch p {
	case DeleteWrap:
		return "wrap"
	case DeleteClamp:
		return "clamp"
	default:
		return fmt.Sprintf("DeletePolicy(%d)", int(p))
	}
}

// ParseDeletePolicy parses "wrap" or "clamp". An empty string is DeleteWrap.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch s {
	case "", "wrap":
		return DeleteWrap, nil
	case "clamp":
		return DeleteClamp, nil
	default:
		return DeleteWrap, fmt.Errorf("unknown delete policy %q (want \"wrap\" or \"clamp\")", s)
	}
}

// PlayingQueue wraps a Playlist with a cursor on the current song.
type PlayingQueue struct {
	playlist     *Playlist
	currentIndex int // -1 iff the playlist is empty
	deletePolicy DeletePolicy
}

// NewQueue creates a new empty playing queue.
func NewQueue() *PlayingQueue {
	return &PlayingQueue{
		playlist:     NewPlaylist(),
		currentIndex: -1,
	}
}

// SetDeletePolicy sets where the cursor goes after removing the last song.
func (q *PlayingQueue) SetDeletePolicy(p DeletePolicy) {
	q.deletePolicy = p
}

// DeletePolicy returns the active delete policy.
func (q *PlayingQueue) DeletePolicy() DeletePolicy {
	return q.deletePolicy
}

// Current returns the current song, or nil if the queue is empty.
func (q *PlayingQueue) Current() *song.Song {
	return q.playlist.Song(q.currentIndex)
}

// CurrentIndex returns the index of the current song (-1 if empty).
func (q *PlayingQueue) CurrentIndex() int {
	return q.currentIndex
}

// Next advances to the following song and returns it.
// The last song wraps to the first. Returns nil if the queue is empty.
func (q *PlayingQueue) Next() *song.Song {
	if q.IsEmpty() {
		return nil
	}
	q.currentIndex = (q.currentIndex + 1) % q.playlist.Len()
	return q.Current()
}

// Previous retreats to the preceding song and returns it.
// The first song wraps to the last. Returns nil if the queue is empty.
func (q *PlayingQueue) Previous() *song.Song {
	if q.IsEmpty() {
		return nil
	}
	n := q.playlist.Len()
	q.currentIndex = (q.currentIndex - 1 + n) % n
	return q.Current()
}

// JumpTo sets the current index to the specified position.
// Returns the song at that position, or nil if invalid.
func (q *PlayingQueue) JumpTo(index int) *song.Song {
	if index < 0 || index >= q.playlist.Len() {
		return nil
	}
	q.currentIndex = index
	return q.Current()
}

// Add appends songs without moving the cursor, except that the first song
// added to an empty queue becomes current. Duplicates are skipped.
// Returns the number of songs added.
func (q *PlayingQueue) Add(songs ...song.Song) int {
	added := 0
	for _, s := range songs {
		if q.playlist.Contains(s) {
			continue
		}
		q.playlist.Add(s)
		added++
	}
	if q.currentIndex < 0 && q.playlist.Len() > 0 {
		q.currentIndex = 0
	}
	return added
}

// InsertAtCursor inserts s immediately before the current song and makes it
// current. On an empty queue s becomes the only song.
// Returns ErrDuplicate, leaving the queue untouched, if an equal song exists.
func (q *PlayingQueue) InsertAtCursor(s song.Song) (*song.Song, error) {
	if q.playlist.Contains(s) {
		return nil, ErrDuplicate
	}
	index := max(q.currentIndex, 0)
	q.playlist.Insert(index, s)
	q.currentIndex = index
	return q.Current(), nil
}

// Replace clears the queue, adds songs, and sets index to 0.
// Duplicates are skipped. Returns the first song.
func (q *PlayingQueue) Replace(songs ...song.Song) *song.Song {
	q.playlist.Clear()
	q.currentIndex = -1
	q.Add(songs...)
	return q.Current()
}

// RemoveAt removes the song at the given index and keeps the cursor on a
// valid song. Removing the current song moves the cursor to the song that
// followed it; past the end, the delete policy applies.
func (q *PlayingQueue) RemoveAt(index int) bool {
	if !q.playlist.Remove(index) {
		return false
	}

	n := q.playlist.Len()
	switch {
	case n == 0:
		q.currentIndex = -1
	case q.currentIndex > index:
		q.currentIndex--
	case q.currentIndex == index && q.currentIndex >= n:
		if q.deletePolicy == DeleteClamp {
			q.currentIndex = n - 1
		} else {
			q.currentIndex = 0
		}
	}

	return true
}

// RemoveCurrent removes the current song and returns it.
// Returns false if the queue is empty.
func (q *PlayingQueue) RemoveCurrent() (song.Song, bool) {
	current := q.Current()
	if current == nil {
		return song.Song{}, false
	}
	removed := *current
	q.RemoveAt(q.currentIndex)
	return removed, true
}

// MoveCurrent shifts the current song delta positions and keeps it current.
// Returns false if the queue is empty or the target is out of range.
func (q *PlayingQueue) MoveCurrent(delta int) bool {
	if q.IsEmpty() {
		return false
	}
	target := q.currentIndex + delta
	if !q.playlist.Move(q.currentIndex, target) {
		return false
	}
	q.currentIndex = target
	return true
}

// Clear removes all songs and resets the cursor.
func (q *PlayingQueue) Clear() {
	q.playlist.Clear()
	q.currentIndex = -1
}

// Songs returns all songs in play order.
func (q *PlayingQueue) Songs() []song.Song {
	return q.playlist.Songs()
}

// Sorted returns the songs ordered from highest to lowest ranking. Songs
// with equal rankings keep their play order.
func (q *PlayingQueue) Sorted() []song.Song {
	songs := q.playlist.Songs()
	slices.SortStableFunc(songs, func(a, b song.Song) int {
		switch {
		case b.Less(a):
			return -1
		case a.Less(b):
			return 1
		default:
			return 0
		}
	})
	return songs
}

// Len returns the number of songs in the queue.
func (q *PlayingQueue) Len() int {
	return q.playlist.Len()
}

// IsEmpty returns true if the queue has no songs.
func (q *PlayingQueue) IsEmpty() bool {
	return q.playlist.Len() == 0
}

// Snapshot captures the songs and cursor for later restore.
func (q *PlayingQueue) Snapshot() Snapshot {
	return Snapshot{Songs: q.playlist.Songs(), CurrentIndex: q.currentIndex}
}

// Restore replaces the queue contents with a snapshot. An out of range
// cursor is clamped onto the restored songs.
func (q *PlayingQueue) Restore(s Snapshot) {
	q.playlist.Clear()
	q.playlist.Add(s.Songs...)
	switch n := q.playlist.Len(); {
	case n == 0:
		q.currentIndex = -1
	case s.CurrentIndex < 0:
		q.currentIndex = 0
	case s.CurrentIndex >= n:
		q.currentIndex = n - 1
	default:
		q.currentIndex = s.CurrentIndex
	}
}
