package playlist

import "github.com/llehouerou/songlist/internal/song"

// Playlist holds an ordered collection of songs.
type Playlist struct {
	songs []song.Song
}

// NewPlaylist creates a new empty playlist.
func NewPlaylist() *Playlist {
	return &Playlist{
		songs: make([]song.Song, 0),
	}
}

// Add appends songs to the playlist.
func (p *Playlist) Add(songs ...song.Song) {
	p.songs = append(p.songs, songs...)
}

// Insert places s before the song at index. An index equal to Len appends.
// Returns false if index is out of bounds.
func (p *Playlist) Insert(index int, s song.Song) bool {
	if index < 0 || index > len(p.songs) {
		return false
	}
	p.songs = append(p.songs, song.Song{})
	copy(p.songs[index+1:], p.songs[index:])
	p.songs[index] = s
	return true
}

// Remove removes the song at the given index.
// Returns false if index is out of bounds.
func (p *Playlist) Remove(index int) bool {
	if index < 0 || index >= len(p.songs) {
		return false
	}
	p.songs = append(p.songs[:index], p.songs[index+1:]...)
	return true
}

// Clear removes all songs from the playlist.
func (p *Playlist) Clear() {
	p.songs = p.songs[:0]
}

// Songs returns a copy of all songs.
func (p *Playlist) Songs() []song.Song {
	result := make([]song.Song, len(p.songs))
	copy(result, p.songs)
	return result
}

// Song returns the song at the given index, or nil if out of bounds.
func (p *Playlist) Song(index int) *song.Song {
	if index < 0 || index >= len(p.songs) {
		return nil
	}
	return &p.songs[index]
}

// IndexOf returns the index of the first song equal to s, or -1.
func (p *Playlist) IndexOf(s song.Song) int {
	for i := range p.songs {
		if p.songs[i].Equal(s) {
			return i
		}
	}
	return -1
}

// Contains reports whether a song equal to s is in the playlist.
func (p *Playlist) Contains(s song.Song) bool {
	return p.IndexOf(s) >= 0
}

// Len returns the number of songs.
func (p *Playlist) Len() int {
	return len(p.songs)
}

// Move moves the song at fromIndex to toIndex.
// Returns false if either index is out of bounds.
func (p *Playlist) Move(fromIndex, toIndex int) bool {
	if fromIndex < 0 || fromIndex >= len(p.songs) {
		return false
	}
	if toIndex < 0 || toIndex >= len(p.songs) {
		return false
	}
	if fromIndex == toIndex {
		return true
	}

	s := p.songs[fromIndex]
	p.songs = append(p.songs[:fromIndex], p.songs[fromIndex+1:]...)
	p.songs = append(p.songs[:toIndex], append([]song.Song{s}, p.songs[toIndex:]...)...)
	return true
}
