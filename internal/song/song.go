// Package song defines the song record held by a playlist.
package song

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Ranking bounds for validated input.
const (
	MinRanking = 1
	MaxRanking = 5
)

// Values used by Default.
const (
	DefaultTitle  = "No name"
	DefaultArtist = "No artist"
)

// ErrInvalidRanking is returned by ParseRanking for any token that is not a
// single digit between MinRanking and MaxRanking.
var ErrInvalidRanking = errors.New("ranking must be a single digit between 1 and 5")

// Song is a single playlist entry. Songs are compared by title and artist;
// the ranking only orders them.
type Song struct {
	Title   string
	Artist  string
	Ranking int
}

// New creates a song without validating its fields.
func New(title, artist string, ranking int) Song {
	return Song{Title: title, Artist: artist, Ranking: ranking}
}

// Default returns the placeholder song ("No name", "No artist", 0).
func Default() Song {
	return New(DefaultTitle, DefaultArtist, 0)
}

// Equal reports whether both songs have the same title and artist.
func (s Song) Equal(other Song) bool {
	return s.Title == other.Title && s.Artist == other.Artist
}

// Less reports whether s is ranked lower than other.
func (s Song) Less(other Song) bool {
	return s.Ranking < other.Ranking
}

// Format writes the song as a fixed-width table row using DefaultLayout.
func (s Song) Format(w io.Writer) error {
	return DefaultLayout.Format(w, s)
}

// String returns the DefaultLayout row, including the trailing newline.
func (s Song) String() string {
	return DefaultLayout.Row(s)
}

// ParseRanking validates a ranking token.
func ParseRanking(token string) (int, error) {
	if len(token) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidRanking, token)
	}
	n, err := strconv.Atoi(token)
	if err != nil || n < MinRanking || n > MaxRanking {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidRanking, token)
	}
	return n, nil
}

// Layout holds the column widths of a song row, in terminal cells.
type Layout struct {
	TitleWidth   int
	ArtistWidth  int
	RankingWidth int
}

// DefaultLayout is the 30/15/10 table used by the console menu.
var DefaultLayout = Layout{TitleWidth: 30, ArtistWidth: 15, RankingWidth: 10}

// Row renders s with the title and artist left-justified and the ranking
// right-justified. Values wider than their column are not truncated.
func (l Layout) Row(s Song) string {
	var b strings.Builder
	b.WriteString(runewidth.FillRight(s.Title, l.TitleWidth))
	b.WriteString(runewidth.FillRight(s.Artist, l.ArtistWidth))
	b.WriteString(runewidth.FillLeft(strconv.Itoa(s.Ranking), l.RankingWidth))
	b.WriteByte('\n')
	return b.String()
}

// Format writes the row for s to w.
func (l Layout) Format(w io.Writer, s Song) error {
	_, err := io.WriteString(w, l.Row(s))
	return err
}
