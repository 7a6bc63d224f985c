//nolint:goconst // test cases intentionally repeat strings for readability
package song

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/songlist/internal/prompt"
)

func TestDefault(t *testing.T) {
	s := Default()

	if s.Title != "No name" {
		t.Errorf("Title = %q, want %q", s.Title, "No name")
	}
	if s.Artist != "No artist" {
		t.Errorf("Artist = %q, want %q", s.Artist, "No artist")
	}
	if s.Ranking != 0 {
		t.Errorf("Ranking = %d, want 0", s.Ranking)
	}
}

func TestSong_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Song
		expected bool
	}{
		{
			name:     "same title and artist",
			a:        New("Elfida", "Haluk Levent", 5),
			b:        New("Elfida", "Haluk Levent", 5),
			expected: true,
		},
		{
			name:     "ranking is ignored",
			a:        New("Elfida", "Haluk Levent", 5),
			b:        New("Elfida", "Haluk Levent", 1),
			expected: true,
		},
		{
			name:     "different artist",
			a:        New("Elfida", "Haluk Levent", 5),
			b:        New("Elfida", "Sezen Aksu", 5),
			expected: false,
		},
		{
			name:     "different title",
			a:        New("Belalim", "Sezen Aksu", 5),
			b:        New("belalim", "Sezen Aksu", 5),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.expected {
				t.Errorf("Equal() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSong_Less(t *testing.T) {
	low := New("B", "x", 2)
	high := New("A", "y", 4)

	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
	assert.False(t, low.Less(New("C", "z", 2)), "equal rankings are not less")
}

func TestParseRanking(t *testing.T) {
	tests := []struct {
		token string
		want  int
		ok    bool
	}{
		{"1", 1, true},
		{"3", 3, true},
		{"5", 5, true},
		{"0", 0, false},
		{"6", 0, false},
		{"9", 0, false},
		{"12", 0, false},
		{"ab", 0, false},
		{"a", 0, false},
		{"-", 0, false},
		{"", 0, false},
		{"05", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := ParseRanking(tt.token)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidRanking)
		})
	}
}

func TestLayout_Row(t *testing.T) {
	s := New("Old Town Road", "Lil Nas X", 5)

	row := DefaultLayout.Row(s)

	want := "Old Town Road" + strings.Repeat(" ", 17) +
		"Lil Nas X" + strings.Repeat(" ", 6) +
		strings.Repeat(" ", 9) + "5\n"
	assert.Equal(t, want, row)
	assert.Len(t, row, 30+15+10+1)
}

func TestLayout_Row_WideRunes(t *testing.T) {
	s := New("Güzel", "Barış Manço", 4)

	row := Layout{TitleWidth: 8, ArtistWidth: 12, RankingWidth: 3}.Row(s)

	assert.Equal(t, "Güzel   Barış Manço   4\n", row)
}

func TestLayout_Row_Overflow(t *testing.T) {
	s := New(strings.Repeat("x", 35), "Artist", 3)

	row := DefaultLayout.Row(s)

	assert.True(t, strings.HasPrefix(row, strings.Repeat("x", 35)+"Artist"),
		"overlong titles are not truncated: %q", row)
}

func TestSong_Format(t *testing.T) {
	var buf bytes.Buffer
	s := New("Elfida", "Haluk Levent", 5)

	require.NoError(t, s.Format(&buf))

	assert.Equal(t, s.String(), buf.String())
}

func TestRead(t *testing.T) {
	var out bytes.Buffer
	src := prompt.FromString("\n  Somewhere I Belong\nLinkin Park\n4\n")

	s, err := Read(src, &out)

	require.NoError(t, err)
	assert.Equal(t, New("Somewhere I Belong", "Linkin Park", 4), s)
	assert.Equal(t, PromptTitle+PromptArtist+PromptRanking, out.String())
}

func TestRead_RetriesRanking(t *testing.T) {
	var out bytes.Buffer
	src := prompt.FromString("Title\nArtist\n6\n0\nab\n12\n3 trailing words\nNEXT\n")

	s, err := Read(src, &out)

	require.NoError(t, err)
	assert.Equal(t, 3, s.Ranking)
	assert.Equal(t, 4, strings.Count(out.String(), PromptRetry))

	// Rest of the accepted ranking line is discarded.
	next, err := src.ReadToken()
	require.NoError(t, err)
	assert.Equal(t, "NEXT", next)
}

func TestRead_EmptyArtist(t *testing.T) {
	src := prompt.FromString("Title\n\n2\n")

	s, err := Read(src, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, "", s.Artist)
	assert.Equal(t, 2, s.Ranking)
}

func TestRead_EOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no title", ""},
		{"no artist", "Title\n"},
		{"no ranking", "Title\nArtist\n"},
		{"only invalid rankings", "Title\nArtist\n7\n8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(prompt.FromString(tt.input), io.Discard)
			if !errors.Is(err, io.EOF) {
				t.Errorf("Read() error = %v, want io.EOF", err)
			}
		})
	}
}
