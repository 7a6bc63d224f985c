package song

import (
	"errors"
	"fmt"
	"io"

	"github.com/llehouerou/songlist/internal/prompt"
)

// Prompts written by Read.
const (
	PromptTitle   = "Name of the song: "
	PromptArtist  = "Name of the artist: "
	PromptRanking = "Ranking between 1-5: "
	PromptRetry   = "Invalid input! Try again: "
)

// Read prompts for a title, an artist and a ranking.
//
// The title skips leading blank input, so it is never empty. The ranking is
// read one token at a time and re-prompted until ParseRanking accepts it; the
// remainder of each ranking line is discarded. Only I/O errors are returned.
func Read(src prompt.Source, w io.Writer) (Song, error) {
	var s Song

	fmt.Fprint(w, PromptTitle)
	if err := src.SkipSpace(); err != nil {
		return Song{}, err
	}
	title, err := src.ReadLine()
	if err != nil {
		return Song{}, err
	}
	s.Title = title

	fmt.Fprint(w, PromptArtist)
	artist, err := src.ReadLine()
	if err != nil {
		return Song{}, err
	}
	s.Artist = artist

	fmt.Fprint(w, PromptRanking)
	ranking, err := readRanking(src, w)
	if err != nil {
		return Song{}, err
	}
	s.Ranking = ranking

	return s, nil
}

func readRanking(src prompt.Source, w io.Writer) (int, error) {
	for {
		token, err := src.ReadToken()
		if err != nil {
			return 0, err
		}
		ranking, parseErr := ParseRanking(token)
		if err := src.DiscardLine(); err != nil {
			return 0, err
		}
		if parseErr == nil {
			return ranking, nil
		}
		if !errors.Is(parseErr, ErrInvalidRanking) {
			return 0, parseErr
		}
		fmt.Fprint(w, PromptRetry)
	}
}
