package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/songlist/internal/playlist"
	"github.com/llehouerou/songlist/internal/song"
)

const (
	appName        = "songlist"
	configFileName = "config.toml"
)

type Config struct {
	DeletePolicy string       `koanf:"delete_policy"` // "wrap" (default) or "clamp"
	Layout       LayoutConfig `koanf:"layout"`

	// Songs seeds the playlist at startup. Empty means DefaultSongs.
	Songs []SongConfig `koanf:"songs"`

	policy playlist.DeletePolicy
}

// LayoutConfig holds the song table column widths. Zero or negative values
// fall back to song.DefaultLayout.
type LayoutConfig struct {
	TitleWidth   int `koanf:"title_width"`
	ArtistWidth  int `koanf:"artist_width"`
	RankingWidth int `koanf:"ranking_width"`
}

// SongConfig is a seed song entry.
type SongConfig struct {
	Title   string `koanf:"title"`
	Artist  string `koanf:"artist"`
	Ranking int    `koanf:"ranking"`
}

// DefaultSongs is the playlist used when the config names no songs.
var DefaultSongs = []song.Song{
	song.New("Old Town Road", "Lil Nas X", 5),
	song.New("Guelpembe", "Baris Manco", 5),
	song.New("Somewhere I Belong", "Linkin Park", 5),
	song.New("Belalim", "Sezen Aksu", 5),
	song.New("Elfida", "Haluk Levent", 5),
}

// Load reads the user config file then ./config.toml (last wins).
// Missing files are skipped.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files in order (last wins), skipping the
// ones that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	policy, err := playlist.ParseDeletePolicy(c.DeletePolicy)
	if err != nil {
		return err
	}
	c.policy = policy

	var errs []error
	for i, s := range c.Songs {
		if s.Title == "" {
			errs = append(errs, fmt.Errorf("songs[%d]: title is empty", i))
		}
		if s.Ranking < song.MinRanking || s.Ranking > song.MaxRanking {
			errs = append(errs, fmt.Errorf("songs[%d]: ranking %d is not between %d and %d",
				i, s.Ranking, song.MinRanking, song.MaxRanking))
		}
	}
	return errors.Join(errs...)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/songlist/config.toml
		filepath.Join(xdg.ConfigHome, appName, configFileName),
		// 2. ./config.toml (pwd, highest priority)
		configFileName,
	}
}

// Policy returns the delete policy named by delete_policy.
func (c *Config) Policy() playlist.DeletePolicy {
	return c.policy
}

// SongLayout returns the table layout with defaults applied.
func (c *Config) SongLayout() song.Layout {
	l := song.DefaultLayout
	if c.Layout.TitleWidth > 0 {
		l.TitleWidth = c.Layout.TitleWidth
	}
	if c.Layout.ArtistWidth > 0 {
		l.ArtistWidth = c.Layout.ArtistWidth
	}
	if c.Layout.RankingWidth > 0 {
		l.RankingWidth = c.Layout.RankingWidth
	}
	return l
}

// SeedSongs returns the songs the playlist starts with. Entries that repeat
// an earlier title and artist are dropped.
func (c *Config) SeedSongs() []song.Song {
	if len(c.Songs) == 0 {
		seeds := make([]song.Song, len(DefaultSongs))
		copy(seeds, DefaultSongs)
		return seeds
	}

	seeds := make([]song.Song, 0, len(c.Songs))
	for _, sc := range c.Songs {
		s := song.New(sc.Title, sc.Artist, sc.Ranking)
		duplicate := false
		for _, seen := range seeds {
			if seen.Equal(s) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			seeds = append(seeds, s)
		}
	}
	return seeds
}
