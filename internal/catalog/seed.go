package catalog

import (
	"errors"
	"fmt"
	"io"

	"github.com/samber/mo"
	"github.com/xy-planning-network/enumlist"
	"gopkg.in/yaml.v3"
)

// seedSong is a song as written in a seed file.
// Genres and Moods hold stored text; a missing key or null means NULL.
type seedSong struct {
	Title  string  `yaml:"title"`
	Genres *string `yaml:"genres"`
	Moods  *string `yaml:"moods"`
}

// LoadSeed reads a YAML list of songs from r, e.g.:
//
//	- title: So What
//	  genres: "3"
//	  moods: "calm|moody"
//
// Genres and moods are decoded through GenreCodec and MoodCodec,
// so a seed file can be checked without a database.
func LoadSeed(r io.Reader) ([]Song, error) {
	var raw []seedSong
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: failed reading seed: %s", enumlist.ErrNotValid, err)
	}

	songs := make([]Song, len(raw))
	for i, s := range raw {
		if s.Title == "" {
			return nil, fmt.Errorf("%w: seed song %d has no title", enumlist.ErrNotValid, i)
		}

		genres, err := GenreCodec.Decode(optionOf(s.Genres))
		if err != nil {
			return nil, fmt.Errorf("seed song %q: %w", s.Title, err)
		}

		moods, err := MoodCodec.Decode(optionOf(s.Moods))
		if err != nil {
			return nil, fmt.Errorf("seed song %q: %w", s.Title, err)
		}

		songs[i] = Song{Title: s.Title, Genres: genres, Moods: moods}
	}

	return songs, nil
}

func optionOf(s *string) mo.Option[string] {
	if s == nil {
		return mo.None[string]()
	}

	return mo.Some(*s)
}
