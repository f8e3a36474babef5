package catalog

import (
	"errors"
	"fmt"

	"github.com/xy-planning-network/enumlist"
	"github.com/xy-planning-network/enumlist/postgres"
)

const (
	GenresColumn = "genres"
	MoodsColumn  = "moods"

	moodSeparator = "|"
)

var (
	// GenreCodec stores a song's genres in order, e.g. "3,1".
	GenreCodec = must(enumlist.NewListCodec(Genres, enumlist.Int[Genre]))

	// MoodCodec stores a song's moods as a set, e.g. "calm|moody".
	MoodCodec = must(enumlist.NewSetCodec(Moods, enumlist.String[Mood], enumlist.WithSeparator(moodSeparator)))
)

func init() {
	postgres.RegisterColumn(GenresColumn, GenreCodec)
	postgres.RegisterColumn(MoodsColumn, MoodCodec)
}

// A Song is a row in the songs table.
// Nil Genres or Moods are stored as NULL.
type Song struct {
	Model
	Title  string             `gorm:"not null"`
	Genres []Genre            `gorm:"serializer:genres"`
	Moods  enumlist.Set[Mood] `gorm:"serializer:moods"`
}

// Insert creates every song, stopping at the first failure.
// A song that already exists fails with ErrExists.
func Insert(db *postgres.DB, songs []Song) error {
	for i := range songs {
		if songs[i].Exists() {
			return fmt.Errorf("%w: song %q", enumlist.ErrExists, songs[i].Title)
		}

		if err := db.Create(&songs[i]); err != nil {
			return fmt.Errorf("song %q: %w", songs[i].Title, err)
		}
	}

	return nil
}

// All retrieves every song ordered by title.
func All(db *postgres.DB) ([]Song, error) {
	var songs []Song
	err := db.Order("title").Find(&songs)
	switch {
	case errors.Is(err, enumlist.ErrNotFound):
		return []Song{}, nil
	case err != nil:
		return nil, err
	}

	return songs, nil
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
