/*
enumlist-demo stores a handful of songs in PostgreSQL and reads them back,
showing a list column (genres) and a set column (moods) going through their codecs.

Connection settings come from the DATABASE_* environment variables, optionally set in a .env file.
*/
package main

import (
	"bytes"
	_ "embed"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/xy-planning-network/enumlist"
	"github.com/xy-planning-network/enumlist/internal/catalog"
	"github.com/xy-planning-network/enumlist/logger"
	"github.com/xy-planning-network/enumlist/postgres"
)

const environmentEnvVar = "ENVIRONMENT"

//go:embed songs.yaml
var seed []byte

func main() {
	if err := godotenv.Load(); err != nil {
		var pe *fs.PathError
		if !errors.As(err, &pe) {
			slog.Error("failed loading .env", slog.Any("error", err))
			os.Exit(1)
		}
	}

	env := enumlist.EnvVarOrEnv(environmentEnvVar, enumlist.Development)
	log := logger.New(enumlist.AppLogKind, env, os.Stdout)

	if err := run(env, log); err != nil {
		log.Error("enumlist-demo failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(env enumlist.Environment, log *slog.Logger) error {
	songs, err := catalog.LoadSeed(bytes.NewReader(seed))
	if err != nil {
		return err
	}

	dbLog := logger.New(enumlist.DBLogKind, env, os.Stdout)
	db, err := postgres.Connect(postgres.NewCxnConfig(env), catalog.Migrations(), env, dbLog)
	if err != nil {
		return err
	}

	n, err := db.Model(&catalog.Song{}).Count()
	if err != nil {
		return err
	}

	if n == 0 {
		if err := catalog.Insert(db, songs); err != nil {
			return err
		}

		log.Info("seeded songs", slog.Int("count", len(songs)))
	}

	stored, err := catalog.All(db)
	if err != nil {
		return err
	}

	for _, s := range stored {
		genres, err := catalog.GenreCodec.Encode(s.Genres)
		if err != nil {
			return err
		}

		moods, err := catalog.MoodCodec.Encode(s.Moods)
		if err != nil {
			return err
		}

		log.Info(
			s.Title,
			slog.String("id", s.ID.String()),
			slog.Any("genres", s.Genres),
			slog.String("genres_text", genres.OrElse("NULL")),
			slog.Int("moods", s.Moods.Len()),
			slog.String("moods_text", moods.OrElse("NULL")),
		)
	}

	return nil
}
