package catalog

import (
	"github.com/xy-planning-network/enumlist/postgres"
	"gorm.io/gorm"
)

// Migrations returns the migrations the catalog tables need, in order.
func Migrations() []postgres.Migration {
	return []postgres.Migration{
		{
			Key: "20261016-create-songs",
			Executor: func(tx *gorm.DB) error {
				return tx.Exec(`
					CREATE TABLE songs (
						id uuid PRIMARY KEY,
						title text NOT NULL,
						genres text,
						moods text,
						created_at timestamptz NOT NULL DEFAULT now(),
						updated_at timestamptz NOT NULL DEFAULT now()
					)
				`).Error
			},
		},
		{
			Key: "20261016-index-songs-title",
			Executor: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE INDEX songs_title_idx ON songs (title)`).Error
			},
		},
	}
}
