package postgres

import (
	"fmt"
	"time"

	"github.com/xy-planning-network/enumlist"
	"gorm.io/gorm"
)

// Migration is used to hold the database key and function for creating the migration.
type Migration struct {
	Executor func(*gorm.DB) error
	Key      string
}

func (m Migration) execute(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := m.Executor(tx); err != nil {
			return err
		}

		return tx.Exec(`INSERT INTO migrations (key, ran_at) VALUES (?, ?)`, m.Key, time.Now().Unix()).Error
	})
}

// MigrateUp runs, in order, each migration whose key is not yet recorded in the migrations table.
// Each migration runs in its own transaction alongside the record of it having run.
func MigrateUp(db *gorm.DB, schema string, migrations []Migration) error {
	if err := db.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schema)).Error; err != nil {
		return fmt.Errorf("%w: failed creating %s schema: %s", enumlist.ErrUnexpected, schema, err)
	}

	err := db.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			id SERIAL PRIMARY KEY,
			ran_at bigint,
			key text,
			CONSTRAINT migrations_key UNIQUE (key)
		)
	`).Error
	if err != nil {
		return fmt.Errorf("%w: failed creating migrations table: %s", enumlist.ErrUnexpected, err)
	}

	var ran []string
	if err := db.Raw("SELECT key FROM migrations;").Scan(&ran).Error; err != nil {
		return fmt.Errorf("%w: failed fetching ran migrations: %s", enumlist.ErrUnexpected, err)
	}

	for _, m := range pending(ran, migrations) {
		if err := m.execute(db); err != nil {
			return fmt.Errorf("%w: migration %s: %s", enumlist.ErrUnexpected, m.Key, err)
		}
	}

	return nil
}

// pending filters out of all those migrations whose key is in ran, keeping their order.
func pending(ran []string, all []Migration) []Migration {
	done := enumlist.NewSet(ran...)
	var out []Migration
	for _, m := range all {
		if !done.Has(m.Key) {
			out = append(out, m)
		}
	}

	return out
}
