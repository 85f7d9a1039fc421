package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE venues (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				genres TEXT NOT NULL DEFAULT '{}',
				address TEXT,
				city TEXT,
				state TEXT,
				phone TEXT,
				website TEXT,
				image_link TEXT,
				facebook_link TEXT,
				seeking_talent BOOLEAN NOT NULL DEFAULT FALSE,
				seeking_description TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_venues_city_state ON venues (city, state)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE artists (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL,
				city TEXT,
				state TEXT,
				phone TEXT,
				website TEXT,
				genres TEXT NOT NULL DEFAULT '{}',
				image_link TEXT,
				facebook_link TEXT,
				seeking_venue BOOLEAN NOT NULL DEFAULT FALSE,
				seeking_description TEXT
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE shows (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				artist_id INTEGER REFERENCES artists (id) NOT NULL,
				venue_id INTEGER REFERENCES venues (id) NOT NULL,
				start_time TIMESTAMPTZ NOT NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_shows_artist_id ON shows (artist_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_shows_venue_id ON shows (venue_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_shows_start_time ON shows (start_time)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		for _, table := range []string{"shows", "artists", "venues"} {
			_, err := db.Exec("DROP TABLE " + table)
			if err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}

	Migrations.MustRegister(up, down)
}
