package profile

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	name     TEXT,
	role     TEXT,
	location TEXT,
	posts    TEXT,
	photo    TEXT,
	contact  TEXT
);`

// SQLiteStore reads profiles from the profiles table of a SQLite database.
type SQLiteStore struct{}

// Load returns every row of the profiles table in insertion order.
func (SQLiteStore) Load(ctx context.Context, source string) ([]Profile, error) {
	if _, err := os.Stat(source); err != nil {
		return nil, unreadable(source, err)
	}

	unlock, err := readLock(ctx, source)
	if err != nil {
		return nil, unreadable(source, err)
	}
	defer unlock()

	db, err := openSQLite(ctx, source, true)
	if err != nil {
		return nil, unreadable(source, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx,
		`SELECT name, role, location, posts, photo, contact FROM profiles ORDER BY rowid`)
	if err != nil {
		return nil, malformed(source, err)
	}
	defer rows.Close()

	out := []Profile{}
	for rows.Next() {
		var name, role, location, posts, photo, contact sql.NullString
		if err := rows.Scan(&name, &role, &location, &posts, &photo, &contact); err != nil {
			return nil, malformed(source, err)
		}
		out = append(out, Profile{
			Name:     name.String,
			Role:     role.String,
			Location: location.String,
			Posts:    posts.String,
			Photo:    photo.String,
			Contact:  contact.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, malformed(source, err)
	}
	return out, nil
}

// ImportSQLite replaces the contents of the profiles table at path with profiles,
// creating the database if needed.
func ImportSQLite(ctx context.Context, path string, profiles []Profile) error {
	unlock, err := writeLock(ctx, path)
	if err != nil {
		return err
	}
	defer unlock()

	db, err := openSQLite(ctx, path, false)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("cannot create profiles table: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM profiles`); err != nil {
		return fmt.Errorf("cannot clear profiles table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO profiles (name, role, location, posts, photo, contact) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range profiles {
		if _, err := stmt.ExecContext(ctx, p.Name, p.Role, p.Location, p.Posts, p.Photo, p.Contact); err != nil {
			return fmt.Errorf("cannot insert profile %q: %w", p.Name, err)
		}
	}
	return tx.Commit()
}

func openSQLite(ctx context.Context, path string, readOnly bool) (*sql.DB, error) {
	// modernc sqlite uses DSN like: file:foo.db?_pragma=busy_timeout(5000)
	query := "_pragma=busy_timeout(5000)"
	if readOnly {
		query += "&mode=ro"
	}
	// Escapes '?' and '#' in the path so they are not taken as URI syntax.
	dsn := (&url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: query}).String()

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
