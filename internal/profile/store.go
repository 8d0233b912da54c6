package profile

import (
	"context"
	"path/filepath"
	"strings"
)

// Store supplies the full profile collection for a source.
//
// Implementations reload the backing data on every call.
type Store interface {
	Load(ctx context.Context, source string) ([]Profile, error)
}

// Format identifies how a source is encoded.
type Format string

const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatSQLite Format = "sqlite"
)

// FormatOf picks the encoding of source from its extension. Unknown
// extensions are treated as JSON.
func FormatOf(source string) Format {
	switch strings.ToLower(filepath.Ext(source)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite
	default:
		return FormatJSON
	}
}

// NewStore returns a Store that dispatches each Load on the source's format.
func NewStore() Store {
	return autoStore{}
}

type autoStore struct{}

func (autoStore) Load(ctx context.Context, source string) ([]Profile, error) {
	if FormatOf(source) == FormatSQLite {
		return SQLiteStore{}.Load(ctx, source)
	}
	return FileStore{}.Load(ctx, source)
}
