package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/dayly/internal/keyring"
	"github.com/julianstephens/dayly/internal/storage"
	"github.com/julianstephens/dayly/internal/storage/postgres"
	"github.com/julianstephens/dayly/internal/storage/sqlite"
)

// KeyringDB is the --db value that reads the PostgreSQL connection string
// from the OS keyring.
const KeyringDB = "keyring"

// OpenStore picks a storage provider for db: a PostgreSQL URL or DSN, the
// keyring marker, a .json file, or (by default) a SQLite database path.
func OpenStore(db string) (storage.Provider, error) {
	switch {
	case db == KeyringDB:
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return nil, errors.New("no connection string found in keyring. Use 'dayly keyring set' to store one")
			}
			return nil, err
		}
		// Credentials stored in the keyring may carry a password.
		if err := postgres.ValidateConnString(connStr); err != nil && !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		return postgres.New(connStr), nil

	case postgres.IsConnString(db) || strings.Contains(db, "host="):
		if err := postgres.ValidateConnString(db); err != nil {
			if errors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; store it with 'dayly keyring set' and use --db %s, or use ~/.pgpass", KeyringDB)
			}
			return nil, err
		}
		return postgres.New(db), nil

	case strings.HasSuffix(strings.ToLower(db), ".json"):
		return storage.NewJSONStore(db), nil
	}

	return sqlite.NewStore(db), nil
}
