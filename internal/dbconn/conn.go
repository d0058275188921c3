package dbconn

import (
	"context"
	"fmt"
)

// Connection settings read from the configuration attributes.
const (
	KeyDBServer   = "dbserver"
	KeyDBUser     = "dbuser"
	KeyDBPassword = "dbpassword"
	KeyDBName     = "dbname"
	KeyODBCSource = "odbcsource"
)

// Settings exposes the configuration attributes a backend needs to connect.
type Settings interface {
	Lookup(name string) (string, bool)
}

// Conn is a single database connection.
type Conn interface {
	Connect(ctx context.Context) error
	// NewQuery returns a query bound to this connection. It must be called
	// after Connect.
	NewQuery() Query
	Close() error
}

// Query runs one literal statement and fetches rows into bound columns.
type Query interface {
	// BindCol binds the 1-based result column col to dst.
	BindCol(col int, dst *int64) error
	SendQueryDirect(ctx context.Context, stmt string) error
	// Fetch scans the next row into the bound columns. It reports false when
	// no row is left.
	Fetch() (bool, error)
	Close() error
}

// Factory builds an unconnected Conn for one engine.
type Factory func(settings Settings) Conn

func lookupRequired(settings Settings, name string) (string, error) {
	value, ok := settings.Lookup(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingSetting, name)
	}
	return value, nil
}
