package dbconn

import (
	"context"
	"database/sql"
	"fmt"
)

// DSNFunc builds the data source name for a connection attempt.
type DSNFunc func() (string, error)

// SQLConn is a Conn backed directly by a database/sql driver.
type SQLConn struct {
	driver string
	dsn    DSNFunc
	db     *sql.DB
}

// NewSQLConn returns an unconnected SQLConn for the named database/sql driver.
func NewSQLConn(driver string, dsn DSNFunc) *SQLConn {
	return &SQLConn{driver: driver, dsn: dsn}
}

func (c *SQLConn) Connect(ctx context.Context) error {
	dsn, err := c.dsn()
	if err != nil {
		return err
	}

	db, err := sql.Open(c.driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s database: %w", c.driver, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to reach %s database: %w", c.driver, err)
	}

	c.db = db
	return nil
}

func (c *SQLConn) NewQuery() Query {
	if c.db == nil {
		return newRowsQuery(nil)
	}
	db := c.db
	return newRowsQuery(func(ctx context.Context, stmt string) (*sql.Rows, error) {
		return db.QueryContext(ctx, stmt)
	})
}

func (c *SQLConn) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	if err != nil {
		return fmt.Errorf("failed to close %s connection: %w", c.driver, err)
	}
	return nil
}
