package dbconn

import (
	"context"
	"database/sql"
	"fmt"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DialectorFunc builds the gorm dialector for a connection attempt.
type DialectorFunc func() (gorm.Dialector, error)

// GormConn is a Conn backed by gorm. Statements go through gorm's raw SQL
// path so any gorm dialector can serve as an engine.
type GormConn struct {
	dialector DialectorFunc
	db        *gorm.DB
	sqlDB     *sql.DB
}

// NewGormConn returns an unconnected GormConn.
func NewGormConn(dialector DialectorFunc) *GormConn {
	return &GormConn{dialector: dialector}
}

func (c *GormConn) Connect(ctx context.Context) error {
	dialector, err := c.dialector()
	if err != nil {
		return err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: gormlogger.Discard})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get raw DB connection: %w", err)
	}
	// one statement per load
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("failed to reach database: %w", err)
	}

	c.db = db
	c.sqlDB = sqlDB
	return nil
}

func (c *GormConn) NewQuery() Query {
	if c.db == nil {
		return newRowsQuery(nil)
	}
	db := c.db
	return newRowsQuery(func(ctx context.Context, stmt string) (*sql.Rows, error) {
		return db.WithContext(ctx).Raw(stmt).Rows()
	})
}

func (c *GormConn) Close() error {
	if c.sqlDB == nil {
		return nil
	}
	err := c.sqlDB.Close()
	c.db = nil
	c.sqlDB = nil
	if err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}
