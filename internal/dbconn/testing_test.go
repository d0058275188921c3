package dbconn

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type proxyRow struct {
	ProxyID    int64 `gorm:"column:s_proxy_id;primaryKey;autoIncrement:false"`
	Sleep      int64 `gorm:"column:s_sleep"`
	ParserTime int64 `gorm:"column:s_parser_time"`
}

func (proxyRow) TableName() string { return "proxy" }

type mapSettings map[string]string

func (m mapSettings) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

// setupProxyDB creates a file-backed SQLite database holding the proxy table
// and returns its path.
func setupProxyDB(t *testing.T, rows ...proxyRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sams.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&proxyRow{}))
	for _, row := range rows {
		require.NoError(t, db.Create(&row).Error)
	}
	return path
}

func sqliteDialector(path string) DialectorFunc {
	return func() (gorm.Dialector, error) {
		return sqlite.Open(path), nil
	}
}
