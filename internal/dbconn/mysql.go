//go:build !nomysql

package dbconn

import (
	"strings"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

const defaultMySQLServer = "localhost"

func init() {
	builtin[EngineMySQL] = NewMySQLConn
}

// NewMySQLConn returns a gorm-backed MySQL connection configured from settings.
func NewMySQLConn(settings Settings) Conn {
	return NewGormConn(func() (gorm.Dialector, error) {
		dsn, err := MySQLDSN(settings)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	})
}

// MySQLDSN builds a go-sql-driver DSN from the connection settings. A server
// starting with "/" is treated as a unix socket path.
func MySQLDSN(settings Settings) (string, error) {
	name, err := lookupRequired(settings, KeyDBName)
	if err != nil {
		return "", err
	}

	cfg := mysqldriver.NewConfig()
	cfg.DBName = name
	cfg.User, _ = settings.Lookup(KeyDBUser)
	cfg.Passwd, _ = settings.Lookup(KeyDBPassword)

	server, _ := settings.Lookup(KeyDBServer)
	if server == "" {
		server = defaultMySQLServer
	}
	if strings.HasPrefix(server, "/") {
		cfg.Net = "unix"
	} else {
		cfg.Net = "tcp"
	}
	cfg.Addr = server

	return cfg.FormatDSN(), nil
}
