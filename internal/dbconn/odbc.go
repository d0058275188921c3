//go:build odbc

package dbconn

import (
	"strings"

	_ "github.com/alexbrainman/odbc"
)

func init() {
	builtin[EngineODBC] = NewODBCConn
}

// NewODBCConn returns a unixODBC connection configured from settings.
func NewODBCConn(settings Settings) Conn {
	return NewSQLConn("odbc", func() (string, error) {
		return ODBCDSN(settings)
	})
}

// ODBCDSN builds an ODBC connection string from the configured data source.
func ODBCDSN(settings Settings) (string, error) {
	source, err := lookupRequired(settings, KeyODBCSource)
	if err != nil {
		return "", err
	}

	parts := []string{"DSN=" + source}
	if user, ok := settings.Lookup(KeyDBUser); ok && user != "" {
		parts = append(parts, "UID="+user)
	}
	if password, ok := settings.Lookup(KeyDBPassword); ok && password != "" {
		parts = append(parts, "PWD="+password)
	}
	return strings.Join(parts, ";"), nil
}
