// Package dbconn provides the database collaborator used to read per-proxy
// settings. Each supported engine implements the Conn and Query capability
// set; a Registry maps configured engine names to the backends compiled into
// the binary. Backend availability is selected with build tags: MySQL is on by
// default (disable with -tags nomysql) and unixODBC requires -tags odbc.
package dbconn
