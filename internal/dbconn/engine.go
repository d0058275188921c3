package dbconn

// Engine identifies a database backend technology.
type Engine int

const (
	// EngineNone is the value before an engine has been selected.
	EngineNone Engine = iota
	EngineMySQL
	EngineODBC
)

// Engine names as written in the configuration file.
const (
	MySQLName = "MySQL"
	ODBCName  = "unixODBC"
)

func (e Engine) String() string {
	switch e {
	case EngineMySQL:
		return MySQLName
	case EngineODBC:
		return ODBCName
	default:
		return "none"
	}
}
