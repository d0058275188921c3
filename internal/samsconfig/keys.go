package samsconfig

// Attribute names with a meaning to the store. Any other key in the file is
// passed through as free-form configuration.
const (
	// KeyDBEngine selects the database backend ("MySQL" or "unixODBC").
	KeyDBEngine = "dbengine"
	// KeyProxyID is the integer id of this proxy's row in the proxy table.
	KeyProxyID = "proxyid"
	// KeySleepTime is filled from proxy.s_sleep.
	KeySleepTime = "sleeptime"
	// KeyDaemonStep is filled from proxy.s_parser_time.
	KeyDaemonStep = "daemonstep"
)
