package dbconn

import "errors"

var (
	// ErrUnsupportedEngine is returned for engine names no backend exists for.
	ErrUnsupportedEngine = errors.New("unsupported DB engine")
	// ErrEngineNotEnabled is returned for known engines that were not compiled in.
	ErrEngineNotEnabled = errors.New("engine is not enabled")
	// ErrNotConnected is returned when a query is sent before Connect succeeded.
	ErrNotConnected = errors.New("connection is not open")
	// ErrInvalidColumn is returned for bad column bindings.
	ErrInvalidColumn = errors.New("invalid column binding")
	// ErrMissingSetting is returned when a connection setting is absent.
	ErrMissingSetting = errors.New("missing connection setting")
)
