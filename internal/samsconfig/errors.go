package samsconfig

import "errors"

var (
	// ErrIO is returned when the configuration file cannot be read.
	ErrIO = errors.New("config file error")
	// ErrConfig is returned for missing, unsupported or unparsable required settings.
	ErrConfig = errors.New("configuration error")
	// ErrConnection is returned when the database connection cannot be opened.
	ErrConnection = errors.New("database connection error")
	// ErrQuery is returned when binding, sending or fetching the proxy query fails.
	ErrQuery = errors.New("database query error")
	// ErrNotFound is returned when the proxy table has no row for this proxy.
	ErrNotFound = errors.New("proxy settings not found")

	// ErrAttrNotFound is returned by getters for absent attributes.
	ErrAttrNotFound = errors.New("attribute not found")
	// ErrAttrNotParsed is returned by typed getters when the value does not parse.
	ErrAttrNotParsed = errors.New("attribute not parsed")
)
