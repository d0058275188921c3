// Package samsconfig holds the proxy configuration store. Attributes are read
// from a "key = value" text file, completed with the per-proxy timing settings
// stored in the database, and served through typed getters and setters.
package samsconfig
