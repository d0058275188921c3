// Package config loads the bootstrap settings of the samsconf tools from
// multiple sources (YAML files, environment variables, CLI flags) with
// precedence: CLI flags > YAML config > Environment variables > Defaults.
// The proxy attributes themselves live in package samsconfig.
package config
