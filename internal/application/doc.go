// Package application provides application initialization and dependency wiring.
// It builds the database registry and the configuration store from the
// bootstrap settings and performs the explicit startup load, keeping the main
// package focused on CLI parsing and output.
package application
