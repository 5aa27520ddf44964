// Package application provides application initialization and dependency wiring.
// It builds the run service, router and HTTP server from an explicitly
// loaded configuration, keeping the main package focused on CLI parsing
// and process lifecycle.
package application
