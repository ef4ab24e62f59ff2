// Package app wires the application together: it configures logging, loads
// sequence files through a config.Loader, builds each transaction's token
// sequence, and executes the transactions in order against a Linux I2C bus
// (or just prints the compiled segment plans in dry-run mode).
package app
