// Package bus is the public entry point for issuing composite I2C
// exchanges: it compiles a token sequence into a segment plan and submits
// the plan to a transport as one atomic transaction.
package bus
