// Package compiler turns a flat token sequence into the ordered list of
// resolved bus segments that a multi-message I2C transport executes as one
// atomic transaction.
//
// Compilation is a single forward pass. Segment boundaries are implicit in
// the token stream (the start of the sequence and every Restart), so the
// pass has to infer them, stage written bytes into a scratch buffer sized
// pessimistically to the token count, and hand each read segment a window
// into the caller's receive buffer at the correct running offset. A cheap
// pre-scan (CountSegments) sizes the segment list before the real pass.
package compiler
