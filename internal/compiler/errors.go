package compiler

import "errors"

var (
	// ErrInvalidSequence is returned for sequences that violate the token
	// stream contract: fewer than two tokens, a sentinel where an address
	// byte is required, or a Restart with no complete segment after it.
	ErrInvalidSequence = errors.New("compiler: invalid sequence")

	// ErrTooManySegments is returned when a sequence would compile into
	// more segments than the transport can execute atomically.
	ErrTooManySegments = errors.New("compiler: too many segments")

	// ErrShortReceiveBuffer is returned when the receive buffer cannot hold
	// all the bytes the sequence's read segments produce.
	ErrShortReceiveBuffer = errors.New("compiler: receive buffer too small")
)
