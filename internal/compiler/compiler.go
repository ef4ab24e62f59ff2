package compiler

import (
	"fmt"

	"github.com/vk/i2cseq/internal/sequence"
)

// DefaultMaxSegments is the Linux i2c-dev limit on messages per I2C_RDWR
// call (I2C_RDWR_IOCTL_MAX_MSGS). It is a transport constraint, not a
// property of the algorithm, so Options can override it.
const DefaultMaxSegments = 42

// Segment is one resolved bus transaction fragment: a single address phase,
// a single direction, and a contiguous run of bytes. For write segments Buf
// is a window into the plan's staging buffer holding the bytes to send; for
// read segments it is a window into the caller's receive buffer that the
// transport fills.
type Segment struct {
	Addr uint8
	Read bool
	Buf  []byte
}

// Options configures a compilation.
type Options struct {
	// MaxSegments caps how many segments the transport can execute in one
	// atomic transaction. Zero or negative means DefaultMaxSegments.
	MaxSegments int
}

// Plan is the result of compiling a sequence: the ordered segments to hand
// to a transport as one atomic unit. A plan references the receive buffer
// passed to Compile and is only valid for a single submission.
type Plan struct {
	Segments []Segment
}

// CountSegments returns the number of segments a sequence compiles into:
// one for the start of the sequence plus one per Restart after it. It does
// not validate the sequence; that is Compile's job.
func CountSegments(tokens []sequence.Token) int {
	if len(tokens) == 0 {
		return 0
	}
	n := 1
	for _, t := range tokens[1:] {
		if t == sequence.Restart {
			n++
		}
	}
	return n
}

// address reads a token that must be a plain address byte.
func address(t sequence.Token) (uint8, sequence.Direction, error) {
	if sequence.IsSentinel(t) {
		return 0, 0, fmt.Errorf("%w: expected an address byte, got sentinel 0x%03x", ErrInvalidSequence, uint16(t))
	}
	addr, dir := sequence.SplitAddress(t)
	return addr, dir, nil
}

// Compile walks the token sequence once and resolves every segment's
// address, direction, length, and buffer. Read segments are given
// consecutive windows into recv, in bus order. recv may be nil for
// sequences with no reads.
func Compile(tokens []sequence.Token, recv []byte, opts Options) (*Plan, error) {
	if len(tokens) < 2 {
		return nil, fmt.Errorf("%w: need an address byte and at least one operation, got %d tokens", ErrInvalidSequence, len(tokens))
	}
	maxSegments := opts.MaxSegments
	if maxSegments <= 0 {
		maxSegments = DefaultMaxSegments
	}
	count := CountSegments(tokens)
	if count > maxSegments {
		return nil, fmt.Errorf("%w: sequence compiles to %d segments, transport limit is %d", ErrTooManySegments, count, maxSegments)
	}

	addr, dir, err := address(tokens[0])
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, count)
	// Staged bytes for all write segments. The capacity is the token count:
	// an intentional upper bound (an exact count would need a second pass),
	// and it guarantees appends never reallocate, so the windows handed to
	// already-emitted segments stay valid.
	scratch := make([]byte, 0, len(tokens))
	segLen := 0
	base := 0
	recvOff := 0

	for i := 1; i < len(tokens); i++ {
		t := tokens[i]
		if t != sequence.Restart {
			// On a write the token's low byte is data to stage. On a read
			// the token can only be the Read placeholder, so only the
			// length advances.
			if dir == sequence.Write {
				scratch = append(scratch, byte(t))
			}
			segLen++
			if i != len(tokens)-1 {
				continue
			}
		}

		// Segment boundary: a Restart, or the end of the sequence.
		seg := Segment{Addr: addr, Read: dir == sequence.Recv}
		if seg.Read {
			if recvOff+segLen > len(recv) {
				return nil, fmt.Errorf("%w: sequence reads %d+ bytes, buffer holds %d", ErrShortReceiveBuffer, recvOff+segLen, len(recv))
			}
			seg.Buf = recv[recvOff : recvOff+segLen]
			recvOff += segLen
		} else {
			seg.Buf = scratch[base : base+segLen]
		}
		segments = append(segments, seg)

		if t == sequence.Restart {
			// A restart must introduce a complete segment: an address byte
			// followed by at least one operation token.
			if i+2 >= len(tokens) {
				return nil, fmt.Errorf("%w: restart at index %d leaves no room for an address and an operation", ErrInvalidSequence, i)
			}
			i++
			if addr, dir, err = address(tokens[i]); err != nil {
				return nil, err
			}
			segLen = 0
			base = len(scratch)
		}
	}

	// The counter and the compiler must agree; a mismatch means the pass
	// above mishandled a boundary.
	if len(segments) != count {
		return nil, fmt.Errorf("%w: emitted %d segments, counter predicted %d", ErrInvalidSequence, len(segments), count)
	}
	return &Plan{Segments: segments}, nil
}
