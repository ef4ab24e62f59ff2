package bus

import (
	"context"
	"fmt"

	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/sequence"
)

// Transport executes a compiled segment plan as a single atomic bus
// transaction, preserving segment order and filling read segments' buffers
// in place. devfs.Device is the real implementation.
type Transport interface {
	Transfer(ctx context.Context, segments []compiler.Segment) error
}

// Bus compiles and submits token sequences over a Transport. Every Send
// allocates its own compilation state, so concurrent Sends on distinct
// sequences are safe as long as the transport itself tolerates them.
type Bus struct {
	transport Transport
	opts      compiler.Options
}

// New returns a Bus submitting through the given transport.
func New(transport Transport, opts compiler.Options) *Bus {
	return &Bus{transport: transport, opts: opts}
}

// Send compiles the sequence and executes it as one atomic transaction.
// recv receives the bytes of all read segments in bus order; it may be nil
// if the sequence contains no reads. Transport failures are returned
// unwrapped beyond context.
func (b *Bus) Send(ctx context.Context, tokens []sequence.Token, recv []byte) error {
	plan, err := compiler.Compile(tokens, recv, b.opts)
	if err != nil {
		return fmt.Errorf("compiling sequence: %w", err)
	}
	return b.transport.Transfer(ctx, plan.Segments)
}
