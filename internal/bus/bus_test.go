package bus_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/i2cseq/internal/bus"
	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/sequence"
	"github.com/vk/i2cseq/internal/testutil"
)

func TestSend_SubmitsCompiledPlan(t *testing.T) {
	t.Parallel()

	transport := &testutil.FakeTransport{}
	transport.ScriptReads(0x5c)
	b := bus.New(transport, compiler.Options{})

	var sb sequence.Builder
	sb.Write(0x38, 0x8a).Read(0x38, 1)
	recv := make([]byte, sb.ReadCount())

	require.NoError(t, b.Send(context.Background(), sb.Tokens(), recv))

	calls := transport.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)
	assert.False(t, calls[0][0].Read)
	assert.Equal(t, []byte{0x8a}, calls[0][0].Buf)
	assert.True(t, calls[0][1].Read)
	assert.Equal(t, []byte{0x5c}, recv, "scripted read byte must land in the caller's buffer")
}

func TestSend_CompileFailureSkipsTransport(t *testing.T) {
	t.Parallel()

	transport := &testutil.FakeTransport{}
	b := bus.New(transport, compiler.Options{})

	err := b.Send(context.Background(), []sequence.Token{sequence.AddressToken(0x38, sequence.Write)}, nil)
	require.ErrorIs(t, err, compiler.ErrInvalidSequence)
	assert.Empty(t, transport.Calls(), "an invalid sequence must never reach the transport")
}

func TestSend_SegmentLimitCheckedBeforeTransport(t *testing.T) {
	t.Parallel()

	transport := &testutil.FakeTransport{}
	b := bus.New(transport, compiler.Options{MaxSegments: 1})

	var sb sequence.Builder
	sb.Write(0x38, 0x01).Write(0x38, 0x02)

	err := b.Send(context.Background(), sb.Tokens(), nil)
	require.ErrorIs(t, err, compiler.ErrTooManySegments)
	assert.Empty(t, transport.Calls())
}

func TestSend_TransportErrorSurfacesVerbatim(t *testing.T) {
	t.Parallel()

	transportErr := errors.New("EREMOTEIO")
	transport := &testutil.FakeTransport{}
	transport.FailWith(transportErr)
	b := bus.New(transport, compiler.Options{})

	var sb sequence.Builder
	sb.Write(0x38, 0x01)

	err := b.Send(context.Background(), sb.Tokens(), nil)
	require.ErrorIs(t, err, transportErr)
}
