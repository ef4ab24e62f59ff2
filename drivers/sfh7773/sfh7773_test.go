package sfh7773_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/i2cseq/drivers/sfh7773"
	"github.com/vk/i2cseq/internal/bus"
	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/testutil"
)

func TestInit(t *testing.T) {
	t.Parallel()

	transport := &testutil.FakeTransport{}
	dev := sfh7773.New(bus.New(transport, compiler.Options{}))

	require.NoError(t, dev.Init(context.Background()))

	calls := transport.Calls()
	require.Len(t, calls, 2, "ALS and PS control are two separate transactions")
	require.Len(t, calls[0], 1)
	assert.Equal(t, uint8(0x38), calls[0][0].Addr)
	assert.Equal(t, []byte{0x80, 0x03}, calls[0][0].Buf)
	require.Len(t, calls[1], 1)
	assert.Equal(t, []byte{0x81, 0x03}, calls[1][0].Buf)
}

func TestPartID(t *testing.T) {
	t.Parallel()

	transport := &testutil.FakeTransport{}
	transport.ScriptReads(0x5c)
	dev := sfh7773.New(bus.New(transport, compiler.Options{}))

	id, err := dev.PartID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(0x5c), id)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2, "register select and read must share one atomic transfer")
	assert.False(t, calls[0][0].Read)
	assert.Equal(t, []byte{0x8a}, calls[0][0].Buf)
	assert.True(t, calls[0][1].Read)
}
