package tsl2561_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/i2cseq/drivers/tsl2561"
	"github.com/vk/i2cseq/internal/bus"
	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/testutil"
)

func newDevice(t *testing.T) (*tsl2561.Device, *testutil.FakeTransport) {
	t.Helper()
	transport := &testutil.FakeTransport{}
	return tsl2561.New(bus.New(transport, compiler.Options{}), tsl2561.AddrFloat), transport
}

func TestOn(t *testing.T) {
	t.Parallel()

	dev, transport := newDevice(t)
	require.NoError(t, dev.On(context.Background()))

	calls := transport.Calls()
	require.Len(t, calls, 2)
	// Power up: CONTROL <- 0x03 with the command bit set.
	assert.Equal(t, uint8(0x39), calls[0][0].Addr)
	assert.Equal(t, []byte{0x80, 0x03}, calls[0][0].Buf)
	// Timing: 402ms integration | 16x gain.
	assert.Equal(t, []byte{0x81, 0x12}, calls[1][0].Buf)
}

func TestOff(t *testing.T) {
	t.Parallel()

	dev, transport := newDevice(t)
	require.NoError(t, dev.Off(context.Background()))

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []byte{0x80, 0x00}, calls[0][0].Buf)
}

func TestBroadband(t *testing.T) {
	t.Parallel()

	dev, transport := newDevice(t)
	transport.ScriptReads(0x34, 0x12) // little-endian 0x1234

	value, err := dev.Broadband(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0x1234, value)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	require.Len(t, calls[0], 2)
	// Word read of channel 0: command | word | 0x0c.
	assert.Equal(t, []byte{0xac}, calls[0][0].Buf)
	assert.True(t, calls[0][1].Read)
	assert.Len(t, calls[0][1].Buf, 2)
}

func TestInfrared(t *testing.T) {
	t.Parallel()

	dev, transport := newDevice(t)
	transport.ScriptReads(0x01, 0x00)

	value, err := dev.Infrared(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, value)

	calls := transport.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, []byte{0xae}, calls[0][0].Buf)
}

func TestID(t *testing.T) {
	t.Parallel()

	dev, transport := newDevice(t)
	transport.ScriptReads(0x50)

	id, err := dev.ID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, byte(0x50), id)
	assert.Equal(t, []byte{0x8a}, transport.Calls()[0][0].Buf)
}
