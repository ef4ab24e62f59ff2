package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressToken(t *testing.T) {
	t.Parallel()

	// 0x38 write -> 0x70, 0x38 read -> 0x71: the lsquaredc demo values.
	assert.Equal(t, Token(0x70), AddressToken(0x38, Write))
	assert.Equal(t, Token(0x71), AddressToken(0x38, Recv))
}

func TestSplitAddress(t *testing.T) {
	t.Parallel()

	for a := uint8(0); a < 0x80; a++ {
		for _, dir := range []Direction{Write, Recv} {
			addr, gotDir := SplitAddress(AddressToken(a, dir))
			assert.Equal(t, a, addr)
			assert.Equal(t, dir, gotDir)
		}
	}
}

func TestIsSentinel(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSentinel(Restart))
	assert.True(t, IsSentinel(Read))
	assert.False(t, IsSentinel(Token(0x00)))
	assert.False(t, IsSentinel(Token(0xff)))
}
