package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_SingleWrite(t *testing.T) {
	t.Parallel()

	var b Builder
	b.Write(0x38, 0x80, 0x03)

	assert.Equal(t, []Token{0x70, 0x80, 0x03}, b.Tokens())
	assert.Zero(t, b.ReadCount())
}

func TestBuilder_WriteThenRead(t *testing.T) {
	t.Parallel()

	var b Builder
	b.Write(0x38, 0x8a).Read(0x38, 1)

	assert.Equal(t, []Token{0x70, 0x8a, Restart, 0x71, Read}, b.Tokens())
	assert.Equal(t, 1, b.ReadCount())
}

func TestBuilder_MultiDeviceChain(t *testing.T) {
	t.Parallel()

	var b Builder
	b.Write(0x11, 0x01).Read(0x22, 2).Write(0x33, 0x02, 0x03)

	assert.Equal(t, []Token{
		AddressToken(0x11, Write), 0x01,
		Restart, AddressToken(0x22, Recv), Read, Read,
		Restart, AddressToken(0x33, Write), 0x02, 0x03,
	}, b.Tokens())
	assert.Equal(t, 2, b.ReadCount())
}
