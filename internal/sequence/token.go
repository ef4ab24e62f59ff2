package sequence

// Token is one element of an I2C operation sequence. Tokens are 16 bits wide
// rather than 8 so that the Read and Restart sentinels can be signalled
// out-of-band while plain 8-bit data passes through unchanged.
type Token uint16

const (
	// Restart marks a segment boundary: the bus issues a repeated start and
	// the next token is the address byte of a new segment.
	Restart Token = 1 << 8

	// Read is the placeholder for one byte to be read from the device.
	Read Token = 2 << 8
)

// Direction of a segment, carried by bit 0 of its address byte.
type Direction uint8

const (
	Write Direction = 0
	Recv  Direction = 1
)

// AddressToken encodes a 7-bit device address and a direction into an
// address byte token: the address shifted left by one, OR'd with the
// direction bit.
func AddressToken(addr uint8, dir Direction) Token {
	return Token(addr)<<1 | Token(dir&1)
}

// SplitAddress decodes an address byte token into its 7-bit device address
// and direction.
func SplitAddress(t Token) (addr uint8, dir Direction) {
	return uint8(t>>1) & 0x7f, Direction(t & 1)
}

// IsSentinel reports whether t is one of the out-of-band markers rather
// than a plain address or data byte.
func IsSentinel(t Token) bool {
	return t > 0xff
}
