package sequence

// Builder assembles a token sequence from addressed write and read
// operations. Every operation after the first is preceded by a Restart, so
// the whole sequence executes as one atomic exchange with repeated starts
// between segments.
//
// The zero value is ready to use.
type Builder struct {
	tokens    []Token
	readCount int
}

func (b *Builder) begin(addr uint8, dir Direction) {
	if len(b.tokens) > 0 {
		b.tokens = append(b.tokens, Restart)
	}
	b.tokens = append(b.tokens, AddressToken(addr, dir))
}

// Write appends a write operation to the given device address.
func (b *Builder) Write(addr uint8, data ...byte) *Builder {
	b.begin(addr, Write)
	for _, d := range data {
		b.tokens = append(b.tokens, Token(d))
	}
	return b
}

// Read appends a read operation of count bytes from the given device
// address.
func (b *Builder) Read(addr uint8, count int) *Builder {
	b.begin(addr, Recv)
	for i := 0; i < count; i++ {
		b.tokens = append(b.tokens, Read)
	}
	b.readCount += count
	return b
}

// Tokens returns the assembled sequence. The returned slice is owned by the
// builder; callers must not append to it.
func (b *Builder) Tokens() []Token {
	return b.tokens
}

// ReadCount returns the total number of Read placeholders in the sequence,
// which is the number of bytes a receive buffer must hold.
func (b *Builder) ReadCount() int {
	return b.readCount
}
