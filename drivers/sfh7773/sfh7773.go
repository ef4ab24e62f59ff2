// Package sfh7773 drives the OSRAM SFH7773 ambient light / proximity
// sensor over composite I2C transactions.
package sfh7773

import (
	"context"

	"github.com/vk/i2cseq/internal/sequence"
)

// DefaultAddr is the sensor's fixed 7-bit address.
const DefaultAddr = 0x38

// Registers and modes.
const (
	regALSControl = 0x80
	regPSControl  = 0x81
	regPartID     = 0x8a

	modeFreeRunning = 0x03
)

// Sender submits one composite token sequence as an atomic bus
// transaction. bus.Bus satisfies it.
type Sender interface {
	Send(ctx context.Context, tokens []sequence.Token, recv []byte) error
}

// Device is an SFH7773 on a bus.
type Device struct {
	bus  Sender
	addr uint8
}

// New returns a Device at the sensor's default address.
func New(bus Sender) *Device {
	return &Device{bus: bus, addr: DefaultAddr}
}

// Init puts both the ambient light and proximity units into free-running
// measurement mode, one register write each.
func (d *Device) Init(ctx context.Context) error {
	var als sequence.Builder
	als.Write(d.addr, regALSControl, modeFreeRunning)
	if err := d.bus.Send(ctx, als.Tokens(), nil); err != nil {
		return err
	}
	var ps sequence.Builder
	ps.Write(d.addr, regPSControl, modeFreeRunning)
	return d.bus.Send(ctx, ps.Tokens(), nil)
}

// PartID queries the part number register with a write-restart-read
// exchange and returns the raw register value.
func (d *Device) PartID(ctx context.Context) (byte, error) {
	var b sequence.Builder
	b.Write(d.addr, regPartID).Read(d.addr, 1)
	recv := make([]byte, b.ReadCount())
	if err := d.bus.Send(ctx, b.Tokens(), recv); err != nil {
		return 0, err
	}
	return recv[0], nil
}
