// Package tsl2561 drives the TAOS TSL2561 luminosity sensor. Each channel
// read is a single write-restart-read transaction, so the two bytes of a
// 16-bit channel value come back from one atomic exchange.
package tsl2561

import (
	"context"
	"fmt"

	"github.com/vk/i2cseq/internal/sequence"
)

// The three addresses the ADDR-SEL pin selects between.
const (
	AddrLow   = 0x29
	AddrFloat = 0x39
	AddrHigh  = 0x49
)

const (
	commandBit = 0x80
	wordBit    = 0x20

	regControl   = 0x00
	regTiming    = 0x01
	regID        = 0x0a
	regChan0Low  = 0x0c
	regChan1Low  = 0x0e

	controlPowerOn  = 0x03
	controlPowerOff = 0x00
)

// Gain settings for the timing register.
const (
	Gain1x  = 0x00
	Gain16x = 0x10
)

// Integration time settings for the timing register.
const (
	Integration13ms  = 0x00 // 13.7ms nominal
	Integration101ms = 0x01
	Integration402ms = 0x02
)

// Sender submits one composite token sequence as an atomic bus
// transaction. bus.Bus satisfies it.
type Sender interface {
	Send(ctx context.Context, tokens []sequence.Token, recv []byte) error
}

// Device is a TSL2561 on a bus.
type Device struct {
	bus          Sender
	addr         uint8
	timing, gain byte
}

// New returns a Device at the given address with 402ms integration and 16x
// gain, the same defaults the sensor's reference code uses.
func New(bus Sender, addr uint8) *Device {
	return &Device{bus: bus, addr: addr, timing: Integration402ms, gain: Gain16x}
}

// On powers the sensor up and programs the timing register.
func (d *Device) On(ctx context.Context) error {
	var power sequence.Builder
	power.Write(d.addr, commandBit|regControl, controlPowerOn)
	if err := d.bus.Send(ctx, power.Tokens(), nil); err != nil {
		return fmt.Errorf("powering on: %w", err)
	}
	var timing sequence.Builder
	timing.Write(d.addr, commandBit|regTiming, d.timing|d.gain)
	if err := d.bus.Send(ctx, timing.Tokens(), nil); err != nil {
		return fmt.Errorf("setting timing: %w", err)
	}
	return nil
}

// Off powers the sensor down.
func (d *Device) Off(ctx context.Context) error {
	var b sequence.Builder
	b.Write(d.addr, commandBit|regControl, controlPowerOff)
	return d.bus.Send(ctx, b.Tokens(), nil)
}

// ID reads the part number / revision register.
func (d *Device) ID(ctx context.Context) (byte, error) {
	var b sequence.Builder
	b.Write(d.addr, commandBit|regID).Read(d.addr, 1)
	recv := make([]byte, b.ReadCount())
	if err := d.bus.Send(ctx, b.Tokens(), recv); err != nil {
		return 0, err
	}
	return recv[0], nil
}

// readWord reads a 16-bit little-endian channel value starting at reg.
func (d *Device) readWord(ctx context.Context, reg byte) (int, error) {
	var b sequence.Builder
	b.Write(d.addr, commandBit|wordBit|reg).Read(d.addr, 2)
	recv := make([]byte, b.ReadCount())
	if err := d.bus.Send(ctx, b.Tokens(), recv); err != nil {
		return 0, err
	}
	return int(recv[1])<<8 | int(recv[0]), nil
}

// Broadband reads channel 0, the combined visible + infrared value.
func (d *Device) Broadband(ctx context.Context) (int, error) {
	return d.readWord(ctx, regChan0Low)
}

// Infrared reads channel 1.
func (d *Device) Infrared(ctx context.Context) (int, error) {
	return d.readWord(ctx, regChan1Low)
}
