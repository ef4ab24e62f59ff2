//go:build linux

package devfs

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/vk/i2cseq/internal/compiler"
)

// Request codes and flags from <linux/i2c.h> and <linux/i2c-dev.h>.
const (
	i2cFuncs = 0x0705
	i2cRdwr  = 0x0707

	i2cFuncI2C = 0x00000001

	i2cFlagRead = 0x0001 // I2C_M_RD
)

// i2cMsg mirrors the kernel's struct i2c_msg.
type i2cMsg struct {
	addr  uint16
	flags uint16
	len   uint16
	buf   uintptr
}

// i2cRdwrData mirrors the kernel's struct i2c_rdwr_ioctl_data.
type i2cRdwrData struct {
	msgs  uintptr
	nmsgs uint32
}

func ioctl(fd uintptr, req uint, arg uintptr) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, uintptr(req), arg); errno != 0 {
		return errno
	}
	return nil
}

// Open opens bus number N as /dev/i2c-N and verifies that the device can
// perform plain I2C transfers, not just SMBus emulation.
func Open(bus int) (*Device, error) {
	if bus < 0 || bus > MaxBusNumber {
		return nil, fmt.Errorf("%w: bus number %d out of range 0..%d", ErrDeviceUnavailable, bus, MaxBusNumber)
	}
	f, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%d", bus), os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}

	var funcs uint64
	if err := ioctl(f.Fd(), i2cFuncs, uintptr(unsafe.Pointer(&funcs))); err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: querying functionality: %v", ErrUnsupportedDevice, err)
	}
	if funcs&i2cFuncI2C == 0 {
		f.Close()
		return nil, fmt.Errorf("%w: /dev/i2c-%d advertises no I2C_FUNC_I2C", ErrUnsupportedDevice, bus)
	}
	return &Device{f: f}, nil
}

// Transfer executes all segments as one atomic bus transaction: START
// before the first, repeated start between segments, STOP after the last.
// The kernel fills read segments' buffers in place. Failures come back as
// the transport's errno, unmodified.
func (d *Device) Transfer(ctx context.Context, segments []compiler.Segment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(segments) == 0 {
		return nil
	}

	msgs := make([]i2cMsg, len(segments))
	for i, seg := range segments {
		msgs[i].addr = uint16(seg.Addr)
		if seg.Read {
			msgs[i].flags = i2cFlagRead
		}
		msgs[i].len = uint16(len(seg.Buf))
		if len(seg.Buf) > 0 {
			msgs[i].buf = uintptr(unsafe.Pointer(&seg.Buf[0]))
		}
	}
	data := i2cRdwrData{
		msgs:  uintptr(unsafe.Pointer(&msgs[0])),
		nmsgs: uint32(len(msgs)),
	}
	err := ioctl(d.f.Fd(), i2cRdwr, uintptr(unsafe.Pointer(&data)))
	// The segment buffers are only reachable through uintptrs during the
	// ioctl; keep their owners live until it returns.
	runtime.KeepAlive(msgs)
	runtime.KeepAlive(segments)
	if err != nil {
		return fmt.Errorf("devfs: I2C_RDWR transfer of %d segments: %w", len(segments), err)
	}
	return nil
}
