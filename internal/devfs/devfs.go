package devfs

import (
	"errors"
	"os"
)

var (
	// ErrDeviceUnavailable is returned when a bus device cannot be opened:
	// the bus number is out of range or the device node is missing or
	// inaccessible.
	ErrDeviceUnavailable = errors.New("devfs: device unavailable")

	// ErrUnsupportedDevice is returned when the opened device does not
	// advertise plain I2C transfer capability (I2C_FUNC_I2C).
	ErrUnsupportedDevice = errors.New("devfs: device does not support I2C transfers")
)

// MaxBusNumber bounds the accepted bus numbers; /dev/i2c-N nodes above this
// do not occur on the supported boards.
const MaxBusNumber = 9

// Device is an open handle to an I2C bus character device. It must be
// closed when no longer in use. Concurrent Transfer calls on one Device
// need external synchronization.
type Device struct {
	f *os.File
}

// Close releases the underlying device node.
func (d *Device) Close() error {
	return d.f.Close()
}
