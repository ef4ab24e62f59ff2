//go:build !linux

package devfs

import (
	"context"
	"fmt"
	"runtime"

	"github.com/vk/i2cseq/internal/compiler"
)

// Open fails on platforms without the i2c-dev interface.
func Open(bus int) (*Device, error) {
	return nil, fmt.Errorf("%w: i2c-dev is not available on %s", ErrDeviceUnavailable, runtime.GOOS)
}

// Transfer is unreachable off Linux because Open never succeeds.
func (d *Device) Transfer(ctx context.Context, segments []compiler.Segment) error {
	return fmt.Errorf("%w: i2c-dev is not available on %s", ErrDeviceUnavailable, runtime.GOOS)
}
