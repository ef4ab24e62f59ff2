// Package devfs opens Linux i2c-dev character devices and submits compiled
// segment plans to them as single atomic multi-message transfers via the
// I2C_RDWR ioctl. You need the "i2c-dev" kernel module loaded for the
// /dev/i2c-N nodes to exist.
package devfs
