package devfs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpen_RejectsOutOfRangeBusNumbers(t *testing.T) {
	t.Parallel()

	for _, bus := range []int{-1, MaxBusNumber + 1, 99} {
		dev, err := Open(bus)
		require.ErrorIs(t, err, ErrDeviceUnavailable)
		require.Nil(t, dev)
	}
}

func TestOpen_MissingDeviceNode(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat("/dev/i2c-9"); err == nil {
		t.Skip("bus 9 exists on this machine")
	}
	dev, err := Open(9)
	require.ErrorIs(t, err, ErrDeviceUnavailable)
	require.Nil(t, dev)
}
