package app

import (
	"errors"
	"fmt"
)

// Config holds everything an App instance needs to run.
type Config struct {
	SeqPath string // .hcl file or directory of .hcl files
	Bus     int    // Linux bus number, /dev/i2c-<Bus>

	MaxSegments int  // atomic-transfer segment cap; 0 means the transport default
	DryRun      bool // compile and print plans without opening the bus

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SeqPath == "" {
		return nil, errors.New("SeqPath is a required configuration field and cannot be empty")
	}
	if cfg.Bus < 0 {
		return nil, fmt.Errorf("bus number cannot be negative, got %d", cfg.Bus)
	}
	if cfg.MaxSegments < 0 {
		return nil, fmt.Errorf("max-segments cannot be negative, got %d", cfg.MaxSegments)
	}
	return &cfg, nil
}
