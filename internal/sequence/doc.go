// Package sequence defines the flat token representation of a composite I2C
// exchange: address bytes, literal data bytes, and the out-of-band Read and
// Restart sentinels. It also provides a Builder for assembling token
// sequences from higher-level write/read operations.
package sequence
