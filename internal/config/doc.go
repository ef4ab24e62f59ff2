// Package config holds the unified, format-agnostic model of the user's
// sequence files: named transactions made of addressed write and read
// operations. Front ends (the HCL loader) translate into this model; the
// rest of the application never sees parser types.
package config
