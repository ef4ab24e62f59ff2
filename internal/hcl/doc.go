// Package hcl loads .hcl sequence files and translates them into the
// format-agnostic config model. A sequence file declares transactions:
//
//	transaction "pn_query" {
//	  device = 56 # 0x38, 7-bit
//	  op "write" { data = [138] }
//	  op "read"  { count = 1 }
//	}
//
// Each op becomes one bus segment; ops after the first are chained with
// repeated starts. An op may override the transaction's device address with
// its own device attribute.
package hcl
