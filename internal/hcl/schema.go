package hcl

import "github.com/hashicorp/hcl/v2"

// fileSchema is the top-level structure of one sequence file.
type fileSchema struct {
	Transactions []*transactionSchema `hcl:"transaction,block"`
	Body         hcl.Body             `hcl:",remain"`
}

// transactionSchema is a `transaction` block: a default device address and
// an ordered list of op blocks.
type transactionSchema struct {
	Name   string         `hcl:"name,label"`
	Device hcl.Expression `hcl:"device"`
	Ops    []*opSchema    `hcl:"op,block"`
}

// opSchema is an `op` block. The label selects the kind ("write" or
// "read"); the body is decoded kind-specifically afterwards.
type opSchema struct {
	Kind string   `hcl:"kind,label"`
	Body hcl.Body `hcl:",remain"`
}

// writeSchema is the body of an op "write" block.
type writeSchema struct {
	Data   hcl.Expression `hcl:"data"`
	Device hcl.Expression `hcl:"device,optional"`
}

// readSchema is the body of an op "read" block.
type readSchema struct {
	Count  hcl.Expression `hcl:"count"`
	Device hcl.Expression `hcl:"device,optional"`
}
