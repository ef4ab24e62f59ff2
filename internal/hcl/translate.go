package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/i2cseq/internal/config"
)

// translateTransaction converts one decoded transaction block into the
// agnostic model, evaluating and validating every attribute expression.
func translateTransaction(ts *transactionSchema) (*config.Transaction, error) {
	if len(ts.Ops) == 0 {
		return nil, fmt.Errorf("transaction %q declares no ops", ts.Name)
	}
	device, err := evalDevice(ts.Device)
	if err != nil {
		return nil, fmt.Errorf("transaction %q: %w", ts.Name, err)
	}

	tx := &config.Transaction{Name: ts.Name}
	for i, op := range ts.Ops {
		translated, err := translateOp(op, device)
		if err != nil {
			return nil, fmt.Errorf("transaction %q, op %d: %w", ts.Name, i+1, err)
		}
		tx.Ops = append(tx.Ops, translated)
	}
	return tx, nil
}

func translateOp(op *opSchema, device uint8) (*config.Op, error) {
	switch op.Kind {
	case "write":
		var body writeSchema
		if diags := gohcl.DecodeBody(op.Body, nil, &body); diags.HasErrors() {
			return nil, fmt.Errorf("decoding write op: %w", diags)
		}
		if body.Device != nil {
			var err error
			if device, err = evalDevice(body.Device); err != nil {
				return nil, err
			}
		}
		data, err := evalData(body.Data)
		if err != nil {
			return nil, err
		}
		return &config.Op{Device: device, Data: data}, nil

	case "read":
		var body readSchema
		if diags := gohcl.DecodeBody(op.Body, nil, &body); diags.HasErrors() {
			return nil, fmt.Errorf("decoding read op: %w", diags)
		}
		if body.Device != nil {
			var err error
			if device, err = evalDevice(body.Device); err != nil {
				return nil, err
			}
		}
		count, err := evalInt(body.Count, "count")
		if err != nil {
			return nil, err
		}
		if count < 1 {
			return nil, fmt.Errorf("count must be at least 1, got %d", count)
		}
		return &config.Op{Device: device, Read: true, Count: int(count)}, nil

	default:
		return nil, fmt.Errorf("unknown op kind %q, want \"write\" or \"read\"", op.Kind)
	}
}

func evalInt(expr hcl.Expression, what string) (int64, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return 0, fmt.Errorf("evaluating %s: %w", what, diags)
	}
	var n int64
	if err := gocty.FromCtyValue(val, &n); err != nil {
		return 0, fmt.Errorf("%s is not an integer: %w", what, err)
	}
	return n, nil
}

func evalDevice(expr hcl.Expression) (uint8, error) {
	n, err := evalInt(expr, "device")
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 0x7f {
		return 0, fmt.Errorf("device address %d outside the 7-bit range 0..127", n)
	}
	return uint8(n), nil
}

func evalData(expr hcl.Expression) ([]byte, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("evaluating data: %w", diags)
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("data must be a list of bytes")
	}
	var out []byte
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		var n int64
		if err := gocty.FromCtyValue(elem, &n); err != nil {
			return nil, fmt.Errorf("data element %d is not an integer: %w", len(out), err)
		}
		if n < 0 || n > 0xff {
			return nil, fmt.Errorf("data element %d (%d) outside the byte range 0..255", len(out), n)
		}
		out = append(out, byte(n))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("write op needs at least one data byte")
	}
	return out, nil
}
