package app

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/vk/i2cseq/internal/bus"
	"github.com/vk/i2cseq/internal/compiler"
	"github.com/vk/i2cseq/internal/config"
	"github.com/vk/i2cseq/internal/ctxlog"
	"github.com/vk/i2cseq/internal/devfs"
	"github.com/vk/i2cseq/internal/sequence"
)

// Run executes every loaded transaction in file order. In dry-run mode the
// transactions are compiled and their segment plans printed without
// touching the bus.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.With(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Transactions) == 0 {
		a.logger.Warn("No transactions found, nothing to execute.")
		return nil
	}

	transport := a.transport
	if transport == nil && !a.cfg.DryRun {
		dev, err := devfs.Open(a.cfg.Bus)
		if err != nil {
			return fmt.Errorf("opening bus %d: %w", a.cfg.Bus, err)
		}
		defer dev.Close()
		a.logger.Info("Bus opened.", "bus", a.cfg.Bus)
		transport = dev
	}
	b := bus.New(transport, a.opts)

	for _, tx := range a.model.Transactions {
		tokens, recv := buildSequence(tx)

		if a.cfg.DryRun {
			plan, err := compiler.Compile(tokens, recv, a.opts)
			if err != nil {
				return fmt.Errorf("transaction %q: %w", tx.Name, err)
			}
			a.printPlan(tx.Name, plan)
			continue
		}

		if err := b.Send(ctx, tokens, recv); err != nil {
			return fmt.Errorf("transaction %q: %w", tx.Name, err)
		}
		a.logger.Info("Transaction complete.", "name", tx.Name, "tokens", len(tokens), "read_bytes", len(recv))
		if len(recv) > 0 {
			fmt.Fprintf(a.outW, "%s: %s\n", tx.Name, hex.EncodeToString(recv))
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// buildSequence turns a transaction into its token sequence and allocates
// the receive buffer its read ops need.
func buildSequence(tx *config.Transaction) ([]sequence.Token, []byte) {
	var b sequence.Builder
	for _, op := range tx.Ops {
		if op.Read {
			b.Read(op.Device, op.Count)
		} else {
			b.Write(op.Device, op.Data...)
		}
	}
	return b.Tokens(), make([]byte, b.ReadCount())
}

// printPlan writes a human-readable rendering of a compiled plan.
func (a *App) printPlan(name string, plan *compiler.Plan) {
	fmt.Fprintf(a.outW, "%s: %d segment(s)\n", name, len(plan.Segments))
	for i, seg := range plan.Segments {
		if seg.Read {
			fmt.Fprintf(a.outW, "  %d: read  addr=0x%02x len=%d\n", i+1, seg.Addr, len(seg.Buf))
			continue
		}
		fmt.Fprintf(a.outW, "  %d: write addr=0x%02x len=%d data=%s\n", i+1, seg.Addr, len(seg.Buf), hex.EncodeToString(seg.Buf))
	}
}
