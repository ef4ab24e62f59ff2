package hcl

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/i2cseq/internal/config"
	"github.com/vk/i2cseq/internal/ctxlog"
	"github.com/vk/i2cseq/internal/fsutil"
)

// Loader implements config.Loader for HCL sequence files.
type Loader struct{}

// NewLoader returns a ready-to-use HCL loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the given .hcl file, or every .hcl file under the given
// directory in lexical order, and merges the results into one model.
// Transaction names must be unique across all loaded files.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading sequence path: %w", err)
	}
	files := []string{path}
	if info.IsDir() {
		if files, err = fsutil.FindFilesByExtension(path, ".hcl"); err != nil {
			return nil, fmt.Errorf("scanning %s for sequence files: %w", path, err)
		}
		sort.Strings(files)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl sequence files found under %s", path)
	}

	parser := hclparse.NewParser()
	model := &config.Model{}
	definedIn := make(map[string]string)

	for _, fp := range files {
		hclFile, diags := parser.ParseHCLFile(fp)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse %s: %w", fp, diags)
		}
		var fs fileSchema
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &fs); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode %s: %w", fp, diags)
		}
		for _, ts := range fs.Transactions {
			tx, err := translateTransaction(ts)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", fp, err)
			}
			if first, dup := definedIn[tx.Name]; dup {
				return nil, fmt.Errorf("%s: duplicate transaction %q, first defined in %s", fp, tx.Name, first)
			}
			definedIn[tx.Name] = fp
			model.Transactions = append(model.Transactions, tx)
		}
		logger.Debug("Sequence file loaded.", "path", fp, "transactions", len(fs.Transactions))
	}

	return model, nil
}
