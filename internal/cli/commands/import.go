package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/reconcile"
)

type importCmd struct{}

func (importCmd) Name() string        { return "import" }
func (importCmd) Description() string { return "Import items from an Excel file" }
func (importCmd) Usage() string       { return "import <file.xlsx>" }

func (importCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	drafts, err := reconcile.ParseFile(filepath.Base(args[0]), file)
	if err != nil {
		return err
	}

	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	sum, err := st.ImportBatch(ctx, drafts)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Imported: %d, skipped: %d\n", sum.Imported, sum.Skipped)
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(importCmd{}) }
