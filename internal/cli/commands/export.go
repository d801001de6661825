package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/reconcile"
)

type exportCmd struct{}

func (exportCmd) Name() string        { return "export" }
func (exportCmd) Description() string { return "Export active inventory to an Excel file" }
func (exportCmd) Usage() string       { return "export <file.xlsx>" }

func (exportCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	items := st.ListActive()

	f, err := reconcile.ExportActive(items, timeNow())
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(args[0]); err != nil {
		return fmt.Errorf("save %s: %w", args[0], err)
	}
	fmt.Fprintf(Out, "Exported %d items to %s\n", len(items), args[0])
	return nil
}

func init() { RegisterCmd(exportCmd{}) }

type exportArchivedCmd struct{}

func (exportArchivedCmd) Name() string        { return "export-archived" }
func (exportArchivedCmd) Description() string { return "Export archived items to an Excel file" }
func (exportArchivedCmd) Usage() string       { return "export-archived <file.xlsx>" }

func (exportArchivedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	items := st.ListArchived()

	f, err := reconcile.ExportArchived(items)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(args[0]); err != nil {
		return fmt.Errorf("save %s: %w", args[0], err)
	}
	fmt.Fprintf(Out, "Exported %d archived items to %s\n", len(items), args[0])
	return nil
}

func init() { RegisterCmd(exportArchivedCmd{}) }
