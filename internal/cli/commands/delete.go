package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
)

type deleteCmd struct{}

func (deleteCmd) Name() string        { return "delete" }
func (deleteCmd) Description() string { return "Permanently delete an archived item" }
func (deleteCmd) Usage() string       { return "delete <tag|id>" }

func (deleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	it := findItem(st.ListArchived(), args[0])
	if it == nil {
		return fmt.Errorf("no archived item matching %q", args[0])
	}

	if !cfg.AssumeYes {
		prompt := fmt.Sprintf("Permanently delete %s (%s)? This cannot be undone.",
			it.UniqueID, it.ObjectStored)
		if !confirm(prompt) {
			fmt.Fprintln(Out, "Cancelled")
			return nil
		}
	}

	if err := st.DeletePermanently(ctx, it.ID); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deleted %s permanently\n", it.UniqueID)
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(deleteCmd{}) }
