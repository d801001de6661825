package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
)

type restoreCmd struct{}

func (restoreCmd) Name() string        { return "restore" }
func (restoreCmd) Description() string { return "Return an archived item to active storage" }
func (restoreCmd) Usage() string       { return "restore <tag|id>" }

func (restoreCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
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

	restored, err := st.Restore(ctx, it.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Restored %s (%s), expires %s\n",
		restored.UniqueID, restored.ObjectStored, restored.ExpiryDate.Format("2006-01-02 15:04"))
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(restoreCmd{}) }
