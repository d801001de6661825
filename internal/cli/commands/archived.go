package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/duration"
)

type archivedCmd struct{}

func (archivedCmd) Name() string        { return "archived" }
func (archivedCmd) Description() string { return "Show picked up items, most recent first" }
func (archivedCmd) Usage() string       { return "archived" }

func (archivedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	items := st.ListArchived()
	if len(items) == 0 {
		fmt.Fprintln(Out, "Archive is empty")
		return nil
	}

	fmt.Fprintf(Out, "%-12s %-20s %-16s %-12s %s\n",
		"TAG", "OBJECT", "OWNER", "PICKED UP", "STORED FOR")
	for _, it := range items {
		picked := "-"
		stored := "-"
		if it.PickupDate != nil {
			picked = it.PickupDate.Format("2006-01-02")
			stored = duration.StorageDuration(it.DateAdded, *it.PickupDate).Display
		}
		fmt.Fprintf(Out, "%-12s %-20s %-16s %-12s %s\n",
			it.UniqueID, it.ObjectStored, it.OwnerName, picked, stored)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(items))
	return nil
}

func init() { RegisterCmd(archivedCmd{}) }
