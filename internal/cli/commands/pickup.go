package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/duration"
)

type pickupCmd struct{}

func (pickupCmd) Name() string        { return "pickup" }
func (pickupCmd) Description() string { return "Mark an item as picked up and archive it" }
func (pickupCmd) Usage() string       { return "pickup <tag|id>" }

func (pickupCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	it := findItem(st.ListActive(), args[0])
	if it == nil {
		return fmt.Errorf("no active item matching %q", args[0])
	}

	archived, err := st.Pickup(ctx, it.ID)
	if err != nil {
		return err
	}
	stored := duration.StorageDuration(archived.DateAdded, *archived.PickupDate)
	fmt.Fprintf(Out, "Picked up %s (%s), stored for %s\n",
		archived.UniqueID, archived.ObjectStored, stored.Display)
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(pickupCmd{}) }
