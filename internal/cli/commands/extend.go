package commands

import (
	"context"
	"fmt"
	"strconv"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
)

type extendCmd struct{}

func (extendCmd) Name() string        { return "extend" }
func (extendCmd) Description() string { return "Extend the storage period of an active item" }
func (extendCmd) Usage() string       { return "extend <tag|id> <days>" }

func (extendCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	days, err := strconv.Atoi(args[1])
	if err != nil {
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

	updated, err := st.Extend(ctx, it.ID, days)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Extended %s by %d days, new expiry: %s\n",
		updated.UniqueID, days, updated.ExpiryDate.Format("2006-01-02 15:04"))
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(extendCmd{}) }
