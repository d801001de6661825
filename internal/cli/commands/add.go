package commands

import (
	"context"
	"fmt"
	"strconv"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/store"
)

type addCmd struct{}

func (addCmd) Name() string        { return "add" }
func (addCmd) Description() string { return "Store a new item" }
func (addCmd) Usage() string {
	return "add <owner> <email> <sso> <object> <tag> <location> <days>"
}

func (addCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 7 {
		return ErrUsage
	}
	days, err := strconv.Atoi(args[6])
	if err != nil {
		return ErrUsage
	}

	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	it, err := st.Create(ctx, store.Draft{
		OwnerName:    args[0],
		EmailID:      args[1],
		SSOID:        args[2],
		ObjectStored: args[3],
		UniqueID:     args[4],
		Location:     args[5],
		TimePeriod:   days,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(Out, "Stored:")
	printItemDetails(it)
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(addCmd{}) }
