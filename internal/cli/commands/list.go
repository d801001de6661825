package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
	"LabStore/internal/duration"
)

type listCmd struct{}

func (listCmd) Name() string        { return "list" }
func (listCmd) Description() string { return "Show active inventory, most urgent first" }
func (listCmd) Usage() string       { return "list" }

func (listCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	items := st.ListActive()
	if len(items) == 0 {
		fmt.Fprintln(Out, "No items in storage")
		return nil
	}

	fmt.Fprintf(Out, "%-12s %-20s %-16s %-12s %-12s %s\n",
		"TAG", "OBJECT", "OWNER", "LOCATION", "EXPIRES", "REMAINING")
	for _, it := range items {
		r := duration.TimeRemaining(it.ExpiryDate, timeNow())
		marker := ""
		switch duration.StatusOf(r) {
		case duration.StatusExpired:
			marker = " !!"
		case duration.StatusExpiringSoon:
			marker = " !"
		}
		fmt.Fprintf(Out, "%-12s %-20s %-16s %-12s %-12s %s%s\n",
			it.UniqueID, it.ObjectStored, it.OwnerName, it.Location,
			it.ExpiryDate.Format("2006-01-02"), r.Display, marker)
	}
	fmt.Fprintf(Out, "Total: %d\n", len(items))
	warnDegraded(st)
	return nil
}

func init() { RegisterCmd(listCmd{}) }
