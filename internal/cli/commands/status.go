package commands

import (
	"context"
	"fmt"

	"LabStore/internal/cli/bootstrap"
	"LabStore/internal/config"
)

type statusCmd struct{}

func (statusCmd) Name() string        { return "status" }
func (statusCmd) Description() string { return "Show server availability and inventory summary" }
func (statusCmd) Usage() string       { return "status" }

func (statusCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}

	if err := bootstrap.ProbeServer(ctx, cfg); err != nil {
		fmt.Fprintf(Out, "Server:  unreachable (%s)\n", cfg.ServerURL)
	} else {
		fmt.Fprintf(Out, "Server:  ok (%s)\n", cfg.ServerURL)
	}

	st, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return err
	}
	if st.Degraded() {
		fmt.Fprintln(Out, "Mode:    offline (local cache)")
	} else {
		fmt.Fprintln(Out, "Mode:    online")
	}

	stats := st.Stats()
	fmt.Fprintf(Out, "Items:   %d active, %d archived\n", stats.Total, len(st.ListArchived()))
	fmt.Fprintf(Out, "Expired: %d\n", stats.Expired)
	fmt.Fprintf(Out, "Due soon: %d\n", stats.ExpiringSoon)
	return nil
}

func init() { RegisterCmd(statusCmd{}) }
