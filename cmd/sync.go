package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"football/internal/config"
)

// syncCommand enqueues a snapshot sync. The job runs in a `serve` process.
func syncCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <competition>",
		Short: "Enqueues a snapshot sync of a competition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, closeSvc := getService(ctx, cfg, strg)
			defer closeSvc()

			inserted, err := svc.ScheduleSync(ctx, args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			if inserted {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "sync of %s enqueued\n", args[0])
			} else {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "sync of %s is already pending\n", args[0])
			}

			return err //nolint: wrapcheck
		},
	}
}
