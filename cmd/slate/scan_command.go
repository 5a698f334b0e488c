package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/index"
	"slate/internal/services"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var include string
	var exclude string

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Walk a project tree and index every convention-named workfile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			root := cfg.Paths.ProjectRoot
			if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
				root = args[0]
			}
			if strings.TrimSpace(root) == "" {
				return services.Wrap(services.ErrConfiguration, "scan", "scan", "no scan root (set paths.project_root or pass one)", nil)
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			opts := index.ScanOptions{
				Extensions: cfg.Scan.Extensions,
				Include:    cfg.Scan.Include,
				Exclude:    cfg.Scan.Exclude,
				Logger:     ctx.commandLogger(),
			}
			if include != "" {
				opts.Include = include
			}
			if exclude != "" {
				opts.Exclude = exclude
			}

			summary, err := index.Scan(cmd.Context(), store, root, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Indexed %d workfile(s), skipped %d, in %s\n",
				summary.Indexed, summary.Skipped, summary.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&include, "include", "", "Comma-separated glob patterns to include (overrides config)")
	cmd.Flags().StringVar(&exclude, "exclude", "", "Comma-separated glob patterns to exclude (overrides config)")

	return cmd
}
