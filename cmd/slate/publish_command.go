package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/publish"
)

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "publish <workfile>",
		Short: "Copy a workfile into the next versioned publish folder on the farm share",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			publisher := publish.New(cfg, nil, ctx.commandLogger())
			result, err := publisher.Publish(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", colorize(out, "Published "+result.Shot))
			fmt.Fprintf(out, "  job:     %s\n", result.JobID)
			fmt.Fprintf(out, "  version: %d\n", result.Version)
			fmt.Fprintf(out, "  target:  %s\n", result.Target)
			if result.StripData {
				fmt.Fprintln(out, "  note:    previous publish was processed by the farm")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
