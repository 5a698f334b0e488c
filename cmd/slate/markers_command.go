package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/markers"
	"slate/internal/services"
)

func newMarkersCommand(_ *commandContext) *cobra.Command {
	var jsonOutput bool
	var frameStart, frameEnd int
	var cutIn, cutOut int
	var separator string

	cmd := &cobra.Command{
		Use:         "markers <path>",
		Short:       "Emit the timeline marker plan for a shot's workfile path",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := parserForSeparator(separator)
			if err != nil {
				return err
			}
			parts, err := parser.Parse(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "markers", "parse", "", err)
			}
			if frameEnd < frameStart {
				return services.Wrap(services.ErrValidation, "markers", "plan",
					fmt.Sprintf("frame end %d before frame start %d", frameEnd, frameStart), nil)
			}

			plan := markers.ShotPlan(parts, frameStart, frameEnd, cutIn, cutOut)
			if jsonOutput {
				return writeJSON(cmd, plan)
			}

			rows := make([][]string, 0, len(plan))
			for _, marker := range plan {
				rows = append(rows, []string{marker.Name, strconv.Itoa(marker.Frame)})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Marker", "Frame"}, rows, 2))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVar(&frameStart, "start", 1001, "First frame of the shot range")
	cmd.Flags().IntVar(&frameEnd, "end", 1100, "Last frame of the shot range")
	cmd.Flags().IntVar(&cutIn, "in", -1, "Cut-in frame (omit to skip cut markers)")
	cmd.Flags().IntVar(&cutOut, "out", -1, "Cut-out frame (omit to skip cut markers)")
	cmd.Flags().StringVar(&separator, "separator", "auto", "Path separator to parse with (auto, slash, backslash)")

	return cmd
}
