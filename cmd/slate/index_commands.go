package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newShotsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "shots",
		Short: "List indexed scene/shot pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			shots, err := store.Shots(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, shots)
			}

			out := cmd.OutOrStdout()
			if len(shots) == 0 {
				fmt.Fprintln(out, "No shots indexed. Run 'slate scan' first.")
				return nil
			}

			rows := make([][]string, 0, len(shots))
			for _, shot := range shots {
				rows = append(rows, []string{
					shot.Scene,
					shot.Shot,
					shot.ShotID,
					shot.Environment,
					strconv.Itoa(shot.Stages),
					strconv.Itoa(shot.Workfiles),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Scene", "Shot", "Shot ID", "Environment", "Stages", "Workfiles"},
				rows, 5, 6))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newLatestCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "latest <scene> <shot>",
		Short: "Show the newest indexed workfile of each stage for a shot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			scene := strings.ToUpper(strings.TrimSpace(args[0]))
			shot := strings.ToUpper(strings.TrimSpace(args[1]))

			versions, err := store.LatestVersions(cmd.Context(), scene, shot)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, versions)
			}

			out := cmd.OutOrStdout()
			if len(versions) == 0 {
				fmt.Fprintf(out, "No workfiles indexed for %s %s.\n", scene, shot)
				return nil
			}

			rows := make([][]string, 0, len(versions))
			for _, v := range versions {
				rows = append(rows, []string{
					v.Stage,
					v.Version,
					v.Workfile,
					v.Modified.Format("2006-01-02 15:04"),
					v.Path,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Stage", "Version", "Workfile", "Modified", "Path"},
				rows, 2))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show index totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			stats, err := store.Stats(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, statsPayload{
					Workfiles: stats.Workfiles,
					Shots:     stats.Shots,
					Scenes:    stats.Scenes,
					Skipped:   stats.Skipped,
					Database:  store.Path(),
				})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderFields([][2]string{
				{"Workfiles", strconv.Itoa(stats.Workfiles)},
				{"Shots", strconv.Itoa(stats.Shots)},
				{"Scenes", strconv.Itoa(stats.Scenes)},
				{"Skipped last scan", strconv.Itoa(stats.Skipped)},
				{"Database", store.Path()},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

type statsPayload struct {
	Workfiles int    `json:"workfiles"`
	Shots     int    `json:"shots"`
	Scenes    int    `json:"scenes"`
	Skipped   int    `json:"skipped"`
	Database  string `json:"database"`
}
