package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/project"
	"slate/internal/services"
)

func newParseCommand(_ *commandContext) *cobra.Command {
	var jsonOutput bool
	var separator string

	cmd := &cobra.Command{
		Use:         "parse <path>",
		Short:       "Decompose a workfile path into its naming-convention fields",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := parserForSeparator(separator)
			if err != nil {
				return err
			}
			parts, err := parser.Parse(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "parse", "parse", "", err)
			}
			if jsonOutput {
				return writeJSON(cmd, parts)
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderFields([][2]string{
				{"Scene", parts.Scene},
				{"Scene number", parts.SceneNumber},
				{"Shot", parts.Shot},
				{"Shot number", parts.ShotNumber},
				{"Shot ID", parts.ShotID},
				{"Stage", parts.Stage},
				{"Stage number", parts.StageNumber},
				{"Stage name", parts.StageName},
				{"Environment", project.DisplayEnvironment(parts)},
				{"Workfile", parts.Workfile},
				{"Workfile name", parts.WorkfileName},
				{"Workfile version", parts.WorkfileVersion},
			}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&separator, "separator", "auto", "Path separator to parse with (auto, slash, backslash)")

	return cmd
}

func parserForSeparator(separator string) (*project.Parser, error) {
	switch separator {
	case "", "auto":
		return project.Platform(), nil
	case "slash":
		return project.New("/"), nil
	case "backslash":
		return project.New(`\`), nil
	default:
		return nil, fmt.Errorf("unknown separator %q (expected auto, slash, or backslash)", separator)
	}
}
