package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/services"
	"slate/internal/workfile"
)

func newWorkfileCommand() *cobra.Command {
	workfileCmd := &cobra.Command{
		Use:         "workfile",
		Short:       "Version arithmetic on workfile names",
		Annotations: map[string]string{"skipConfigLoad": "true"},
	}

	workfileCmd.AddCommand(newWorkfileBumpCommand())
	workfileCmd.AddCommand(newWorkfileHeroCommand())

	return workfileCmd
}

func newWorkfileBumpCommand() *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   "bump <filename>",
		Short: "Increment the version number in a workfile name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Hyphen-delimited publish names carry an optional comment;
			// plain _v### names just get the number bumped.
			if name, err := workfile.ParseName(args[0]); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), name.Increment(workfile.SanitizeComment(comment)))
				return nil
			}
			next, err := workfile.Increment(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "workfile", "bump", "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}

	cmd.Flags().StringVar(&comment, "comment", "", "Comment appended to the bumped publish name")

	return cmd
}

func newWorkfileHeroCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hero <filename>",
		Short: "Strip version and comment from a publish name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := workfile.ParseName(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "workfile", "hero", "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), name.Hero())
			return nil
		},
	}
}
