package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"slate/internal/pathmap"
	"slate/internal/services"
)

func newBridgeCommand(ctx *commandContext) *cobra.Command {
	bridgeCmd := &cobra.Command{
		Use:   "bridge",
		Short: "Remap paths between workstation, remote drive, and farm layouts",
	}

	bridgeCmd.AddCommand(newBridgeMapCommand(ctx, "repair",
		"Normalize separators and fix mangled drive prefixes",
		func(m pathmap.Mapper, path string) (string, bool) {
			return m.Repair(path), true
		}))
	bridgeCmd.AddCommand(newBridgeMapCommand(ctx, "to-remote",
		"Rewrite a local path onto the remote drive",
		func(m pathmap.Mapper, path string) (string, bool) {
			return m.ToRemote(path)
		}))
	bridgeCmd.AddCommand(newBridgeMapCommand(ctx, "to-local",
		"Rewrite a remote-drive path back onto the local mount",
		func(m pathmap.Mapper, path string) (string, bool) {
			return m.ToLocal(path)
		}))
	bridgeCmd.AddCommand(newBridgeMapCommand(ctx, "to-farm",
		"Rewrite a workfile path onto the farm drive at its phase root",
		func(m pathmap.Mapper, path string) (string, bool) {
			return m.ToFarm(path), true
		}))

	return bridgeCmd
}

func newBridgeMapCommand(ctx *commandContext, name, short string, transform func(pathmap.Mapper, string) (string, bool)) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <path>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			mapper := cfg.Mapper()

			out := cmd.OutOrStdout()
			for _, path := range args {
				mapped, ok := transform(mapper, path)
				if !ok {
					return services.Wrap(services.ErrValidation, "bridge", name,
						fmt.Sprintf("path %q does not match any known prefix", path), nil)
				}
				fmt.Fprintln(out, mapped)
			}
			return nil
		},
	}
}
