package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/services"
	"slate/internal/timecode"
)

func newTimecodeCommand(ctx *commandContext) *cobra.Command {
	timecodeCmd := &cobra.Command{
		Use:   "timecode",
		Short: "Convert between timecodes and frame numbers, and read or embed media timecodes",
	}

	timecodeCmd.AddCommand(newTimecodeToFramesCommand(ctx))
	timecodeCmd.AddCommand(newTimecodeFromFramesCommand(ctx))
	timecodeCmd.AddCommand(newTimecodeReadCommand(ctx))
	timecodeCmd.AddCommand(newTimecodeEmbedCommand(ctx))

	return timecodeCmd
}

// commandFPS resolves the frame rate: the flag when set, the
// configured default otherwise.
func commandFPS(ctx *commandContext, flagValue int) (int, error) {
	if flagValue > 0 {
		return flagValue, nil
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return 0, err
	}
	return cfg.Timecode.FPS, nil
}

func newTimecodeToFramesCommand(ctx *commandContext) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "to-frames <hh:mm:ss:ff>",
		Short: "Convert a timecode to an absolute frame number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := commandFPS(ctx, fps)
			if err != nil {
				return err
			}
			tc, err := timecode.Parse(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "timecode", "to-frames", "", err)
			}
			frame, err := tc.FrameNumber(rate)
			if err != nil {
				return services.Wrap(services.ErrValidation, "timecode", "to-frames", "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), frame)
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "Frame rate (defaults to the configured rate)")

	return cmd
}

func newTimecodeFromFramesCommand(ctx *commandContext) *cobra.Command {
	var fps int

	cmd := &cobra.Command{
		Use:   "from-frames <frame>",
		Short: "Convert an absolute frame number to a timecode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rate, err := commandFPS(ctx, fps)
			if err != nil {
				return err
			}
			frame, err := strconv.Atoi(args[0])
			if err != nil {
				return services.Wrap(services.ErrValidation, "timecode", "from-frames",
					fmt.Sprintf("invalid frame number %q", args[0]), nil)
			}
			tc, err := timecode.FromFrames(frame, rate)
			if err != nil {
				return services.Wrap(services.ErrValidation, "timecode", "from-frames", "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tc.String())
			return nil
		},
	}

	cmd.Flags().IntVar(&fps, "fps", 0, "Frame rate (defaults to the configured rate)")

	return cmd
}

func newTimecodeReadCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "read <media-file>",
		Short: "Read the embedded timecode tag from a media file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tc, err := timecode.ReadEmbedded(cmd.Context(), cfg.FFprobeBinary(), args[0])
			if err != nil {
				if errors.Is(err, timecode.ErrNoEmbeddedTimecode) {
					return services.Wrap(services.ErrNotFound, "timecode", "read", "", err)
				}
				return services.Wrap(services.ErrExternalTool, "timecode", "read", "", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tc.String())
			return nil
		},
	}

	return cmd
}

func newTimecodeEmbedCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "embed <source> <target> <hh:mm:ss:ff>",
		Short: "Remux a media file with a timecode tag",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			tc, err := timecode.Parse(args[2])
			if err != nil {
				return services.Wrap(services.ErrValidation, "timecode", "embed", "", err)
			}
			if err := timecode.Embed(cmd.Context(), cfg.FFmpegBinary(), args[0], args[1], tc); err != nil {
				return services.Wrap(services.ErrExternalTool, "timecode", "embed", "", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Embedded %s into %s\n", tc, args[1])
			return nil
		},
	}

	return cmd
}
