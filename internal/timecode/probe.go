package timecode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrNoEmbeddedTimecode indicates the container carries no timecode tag.
var ErrNoEmbeddedTimecode = errors.New("no timecode tag in container")

type probeOutput struct {
	Format struct {
		Tags struct {
			Timecode string `json:"timecode"`
		} `json:"tags"`
	} `json:"format"`
}

// ReadEmbedded executes ffprobe against the provided path and returns
// the timecode tag from the container metadata.
func ReadEmbedded(ctx context.Context, binary, path string) (Timecode, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffprobe"
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return Timecode{}, errors.New("read timecode: empty path")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-show_entries", "format_tags=timecode",
		"-of", "json",
		"--", path)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return Timecode{}, fmt.Errorf("ffprobe: %w: %s", err, strings.TrimSpace(string(output)))
	}

	var probed probeOutput
	if err := json.Unmarshal(output, &probed); err != nil {
		return Timecode{}, fmt.Errorf("ffprobe parse: %w", err)
	}
	if probed.Format.Tags.Timecode == "" {
		return Timecode{}, fmt.Errorf("read timecode %q: %w", path, ErrNoEmbeddedTimecode)
	}
	return Parse(probed.Format.Tags.Timecode)
}

// Embed remuxes src to dst with a stream copy, stamping the given
// timecode into the container metadata.
func Embed(ctx context.Context, binary, src, dst string, tc Timecode) error {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		binary = "ffmpeg"
	}
	if strings.TrimSpace(src) == "" || strings.TrimSpace(dst) == "" {
		return errors.New("embed timecode: empty source or destination")
	}

	cmd := exec.CommandContext(ctx, binary,
		"-v", "error",
		"-y",
		"-i", src,
		"-c", "copy",
		"-metadata", "timecode="+tc.String(),
		dst)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
