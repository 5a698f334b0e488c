// Package publish copies workfiles onto the render-farm share.
//
// Each publish lands in a fresh versioned folder under the shot's farm
// directory (PUB, PUB_02, ...) so render jobs always reference an
// immutable snapshot. Concurrent publishes to the same shot are
// serialized with a lock file on the farm directory.
package publish

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"slate/internal/config"
	"slate/internal/fsutil"
	"slate/internal/logging"
	"slate/internal/project"
	"slate/internal/services"
)

// Result describes a completed publish. StripData reports whether the
// farm had dropped its strip-data sentinel into the previous publish
// folder, i.e. whether the prior publish completed downstream.
type Result struct {
	JobID     string `json:"job_id"`
	Source    string `json:"source"`
	Target    string `json:"target"`
	Shot      string `json:"shot"`
	Version   int    `json:"version"`
	StripData bool   `json:"strip_data"`
}

// Publisher copies parsed workfiles into the farm share.
type Publisher struct {
	cfg    *config.Config
	parser *project.Parser
	logger *slog.Logger
}

// New constructs a Publisher. A nil parser selects the platform parser.
func New(cfg *config.Config, parser *project.Parser, logger *slog.Logger) *Publisher {
	if parser == nil {
		parser = project.Platform()
	}
	return &Publisher{
		cfg:    cfg,
		parser: parser,
		logger: logging.NewComponentLogger(logger, "publish"),
	}
}

// Publish copies the workfile into the next versioned publish folder
// for its shot and returns where it landed.
func (p *Publisher) Publish(ctx context.Context, workfilePath string) (*Result, error) {
	parts, err := p.parser.Parse(workfilePath)
	if err != nil {
		return nil, services.Wrap(services.ErrValidation, "publish", "parse path",
			"Workfile path does not follow the naming convention", err)
	}

	farmRoot := p.cfg.Paths.FarmRoot
	if farmRoot == "" {
		return nil, services.Wrap(services.ErrConfiguration, "publish", "resolve farm root",
			"paths.farm_root is not set; configure it or export SLATE_FARM_ROOT", nil)
	}

	shotDir := filepath.Join(farmRoot, parts.Scene, parts.Shot)
	if err := fsutil.EnsureDir(shotDir); err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "create shot directory", shotDir, err)
	}

	release, err := p.lockShotDir(ctx, shotDir)
	if err != nil {
		return nil, err
	}
	defer release()

	version, err := fsutil.LatestFolderVersion(shotDir, p.cfg.Publish.FolderName)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "scan publish folders", shotDir, err)
	}

	// The farm drops a strip-data file into a publish folder once it has
	// processed it; its presence in the latest folder means the previous
	// publish completed downstream.
	stripData := false
	if version > 0 {
		previousDir := filepath.Join(shotDir, fsutil.VersionedFolder(p.cfg.Publish.FolderName, version))
		stripData = fsutil.StripDataExists(previousDir, p.cfg.Publish.StripDataFilename)
	}
	version++

	targetDir := filepath.Join(shotDir, fsutil.VersionedFolder(p.cfg.Publish.FolderName, version))
	if err := fsutil.EnsureDir(targetDir); err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "create publish folder", targetDir, err)
	}

	target := filepath.Join(targetDir, filepath.Base(workfilePath))
	if err := fsutil.CopyFileVerified(workfilePath, target); err != nil {
		return nil, services.Wrap(services.ErrTransient, "publish", "copy workfile",
			"Verified copy to the farm share failed", err)
	}

	result := &Result{
		JobID:     uuid.NewString(),
		Source:    workfilePath,
		Target:    target,
		Shot:      parts.ShotID,
		Version:   version,
		StripData: stripData,
	}
	p.logger.Info("workfile published",
		logging.String("job_id", result.JobID),
		logging.String("shot", result.Shot),
		logging.Int("version", result.Version),
		logging.String("target", result.Target),
		logging.Bool("strip_data", result.StripData))
	return result, nil
}

// lockShotDir takes the exclusive publish lock for a shot's farm
// directory, waiting up to the configured timeout.
func (p *Publisher) lockShotDir(ctx context.Context, shotDir string) (func(), error) {
	lockPath := filepath.Join(shotDir, ".publish.lock")
	lock := flock.New(lockPath)

	timeout := time.Duration(p.cfg.Publish.LockTimeoutSecs) * time.Second
	lockCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil || !locked {
		if err == nil {
			err = fmt.Errorf("lock %q not acquired within %s", lockPath, timeout)
		}
		return nil, services.Wrap(services.ErrTransient, "publish", "lock shot directory",
			"Another publish is in progress for this shot", err)
	}
	return func() { _ = lock.Unlock() }, nil
}
