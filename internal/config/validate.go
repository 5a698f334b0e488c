package config

import (
	"fmt"
	"regexp"
)

var driveLetterRE = regexp.MustCompile(`^[A-Z]$`)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBridge(); err != nil {
		return err
	}
	if err := c.validatePublish(); err != nil {
		return err
	}
	if err := c.validateScan(); err != nil {
		return err
	}
	if err := c.validateTimecode(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateBridge() error {
	if c.Bridge.RemoteDrive != "" && !driveLetterRE.MatchString(c.Bridge.RemoteDrive) {
		return fmt.Errorf("bridge.remote_drive must be a single drive letter, got %q", c.Bridge.RemoteDrive)
	}
	if c.Bridge.FarmDrive != "" && !driveLetterRE.MatchString(c.Bridge.FarmDrive) {
		return fmt.Errorf("bridge.farm_drive must be a single drive letter, got %q", c.Bridge.FarmDrive)
	}
	return nil
}

func (c *Config) validatePublish() error {
	if c.Publish.FolderName == "" {
		return fmt.Errorf("publish.folder_name must not be empty")
	}
	if c.Publish.LockTimeoutSecs <= 0 {
		return fmt.Errorf("publish.lock_timeout must be positive, got %d", c.Publish.LockTimeoutSecs)
	}
	return nil
}

func (c *Config) validateScan() error {
	if len(c.Scan.Extensions) == 0 {
		return fmt.Errorf("scan.extensions must list at least one extension")
	}
	return nil
}

func (c *Config) validateTimecode() error {
	if c.Timecode.FPS <= 0 {
		return fmt.Errorf("timecode.fps must be positive, got %d", c.Timecode.FPS)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
