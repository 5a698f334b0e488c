package config

import (
	"os"
	"strings"
)

// Environment overrides honoured during normalization. The render-farm
// root historically came from the environment on farm nodes.
const (
	envProjectRoot = "SLATE_PROJECT_ROOT"
	envFarmRoot    = "SLATE_FARM_ROOT"
)

func (c *Config) normalize() error {
	if v := strings.TrimSpace(os.Getenv(envProjectRoot)); v != "" {
		c.Paths.ProjectRoot = v
	}
	if v := strings.TrimSpace(os.Getenv(envFarmRoot)); v != "" {
		c.Paths.FarmRoot = v
	}

	for _, field := range []*string{&c.Paths.ProjectRoot, &c.Paths.FarmRoot, &c.Paths.IndexDB, &c.Paths.LogDir} {
		trimmed := strings.TrimSpace(*field)
		if trimmed == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(trimmed)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Bridge.RemoteDrive = strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(c.Bridge.RemoteDrive), ":"))
	c.Bridge.FarmDrive = strings.ToUpper(strings.TrimSuffix(strings.TrimSpace(c.Bridge.FarmDrive), ":"))
	c.Bridge.LocalRoot = strings.TrimRight(strings.TrimSpace(c.Bridge.LocalRoot), "/")

	c.Publish.FolderName = strings.TrimSpace(c.Publish.FolderName)
	c.Publish.StripDataFilename = strings.TrimSpace(c.Publish.StripDataFilename)

	exts := make([]string, 0, len(c.Scan.Extensions))
	for _, ext := range c.Scan.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	c.Scan.Extensions = exts

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}

	return nil
}
