package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"slate/internal/pathmap"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	ProjectRoot string `toml:"project_root"`
	FarmRoot    string `toml:"farm_root"`
	IndexDB     string `toml:"index_db"`
	LogDir      string `toml:"log_dir"`
}

// Bridge contains the drive and mount layout for path remapping.
type Bridge struct {
	RemoteDrive string `toml:"remote_drive"`
	FarmDrive   string `toml:"farm_drive"`
	LocalRoot   string `toml:"local_root"`
}

// Publish contains render-farm publishing settings.
type Publish struct {
	FolderName        string `toml:"folder_name"`
	StripDataFilename string `toml:"strip_data_filename"`
	LockTimeoutSecs   int    `toml:"lock_timeout"`
}

// Scan contains workfile discovery settings.
type Scan struct {
	Extensions []string `toml:"extensions"`
	Include    string   `toml:"include"`
	Exclude    string   `toml:"exclude"`
}

// Timecode contains frame rate and tool binary settings.
type Timecode struct {
	FPS     int    `toml:"fps"`
	FFprobe string `toml:"ffprobe"`
	FFmpeg  string `toml:"ffmpeg"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for Slate.
//
// Sections by subsystem:
//   - Paths: project root, farm root, index database, log directory
//   - Bridge: workstation/remote drive layout for path remapping
//   - Publish: farm publish folder naming and locking
//   - Scan: workfile extensions and include/exclude glob patterns
//   - Timecode: frame rate plus ffprobe/ffmpeg binaries
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Bridge   Bridge   `toml:"bridge"`
	Publish  Publish  `toml:"publish"`
	Scan     Scan     `toml:"scan"`
	Timecode Timecode `toml:"timecode"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/slate/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized. The
// second return is the resolved path, the third whether a file existed
// there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("slate.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories Slate writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.Paths.LogDir}
	if db := strings.TrimSpace(c.Paths.IndexDB); db != "" {
		dirs = append(dirs, filepath.Dir(db))
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// Mapper builds the path remapper described by the bridge section.
func (c *Config) Mapper() pathmap.Mapper {
	return pathmap.Mapper{
		RemoteDrive: c.Bridge.RemoteDrive,
		FarmDrive:   c.Bridge.FarmDrive,
		LocalRoot:   c.Bridge.LocalRoot,
	}
}

// FFprobeBinary returns the ffprobe executable used for timecode reads.
func (c *Config) FFprobeBinary() string {
	if bin := strings.TrimSpace(c.Timecode.FFprobe); bin != "" {
		return bin
	}
	return "ffprobe"
}

// FFmpegBinary returns the ffmpeg executable used for timecode embeds.
func (c *Config) FFmpegBinary() string {
	if bin := strings.TrimSpace(c.Timecode.FFmpeg); bin != "" {
		return bin
	}
	return "ffmpeg"
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
