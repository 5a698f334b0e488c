package config

const (
	defaultProjectRoot       = "~/projects"
	defaultLogDir            = "~/.local/share/slate/logs"
	defaultIndexDB           = "~/.local/share/slate/index.db"
	defaultRemoteDrive       = "S"
	defaultFarmDrive         = "K"
	defaultPublishFolder     = "PUB"
	defaultStripDataFilename = "strip_data.txt"
	defaultLockTimeoutSecs   = 30
	defaultFPS               = 24
	defaultLogFormat         = "console"
	defaultLogLevel          = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ProjectRoot: defaultProjectRoot,
			LogDir:      defaultLogDir,
			IndexDB:     defaultIndexDB,
		},
		Bridge: Bridge{
			RemoteDrive: defaultRemoteDrive,
			FarmDrive:   defaultFarmDrive,
		},
		Publish: Publish{
			FolderName:        defaultPublishFolder,
			StripDataFilename: defaultStripDataFilename,
			LockTimeoutSecs:   defaultLockTimeoutSecs,
		},
		Scan: Scan{
			Extensions: []string{".blend"},
		},
		Timecode: Timecode{
			FPS: defaultFPS,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
