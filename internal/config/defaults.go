package config

const (
	defaultDataDir               = "~/.local/share/setlist"
	defaultLogDir                = "~/.local/share/setlist/logs"
	defaultExportDir             = "~/setlist-exports"
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultChannelRequestTimeout = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Channel: Channel{
			RequestTimeout: defaultChannelRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
