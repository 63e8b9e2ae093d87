package config

const (
	defaultDestDir   = "~/Downloads"
	defaultLogDir    = "~/.local/share/zmatch/logs"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultTolerance = 3.0
	defaultFPS       = 23.98

	// maxTolerance bounds the proximity window; beyond this the userbits
	// predicate alone decides and matches stop meaning anything.
	maxTolerance = 15.0
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DestDir: defaultDestDir,
			LogDir:  defaultLogDir,
		},
		Matching: Matching{
			Tolerance:  defaultTolerance,
			DefaultFPS: defaultFPS,
		},
		Report: Report{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
