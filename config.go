package logfacade

// Config is the logging configuration. It is read from a dedicated logging
// file or from the "logging" section of the application config, and every
// scalar can be overridden from the environment.
//
// When the file changes every field is re-applied, sinks included, except
// DisableWatch and the Debug/Info/Warn gate taken from Level at startup.
type Config struct {
	// Level is the root logger threshold. It also seeds the level gate snapshot.
	Level string `yaml:"level" json:"level" env:"LOGFACADE_LEVEL" env-default:"info" validate:"required,loglevel"`
	// Loggers overrides the threshold of every composite logger name that
	// contains the key as whole dotted segments ("main.Client" matches
	// "host.main.42.main.Client.Start"). The longest matching key wins.
	Loggers map[string]string `yaml:"loggers" json:"loggers" validate:"omitempty,dive,keys,required,endkeys,loglevel"`

	DisableTimestamp bool `yaml:"disable_timestamp" json:"disable_timestamp" env:"LOGFACADE_DISABLE_TIMESTAMP"`
	ConsoleLogging bool `yaml:"console_logging" json:"console_logging" env:"LOGFACADE_CONSOLE_LOGGING"`
	ConsoleNoColor bool `yaml:"console_no_color" json:"console_no_color" env:"LOGFACADE_CONSOLE_NO_COLOR"`

	FileLogging       bool   `yaml:"file_logging" json:"file_logging" env:"LOGFACADE_FILE_LOGGING"`
	LogFileDir        string `yaml:"log_file_dir" json:"log_file_dir" env:"LOGFACADE_LOG_FILE_DIR" env-default:"logs" validate:"required_if=FileLogging true"`
	LogFileName       string `yaml:"log_file_name" json:"log_file_name" env:"LOGFACADE_LOG_FILE_NAME"`
	LogFileMaxBackups int    `yaml:"log_file_max_backups" json:"log_file_max_backups" env:"LOGFACADE_LOG_FILE_MAX_BACKUPS" env-default:"3" validate:"gte=0"`
	LogFileMaxAgeDays int    `yaml:"log_file_max_age_days" json:"log_file_max_age_days" env:"LOGFACADE_LOG_FILE_MAX_AGE_DAYS" env-default:"7" validate:"gte=0"`
	LogFileMaxSizeMB  int    `yaml:"log_file_max_size_mb" json:"log_file_max_size_mb" env:"LOGFACADE_LOG_FILE_MAX_SIZE_MB" env-default:"10" validate:"gte=0"`
	LogFileCompress   bool   `yaml:"log_file_compress" json:"log_file_compress" env:"LOGFACADE_LOG_FILE_COMPRESS"`

	// Reencode names a charset (e.g. "windows-1252") through which the UTF-8
	// bytes of every message are re-read before emission. This only helps
	// viewers that decode log files with that code page; leave it empty to
	// pass text through untouched.
	Reencode string `yaml:"reencode" json:"reencode" env:"LOGFACADE_REENCODE" validate:"omitempty,charset"`

	// WrapperTypes are caller type names treated as logging indirections;
	// call-site resolution walks past their frames.
	WrapperTypes []string `yaml:"wrapper_types" json:"wrapper_types" env:"LOGFACADE_WRAPPER_TYPES" env-default:"Logger"`
	// WrapperPrefixes are fully qualified function name prefixes treated the same way.
	WrapperPrefixes []string `yaml:"wrapper_prefixes" json:"wrapper_prefixes" env:"LOGFACADE_WRAPPER_PREFIXES"`

	// DisableWatch stops the configuration file from being re-applied when it
	// changes. It is read once, at construction.
	DisableWatch bool `yaml:"disable_watch" json:"disable_watch" env:"LOGFACADE_DISABLE_WATCH"`
}

// appConfigFile is the shape of a general application config that carries
// the logging configuration in its "logging" section.
type appConfigFile struct {
	Logging Config `yaml:"logging" json:"logging"`
}

// DefaultConfig returns the configuration used when no file is found:
// Info level with no sinks, so nothing is written.
func DefaultConfig() *Config {
	return &Config{
		Level:             InfoLevel.String(),
		LogFileDir:        "logs",
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
		LogFileMaxSizeMB:  10,
		WrapperTypes:      []string{"Logger"},
	}
}
