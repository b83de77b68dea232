package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding used on stderr: json or console.
	Format string `mapstructure:"format" default:"json"`
	// File optionally mirrors the log into a rotated file.
	File string `mapstructure:"file" default:""`
	// MaxSizeMB is the size at which the file is rotated.
	MaxSizeMB int `mapstructure:"max_size_mb" default:"100"`
	// MaxBackups is how many rotated files are kept.
	MaxBackups int `mapstructure:"max_backups" default:"3"`
	// MaxAgeDays is how long rotated files are kept.
	MaxAgeDays int `mapstructure:"max_age_days" default:"28"`
	// Compress gzips rotated files.
	Compress bool `mapstructure:"compress" default:"true"`
}
