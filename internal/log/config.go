package log

type LoggerConfig struct {
	Level     string           `mapstructure:"level" yaml:"level"`
	Pattern   string           `mapstructure:"pattern" yaml:"pattern"`
	Time      string           `mapstructure:"time" yaml:"time"`
	Appenders []AppenderConfig `mapstructure:"appenders" yaml:"appenders"`
}

type AppenderConfig struct {
	// Type selects the appender: "console" or "file".
	Type string               `mapstructure:"type" yaml:"type"`
	File *FileAppenderOptions `mapstructure:"file" yaml:"file,omitempty"`
}

type FileAppenderOptions struct {
	Filename   string `mapstructure:"filename" yaml:"filename"`
	MaxSize    int    `mapstructure:"maxsize" yaml:"maxsize,omitempty"` // MB
	MaxAge     int    `mapstructure:"maxage" yaml:"maxage,omitempty"`   // days
	MaxBackups int    `mapstructure:"maxbackups" yaml:"maxbackups,omitempty"`
	Compress   bool   `mapstructure:"compress" yaml:"compress,omitempty"`
}

// DefaultConfig is the fallback used when no log section is configured:
// info-level console output.
func DefaultConfig() *LoggerConfig {
	return &LoggerConfig{
		Level:   "info",
		Pattern: "%time [%level]%field %msg%n",
		Time:    "2006-01-02 15:04:05",
		Appenders: []AppenderConfig{
			{Type: "console"},
		},
	}
}
