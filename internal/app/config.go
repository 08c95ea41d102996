package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	FormPath string // .hcl form file or directory

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.FormPath == "" {
		return nil, errors.New("FormPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
