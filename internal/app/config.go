package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ConfigPath string   // optional HCL site config file
	Inputs     []string // recipe JSON files, directories, recipe ids or object ids

	LogFormat string
	LogLevel  string
	Workers   int
}

func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Inputs) == 0 {
		return nil, errors.New("at least one recipe input is required")
	}
	return &cfg, nil
}
