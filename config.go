package epool

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML shape of a pool configuration. Durations use Go
// syntax ("10s", "200ms"). Zero or missing fields fall back to defaults;
// New still validates the resulting Options.
//
//	max_workers: 8
//	idle_timeout: 10s
//	retry:
//	  attempts: 3
//	  initial: 200ms
//	  max: 5s
type FileConfig struct {
	MaxWorkers  int    `yaml:"max_workers"`
	IdleTimeout string `yaml:"idle_timeout"`
	Retry       struct {
		Attempts int    `yaml:"attempts"`
		Initial  string `yaml:"initial"`
		Max      string `yaml:"max"`
	} `yaml:"retry"`
}

// LoadOptions reads a YAML pool configuration from path.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("epool: read config %s: %w", path, err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Options{}, fmt.Errorf("epool: unmarshal config: %w", err)
	}
	return fc.toOptions()
}

func (fc FileConfig) toOptions() (Options, error) {
	opts := DefaultOptions()
	if fc.MaxWorkers != 0 {
		opts.MaxWorkers = fc.MaxWorkers
	}

	var err error
	if opts.IdleTimeout, err = parseDuration(fc.IdleTimeout, opts.IdleTimeout); err != nil {
		return Options{}, fmt.Errorf("epool: idle_timeout: %w", err)
	}
	if fc.Retry.Attempts != 0 {
		opts.Retry.Attempts = fc.Retry.Attempts
	}
	if opts.Retry.Initial, err = parseDuration(fc.Retry.Initial, opts.Retry.Initial); err != nil {
		return Options{}, fmt.Errorf("epool: retry.initial: %w", err)
	}
	if opts.Retry.Max, err = parseDuration(fc.Retry.Max, opts.Retry.Max); err != nil {
		return Options{}, fmt.Errorf("epool: retry.max: %w", err)
	}
	return opts, nil
}

func parseDuration(s string, def time.Duration) (time.Duration, error) {
	if s == "" {
		return def, nil
	}
	return time.ParseDuration(s)
}
