// Package config handles loading the ambient settings of the program:
// log format, journaling, layout detail and the heap cap.
//
// Sources, in priority order:
//  1. An environment variable:  CONFIG_PATH=/path/to/config.yaml
//  2. A command-line flag:      --config=/path/to/config.yaml
//  3. Neither: environment variables alone, with defaults
//
// A .env file in the working directory, if present, is loaded into the
// environment first.
package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden by the
// corresponding environment variable (env:"...").
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// ShowLayout adds per-field offsets and padding to the size report.
	ShowLayout bool `yaml:"show_layout" env:"SHOW_LAYOUT" env-default:"false"`

	// Journal records a snapshot of every step in an in-memory SQLite
	// database and prints the journal at the end of the run.
	//
	// Bool defaults must stay "false": cleanenv applies env-default to any
	// zero-valued field, so a YAML "false" could never override "true".
	Journal bool `yaml:"journal" env:"JOURNAL" env-default:"false"`

	// HeapLimit caps how many records the heap arena hands out at once.
	// 0 means unlimited. A negative value leaves no room at all, which
	// drives the heap-copy step down its allocation-failure path.
	HeapLimit int `yaml:"heap_limit" env:"HEAP_LIMIT" env-default:"0"`
}

// MustLoad reads, validates and returns the configuration. It exits the
// process on failure; if it returns, the config is valid.
func MustLoad() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// Load is MustLoad without the exit, parsing args instead of os.Args.
func Load(args []string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		fs := flag.NewFlagSet("student-structs", flag.ContinueOnError)
		path := fs.String("config", "", "Path to the configuration YAML file")
		if err := fs.Parse(args); err != nil {
			return nil, fmt.Errorf("config: parse flags: %w", err)
		}
		configPath = *path
	}

	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return validate(&cfg)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	return validate(&cfg)
}

func validate(cfg *Config) (*Config, error) {
	switch cfg.Env {
	case "dev", "staging", "prod":
		return cfg, nil
	default:
		return nil, fmt.Errorf("config: unknown env %q (want dev, staging or prod)", cfg.Env)
	}
}
