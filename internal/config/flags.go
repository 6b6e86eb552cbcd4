package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags are the command line overrides. Only flags that were set on the
// command line replace values loaded by Load.
type Flags struct {
	ConfigPath string
	Dev        bool
	LogPath    string
	Endpoint   string
	Model      string
	Timeout    time.Duration
}

func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a YAML config file")
	fs.BoolVar(&f.Dev, "dev", false, "Development mode")
	fs.StringVar(&f.LogPath, "log-path", "", "Directory to save the log file in")
	fs.StringVar(&f.Endpoint, "endpoint", DefaultEndpoint, "Ollama generate endpoint")
	fs.StringVar(&f.Model, "model", DefaultModel, "Model used for prompts")
	fs.DurationVar(&f.Timeout, "timeout", DefaultTimeout, "Timeout of a single AI request (0 disables it)")
}

func (f *Flags) Apply(fs *pflag.FlagSet, cfg *Config) {
	if fs.Changed("dev") {
		cfg.Dev = f.Dev
	}
	if fs.Changed("log-path") {
		cfg.LogPath = f.LogPath
	}
	if fs.Changed("endpoint") {
		cfg.Endpoint = f.Endpoint
	}
	if fs.Changed("model") {
		cfg.Model = f.Model
	}
	if fs.Changed("timeout") {
		cfg.Timeout = f.Timeout
	}
}
