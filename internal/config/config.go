package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultEndpoint = "http://localhost:11434/api/generate"
	DefaultModel    = "llama3"
	DefaultTrigger  = "!ai "
	// DefaultTimeout bounds a single generate call. Zero disables the limit.
	DefaultTimeout = 60 * time.Second

	DefaultSystemPrompt = "You are an AI assistant for Minecraft. Your goal is to help the player by translating their natural language requests into valid Minecraft commands or Baritone commands. If the request is a general knowledge question about Minecraft, provide a concise answer. If the request can be translated into a command, output *only* the command string (e.g., '/give @s diamond_sword' or '#goto base'). Otherwise, say you don't understand. Prioritize Baritone commands if applicable. Always give a command if one is appropriate, do not add any additional text."
)

// Config holds the settings of the chat bridge.
type Config struct {
	Endpoint     string        `yaml:"endpoint" env:"TAVISH_ENDPOINT"`
	Model        string        `yaml:"model" env:"TAVISH_MODEL"`
	SystemPrompt string        `yaml:"system_prompt" env:"TAVISH_SYSTEM_PROMPT"`
	Trigger      string        `yaml:"trigger"`
	Timeout      time.Duration `yaml:"timeout" env:"TAVISH_TIMEOUT"`

	Dev     bool   `yaml:"dev" env:"TAVISH_DEV"`
	LogPath string `yaml:"log_path" env:"TAVISH_LOG_PATH"`
}

func Default() *Config {
	return &Config{
		Endpoint:     DefaultEndpoint,
		Model:        DefaultModel,
		SystemPrompt: DefaultSystemPrompt,
		Trigger:      DefaultTrigger,
		Timeout:      DefaultTimeout,
	}
}

// Load builds a Config from the defaults, the optional YAML file at path,
// a .env file in the working directory and TAVISH_* environment variables,
// later sources overriding earlier ones.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	// a missing .env is fine
	_ = godotenv.Load()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.Trigger == "" {
		return errors.New("trigger must not be empty")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %s", c.Timeout)
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint must be an absolute http(s) URL: %q", c.Endpoint)
	}
	return nil
}
