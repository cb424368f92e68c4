// Package config defines the engine configuration: a small immutable value
// of numeric and boolean knobs, built once from compiled defaults optionally
// merged with a config file, then passed down and never mutated.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// AI configures the optional remote tokenization fallback.
type AI struct {
	BaseURL        string `mapstructure:"base_url"`
	Model          string `mapstructure:"model"`
	APIKey         string `mapstructure:"api_key"`
	APIKeyEnv      string `mapstructure:"api_key_env"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	// PromptTokens caps the token count of the text sent upstream.
	PromptTokens int `mapstructure:"prompt_tokens"`
}

// Config holds every knob the segmentation strategies consult.
type Config struct {
	// Random chaos tokenizer.
	RandomMinLen    int `mapstructure:"random_min_len"`
	RandomMaxLen    int `mapstructure:"random_max_len"`
	RandomMinTokens int `mapstructure:"random_min_tokens"`

	// Whether naming-boundary splitting strips _ and - separators.
	StripSeparators bool `mapstructure:"strip_separators"`

	// Hard-wrap column for charBreak mode, and the minimum trailing
	// fragment length below which the tail merges into the previous chunk.
	LineLimit   int `mapstructure:"line_limit"`
	MinLineTail int `mapstructure:"min_line_tail"`

	// Chinese mode toggles.
	UseDictionary bool `mapstructure:"use_dictionary"`
	UseAlgorithm  bool `mapstructure:"use_algorithm"`

	AI AI `mapstructure:"ai"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		RandomMinLen:    1,
		RandomMaxLen:    5,
		RandomMinTokens: 2,
		StripSeparators: true,
		LineLimit:       20,
		MinLineTail:     2,
		UseDictionary:   true,
		UseAlgorithm:    true,
		AI: AI{
			BaseURL:        "https://api.openai.com/v1",
			Model:          "gpt-4.1-mini",
			APIKeyEnv:      "OPENAI_API_KEY",
			TimeoutSeconds: 30,
			PromptTokens:   2000,
		},
	}
}

// Load reads fenci-config.(yaml|json) from $HOME and the working directory
// and merges it over the defaults. A missing config file is not an error;
// a malformed one is.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("fenci-config")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	cfg := Default()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	return cfg.Sanitized(), nil
}

// Sanitized returns a copy with out-of-range knobs clamped to usable values.
func (c Config) Sanitized() Config {
	if c.RandomMinLen < 1 {
		c.RandomMinLen = 1
	}
	if c.RandomMaxLen < c.RandomMinLen {
		c.RandomMaxLen = c.RandomMinLen
	}
	if c.RandomMinTokens < 1 {
		c.RandomMinTokens = 1
	}
	if c.LineLimit < 1 {
		c.LineLimit = 1
	}
	if c.MinLineTail < 0 {
		c.MinLineTail = 0
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 30
	}
	return c
}
