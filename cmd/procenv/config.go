package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/pelletier/go-toml/v2"
)

type outputConfig struct {
	// JSON makes --json the default.
	JSON bool `toml:"json,omitempty"`

	// Color is "auto", "always", or "never".
	Color string `toml:"color,omitempty"`
}

type redactConfig struct {
	// Patterns are regular expressions matched against variable names.
	// Values of matching variables are not printed.
	Patterns []string `toml:"patterns,omitempty"`
}

type config struct {
	Output outputConfig `toml:"output,omitempty"`
	Redact redactConfig `toml:"redact,omitempty"`
}

func defaultConfig() *config {
	return &config{
		Output: outputConfig{Color: "auto"},
		Redact: redactConfig{
			Patterns: []string{`(?i)(secret|token|passw(or)?d|api[_-]?key|private[_-]?key)`},
		},
	}
}

// loadConfig reads the configuration at path. A missing file yields the
// defaults.
func loadConfig(path string) (*config, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return defaultConfig(), nil
	}
	if err != nil {
		return nil, err
	}
	return loadConfigBytes(contents)
}

func loadConfigBytes(contents []byte) (*config, error) {
	c := defaultConfig()
	if err := toml.Unmarshal(contents, c); err != nil {
		return nil, err
	}
	switch c.Output.Color {
	case "", "auto", "always", "never":
	default:
		return nil, fmt.Errorf("invalid color mode %q", c.Output.Color)
	}
	return c, nil
}

// A varRedactor hides the values of variables whose names look secret.
type varRedactor struct {
	patterns []*regexp.Regexp
}

func (c *config) redactor() (*varRedactor, error) {
	patterns := make([]*regexp.Regexp, len(c.Redact.Patterns))
	for i, p := range c.Redact.Patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid redaction pattern %q: %w", p, err)
		}
		patterns[i] = re
	}
	return &varRedactor{patterns: patterns}, nil
}

func (r *varRedactor) value(name, value string) string {
	for _, re := range r.patterns {
		if re.MatchString(name) {
			return "<redacted>"
		}
	}
	return value
}
