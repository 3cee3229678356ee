// Package config provides configuration loading for the editline tools using TOML.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"editline"
)

// Prompt settings
type Prompt struct {
	Text string `toml:"text"`
}

// History settings
type History struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"` // "~" expands to the home directory
}

// Completion settings
type Completion struct {
	Words []string `toml:"words"` // candidates offered for tab completion
}

// Keybindings maps actions to keys in emacs notation ("C-d", "M-d", "M-C-x").
type Keybindings struct {
	Exit   string `toml:"exit"`   // end input, as if EOF was read
	Signal string `toml:"signal"` // report a signal to the caller
	Accept string `toml:"accept"` // accept the line as typed
}

// Config is the main configuration struct
type Config struct {
	Prompt      Prompt      `toml:"prompt"`
	History     History     `toml:"history"`
	Completion  Completion  `toml:"completion"`
	Keybindings Keybindings `toml:"keybindings"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Prompt: Prompt{
			Text: "test> ",
		},
		History: History{
			Enabled: true,
			File:    "~/.editline_history",
		},
		Completion: Completion{
			Words: []string{"foo ", "bar ", "bsd ", "cli ", "ls ", "cd ", "malloc ", "tee "},
		},
		Keybindings: Keybindings{
			Exit: "M-d",
		},
	}
}

// configDir returns the configuration directory path.
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "editline"), nil
}

// Path returns the path to the user's config file.
func Path() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads configuration, layering user config on top of defaults.
// Returns the default config if no user config exists.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return Default(), nil // Return defaults if we can't determine path
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadFile(configPath)
}

// LoadFile loads the config at path on top of defaults. Unlike Load, a
// missing file is an error.
func LoadFile(path string) (*Config, error) {
	userCfg, err := loadFromTOML(path)
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	cfg := merge(Default(), userCfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	return cfg, nil
}

// loadFromTOML loads a TOML config file and returns the config.
func loadFromTOML(path string) (*tomlConfig, error) {
	var cfg tomlConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config TOML: %w", err)
	}
	return &cfg, nil
}

// tomlConfig mirrors Config with pointer fields where the zero value is
// a meaningful setting, so an omitted key can be told apart from false
// or an empty list.
type tomlConfig struct {
	Prompt struct {
		Text *string `toml:"text"`
	} `toml:"prompt"`
	History struct {
		Enabled *bool  `toml:"enabled"`
		File    string `toml:"file"`
	} `toml:"history"`
	Completion struct {
		Words *[]string `toml:"words"`
	} `toml:"completion"`
	Keybindings Keybindings `toml:"keybindings"`
}

// merge layers user config on top of defaults.
// Only values present in the user config override defaults.
func merge(defaults *Config, user *tomlConfig) *Config {
	result := *defaults

	// Prompt
	if user.Prompt.Text != nil {
		result.Prompt.Text = *user.Prompt.Text
	}

	// History
	if user.History.Enabled != nil {
		result.History.Enabled = *user.History.Enabled
	}
	if user.History.File != "" {
		result.History.File = user.History.File
	}

	// Completion
	if user.Completion.Words != nil {
		result.Completion.Words = *user.Completion.Words
	}

	// Keybindings - override each if set
	mergeKeybinding(&result.Keybindings.Exit, user.Keybindings.Exit)
	mergeKeybinding(&result.Keybindings.Signal, user.Keybindings.Signal)
	mergeKeybinding(&result.Keybindings.Accept, user.Keybindings.Accept)

	return &result
}

func mergeKeybinding(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

// Validate checks that every configured key parses and that the prompt
// and history path can be handed to libeditline.
func (c *Config) Validate() error {
	bindings := []struct {
		action, key string
	}{
		{"exit", c.Keybindings.Exit},
		{"signal", c.Keybindings.Signal},
		{"accept", c.Keybindings.Accept},
	}
	// Keys collide on what libeditline sees, so "C-d" and "C-D" are one key.
	type nativeKey struct {
		meta bool
		code int
	}
	seen := make(map[nativeKey]string)
	for _, b := range bindings {
		if b.key == "" {
			continue
		}
		k, err := editline.ParseKey(b.key)
		if err != nil {
			return fmt.Errorf("keybinding %s: %w", b.action, err)
		}
		nk := nativeKey{k.InMetaMap(), k.Code()}
		if other, dup := seen[nk]; dup {
			return fmt.Errorf("keybinding %s: %s is already bound to %s", b.action, b.key, other)
		}
		seen[nk] = b.action
	}

	if strings.IndexByte(c.Prompt.Text, 0) >= 0 {
		return fmt.Errorf("prompt: %w", editline.ErrInvalidString)
	}
	if strings.IndexByte(c.History.File, 0) >= 0 {
		return fmt.Errorf("history file: %w", editline.ErrInvalidString)
	}
	for _, w := range c.Completion.Words {
		if strings.IndexByte(w, 0) >= 0 {
			return fmt.Errorf("completion word %q: %w", w, editline.ErrInvalidString)
		}
	}
	return nil
}

// HistoryPath returns the history file with a leading "~" expanded.
func (c *Config) HistoryPath() (string, error) {
	path := c.History.File
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding history path: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return path, nil
}

// DefaultTOML returns the default configuration as a TOML string.
// Used for --init-config to generate a user config file.
func DefaultTOML() string {
	return `# editline configuration
# Save to ~/.config/editline/config.toml and customize
# Only include settings you want to change from defaults

# Prompt settings
[prompt]
text = "test> "

# History settings
[history]
enabled = true
file = "~/.editline_history"    # Loaded on start, saved on exit

# Completion settings
[completion]
words = ["foo ", "bar ", "bsd ", "cli ", "ls ", "cd ", "malloc ", "tee "]

# Keybindings - emacs notation: "x", "C-x", "M-x", "M-C-x"
[keybindings]
exit = "M-d"                     # End input
# signal = "C-g"                 # Report a signal
# accept = "C-j"                 # Accept the line
`
}
