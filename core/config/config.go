package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const (
	configDirName  = ".factorial"
	configFileName = "config.json"

	defaultHistoryName = "history"
)

type Config struct {
	HistoryFile string `json:"history_file"`
	MaxInput    int64  `json:"max_input"`
	Color       bool   `json:"color"`
}

// Default returns the configuration used when no file exists:
// colour on, no input limit, history next to the config file.
func Default() Config {
	cfg := Config{Color: true}
	if dir, err := configDir(); err == nil {
		cfg.HistoryFile = filepath.Join(dir, defaultHistoryName)
	}
	return cfg
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to detect home directory: %w", err)
	}
	return filepath.Join(home, configDirName), nil
}

// FilePath builds the path to ~/.factorial/config.json.
func FilePath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// LoadConfigFile reads configuration from ~/.factorial/config.json.
// A missing file is not an error: defaults are returned instead.
func LoadConfigFile() (Config, error) {
	path, err := FilePath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// Load reads configuration from path, falling back to defaults if the
// file does not exist. Fields absent from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(err, "open config")
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Save writes cfg to path, creating the parent directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create config dir")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config file")
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		f.Close()
		return errors.Wrapf(err, "write config %s", path)
	}

	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close config %s", path)
	}

	return nil
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Factorial configuration")

	cfg, err := LoadConfigFile()
	if err != nil {
		cfg = Default()
	}

	colorSel := promptui.Select{
		Label: "Colored output",
		Items: []string{"on", "off"},
	}
	_, colorChoice, err := colorSel.Run()
	if err != nil {
		return cfg, err
	}
	cfg.Color = colorChoice == "on"

	limitPrompt := promptui.Prompt{
		Label:    "Largest accepted input (0 for no limit)",
		Default:  strconv.FormatInt(cfg.MaxInput, 10),
		Validate: validateLimit,
	}
	limit, err := limitPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.MaxInput, _ = strconv.ParseInt(strings.TrimSpace(limit), 10, 64)

	histPrompt := promptui.Prompt{
		Label:   "History file",
		Default: cfg.HistoryFile,
	}
	hist, err := histPrompt.Run()
	if err != nil {
		return cfg, err
	}
	if hist = strings.TrimSpace(hist); hist != "" {
		cfg.HistoryFile = hist
	}

	path, err := FilePath()
	if err != nil {
		return cfg, err
	}

	if err := Save(path, cfg); err != nil {
		return cfg, err
	}

	fmt.Printf("Configuration saved to %s ✅\n", path)

	return cfg, nil
}

func validateLimit(input string) error {
	n, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return errors.New("enter a whole number")
	}
	if n < 0 {
		return errors.New("limit cannot be negative")
	}
	return nil
}

// Validate checks the configuration for values the program cannot use.
func (c *Config) Validate() error {
	if c.MaxInput < 0 {
		return fmt.Errorf("max_input must not be negative, got %d", c.MaxInput)
	}
	return nil
}
