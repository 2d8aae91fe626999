package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds the resolved fcat configuration.
type Config struct {
	// NumberLines makes `fcat lines` prefix output with line numbers
	// unless overridden per invocation.
	NumberLines bool

	// SyncOnClose makes `fcat copy` sync the destination before closing it.
	SyncOnClose bool

	// HistoryFile is where streamy persists its prompt history.
	// Empty means $HOME/.streamy_history.
	HistoryFile string

	// EffectiveCwd is the absolute working directory (from -C/--cwd or
	// os.Getwd). Relative file arguments resolve against it.
	EffectiveCwd string

	// Sources tracks which config files were loaded (for diagnostics).
	Sources ConfigSources
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// ConfigFileName is the default project config file name.
const ConfigFileName = ".fcat.json"

// fileConfig is the serialized shape of a config file. Pointer fields
// distinguish "absent" from "explicitly false/empty" so later files only
// override what they actually set.
type fileConfig struct {
	NumberLines *bool   `json:"number_lines"`
	SyncOnClose *bool   `json:"sync_on_close"`
	HistoryFile *string `json:"history_file"`
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDirOverride string            // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath      string            // -c/--config flag value
	Env             map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest
// wins):
//  1. Defaults (everything off, no history file)
//  2. Global user config ($XDG_CONFIG_HOME/fcat/config.json or
//     ~/.config/fcat/config.json)
//  3. Project config file (.fcat.json in the working directory), or the
//     explicit file given via ConfigPath, which then must exist.
//
// Config files are JSONC: comments and trailing commas are allowed.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	var cfg Config

	globalCfg, globalPath, err := loadGlobalConfig(input.Env)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Global = globalPath
	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, projectPath, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg.Sources.Project = projectPath
	cfg = mergeConfig(cfg, projectCfg)

	cfg.EffectiveCwd = workDir

	return cfg, nil
}

// getGlobalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/fcat/config.json if set, otherwise
// ~/.config/fcat/config.json. Returns empty string if neither root can be
// determined.
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "fcat", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "fcat", "config.json")
	}

	return ""
}

// loadGlobalConfig loads the global user config file if it exists.
// Returns the parsed file, the path if loaded, and any error.
func loadGlobalConfig(env map[string]string) (fileConfig, string, error) {
	globalCfgPath := getGlobalConfigPath(env)
	if globalCfgPath == "" {
		return fileConfig{}, "", nil
	}

	globalCfg, loaded, err := loadConfigFile(globalCfgPath, false)
	if err != nil {
		return fileConfig{}, "", err
	}

	if !loaded {
		return fileConfig{}, "", nil
	}

	return globalCfg, globalCfgPath, nil
}

// loadProjectConfig loads the project config file (.fcat.json) or an
// explicit config file. Returns the parsed file, the path if loaded, and
// any error.
func loadProjectConfig(workDir, configPath string) (fileConfig, string, error) {
	var cfgFile string

	var mustExist bool

	if configPath != "" {
		// Explicit config file - must exist
		cfgFile = configPath
		if !filepath.IsAbs(cfgFile) {
			cfgFile = filepath.Join(workDir, cfgFile)
		}

		mustExist = true

		_, statErr := os.Stat(cfgFile)
		if statErr != nil {
			return fileConfig{}, "", fmt.Errorf("%w: %s", ErrConfigFileNotFound, configPath)
		}
	} else {
		// Default project config file - optional
		cfgFile = filepath.Join(workDir, ConfigFileName)
		mustExist = false
	}

	cfg, loaded, err := loadConfigFile(cfgFile, mustExist)
	if err != nil {
		return fileConfig{}, "", err
	}

	if !loaded {
		return fileConfig{}, "", nil
	}

	return cfg, cfgFile, nil
}

// loadConfigFile loads a config file. If mustExist is false, missing files
// return a zero config. Returns the parsed file, whether it was loaded,
// and any error.
func loadConfigFile(path string, mustExist bool) (fileConfig, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if mustExist {
			return fileConfig{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return fileConfig{}, false, nil
	}

	cfg, parseErr := parseConfig(data)
	if parseErr != nil {
		return fileConfig{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, parseErr)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (fileConfig, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return fileConfig{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg fileConfig

	unmarshalErr := json.Unmarshal(standardized, &cfg)
	if unmarshalErr != nil {
		return fileConfig{}, fmt.Errorf("invalid JSON: %w", unmarshalErr)
	}

	return cfg, nil
}

func mergeConfig(base Config, overlay fileConfig) Config {
	if overlay.NumberLines != nil {
		base.NumberLines = *overlay.NumberLines
	}

	if overlay.SyncOnClose != nil {
		base.SyncOnClose = *overlay.SyncOnClose
	}

	if overlay.HistoryFile != nil {
		base.HistoryFile = *overlay.HistoryFile
	}

	return base
}
