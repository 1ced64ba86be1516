// Package config handles loading agentdeck.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rfenaux/agentdeck/internal/paths"
)

// Config represents the agentdeck.toml configuration file.
type Config struct {
	Store Store `toml:"store"`
	List  List  `toml:"list"`
}

// Store contains task-store configuration.
type Store struct {
	// DataDir overrides the directory holding the task store files.
	// Defaults to ~/.local/share/agentdeck.
	DataDir string `toml:"data-dir"`
}

// List contains list-command configuration.
type List struct {
	// ReadyLimit caps how many tasks `deck task ready` prints by default.
	// Zero means no limit.
	ReadyLimit int `toml:"ready-limit"`

	// ImpactThreshold is the default minimum dependent count for
	// `deck dep impact`.
	ImpactThreshold int `toml:"impact-threshold"`
}

// Load loads configuration from the working directory and the global config
// file. Returns an empty config if no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	localCfg, localMeta, err := loadConfigFile(filepath.Join(dir, "agentdeck.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, localCfg, globalMeta, localMeta)
	return merged, nil
}

// DataDir resolves the task-store directory, honoring (in order) the
// AGENTDECK_DATA_DIR environment variable, the config file, and the default.
func (c *Config) DataDir() (string, error) {
	if env := os.Getenv("AGENTDECK_DATA_DIR"); env != "" {
		return env, nil
	}
	return paths.ResolveWithDefault(c.Store.DataDir, paths.DefaultDataDir)
}

func globalConfigPath() (string, error) {
	configDir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, localCfg *Config, globalMeta, localMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if localCfg == nil {
		localCfg = &Config{}
	}

	merged := Config{}
	merged.Store.DataDir = mergeString(localMeta.IsDefined("store", "data-dir"), localCfg.Store.DataDir, globalCfg.Store.DataDir)
	merged.List.ReadyLimit = mergeInt(localMeta.IsDefined("list", "ready-limit"), localCfg.List.ReadyLimit, globalMeta.IsDefined("list", "ready-limit"), globalCfg.List.ReadyLimit)
	merged.List.ImpactThreshold = mergeInt(localMeta.IsDefined("list", "impact-threshold"), localCfg.List.ImpactThreshold, globalMeta.IsDefined("list", "impact-threshold"), globalCfg.List.ImpactThreshold)

	return &merged
}

func mergeString(localDefined bool, localValue, globalValue string) string {
	value := globalValue
	if localDefined {
		value = localValue
	}
	return strings.TrimSpace(value)
}

func mergeInt(localDefined bool, localValue int, globalDefined bool, globalValue int) int {
	if localDefined {
		return localValue
	}
	if globalDefined {
		return globalValue
	}
	return 0
}
