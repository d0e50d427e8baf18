/*
Package config manages TOML config for WordCheck.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Dict   DictConfig   `toml:"dict"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
	CLI    CliConfig    `toml:"cli"`
}

// DictConfig holds dictionary options.
type DictConfig struct {
	Path string `toml:"path"`
}

// SearchConfig bounds the correction search.
type SearchConfig struct {
	MaxSteps  int `toml:"max_steps"`  // 0 = unlimited
	CacheSize int `toml:"cache_size"` // 0 = no cache
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxQueryLen int    `toml:"max_query_len"`
	MinPrefix   int    `toml:"min_prefix"`
	MaxLimit    int    `toml:"max_limit"`
	HTTPAddr    string `toml:"http_addr"`
}

// CliConfig holds cli interface options.
type CliConfig struct {
	DefaultLimit int  `toml:"default_limit"`
	NoFilter     bool `toml:"no_filter"`
}

// GetConfigDir returns the first writable of $XDG_CONFIG_HOME/wordcheck,
// ~/.config/wordcheck (plus ~/Library/Application Support/wordcheck on macOS),
// falling back to the executable's directory.
func GetConfigDir() (string, error) {
	return utils.ResolveConfigDir()
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/wordcheck/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Dict: DictConfig{
			Path: "words.txt",
		},
		Search: SearchConfig{
			MaxSteps:  0,
			CacheSize: 20000,
		},
		Server: ServerConfig{
			MaxQueryLen: 60,
			MinPrefix:   1,
			MaxLimit:    64,
			HTTPAddr:    "",
		},
		CLI: CliConfig{
			DefaultLimit: 10,
			NoFilter:     false,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.DecodeTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps every section that still decodes as a plain map.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	sections, err := utils.ParseTOMLSections(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := sections["dict"]; ok {
		if val, ok := section.GetString("path"); ok {
			config.Dict.Path = val
		}
	}
	if section, ok := sections["search"]; ok {
		if val, ok := section.GetInt("max_steps"); ok {
			config.Search.MaxSteps = val
		}
		if val, ok := section.GetInt("cache_size"); ok {
			config.Search.CacheSize = val
		}
	}
	if section, ok := sections["server"]; ok {
		if val, ok := section.GetInt("max_query_len"); ok {
			config.Server.MaxQueryLen = val
		}
		if val, ok := section.GetInt("min_prefix"); ok {
			config.Server.MinPrefix = val
		}
		if val, ok := section.GetInt("max_limit"); ok {
			config.Server.MaxLimit = val
		}
		if val, ok := section.GetString("http_addr"); ok {
			config.Server.HTTPAddr = val
		}
	}
	if section, ok := sections["cli"]; ok {
		if val, ok := section.GetInt("default_limit"); ok {
			config.CLI.DefaultLimit = val
		}
		if val, ok := section.GetBool("no_filter"); ok {
			config.CLI.NoFilter = val
		}
	}
	config.sanitize()
	return config, nil
}

// sanitize puts back defaults for values that would disable a surface entirely.
func (c *Config) sanitize() {
	d := DefaultConfig()
	c.Search.MaxSteps = utils.AtLeast("max_steps", c.Search.MaxSteps, 0, d.Search.MaxSteps)
	c.Search.CacheSize = utils.AtLeast("cache_size", c.Search.CacheSize, 0, d.Search.CacheSize)
	c.Server.MaxQueryLen = utils.AtLeast("max_query_len", c.Server.MaxQueryLen, 1, d.Server.MaxQueryLen)
	c.Server.MinPrefix = utils.AtLeast("min_prefix", c.Server.MinPrefix, 0, d.Server.MinPrefix)
	c.Server.MaxLimit = utils.AtLeast("max_limit", c.Server.MaxLimit, 1, d.Server.MaxLimit)
	c.CLI.DefaultLimit = utils.AtLeast("default_limit", c.CLI.DefaultLimit, 0, d.CLI.DefaultLimit)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
