package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/cardsmith/internal/generator"
)

// Default file names used when the config does not name an input or output
const (
	DefaultInput  = "total_stats.json"
	DefaultOutput = "card_data_output.ts"
)

// Config represents the application configuration
type Config struct {
	Input       string `toml:"input"`
	Output      string `toml:"output"`
	ExportName  string `toml:"export_name"`
	TypeName    string `toml:"type_name"`
	ImagePrefix string `toml:"image_prefix"`
	AssetRoot   string `toml:"asset_root"`
	CacheDir    string `toml:"cache_dir,omitempty"`
}

// Default returns the config written on first run
func Default() *Config {
	opts := generator.DefaultOptions()
	return &Config{
		Input:       DefaultInput,
		Output:      DefaultOutput,
		ExportName:  opts.ExportName,
		TypeName:    opts.TypeName,
		ImagePrefix: opts.ImagePrefix,
		AssetRoot:   ".",
	}
}

// GeneratorOptions returns the rendering options described by the config
func (c *Config) GeneratorOptions() generator.Options {
	return generator.Options{
		ExportName:  c.ExportName,
		TypeName:    c.TypeName,
		ImagePrefix: c.ImagePrefix,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGCacheHome returns XDG_CACHE_HOME or default path
func GetXDGCacheHome() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return xdgCache
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".cache")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardsmith", "config.toml")
}

// GetCacheDir returns the cache directory, honoring the config override
func (c *Config) GetCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return filepath.Join(GetXDGCacheHome(), "cardsmith")
}

// LoadConfig loads the config file, creating it with defaults if it doesn't exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := config.Save(configPath); err != nil {
			return nil, err
		}
		return config, nil
	}

	return LoadConfigFrom(configPath)
}

// LoadExisting loads the config file when one is present and readable,
// otherwise it returns the defaults. It never writes.
func LoadExisting() (*Config, error) {
	configPath := GetConfigFilePath()

	info, err := os.Stat(configPath)
	if err != nil || info.IsDir() {
		return Default(), nil
	}

	return LoadConfigFrom(configPath)
}

// LoadConfigFrom decodes the config at path. Keys missing from the file keep their defaults.
func LoadConfigFrom(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// Save encodes the config to path, creating the parent directory
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
