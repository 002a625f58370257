package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Load reads and parses a config file. Files ending in .json, .jsonc or
// .hujson are read as JSON with comments; everything else as YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, err
	}

	// Resolve relative paths based on config file location
	resolveRelativePaths(cfg, filepath.Dir(path))

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes config data on top of Default. ext selects the format.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()

	switch strings.ToLower(ext) {
	case ".json", ".jsonc", ".hujson":
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
		if err := json.Unmarshal(std, cfg); err != nil {
			return nil, fmt.Errorf("parsing config JSON: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML: %w", err)
		}
	}

	// Expand environment variables in string values
	expandEnvVars(cfg)

	if sp, err := ParseSpeed(string(cfg.Speed)); err == nil {
		cfg.Speed = sp
	}
	cfg.SetDefaults()

	return cfg, nil
}

// expandEnvVars expands environment variables in the config.
func expandEnvVars(c *Config) {
	c.Reason = os.ExpandEnv(c.Reason)
	c.Log.File = os.ExpandEnv(c.Log.File)
}

// resolveRelativePaths resolves the log file path relative to the config file.
func resolveRelativePaths(c *Config, basePath string) {
	if c.Log.File != "" {
		c.Log.File = expandTildeAndResolvePath(c.Log.File, basePath)
	}
}

// expandTildeAndResolvePath expands ~ to home directory and resolves relative paths.
func expandTildeAndResolvePath(path, basePath string) string {
	// Expand ~ to home directory
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				path = home
			} else if path[1] == '/' || path[1] == filepath.Separator {
				path = filepath.Join(home, path[2:])
			}
		}
	}

	// Resolve relative paths
	if !filepath.IsAbs(path) {
		path = filepath.Join(basePath, path)
	}

	return path
}
