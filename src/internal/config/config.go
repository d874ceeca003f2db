package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/pelletier/go-toml/v2"

	apperrors "github.com/shopworks/storefront-admin/src/internal/errors"
	"github.com/shopworks/storefront-admin/src/internal/log"
	"github.com/shopworks/storefront-admin/src/internal/utils"
)

// LoadConfig reads the TOML file at configPath on top of Default and then
// applies environment overrides. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	if !filepath.IsAbs(configFile) {
		path, err := filepath.Abs(configFile)
		if err != nil {
			return nil, apperrors.NewConfigError("failed to get absolute path", err)
		}
		configFile = path
	}

	cfg := Default()

	content, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Infof("Configuration file not found, using defaults: %s", configFile)
	case err != nil:
		return nil, apperrors.NewConfigError("failed to read config file", err)
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				log.Errorf(derr.String())
				row, col := derr.Position()
				log.Errorf("Error at line %d, column %d", row, col)
			}
			return nil, apperrors.NewConfigError("failed to parse config file", err)
		}
	}

	cfg.fillMissingSections()

	if err := env.Parse(cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to apply environment overrides", err)
	}

	cfg._absConfigFilePath = configFile

	log.Debugf("Configuration file path: %s", configFile)
	log.Debugf("Data directory: %s", cfg.GetAbsDataDir())

	return cfg, nil
}

// fillMissingSections restores defaults for sections a config file set to empty.
func (c *Config) fillMissingSections() {
	def := Default()
	if c.Server == nil {
		c.Server = def.Server
	}
	if c.Storage == nil {
		c.Storage = def.Storage
	}
	if c.Admin == nil {
		c.Admin = def.Admin
	}
	if c.CORS == nil {
		c.CORS = def.CORS
	}
}

// GetConfigDir returns the directory the configuration was loaded from.
func (c *Config) GetConfigDir() string {
	return filepath.Dir(c._absConfigFilePath)
}

// GetAbsDataDir resolves the data directory relative to the config file.
func (c *Config) GetAbsDataDir() string {
	return utils.GetAbsolutePath(c.Storage.DataDir, c.GetConfigDir())
}

// GetAbsUIDir resolves the frontend directory relative to the config file.
// It returns an empty string when no directory is configured.
func (c *Config) GetAbsUIDir() string {
	if c.Server.UIDir == "" {
		return ""
	}
	return utils.GetAbsolutePath(c.Server.UIDir, c.GetConfigDir())
}

// SerializeConfig renders the effective configuration as TOML.
func (c *Config) SerializeConfig() (*bytes.Buffer, error) {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return &buf, nil
}
