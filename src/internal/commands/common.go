package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/shopworks/storefront-admin/src/internal/auth"
	"github.com/shopworks/storefront-admin/src/internal/catalog"
	"github.com/shopworks/storefront-admin/src/internal/config"
	"github.com/shopworks/storefront-admin/src/internal/log"
	"github.com/shopworks/storefront-admin/src/internal/store"
)

type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

type AppContext struct {
	ConfigPath string
	// EnvFile is an optional dotenv file loaded before the configuration.
	EnvFile string
	Verbose bool
}

// loadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing default file is ignored.
func loadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	log.Debugf("Loaded environment from %s", path)
	return nil
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
func loadAndValidateConfigOrFail(ctx *AppContext) (*config.Config, error) {
	if err := loadEnvFile(ctx.EnvFile, ctx.EnvFile != DefaultEnvFile); err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %v", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %v", err)
	}

	return cfg, nil
}

// DefaultEnvFile is loaded when present and no other file is given.
const DefaultEnvFile = ".env"

// buildStore creates the storage backend selected by the configuration.
func buildStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		log.Warnf("Using in-memory storage, data will be lost on exit")
		return store.NewMemoryStore(), nil
	default:
		dir := cfg.GetAbsDataDir()
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
		}
		st, err := store.NewFileStore(dir, cfg.Storage.FileNameTemplate)
		if err != nil {
			return nil, err
		}
		log.Infof("Data directory: %s", dir)
		return st, nil
	}
}

// buildService wires the catalog service on top of the configured store.
func buildService(cfg *config.Config) (*catalog.Service, error) {
	st, err := buildStore(cfg)
	if err != nil {
		return nil, err
	}
	return catalog.NewService(st), nil
}

// buildAuthorizer creates the admin gate from the configured allowlist.
func buildAuthorizer(cfg *config.Config) (*auth.IPAllowlist, error) {
	return auth.NewIPAllowlist(cfg.Admin.AllowedIPs)
}
