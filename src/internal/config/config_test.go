package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shopworks/storefront-admin/src/internal/log"
)

func init() {
	log.DisableLogs()
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configFile := filepath.Join(t.TempDir(), "storefront-admin.toml")
	if err := os.WriteFile(configFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return configFile
}

func TestLoadConfig_NonExistentFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file: %v", err)
	}

	if cfg.Server.ListenAddr != "0.0.0.0:3001" {
		t.Errorf("Expected default listen address, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Storage.Backend != BackendFile {
		t.Errorf("Expected default backend %q, got %q", BackendFile, cfg.Storage.Backend)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected defaults to be valid: %v", err)
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	configFile := writeConfig(t, `[server
	listen_addr = "x"`)

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	configFile := writeConfig(t, `[server]
listen_addr = "127.0.0.1:8080"

[storage]
data_dir = "/srv/shop"

[admin]
allowed_ips = ["203.0.113.7", "10.1.0.0/16"]
expose_allowlist = true

[cors]
allowed_origins = ["https://shop.example"]
`)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.Server.ListenAddr != "127.0.0.1:8080" {
		t.Errorf("Unexpected listen address %s", cfg.Server.ListenAddr)
	}
	if cfg.Server.ShutdownTimeoutSeconds != 30 {
		t.Errorf("Expected unspecified field to keep default, got %d", cfg.Server.ShutdownTimeoutSeconds)
	}
	if cfg.Storage.FileNameTemplate != "{{collection}}.json" {
		t.Errorf("Expected default template, got %s", cfg.Storage.FileNameTemplate)
	}
	if !reflect.DeepEqual(cfg.Admin.AllowedIPs, []string{"203.0.113.7", "10.1.0.0/16"}) {
		t.Errorf("Unexpected allowlist %v", cfg.Admin.AllowedIPs)
	}
	if !cfg.Admin.ExposeAllowlist {
		t.Error("Expected expose_allowlist to be true")
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://shop.example"}) {
		t.Errorf("Unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.GetAbsDataDir() != "/srv/shop" {
		t.Errorf("Expected absolute data dir to be kept, got %s", cfg.GetAbsDataDir())
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected config to be valid: %v", err)
	}
}

func TestLoadConfig_RelativeDataDir(t *testing.T) {
	configFile := writeConfig(t, `[storage]
data_dir = "db"
`)

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(filepath.Dir(configFile), "db")
	if cfg.GetAbsDataDir() != want {
		t.Errorf("GetAbsDataDir() = %s, want %s", cfg.GetAbsDataDir(), want)
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	configFile := writeConfig(t, `[admin]
allowed_ips = ["203.0.113.7"]
`)

	t.Setenv("STOREFRONT_LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("STOREFRONT_STORAGE_BACKEND", "memory")
	t.Setenv("STOREFRONT_ALLOWED_IPS", "198.51.100.1,198.51.100.2")
	t.Setenv("STOREFRONT_CORS_ALLOW_ALL", "true")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("Expected env listen address, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Storage.Backend != BackendMemory {
		t.Errorf("Expected env backend, got %s", cfg.Storage.Backend)
	}
	if !reflect.DeepEqual(cfg.Admin.AllowedIPs, []string{"198.51.100.1", "198.51.100.2"}) {
		t.Errorf("Expected env allowlist, got %v", cfg.Admin.AllowedIPs)
	}
	if !cfg.CORS.AllowAll {
		t.Error("Expected env allow_all")
	}
}

func TestLoadConfig_AllowAllOnly(t *testing.T) {
	configFile := writeConfig(t, "[cors]\nallow_all = true\n")

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.CORS.AllowAll {
		t.Fatal("Expected allow_all from file")
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected allow_all alone to be valid, got %v", err)
	}
}

func TestLoadConfig_AllowAllFromEnvOnly(t *testing.T) {
	t.Setenv("STOREFRONT_CORS_ALLOW_ALL", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected env allow_all alone to be valid, got %v", err)
	}
}

func TestSerializeConfig(t *testing.T) {
	buf, err := Default().SerializeConfig()
	if err != nil {
		t.Fatalf("SerializeConfig() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"[server]", "listen_addr", "0.0.0.0:3001", "[storage]", "file_name_template"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected serialized config to contain %q, got:\n%s", want, out)
		}
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantPaths []string
	}{
		{
			name:   "valid defaults",
			mutate: func(c *Config) {},
		},
		{
			name:      "bad listen address",
			mutate:    func(c *Config) { c.Server.ListenAddr = "nowhere" },
			wantPaths: []string{"server.listen_addr"},
		},
		{
			name:      "unknown backend",
			mutate:    func(c *Config) { c.Storage.Backend = "redis" },
			wantPaths: []string{"storage.backend"},
		},
		{
			name:      "file backend needs data dir",
			mutate:    func(c *Config) { c.Storage.DataDir = "" },
			wantPaths: []string{"storage.data_dir"},
		},
		{
			name: "memory backend needs no data dir",
			mutate: func(c *Config) {
				c.Storage.Backend = BackendMemory
				c.Storage.DataDir = ""
			},
		},
		{
			name:      "template without placeholder",
			mutate:    func(c *Config) { c.Storage.FileNameTemplate = "store.json" },
			wantPaths: []string{"storage.file_name_template"},
		},
		{
			name:      "template with directory",
			mutate:    func(c *Config) { c.Storage.FileNameTemplate = "../{{collection}}.json" },
			wantPaths: []string{"storage.file_name_template"},
		},
		{
			name:      "bad allowlist entry",
			mutate:    func(c *Config) { c.Admin.AllowedIPs = []string{"10.0.0.1", "office"} },
			wantPaths: []string{"admin.allowed_ips[1]"},
		},
		{
			name:      "bad origin",
			mutate:    func(c *Config) { c.CORS.AllowedOrigins = []string{"not a url"} },
			wantPaths: []string{"cors.allowed_origins[0]"},
		},
		{
			name:   "allow all with default origins",
			mutate: func(c *Config) { c.CORS.AllowAll = true },
		},
		{
			name:      "missing section",
			mutate:    func(c *Config) { c.Admin = nil },
			wantPaths: []string{"admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.ValidateConfig()
			if len(tt.wantPaths) == 0 {
				if err != nil {
					t.Fatalf("Expected no error, got %v", err)
				}
				return
			}

			verrs, ok := err.(ValidationErrors)
			if !ok {
				t.Fatalf("Expected ValidationErrors, got %T (%v)", err, err)
			}
			var paths []string
			for _, e := range verrs {
				paths = append(paths, e.FieldPath)
			}
			if !reflect.DeepEqual(paths, tt.wantPaths) {
				t.Errorf("Field paths = %v, want %v", paths, tt.wantPaths)
			}
		})
	}
}
