package config

const (
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config is the storefront-admin configuration file.
type Config struct {
	Server  *ServerConfig  `toml:"server" json:"server" validate:"required"`
	Storage *StorageConfig `toml:"storage" json:"storage" validate:"required"`
	Admin   *AdminConfig   `toml:"admin" json:"admin" validate:"required"`
	CORS    *CORSConfig    `toml:"cors" json:"cors" validate:"required"`

	_absConfigFilePath string
}

type ServerConfig struct {
	// ListenAddr is the HTTP listen address (default: 0.0.0.0:3001).
	ListenAddr string `toml:"listen_addr" json:"listen_addr" env:"STOREFRONT_LISTEN_ADDR" validate:"required,hostname_port"`
	// ShutdownTimeoutSeconds bounds graceful shutdown (default: 30).
	ShutdownTimeoutSeconds int `toml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds" validate:"gte=1"`
	// UIDir serves a prebuilt admin frontend outside /api, relative to the config file (default: disabled).
	UIDir string `toml:"ui_dir,omitempty" json:"ui_dir,omitempty" env:"STOREFRONT_UI_DIR"`
}

type StorageConfig struct {
	// Backend selects where collections live: "file" (default) or "memory".
	Backend string `toml:"backend" json:"backend" env:"STOREFRONT_STORAGE_BACKEND" validate:"required,oneof=file memory"`
	// DataDir is the directory for collection files, relative to the config file (default: data).
	DataDir string `toml:"data_dir" json:"data_dir" env:"STOREFRONT_DATA_DIR" validate:"required_if=Backend file"`
	// FileNameTemplate names a collection file. Available variables: {{collection}} (default: {{collection}}.json).
	FileNameTemplate string `toml:"file_name_template" json:"file_name_template" validate:"required,file_template"`
}

type AdminConfig struct {
	// AllowedIPs are addresses or CIDR prefixes granted admin access in addition to loopback.
	AllowedIPs []string `toml:"allowed_ips" json:"allowed_ips" env:"STOREFRONT_ALLOWED_IPS" envSeparator:"," validate:"dive,ip_or_cidr"`
	// ExposeAllowlist includes the allowlist in /api/admin/info responses (default: false).
	ExposeAllowlist bool `toml:"expose_allowlist" json:"expose_allowlist"`
	// ProtectProductListing puts GET /api/products behind the admin gate (default: false).
	ProtectProductListing bool `toml:"protect_product_listing" json:"protect_product_listing"`
}

type CORSConfig struct {
	// AllowedOrigins are the origins allowed to call the API from a browser.
	AllowedOrigins []string `toml:"allowed_origins" json:"allowed_origins" env:"STOREFRONT_CORS_ORIGINS" envSeparator:"," validate:"dive,url"`
	// AllowAll accepts any origin; AllowedOrigins is then ignored (default: false).
	AllowAll bool `toml:"allow_all" json:"allow_all" env:"STOREFRONT_CORS_ALLOW_ALL"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Server: &ServerConfig{
			ListenAddr:             "0.0.0.0:3001",
			ShutdownTimeoutSeconds: 30,
		},
		Storage: &StorageConfig{
			Backend:          BackendFile,
			DataDir:          "data",
			FileNameTemplate: "{{collection}}.json",
		},
		Admin: &AdminConfig{},
		CORS: &CORSConfig{
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
	}
}
