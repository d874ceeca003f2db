// Package config handles configuration loading and validation for storefront-admin.
//
// Configuration is read from an optional TOML file and then overridden by
// environment variables. Every field has a default, so the server starts with
// no file at all.
//
// # Configuration Structure
//
//	[server]
//	listen_addr = "0.0.0.0:3001"
//	shutdown_timeout_seconds = 30
//	ui_dir = "ui"                            # optional, relative to the config file
//
//	[storage]
//	backend = "file"                         # or "memory"
//	data_dir = "data"                        # relative to the config file
//	file_name_template = "{{collection}}.json"
//
//	[admin]
//	allowed_ips = ["203.0.113.7", "192.168.1.0/24"]
//	expose_allowlist = false
//	protect_product_listing = false
//
//	[cors]
//	allowed_origins = ["https://shop.example"]
//	allow_all = false
//
// # Environment Overrides
//
//   - STOREFRONT_LISTEN_ADDR
//   - STOREFRONT_STORAGE_BACKEND
//   - STOREFRONT_DATA_DIR
//   - STOREFRONT_UI_DIR
//   - STOREFRONT_ALLOWED_IPS (comma-separated)
//   - STOREFRONT_CORS_ORIGINS (comma-separated)
//   - STOREFRONT_CORS_ALLOW_ALL
//
// # Example Usage
//
//	cfg, err := config.LoadConfig("/etc/storefront-admin.toml")
//	if err != nil {
//	    log.Fatalf("%v", err)
//	}
//	if err := cfg.ValidateConfig(); err != nil {
//	    log.Fatalf("%v", err)
//	}
package config
