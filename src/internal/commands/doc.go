// Package commands implements CLI command handlers for storefront-admin.
//
// Each command implements the Runner interface:
//   - Init(): Parse arguments, load the configuration and build dependencies
//   - Run(): Execute the command
//   - Name(): Return command name for routing
//
// # Available Commands
//
//   - server: Run the HTTP API until SIGINT/SIGTERM
//   - reset: Empty content, products or both (requires -yes)
//   - info: Print collection counts and timestamps
//   - check-config: Validate the configuration and print the effective values
//
// Before the configuration is read, an optional dotenv file (AppContext.EnvFile)
// is loaded into the environment so STOREFRONT_* overrides can live next to the
// config file.
package commands
