// Package config provides configuration loading and validation for bookstall.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (BOOKSTALL_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with BOOKSTALL_ prefix:
//   - server.port → BOOKSTALL_SERVER_PORT
//   - auth.token.inline → BOOKSTALL_AUTH_TOKEN_INLINE
//   - catalog.file → BOOKSTALL_CATALOG_FILE
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: port and read/write/idle/shutdown timeouts in seconds
//   - Auth: the shared-secret token, inline or from a file
//   - Catalog: inline items or a YAML catalog file
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level and format
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Timeouts must be at least one second
//   - A token must be configured inline or through a file
//   - Log level must be debug, info, warn, or error; format must be text or json
package config
