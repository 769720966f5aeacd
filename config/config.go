package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bookstallhttp "github.com/sagarc03/bookstall/http"
	"github.com/sagarc03/bookstall/keybackend"
	"github.com/sagarc03/bookstall/seed"
)

// configKey is the context key for storing the loaded configuration.
type configKey struct{}

// WithContext returns a new context with the config stored.
func WithContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns an error if config is not found.
func FromContext(ctx context.Context) (*Config, error) {
	cfg, ok := ctx.Value(configKey{}).(*Config)
	if !ok || cfg == nil {
		return nil, errors.New("config not found in context")
	}
	return cfg, nil
}

// Config is the root configuration struct for bookstall.
type Config struct {
	Server  ServerConfig             `mapstructure:"server"`
	Auth    AuthConfig               `mapstructure:"auth"`
	Catalog seed.Config              `mapstructure:"catalog"`
	CORS    bookstallhttp.CORSConfig `mapstructure:"cors"`
	Log     LogConfig                `mapstructure:"log"`
}

// ServerConfig holds HTTP server configuration. Timeouts are in seconds.
type ServerConfig struct {
	Port            int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeout     int `mapstructure:"read_timeout" validate:"min=1"`
	WriteTimeout    int `mapstructure:"write_timeout" validate:"min=1"`
	IdleTimeout     int `mapstructure:"idle_timeout" validate:"min=1"`
	ShutdownTimeout int `mapstructure:"shutdown_timeout" validate:"min=1"`
}

// Addr returns the listen address for the configured port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

// Timeout converts a seconds setting to a time.Duration.
func Timeout(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}

// AuthConfig holds the shared-secret token configuration.
type AuthConfig struct {
	Token keybackend.TokenConfig `mapstructure:"token"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=text json"`
}

// flagToViperKey maps CLI flag names to viper configuration keys.
var flagToViperKey = map[string]string{
	"port":         "server.port",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"token-file":   "auth.token.file",
	"catalog-file": "catalog.file",
}

// bindFlags binds CLI flags to viper keys with custom name mapping.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		// Use custom mapping if it exists, otherwise use flag name as-is
		viperKey := f.Name
		if mapped, ok := flagToViperKey[viperKey]; ok {
			viperKey = mapped
		}

		// Only bind if the flag was explicitly set
		if f.Changed {
			_ = v.BindPFlag(viperKey, f)
		}
	})
}

// setDefaults configures default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5708)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("auth.token.inline", "token12345")
	v.SetDefault("auth.token.file", "")

	v.SetDefault("catalog.file", "")

	v.SetDefault("cors.enabled", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// validateToken requires at least one token source.
func validateToken(sl validator.StructLevel) {
	tc, ok := sl.Current().Interface().(keybackend.TokenConfig)
	if !ok {
		return
	}
	if tc.Inline == "" && tc.File == "" {
		sl.ReportError(tc.Inline, "Inline", "inline", "required_without_file", "")
	}
}

// Load reads configuration and returns a validated Config struct.
// Order of precedence (highest to lowest): flags > env > config files > defaults
//
// Parameters:
//   - configFiles: list of config file paths (later files override earlier ones)
//   - flags: cobra flag set for flag binding (can be nil)
func Load(configFiles []string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Read config files
	if len(configFiles) > 0 {
		v.SetConfigFile(configFiles[0])
		if err := v.ReadInConfig(); err != nil {
			slog.Warn("error reading config file", "file", configFiles[0], "err", err)
		}

		for _, cf := range configFiles[1:] {
			v.SetConfigFile(cf)
			if err := v.MergeInConfig(); err != nil {
				slog.Warn("error merging config file", "file", cf, "err", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")

		if err := v.ReadInConfig(); err != nil {
			var configNotFound viper.ConfigFileNotFoundError
			if !errors.As(err, &configNotFound) {
				slog.Warn("error reading config file", "err", err)
			}
		}
	}

	// 3. Bind environment variables
	v.SetEnvPrefix("BOOKSTALL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags (if provided)
	if flags != nil {
		bindFlags(v, flags)
	}

	// 5. Unmarshal into Config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// 6. Validate using go-playground/validator
	validate := validator.New()
	validate.RegisterStructValidation(validateToken, keybackend.TokenConfig{})
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}
