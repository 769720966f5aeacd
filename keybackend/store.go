package keybackend

// TokenConfig holds configuration for loading the shared-secret token.
type TokenConfig struct {
	Inline string `mapstructure:"inline"` // Token given directly in config
	File   string `mapstructure:"file"`   // Path to a file containing the token
}

// NewTokenVerifier creates a StaticToken from the given configuration.
// The file, if specified, takes precedence over the inline token.
func NewTokenVerifier(cfg TokenConfig) (*StaticToken, error) {
	if cfg.File != "" {
		token, err := LoadTokenFromFile(cfg.File)
		if err != nil {
			return nil, err
		}
		return NewStaticToken(token), nil
	}

	if cfg.Inline == "" {
		return nil, ErrTokenNotConfigured
	}

	return NewStaticToken(cfg.Inline), nil
}
