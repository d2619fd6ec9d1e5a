package config

import "time"

// Token lifetime bounds. The service issues short-lived tokens; anything
// outside this window is a misconfiguration, not a tuning choice.
const (
	minTokenDuration = 10 * time.Minute
	maxTokenDuration = 30 * time.Minute
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.App.TokenDuration < minTokenDuration || cfg.App.TokenDuration > maxTokenDuration {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Carbon.BaseURL == "" || cfg.Carbon.Timeout <= 0 {
		return ErrInvalidCarbonConfigs
	}

	return nil
}
