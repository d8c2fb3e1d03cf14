package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete.
var (
	// ErrInvalidAuthConfigs indicates the shared bearer secret is missing.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration: API_BEARER_TOKEN is required")

	// ErrInvalidGenAIConfigs indicates incomplete provider API settings
	// (missing API token or required resource defaults).
	ErrInvalidGenAIConfigs = errors.New("invalid genai configuration")

	// ErrInvalidSpacesConfigs indicates missing object-storage credentials.
	ErrInvalidSpacesConfigs = errors.New("invalid spaces configuration")

	// ErrInvalidServerConfigs indicates invalid HTTP listener settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
