package config

import "fmt"

// validate checks that the final merged [Config] satisfies all startup
// invariants. A failed validation aborts the process before any server is
// created.
func (cfg *Config) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.BearerToken == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.GenAI.APIToken == "" {
		return fmt.Errorf("%w: DIGITALOCEAN_API_TOKEN is required", ErrInvalidGenAIConfigs)
	}
	if cfg.GenAI.DefaultModelUUID == "" || cfg.GenAI.DefaultWorkspaceUUID == "" || cfg.GenAI.DefaultRegion == "" {
		return fmt.Errorf("%w: DEFAULT_MODEL_UUID, DEFAULT_WORKSPACE_UUID, and DEFAULT_REGION must be set", ErrInvalidGenAIConfigs)
	}
	if cfg.GenAI.DefaultProjectUUID == "" {
		return fmt.Errorf("%w: DEFAULT_PROJECT_UUID is required", ErrInvalidGenAIConfigs)
	}
	if cfg.GenAI.EmbeddingModelUUID == "" || cfg.GenAI.DatabaseID == "" {
		return fmt.Errorf("%w: EMBEDDING_MODEL_UUID and DATABASE_ID are required", ErrInvalidGenAIConfigs)
	}

	if cfg.Spaces.Key == "" || cfg.Spaces.Secret == "" {
		return fmt.Errorf("%w: SPACES_KEY and SPACES_SECRET are required", ErrInvalidSpacesConfigs)
	}

	return nil
}
