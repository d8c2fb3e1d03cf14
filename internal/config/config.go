package config

import (
	"time"
)

// Config is the top-level configuration container for the gateway. It is
// populated by merging environment variables and command-line flags.
//
// Struct tags:
//   - env — environment variable name for the field (caarlos0/env).
type Config struct {
	// Server holds the inbound HTTP listener settings.
	Server Server

	// Auth holds the shared-secret settings for the bearer-token gate.
	Auth Auth

	// GenAI holds the DigitalOcean GenAI API client settings and the
	// process-wide defaults applied when a request omits them.
	GenAI GenAI

	// Spaces holds the DigitalOcean Spaces (S3-compatible) settings.
	Spaces Spaces
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout bounds a single inbound request (e.g. "30s", "1m").
	// Zero disables the server-side timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Auth holds the shared bearer secret that gates every protected route.
type Auth struct {
	// BearerToken is the process-wide secret compared for exact equality
	// against the token presented in the Authorization header. Read once
	// at startup and never mutated.
	// Env: API_BEARER_TOKEN
	BearerToken string `env:"API_BEARER_TOKEN"`
}

// GenAI holds the provider API settings and the defaults substituted into
// agent and knowledge-base creation requests when the caller omits them.
type GenAI struct {
	// APIToken authenticates the gateway against the DigitalOcean API.
	// Env: DIGITALOCEAN_API_TOKEN
	APIToken string `env:"DIGITALOCEAN_API_TOKEN"`

	// BaseURL is the provider API root.
	// Env: DIGITALOCEAN_API_URL
	BaseURL string `env:"DIGITALOCEAN_API_URL" envDefault:"https://api.digitalocean.com"`

	// DefaultModelUUID is the model used for agents created without an
	// explicit model.
	// Env: DEFAULT_MODEL_UUID
	DefaultModelUUID string `env:"DEFAULT_MODEL_UUID"`

	// DefaultProjectUUID is the project new resources are created under.
	// Env: DEFAULT_PROJECT_UUID
	DefaultProjectUUID string `env:"DEFAULT_PROJECT_UUID"`

	// DefaultWorkspaceUUID is the workspace new agents are created in.
	// Env: DEFAULT_WORKSPACE_UUID
	DefaultWorkspaceUUID string `env:"DEFAULT_WORKSPACE_UUID"`

	// DefaultRegion is the region new resources are deployed to. Falls
	// back to the Spaces region when empty.
	// Env: DEFAULT_REGION
	DefaultRegion string `env:"DEFAULT_REGION"`

	// EmbeddingModelUUID is the embedding model wired into every created
	// knowledge base.
	// Env: EMBEDDING_MODEL_UUID
	EmbeddingModelUUID string `env:"EMBEDDING_MODEL_UUID"`

	// DatabaseID is the OpenSearch database cluster backing created
	// knowledge bases.
	// Env: DATABASE_ID
	DatabaseID string `env:"DATABASE_ID"`
}

// Spaces holds credentials and addressing for the object-storage service.
type Spaces struct {
	// Key and Secret are the Spaces access credentials.
	// Env: SPACES_KEY / SPACES_SECRET
	Key    string `env:"SPACES_KEY"`
	Secret string `env:"SPACES_SECRET"`

	// Region is the DigitalOcean region of the Spaces endpoint.
	// Env: SPACES_REGION
	Region string `env:"SPACES_REGION" envDefault:"tor1"`

	// Bucket is the knowledge-base bucket that file operations target.
	// Env: SPACES_BUCKET_NAME
	Bucket string `env:"SPACES_BUCKET_NAME" envDefault:"do-genai-api"`

	// Endpoint overrides the region-derived endpoint URL. When empty the
	// adapter uses https://<region>.digitaloceanspaces.com.
	// Env: SPACES_ENDPOINT
	Endpoint string `env:"SPACES_ENDPOINT"`
}

// GetConfig loads, merges, and validates the gateway configuration from all
// sources. Environment variables win over flag values for non-zero fields.
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		build()
}
