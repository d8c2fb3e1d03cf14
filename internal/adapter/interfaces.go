// Package adapter provides transport clients for the gateway's external
// collaborators: the DigitalOcean GenAI API and DigitalOcean Spaces
// (S3-compatible object storage).
//
// The [GenAIAdapter] and [SpacesAdapter] interfaces decouple the service
// layer from the underlying transports. Provider failures are mapped to
// [fault.Fault] values carrying the provider's status code; object-storage
// failures are mapped to the sentinel errors in errors.go so that callers
// can use [errors.Is] for transport-agnostic handling.
package adapter

import (
	"context"
	"io"

	"github.com/mvallejo3/do-genai-api/models"
)

// GenAIAdapter is the client contract for the DigitalOcean GenAI API.
// Responses are returned as raw provider payloads ([models.JSON]); the
// gateway forwards them without reshaping.
type GenAIAdapter interface {
	// ListAgents returns all agents visible to the configured token.
	ListAgents(ctx context.Context) (models.JSON, error)

	// CreateAgent creates an agent from the given provider request body.
	CreateAgent(ctx context.Context, body models.JSON) (models.JSON, error)

	// GetAgent fetches a single agent by UUID.
	GetAgent(ctx context.Context, agentUUID string) (models.JSON, error)

	// DeleteAgent deletes the agent with the given UUID.
	DeleteAgent(ctx context.Context, agentUUID string) (models.JSON, error)

	// ListAgentAPIKeys lists the API keys of one agent.
	ListAgentAPIKeys(ctx context.Context, agentUUID string) (models.JSON, error)

	// CreateAgentAPIKey creates a named API key for one agent. The
	// response includes the secret key itself.
	CreateAgentAPIKey(ctx context.Context, agentUUID, name string) (models.JSON, error)

	// AttachKnowledgeBase links a knowledge base to an agent.
	AttachKnowledgeBase(ctx context.Context, agentUUID, knowledgeBaseUUID string) (models.JSON, error)

	// ListKnowledgeBases returns all knowledge bases.
	ListKnowledgeBases(ctx context.Context) (models.JSON, error)

	// CreateKnowledgeBase creates a knowledge base from the given provider
	// request body.
	CreateKnowledgeBase(ctx context.Context, body models.JSON) (models.JSON, error)

	// GetKnowledgeBase fetches a single knowledge base by UUID.
	GetKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error)

	// DeleteKnowledgeBase deletes the knowledge base with the given UUID.
	DeleteKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error)

	// ListKnowledgeBaseDataSources lists the data sources of one
	// knowledge base.
	ListKnowledgeBaseDataSources(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error)

	// CreateIndexingJob starts an indexing job for a knowledge base. A nil
	// dataSourceUUIDs slice indexes every data source.
	CreateIndexingJob(ctx context.Context, knowledgeBaseUUID string, dataSourceUUIDs []string) (models.JSON, error)

	// ListModels lists the models matching the given use cases. When
	// publicOnly is true, private models are excluded.
	ListModels(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error)

	// ListDatabases lists all database clusters of the account, every
	// engine included. Filtering is the caller's concern.
	ListDatabases(ctx context.Context) (models.JSON, error)
}

// SpacesAdapter is the client contract for the object-storage service.
type SpacesAdapter interface {
	// Upload writes the object at key, replacing any existing object with
	// the same key (last write wins).
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error

	// ListObjects lists objects in the configured bucket filtered by
	// prefix. A maxKeys of zero means no limit.
	ListObjects(ctx context.Context, prefix string, maxKeys int) ([]models.FileInfo, error)

	// DeleteObject removes the object at key. Returns [ErrObjectNotFound]
	// (wrapped) when no such object exists.
	DeleteObject(ctx context.Context, key string) error

	// ListBuckets lists all buckets owned by the account.
	ListBuckets(ctx context.Context) ([]models.Bucket, error)

	// CreateBucket creates a bucket in the given region. An empty region
	// uses the adapter's configured region.
	CreateBucket(ctx context.Context, name, region string) error

	// GetBucketInfo returns the region of an existing bucket. Returns
	// [ErrBucketNotFound] (wrapped) when the bucket does not exist.
	GetBucketInfo(ctx context.Context, name string) (models.BucketInfo, error)

	// DeleteBucket removes an empty bucket. Returns [ErrBucketNotFound]
	// or [ErrBucketNotEmpty] (wrapped) as appropriate.
	DeleteBucket(ctx context.Context, name string) error
}
