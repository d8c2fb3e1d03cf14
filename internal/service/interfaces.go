// Package service implements the business layer of the gateway: one service
// per resource domain, each validating parsed input, performing existence
// checks, and delegating transport to the outbound adapters.
//
// Services return either a serializable value or an error. Errors intended
// for the caller are [fault.Fault] values (400 for input problems, 404 for
// missing resources, provider status for upstream failures); anything else
// is treated as an internal failure by the transport layer.
package service

import (
	"context"
	"io"

	"github.com/mvallejo3/do-genai-api/models"
)

// AgentsService manages DigitalOcean GenAI agents.
type AgentsService interface {
	List(ctx context.Context) (models.JSON, error)
	Create(ctx context.Context, req models.CreateAgentRequest) (models.JSON, error)
	Get(ctx context.Context, id string) (models.JSON, error)
	Delete(ctx context.Context, id string) (models.JSON, error)
	ListAPIKeys(ctx context.Context, id string) (models.JSON, error)
	CreateAPIKey(ctx context.Context, id string, req models.CreateAgentAPIKeyRequest) (models.JSON, error)
	AttachKnowledgeBase(ctx context.Context, id string, req models.AttachKnowledgeBaseRequest) (models.AttachKnowledgeBaseResult, error)
}

// KnowledgeBasesService manages knowledge bases and their indexing jobs.
type KnowledgeBasesService interface {
	List(ctx context.Context) (models.JSON, error)
	Create(ctx context.Context, req models.CreateKnowledgeBaseRequest) (models.JSON, error)
	Get(ctx context.Context, id string) (models.JSON, error)
	Delete(ctx context.Context, id string) (models.JSON, error)
	ListDataSources(ctx context.Context, id string) (models.JSON, error)
	Reindex(ctx context.Context, req models.ReindexRequest) (models.ReindexResult, error)
}

// ModelsService lists the models available for agents.
type ModelsService interface {
	List(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error)
}

// DatabasesService lists the OpenSearch database clusters of the account.
type DatabasesService interface {
	ListOpenSearch(ctx context.Context) (models.DatabaseListing, error)
}

// UploadFile is one file of a multipart upload batch handed to
// [FilesService.Upload].
type UploadFile struct {
	Filename    string
	ContentType string
	Reader      io.Reader

	// Err records a transport-level failure producing the part's content.
	// A file carrying Err is reported as failed in its upload result
	// without touching storage.
	Err error
}

// FilesService manages objects in the knowledge-base bucket.
type FilesService interface {
	List(ctx context.Context, prefix string, maxKeys int) (models.FileListing, error)
	Upload(ctx context.Context, folder string, files []UploadFile) (models.UploadSummary, error)
	Delete(ctx context.Context, key string) (models.DeleteFileResult, error)
}

// BucketsService manages Spaces buckets.
type BucketsService interface {
	List(ctx context.Context) (models.BucketListing, error)
	Create(ctx context.Context, req models.CreateBucketRequest) (models.CreateBucketResult, error)
	Get(ctx context.Context, name string) (models.BucketInfo, error)
	Delete(ctx context.Context, name string) (models.DeleteBucketResult, error)
}
