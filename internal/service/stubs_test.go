package service

import (
	"context"
	"io"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/models"
)

// stubGenAI implements adapter.GenAIAdapter with per-method hooks. Methods
// without a hook fail loudly via nil dereference, which keeps tests honest
// about what they expect to be called.
type stubGenAI struct {
	listAgents        func(ctx context.Context) (models.JSON, error)
	createAgent       func(ctx context.Context, body models.JSON) (models.JSON, error)
	getAgent          func(ctx context.Context, agentUUID string) (models.JSON, error)
	deleteAgent       func(ctx context.Context, agentUUID string) (models.JSON, error)
	listAgentAPIKeys  func(ctx context.Context, agentUUID string) (models.JSON, error)
	createAgentAPIKey func(ctx context.Context, agentUUID, name string) (models.JSON, error)
	attachKB          func(ctx context.Context, agentUUID, kbUUID string) (models.JSON, error)
	listKBs           func(ctx context.Context) (models.JSON, error)
	createKB          func(ctx context.Context, body models.JSON) (models.JSON, error)
	getKB             func(ctx context.Context, kbUUID string) (models.JSON, error)
	deleteKB          func(ctx context.Context, kbUUID string) (models.JSON, error)
	listKBDataSources func(ctx context.Context, kbUUID string) (models.JSON, error)
	createIndexingJob func(ctx context.Context, kbUUID string, dataSourceUUIDs []string) (models.JSON, error)
	listModels        func(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error)
	listDatabases     func(ctx context.Context) (models.JSON, error)
}

var _ adapter.GenAIAdapter = (*stubGenAI)(nil)

func (s *stubGenAI) ListAgents(ctx context.Context) (models.JSON, error) {
	return s.listAgents(ctx)
}

func (s *stubGenAI) CreateAgent(ctx context.Context, body models.JSON) (models.JSON, error) {
	return s.createAgent(ctx, body)
}

func (s *stubGenAI) GetAgent(ctx context.Context, agentUUID string) (models.JSON, error) {
	return s.getAgent(ctx, agentUUID)
}

func (s *stubGenAI) DeleteAgent(ctx context.Context, agentUUID string) (models.JSON, error) {
	return s.deleteAgent(ctx, agentUUID)
}

func (s *stubGenAI) ListAgentAPIKeys(ctx context.Context, agentUUID string) (models.JSON, error) {
	return s.listAgentAPIKeys(ctx, agentUUID)
}

func (s *stubGenAI) CreateAgentAPIKey(ctx context.Context, agentUUID, name string) (models.JSON, error) {
	return s.createAgentAPIKey(ctx, agentUUID, name)
}

func (s *stubGenAI) AttachKnowledgeBase(ctx context.Context, agentUUID, knowledgeBaseUUID string) (models.JSON, error) {
	return s.attachKB(ctx, agentUUID, knowledgeBaseUUID)
}

func (s *stubGenAI) ListKnowledgeBases(ctx context.Context) (models.JSON, error) {
	return s.listKBs(ctx)
}

func (s *stubGenAI) CreateKnowledgeBase(ctx context.Context, body models.JSON) (models.JSON, error) {
	return s.createKB(ctx, body)
}

func (s *stubGenAI) GetKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	return s.getKB(ctx, knowledgeBaseUUID)
}

func (s *stubGenAI) DeleteKnowledgeBase(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	return s.deleteKB(ctx, knowledgeBaseUUID)
}

func (s *stubGenAI) ListKnowledgeBaseDataSources(ctx context.Context, knowledgeBaseUUID string) (models.JSON, error) {
	return s.listKBDataSources(ctx, knowledgeBaseUUID)
}

func (s *stubGenAI) CreateIndexingJob(ctx context.Context, knowledgeBaseUUID string, dataSourceUUIDs []string) (models.JSON, error) {
	return s.createIndexingJob(ctx, knowledgeBaseUUID, dataSourceUUIDs)
}

func (s *stubGenAI) ListModels(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error) {
	return s.listModels(ctx, usecases, publicOnly)
}

func (s *stubGenAI) ListDatabases(ctx context.Context) (models.JSON, error) {
	return s.listDatabases(ctx)
}

// stubSpaces implements adapter.SpacesAdapter with per-method hooks.
type stubSpaces struct {
	upload        func(ctx context.Context, key string, body io.Reader, contentType string) error
	listObjects   func(ctx context.Context, prefix string, maxKeys int) ([]models.FileInfo, error)
	deleteObject  func(ctx context.Context, key string) error
	listBuckets   func(ctx context.Context) ([]models.Bucket, error)
	createBucket  func(ctx context.Context, name, region string) error
	getBucketInfo func(ctx context.Context, name string) (models.BucketInfo, error)
	deleteBucket  func(ctx context.Context, name string) error
}

var _ adapter.SpacesAdapter = (*stubSpaces)(nil)

func (s *stubSpaces) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	return s.upload(ctx, key, body, contentType)
}

func (s *stubSpaces) ListObjects(ctx context.Context, prefix string, maxKeys int) ([]models.FileInfo, error) {
	return s.listObjects(ctx, prefix, maxKeys)
}

func (s *stubSpaces) DeleteObject(ctx context.Context, key string) error {
	return s.deleteObject(ctx, key)
}

func (s *stubSpaces) ListBuckets(ctx context.Context) ([]models.Bucket, error) {
	return s.listBuckets(ctx)
}

func (s *stubSpaces) CreateBucket(ctx context.Context, name, region string) error {
	return s.createBucket(ctx, name, region)
}

func (s *stubSpaces) GetBucketInfo(ctx context.Context, name string) (models.BucketInfo, error) {
	return s.getBucketInfo(ctx, name)
}

func (s *stubSpaces) DeleteBucket(ctx context.Context, name string) error {
	return s.deleteBucket(ctx, name)
}
