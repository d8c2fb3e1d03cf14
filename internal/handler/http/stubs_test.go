package http

import (
	"context"

	"github.com/mvallejo3/do-genai-api/internal/service"
	"github.com/mvallejo3/do-genai-api/models"
)

// Hand-written stubs of the service interfaces. Each method delegates to an
// optional hook; tests set only the hooks their route exercises.

type stubAgents struct {
	list      func(ctx context.Context) (models.JSON, error)
	create    func(ctx context.Context, req models.CreateAgentRequest) (models.JSON, error)
	get       func(ctx context.Context, id string) (models.JSON, error)
	delete    func(ctx context.Context, id string) (models.JSON, error)
	listKeys  func(ctx context.Context, id string) (models.JSON, error)
	createKey func(ctx context.Context, id string, req models.CreateAgentAPIKeyRequest) (models.JSON, error)
	attachKB  func(ctx context.Context, id string, req models.AttachKnowledgeBaseRequest) (models.AttachKnowledgeBaseResult, error)
}

var _ service.AgentsService = (*stubAgents)(nil)

func (s *stubAgents) List(ctx context.Context) (models.JSON, error) { return s.list(ctx) }

func (s *stubAgents) Create(ctx context.Context, req models.CreateAgentRequest) (models.JSON, error) {
	return s.create(ctx, req)
}

func (s *stubAgents) Get(ctx context.Context, id string) (models.JSON, error) { return s.get(ctx, id) }

func (s *stubAgents) Delete(ctx context.Context, id string) (models.JSON, error) {
	return s.delete(ctx, id)
}

func (s *stubAgents) ListAPIKeys(ctx context.Context, id string) (models.JSON, error) {
	return s.listKeys(ctx, id)
}

func (s *stubAgents) CreateAPIKey(ctx context.Context, id string, req models.CreateAgentAPIKeyRequest) (models.JSON, error) {
	return s.createKey(ctx, id, req)
}

func (s *stubAgents) AttachKnowledgeBase(ctx context.Context, id string, req models.AttachKnowledgeBaseRequest) (models.AttachKnowledgeBaseResult, error) {
	return s.attachKB(ctx, id, req)
}

type stubKnowledgeBases struct {
	list            func(ctx context.Context) (models.JSON, error)
	create          func(ctx context.Context, req models.CreateKnowledgeBaseRequest) (models.JSON, error)
	get             func(ctx context.Context, id string) (models.JSON, error)
	delete          func(ctx context.Context, id string) (models.JSON, error)
	listDataSources func(ctx context.Context, id string) (models.JSON, error)
	reindex         func(ctx context.Context, req models.ReindexRequest) (models.ReindexResult, error)
}

var _ service.KnowledgeBasesService = (*stubKnowledgeBases)(nil)

func (s *stubKnowledgeBases) List(ctx context.Context) (models.JSON, error) { return s.list(ctx) }

func (s *stubKnowledgeBases) Create(ctx context.Context, req models.CreateKnowledgeBaseRequest) (models.JSON, error) {
	return s.create(ctx, req)
}

func (s *stubKnowledgeBases) Get(ctx context.Context, id string) (models.JSON, error) {
	return s.get(ctx, id)
}

func (s *stubKnowledgeBases) Delete(ctx context.Context, id string) (models.JSON, error) {
	return s.delete(ctx, id)
}

func (s *stubKnowledgeBases) ListDataSources(ctx context.Context, id string) (models.JSON, error) {
	return s.listDataSources(ctx, id)
}

func (s *stubKnowledgeBases) Reindex(ctx context.Context, req models.ReindexRequest) (models.ReindexResult, error) {
	return s.reindex(ctx, req)
}

type stubModels struct {
	list func(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error)
}

var _ service.ModelsService = (*stubModels)(nil)

func (s *stubModels) List(ctx context.Context, usecases []string, publicOnly bool) (models.JSON, error) {
	return s.list(ctx, usecases, publicOnly)
}

type stubDatabases struct {
	listOpenSearch func(ctx context.Context) (models.DatabaseListing, error)
}

var _ service.DatabasesService = (*stubDatabases)(nil)

func (s *stubDatabases) ListOpenSearch(ctx context.Context) (models.DatabaseListing, error) {
	return s.listOpenSearch(ctx)
}

type stubFiles struct {
	list   func(ctx context.Context, prefix string, maxKeys int) (models.FileListing, error)
	upload func(ctx context.Context, folder string, files []service.UploadFile) (models.UploadSummary, error)
	delete func(ctx context.Context, key string) (models.DeleteFileResult, error)
}

var _ service.FilesService = (*stubFiles)(nil)

func (s *stubFiles) List(ctx context.Context, prefix string, maxKeys int) (models.FileListing, error) {
	return s.list(ctx, prefix, maxKeys)
}

func (s *stubFiles) Upload(ctx context.Context, folder string, files []service.UploadFile) (models.UploadSummary, error) {
	return s.upload(ctx, folder, files)
}

func (s *stubFiles) Delete(ctx context.Context, key string) (models.DeleteFileResult, error) {
	return s.delete(ctx, key)
}

type stubBuckets struct {
	list   func(ctx context.Context) (models.BucketListing, error)
	create func(ctx context.Context, req models.CreateBucketRequest) (models.CreateBucketResult, error)
	get    func(ctx context.Context, name string) (models.BucketInfo, error)
	delete func(ctx context.Context, name string) (models.DeleteBucketResult, error)
}

var _ service.BucketsService = (*stubBuckets)(nil)

func (s *stubBuckets) List(ctx context.Context) (models.BucketListing, error) { return s.list(ctx) }

func (s *stubBuckets) Create(ctx context.Context, req models.CreateBucketRequest) (models.CreateBucketResult, error) {
	return s.create(ctx, req)
}

func (s *stubBuckets) Get(ctx context.Context, name string) (models.BucketInfo, error) {
	return s.get(ctx, name)
}

func (s *stubBuckets) Delete(ctx context.Context, name string) (models.DeleteBucketResult, error) {
	return s.delete(ctx, name)
}
