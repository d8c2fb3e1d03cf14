package service

import (
	"context"
	"errors"
	"strings"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

type bucketsService struct {
	spaces adapter.SpacesAdapter

	logger *logger.Logger
}

// NewBucketsService constructs the [BucketsService].
func NewBucketsService(spaces adapter.SpacesAdapter, logger *logger.Logger) BucketsService {
	return &bucketsService{spaces: spaces, logger: logger}
}

func (s *bucketsService) List(ctx context.Context) (models.BucketListing, error) {
	buckets, err := s.spaces.ListBuckets(ctx)
	if err != nil {
		return models.BucketListing{}, err
	}

	return models.BucketListing{Buckets: buckets, Count: len(buckets)}, nil
}

func (s *bucketsService) Create(ctx context.Context, req models.CreateBucketRequest) (models.CreateBucketResult, error) {
	if strings.TrimSpace(req.Name) == "" {
		return models.CreateBucketResult{}, fault.Validation("Bucket name is required and cannot be empty")
	}

	if err := s.spaces.CreateBucket(ctx, req.Name, req.Region); err != nil {
		if errors.Is(err, adapter.ErrBucketAlreadyExists) {
			return models.CreateBucketResult{}, fault.Validation("Bucket '%s' already exists", req.Name)
		}
		return models.CreateBucketResult{}, err
	}

	s.logger.Info().Str("bucket", req.Name).Msg("bucket created")
	return models.CreateBucketResult{Message: "Bucket created successfully"}, nil
}

func (s *bucketsService) Get(ctx context.Context, name string) (models.BucketInfo, error) {
	if err := validateBucketName(name); err != nil {
		return models.BucketInfo{}, err
	}

	info, err := s.spaces.GetBucketInfo(ctx, name)
	if err != nil {
		if errors.Is(err, adapter.ErrBucketNotFound) {
			return models.BucketInfo{}, fault.NotFound("Bucket '%s' not found", name)
		}
		return models.BucketInfo{}, err
	}

	return info, nil
}

func (s *bucketsService) Delete(ctx context.Context, name string) (models.DeleteBucketResult, error) {
	if err := validateBucketName(name); err != nil {
		return models.DeleteBucketResult{}, err
	}

	if err := s.spaces.DeleteBucket(ctx, name); err != nil {
		switch {
		case errors.Is(err, adapter.ErrBucketNotFound):
			return models.DeleteBucketResult{}, fault.NotFound("Bucket '%s' not found", name)
		case errors.Is(err, adapter.ErrBucketNotEmpty):
			return models.DeleteBucketResult{}, fault.Validation("Bucket '%s' is not empty", name)
		}
		return models.DeleteBucketResult{}, err
	}

	s.logger.Info().Str("bucket", name).Msg("bucket deleted")
	return models.DeleteBucketResult{
		Message:    "Bucket deleted successfully",
		BucketName: name,
	}, nil
}

func validateBucketName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fault.Validation("Bucket name cannot be empty")
	}
	return nil
}
