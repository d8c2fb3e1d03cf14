package adapter

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"gocloud.dev/blob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"

	"github.com/mvallejo3/do-genai-api/internal/config"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

type spacesAdapter struct {
	s3     *s3.Client
	bucket *blob.Bucket

	bucketName string
	region     string

	logger *logger.Logger
}

// NewSpacesAdapter constructs the [SpacesAdapter] for a DigitalOcean Spaces
// endpoint. Bucket-level operations go through the raw S3 client; object
// operations on the configured knowledge-base bucket go through a
// gocloud.dev blob bucket opened over the same client.
//
// Spaces speaks the S3 protocol with virtual-host addressing, so the
// endpoint is the region endpoint (https://<region>.digitaloceanspaces.com)
// and the bucket name becomes the subdomain.
func NewSpacesAdapter(ctx context.Context, cfg config.Spaces, logger *logger.Logger) (SpacesAdapter, error) {
	if cfg.Key == "" || cfg.Secret == "" {
		return nil, fmt.Errorf("spaces adapter: credentials are required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Key, cfg.Secret, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("spaces adapter: load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = false
	})

	bucket, err := s3blob.OpenBucketV2(ctx, client, cfg.Bucket, nil)
	if err != nil {
		return nil, fmt.Errorf("spaces adapter: open bucket %q: %w", cfg.Bucket, err)
	}

	return &spacesAdapter{
		s3:         client,
		bucket:     bucket,
		bucketName: cfg.Bucket,
		region:     cfg.Region,
		logger:     logger,
	}, nil
}

// Upload implements [SpacesAdapter]. Writes to an existing key replace the
// stored object: uploads follow S3 put semantics, last write wins.
func (s *spacesAdapter) Upload(ctx context.Context, key string, body io.Reader, contentType string) error {
	opts := &blob.WriterOptions{}
	if contentType != "" {
		opts.ContentType = contentType
	}

	w, err := s.bucket.NewWriter(ctx, key, opts)
	if err != nil {
		return fmt.Errorf("open writer for %q: %w", key, err)
	}

	if _, err := io.Copy(w, body); err != nil {
		w.Close()
		return fmt.Errorf("upload %q: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finish upload %q: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Str("bucket", s.bucketName).Msg("object uploaded")
	return nil
}

// ListObjects implements [SpacesAdapter].
func (s *spacesAdapter) ListObjects(ctx context.Context, prefix string, maxKeys int) ([]models.FileInfo, error) {
	iter := s.bucket.List(&blob.ListOptions{Prefix: prefix})

	files := make([]models.FileInfo, 0)
	for {
		if maxKeys > 0 && len(files) >= maxKeys {
			break
		}

		obj, err := iter.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list objects with prefix %q: %w", prefix, err)
		}
		if obj.IsDir {
			continue
		}

		info := models.FileInfo{
			Key:          obj.Key,
			LastModified: obj.ModTime,
			Size:         obj.Size,
		}
		if len(obj.MD5) > 0 {
			info.ETag = hex.EncodeToString(obj.MD5)
		}

		files = append(files, info)
	}

	return files, nil
}

// DeleteObject implements [SpacesAdapter]. S3 deletes are idempotent at the
// protocol level, so existence is checked first to surface a not-found
// condition to the caller.
func (s *spacesAdapter) DeleteObject(ctx context.Context, key string) error {
	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check object %q: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("delete %q: %w", key, ErrObjectNotFound)
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return fmt.Errorf("delete %q: %w", key, ErrObjectNotFound)
		}
		return fmt.Errorf("delete %q: %w", key, err)
	}

	s.logger.Debug().Str("key", key).Str("bucket", s.bucketName).Msg("object deleted")
	return nil
}

// ListBuckets implements [SpacesAdapter].
func (s *spacesAdapter) ListBuckets(ctx context.Context) ([]models.Bucket, error) {
	out, err := s.s3.ListBuckets(ctx, &s3.ListBucketsInput{})
	if err != nil {
		return nil, fmt.Errorf("list buckets: %w", mapS3Error(err))
	}

	buckets := make([]models.Bucket, 0, len(out.Buckets))
	for _, b := range out.Buckets {
		bucket := models.Bucket{
			Name: aws.ToString(b.Name),
		}
		if b.CreationDate != nil {
			bucket.CreatedAt = *b.CreationDate
		}
		buckets = append(buckets, bucket)
	}

	return buckets, nil
}

// CreateBucket implements [SpacesAdapter]. The bucket lands in the region of
// the configured endpoint; region only sets the location constraint the
// protocol requires.
func (s *spacesAdapter) CreateBucket(ctx context.Context, name, region string) error {
	if region == "" {
		region = s.region
	}

	input := &s3.CreateBucketInput{
		Bucket: aws.String(name),
		CreateBucketConfiguration: &types.CreateBucketConfiguration{
			LocationConstraint: types.BucketLocationConstraint(region),
		},
	}

	if _, err := s.s3.CreateBucket(ctx, input); err != nil {
		return fmt.Errorf("create bucket %q: %w", name, mapS3Error(err))
	}

	s.logger.Info().Str("bucket", name).Str("region", region).Msg("bucket created")
	return nil
}

// GetBucketInfo implements [SpacesAdapter].
func (s *spacesAdapter) GetBucketInfo(ctx context.Context, name string) (models.BucketInfo, error) {
	out, err := s.s3.GetBucketLocation(ctx, &s3.GetBucketLocationInput{
		Bucket: aws.String(name),
	})
	if err != nil {
		return models.BucketInfo{}, fmt.Errorf("get bucket %q: %w", name, mapS3Error(err))
	}

	region := string(out.LocationConstraint)
	if region == "" {
		region = s.region
	}

	return models.BucketInfo{Name: name, Region: region}, nil
}

// DeleteBucket implements [SpacesAdapter]. The bucket must be empty.
func (s *spacesAdapter) DeleteBucket(ctx context.Context, name string) error {
	if _, err := s.s3.DeleteBucket(ctx, &s3.DeleteBucketInput{Bucket: aws.String(name)}); err != nil {
		return fmt.Errorf("delete bucket %q: %w", name, mapS3Error(err))
	}

	s.logger.Info().Str("bucket", name).Msg("bucket deleted")
	return nil
}

// mapS3Error converts S3 API error codes into the package's sentinel errors
// so that callers do not depend on the AWS SDK. Unknown codes pass through
// unchanged.
func mapS3Error(err error) error {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	switch apiErr.ErrorCode() {
	case "NoSuchBucket", "NotFound":
		return ErrBucketNotFound
	case "BucketNotEmpty":
		return ErrBucketNotEmpty
	case "BucketAlreadyExists", "BucketAlreadyOwnedByYou":
		return ErrBucketAlreadyExists
	default:
		return err
	}
}
