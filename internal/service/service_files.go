package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/mvallejo3/do-genai-api/internal/adapter"
	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/logger"
	"github.com/mvallejo3/do-genai-api/models"
)

type filesService struct {
	spaces adapter.SpacesAdapter

	logger *logger.Logger
}

// NewFilesService constructs the [FilesService] over the knowledge-base
// bucket.
func NewFilesService(spaces adapter.SpacesAdapter, logger *logger.Logger) FilesService {
	return &filesService{spaces: spaces, logger: logger}
}

func (s *filesService) List(ctx context.Context, prefix string, maxKeys int) (models.FileListing, error) {
	if maxKeys < 0 {
		return models.FileListing{}, fault.Validation("max_keys must be a positive integer")
	}

	files, err := s.spaces.ListObjects(ctx, prefix, maxKeys)
	if err != nil {
		return models.FileListing{}, err
	}

	return models.FileListing{Files: files, Count: len(files)}, nil
}

// Upload stores each file of the batch under folder/filename, overwriting
// objects that already hold that key. A failing file is recorded in its
// result and does not abort the rest of the batch.
func (s *filesService) Upload(ctx context.Context, folder string, files []UploadFile) (models.UploadSummary, error) {
	if len(files) == 0 {
		return models.UploadSummary{}, fault.Validation("No files provided. Please include at least one 'file' field in the request.")
	}

	valid := make([]UploadFile, 0, len(files))
	for _, f := range files {
		if strings.TrimSpace(f.Filename) != "" {
			valid = append(valid, f)
		}
	}
	if len(valid) == 0 {
		return models.UploadSummary{}, fault.Validation("No valid files selected. Please provide at least one file with a filename.")
	}

	results := make([]models.UploadResult, 0, len(valid))
	successful := 0

	for _, f := range valid {
		if f.Err != nil {
			s.logger.Error().Err(f.Err).Str("filename", f.Filename).Msg("file part unreadable")

			msg := f.Err.Error()
			results = append(results, models.UploadResult{
				Filename: f.Filename,
				Error:    &msg,
			})
			continue
		}

		key := objectKey(folder, f.Filename)

		if err := s.spaces.Upload(ctx, key, f.Reader, f.ContentType); err != nil {
			s.logger.Error().Err(err).Str("key", key).Msg("file upload failed")

			msg := err.Error()
			results = append(results, models.UploadResult{
				Filename: f.Filename,
				Error:    &msg,
			})
			continue
		}

		successful++
		results = append(results, models.UploadResult{
			Filename: f.Filename,
			Key:      &key,
			Success:  true,
		})
	}

	total := len(results)
	var message string
	switch {
	case successful == total:
		message = fmt.Sprintf("All %d file(s) uploaded successfully", total)
	case successful > 0:
		message = fmt.Sprintf("%d of %d file(s) uploaded successfully", successful, total)
	default:
		message = "No files were uploaded successfully"
	}

	summary := models.UploadSummary{
		Message:    message,
		Results:    results,
		Successful: successful,
		Failed:     total - successful,
		Total:      total,
	}
	if folder != "" {
		summary.Folder = &folder
	}

	return summary, nil
}

func (s *filesService) Delete(ctx context.Context, key string) (models.DeleteFileResult, error) {
	if strings.TrimSpace(key) == "" {
		return models.DeleteFileResult{}, fault.Validation("Key cannot be empty")
	}

	if err := s.spaces.DeleteObject(ctx, key); err != nil {
		if errors.Is(err, adapter.ErrObjectNotFound) {
			return models.DeleteFileResult{}, fault.NotFound("File with key '%s' not found", key)
		}
		return models.DeleteFileResult{}, err
	}

	return models.DeleteFileResult{
		Message: "File deleted successfully",
		Key:     key,
	}, nil
}

// objectKey joins the folder prefix and filename into a bucket key. The
// filename is reduced to its base name so a crafted upload cannot escape
// the target folder.
func objectKey(folder, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if folder == "" {
		return name
	}
	return strings.TrimSuffix(folder, "/") + "/" + name
}
