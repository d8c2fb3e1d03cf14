package http

import (
	"net/http"
	"strconv"

	"github.com/mvallejo3/do-genai-api/internal/fault"
	"github.com/mvallejo3/do-genai-api/internal/service"
)

// maxUploadMemory caps the in-memory portion of a multipart parse; larger
// parts spill to temporary files.
const maxUploadMemory = 32 << 20

// listFiles serves GET /api/files.
//
// Query parameters:
//
//	prefix   filter objects by key prefix (e.g. a folder path)
//	max_keys cap on the number of returned objects
func (h *Handler) listFiles(r *http.Request) (*Result, error) {
	query := r.URL.Query()

	maxKeys := 0
	if raw := query.Get("max_keys"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fault.Validation("Query parameter 'max_keys' must be an integer")
		}
		maxKeys = parsed
	}

	listing, err := h.services.Files.List(r.Context(), query.Get("prefix"), maxKeys)
	if err != nil {
		return nil, err
	}
	return &Result{Value: listing}, nil
}

// uploadFiles serves POST /api/files: one or more multipart "file" parts,
// stored under the optional "folder" query-parameter prefix. A failing part
// is reported in its per-file result without aborting the batch.
func (h *Handler) uploadFiles(r *http.Request) (*Result, error) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		return nil, fault.Validation("Request must be multipart/form-data with at least one 'file' field")
	}

	var files []service.UploadFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["file"] {
			part, err := header.Open()
			if err != nil {
				files = append(files, service.UploadFile{
					Filename: header.Filename,
					Err:      err,
				})
				continue
			}
			defer part.Close()

			files = append(files, service.UploadFile{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Reader:      part,
			})
		}
	}

	summary, err := h.services.Files.Upload(r.Context(), r.URL.Query().Get("folder"), files)
	if err != nil {
		return nil, err
	}
	return &Result{Value: summary}, nil
}

// deleteFile serves DELETE /api/files. The "key" query parameter names the
// object to remove.
func (h *Handler) deleteFile(r *http.Request) (*Result, error) {
	query := r.URL.Query()
	if !query.Has("key") {
		return nil, fault.Validation("Query parameter 'key' is required")
	}

	result, err := h.services.Files.Delete(r.Context(), query.Get("key"))
	if err != nil {
		return nil, err
	}
	return &Result{Value: result}, nil
}
