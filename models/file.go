package models

import "time"

// FileInfo describes one object stored in the Spaces bucket.
type FileInfo struct {
	Key          string    `json:"key"`
	LastModified time.Time `json:"last_modified"`
	Size         int64     `json:"size"`
	ETag         string    `json:"etag,omitempty"`
}

// FileListing is the success payload of GET /api/files.
type FileListing struct {
	Files []FileInfo `json:"files"`
	Count int        `json:"count"`
}

// UploadResult records the outcome of uploading a single file. A failed
// upload does not abort the batch; Error carries the reason instead.
type UploadResult struct {
	Filename string  `json:"filename"`
	Key      *string `json:"key"`
	Success  bool    `json:"success"`
	Error    *string `json:"error"`
}

// UploadSummary is the success payload of POST /api/files. It aggregates the
// per-file results of a multipart upload batch.
type UploadSummary struct {
	Message    string         `json:"message"`
	Results    []UploadResult `json:"results"`
	Successful int            `json:"successful"`
	Failed     int            `json:"failed"`
	Total      int            `json:"total"`
	Folder     *string        `json:"folder"`
}

// DeleteFileResult confirms the deletion of a single object.
type DeleteFileResult struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}
