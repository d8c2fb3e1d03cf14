package adapter

import "errors"

// Sentinel errors mapped from object-storage responses. Callers match them
// with [errors.Is].
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrBucketNotFound      = errors.New("bucket not found")
	ErrBucketNotEmpty      = errors.New("bucket not empty")
	ErrBucketAlreadyExists = errors.New("bucket already exists")
)
