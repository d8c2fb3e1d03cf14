package models

import "time"

// CreateBucketRequest is the request body for POST /api/buckets.
// Name is required and must be globally unique within Spaces.
type CreateBucketRequest struct {
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// Bucket describes one Spaces bucket owned by the account.
type Bucket struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BucketListing is the success payload of GET /api/buckets.
type BucketListing struct {
	Buckets []Bucket `json:"buckets"`
	Count   int      `json:"count"`
}

// BucketInfo is the success payload of GET /api/buckets/{name}.
type BucketInfo struct {
	Name   string `json:"name"`
	Region string `json:"region"`
}

// CreateBucketResult confirms a bucket creation.
type CreateBucketResult struct {
	Message string `json:"message"`
}

// DeleteBucketResult confirms a bucket deletion.
type DeleteBucketResult struct {
	Message    string `json:"message"`
	BucketName string `json:"bucket_name"`
}
