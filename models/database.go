package models

// DatabaseListing is the success payload of GET /api/opensearch-databases:
// the provider's database clusters filtered down to the OpenSearch engine.
// Cluster entries are forwarded as-is.
type DatabaseListing struct {
	Databases []JSON `json:"databases"`
	Count     int    `json:"count"`
}
