package models

// CreateKnowledgeBaseRequest is the request body for POST /api/knowledgebase.
// Name is required.
type CreateKnowledgeBaseRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ReindexRequest is the request body for POST /api/knowledgebase/reindex.
//
// KnowledgeBaseUUID is required. When DataSourceUUIDs is nil every data
// source of the knowledge base is re-indexed.
type ReindexRequest struct {
	KnowledgeBaseUUID string   `json:"knowledge_base_uuid"`
	DataSourceUUIDs   []string `json:"data_source_uuids,omitempty"`
}

// ReindexResult wraps the indexing job the provider created for a reindex
// request.
type ReindexResult struct {
	Message string `json:"message"`
	Job     JSON   `json:"job"`
}
