package models

// CreateAgentRequest is the request body for POST /api/agents.
//
// Name and Instructions are required. The remaining fields override the
// process-wide defaults (model, workspace, region, project) configured at
// startup.
type CreateAgentRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Instructions string `json:"instructions"`

	// Model is the UUID of the inference model the agent should use.
	Model string `json:"model,omitempty"`

	// Workspace is the UUID of the workspace the agent belongs to.
	Workspace string `json:"workspace,omitempty"`

	Region    string `json:"region,omitempty"`
	ProjectID string `json:"project_id,omitempty"`
}

// CreateAgentAPIKeyRequest is the request body for
// POST /api/agents/{id}/api-keys.
type CreateAgentAPIKeyRequest struct {
	Name string `json:"name"`
}

// AttachKnowledgeBaseRequest is the request body for
// POST /api/agents/{id}/attach-knowledgebase.
type AttachKnowledgeBaseRequest struct {
	KnowledgeBaseUUID string `json:"knowledge_base_uuid"`
}

// AttachKnowledgeBaseResult confirms a knowledge base attachment and carries
// the provider's raw response alongside the identifiers the caller supplied.
type AttachKnowledgeBaseResult struct {
	Message           string `json:"message"`
	AgentID           string `json:"agent_id"`
	KnowledgeBaseUUID string `json:"knowledge_base_uuid"`
	Result            JSON   `json:"result"`
}
