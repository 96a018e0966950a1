package dto

type SystemStatusResponse struct {
	SystemReady          bool     `json:"system_ready"`
	OfflineMode          bool     `json:"offline_mode"`
	EnvironmentIssues    []string `json:"environment_issues"`
	EmbeddingModelLoaded bool     `json:"embedding_model_loaded"`
	LLMModelLoaded       bool     `json:"llm_model_loaded"`
	HasLoadedIndex       bool     `json:"has_loaded_index"`
	AvailableSessions    int      `json:"available_sessions"`
}

type HealthResponse struct {
	Status            string   `json:"status"`
	OfflineMode       bool     `json:"offline_mode"`
	EnvironmentIssues []string `json:"environment_issues"`
}
