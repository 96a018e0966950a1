package service

import (
	"context"
	"fmt"
	"strings"

	"doc-qa-be/internal/dto"
	"doc-qa-be/pkg/store"
)

// ModelLister reports the models a local inference backend serves.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

type ISystemService interface {
	Status(ctx context.Context) *dto.SystemStatusResponse
	Health(ctx context.Context) *dto.HealthResponse
}

// systemService probes the local Ollama instance for the embedding and chat
// models. Missing models are a startup/system condition surfaced here, not a
// per-query failure.
type systemService struct {
	models         ModelLister
	embeddingModel string
	llmModel       string
	sessionStore   *store.FileStore
	current        *CurrentSession
}

func NewSystemService(
	models ModelLister,
	embeddingModel string,
	llmModel string,
	sessionStore *store.FileStore,
	current *CurrentSession,
) ISystemService {
	return &systemService{
		models:         models,
		embeddingModel: embeddingModel,
		llmModel:       llmModel,
		sessionStore:   sessionStore,
		current:        current,
	}
}

func (sys *systemService) Status(ctx context.Context) *dto.SystemStatusResponse {
	issues, embeddingLoaded, llmLoaded := sys.validateEnvironment(ctx)

	_, _, _, hasLoadedIndex := sys.current.View()

	available := 0
	if summaries, err := sys.sessionStore.List(); err == nil {
		available = len(summaries)
	}

	return &dto.SystemStatusResponse{
		SystemReady:          len(issues) == 0,
		OfflineMode:          true,
		EnvironmentIssues:    issues,
		EmbeddingModelLoaded: embeddingLoaded,
		LLMModelLoaded:       llmLoaded,
		HasLoadedIndex:       hasLoadedIndex,
		AvailableSessions:    available,
	}
}

func (sys *systemService) Health(ctx context.Context) *dto.HealthResponse {
	issues, _, _ := sys.validateEnvironment(ctx)
	healthStatus := "healthy"
	if len(issues) > 0 {
		healthStatus = "issues_detected"
	}
	return &dto.HealthResponse{
		Status:            healthStatus,
		OfflineMode:       true,
		EnvironmentIssues: issues,
	}
}

func (sys *systemService) validateEnvironment(ctx context.Context) (issues []string, embeddingLoaded, llmLoaded bool) {
	issues = []string{}

	available, err := sys.models.ListModels(ctx)
	if err != nil {
		issues = append(issues, fmt.Sprintf("Ollama not accessible: %v. Make sure Ollama is installed and running.", err))
		return issues, false, false
	}

	embeddingLoaded = modelInstalled(available, sys.embeddingModel)
	if !embeddingLoaded {
		issues = append(issues, fmt.Sprintf("Embedding model %q not found. Available models: %s", sys.embeddingModel, strings.Join(available, ", ")))
	}

	llmLoaded = modelInstalled(available, sys.llmModel)
	if !llmLoaded {
		issues = append(issues, fmt.Sprintf("LLM model %q not found. Available models: %s", sys.llmModel, strings.Join(available, ", ")))
	}

	return issues, embeddingLoaded, llmLoaded
}

// modelInstalled matches tagged Ollama names ("llama3:latest") against a
// configured name with or without a tag.
func modelInstalled(available []string, want string) bool {
	for _, name := range available {
		if name == want || strings.HasPrefix(name, want+":") {
			return true
		}
	}
	return false
}
