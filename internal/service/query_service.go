package service

import (
	"context"
	"errors"
	"os"
	"strings"

	"doc-qa-be/internal/constant"
	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/pkg/apperror"
	"doc-qa-be/internal/pkg/logger"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/index"
	"doc-qa-be/pkg/llm"
	"doc-qa-be/pkg/rag/prompt"
	"doc-qa-be/pkg/status"
	"doc-qa-be/pkg/store"
)

type IQueryService interface {
	Answer(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error)
}

type queryService struct {
	sessionStore      *store.FileStore
	tracker           *status.Tracker
	current           *CurrentSession
	embeddingProvider embedding.Provider
	llmProvider       llm.Provider
	topK              int
	temperature       float64
	maxTokens         int
	log               logger.ILogger
}

func NewQueryService(
	sessionStore *store.FileStore,
	tracker *status.Tracker,
	current *CurrentSession,
	embeddingProvider embedding.Provider,
	llmProvider llm.Provider,
	topK int,
	temperature float64,
	maxTokens int,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		sessionStore:      sessionStore,
		tracker:           tracker,
		current:           current,
		embeddingProvider: embeddingProvider,
		llmProvider:       llmProvider,
		topK:              topK,
		temperature:       temperature,
		maxTokens:         maxTokens,
		log:               log,
	}
}

// Answer retrieves the top-k passages for the question from the requested
// session and delegates generation to the LLM with a grounded prompt. A
// question with nothing to ground on gets a fixed message, not an LLM call.
func (qs *queryService) Answer(ctx context.Context, request *dto.QueryRequest) (*dto.QueryResponse, error) {
	question := strings.TrimSpace(request.Question)
	if question == "" {
		return nil, apperror.EmptyQuestion()
	}

	sessionId := request.SessionId
	if sessionId == "" {
		currentId, _, _, loaded := qs.current.View()
		if !loaded {
			return &dto.QueryResponse{Response: constant.ChatNoLoadedSessionMessage}, nil
		}
		sessionId = currentId
	}

	if rec, tracked := qs.tracker.Lookup(sessionId); tracked && rec.Status != status.StatusReady {
		return nil, apperror.SessionNotReady(sessionId, string(rec.Status))
	}

	ix, err := qs.resolveIndex(sessionId)
	if err != nil {
		return nil, err
	}

	if ix.Len() == 0 {
		return &dto.QueryResponse{Response: constant.ChatNoRelevantContextMessage, SessionId: sessionId}, nil
	}

	questionVector, err := qs.embeddingProvider.Embed(ctx, question)
	if err != nil {
		return nil, apperror.ModelUnavailable(err)
	}

	results := ix.Search(questionVector, qs.topK)
	if len(results) == 0 {
		return &dto.QueryResponse{Response: constant.ChatNoRelevantContextMessage, SessionId: sessionId}, nil
	}

	passages := make([]store.Passage, len(results))
	for i, r := range results {
		passages[i] = r.Passage
	}

	qs.log.Debug("query", "retrieved context", map[string]interface{}{
		"session_id": sessionId,
		"passages":   len(passages),
		"top_score":  results[0].Score,
	})

	groundedPrompt := prompt.NewGroundedBuilder(passages, question).Build()

	answer, err := qs.llmProvider.Generate(ctx, groundedPrompt,
		llm.WithTemperature(qs.temperature),
		llm.WithMaxTokens(qs.maxTokens),
	)
	if err != nil {
		return nil, apperror.GenerationUnavailable(err)
	}

	return &dto.QueryResponse{Response: answer, SessionId: sessionId}, nil
}

// resolveIndex prefers the prebuilt current index; any other READY session
// is loaded from the store for this query only.
func (qs *queryService) resolveIndex(sessionId string) (*index.VectorIndex, error) {
	if session, ix, loaded := qs.current.Get(); loaded && session.SessionId == sessionId {
		return ix, nil
	}

	session, err := qs.sessionStore.Load(sessionId)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperror.SessionNotFound(sessionId)
		}
		return nil, err
	}
	return index.New(session.Passages), nil
}
