package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"

	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/pkg/logger"
	"doc-qa-be/pkg/chunker"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/extract"
	"doc-qa-be/pkg/status"
	"doc-qa-be/pkg/store"
)

type IIndexerService interface {
	Consume(ctx context.Context) error
}

// indexerService drives sessions from CREATED through INDEXING to READY or
// FAILED, off the request path. A failed session is never partially saved:
// the snapshot is written only after every document embedded cleanly.
type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	sessionStore      *store.FileStore
	tracker           *status.Tracker
	embeddingProvider embedding.Provider
	extractor         extract.Extractor
	current           *CurrentSession
	log               logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	sessionStore *store.FileStore,
	tracker *status.Tracker,
	embeddingProvider embedding.Provider,
	extractor extract.Extractor,
	current *CurrentSession,
	log logger.ILogger,
) IIndexerService {
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		sessionStore:      sessionStore,
		tracker:           tracker,
		embeddingProvider: embeddingProvider,
		extractor:         extractor,
		current:           current,
		log:               log,
	}
}

func (is *indexerService) Consume(ctx context.Context) error {
	messages, err := is.pubSub.Subscribe(ctx, is.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			is.processMessage(ctx, msg)
			// Indexing outcomes live in the status tracker; the core
			// never retries a session, so every message is acked.
			msg.Ack()
		}
	}()

	return nil
}

func (is *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IndexSessionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		is.log.Error("indexer", "failed to unmarshal indexing message", map[string]interface{}{"error": err.Error()})
		return
	}

	defer func() {
		if r := recover(); r != nil {
			is.fail(payload.SessionId, fmt.Sprintf("indexing panicked: %v", r))
		}
	}()

	is.tracker.Set(payload.SessionId, status.StatusIndexing, "")
	is.log.Info("indexer", "indexing session", map[string]interface{}{
		"session_id": payload.SessionId,
		"files":      len(payload.Files),
	})

	session, err := is.buildSession(ctx, &payload)
	if err != nil {
		is.fail(payload.SessionId, err.Error())
		return
	}

	if err := is.sessionStore.Save(session); err != nil {
		is.fail(payload.SessionId, fmt.Sprintf("persisting session: %v", err))
		return
	}

	is.current.Install(session)
	is.tracker.Set(payload.SessionId, status.StatusReady, "")
	is.log.Info("indexer", "session ready", map[string]interface{}{
		"session_id": payload.SessionId,
		"paragraphs": len(session.Passages),
	})
}

type pendingPassage struct {
	sourceFile string
	page       int
	position   int
	text       string
}

func (is *indexerService) buildSession(ctx context.Context, payload *dto.IndexSessionMessage) (*store.SessionIndex, error) {
	var pending []pendingPassage
	seen := make(map[string]struct{})
	files := make([]string, 0, len(payload.Files))

	// Files are processed in upload order, pages and paragraphs in
	// document order, so passage ordering is repeatable for identical
	// input. Duplicate paragraph text keeps its first occurrence only.
	for _, file := range payload.Files {
		files = append(files, file.Name)

		pages, err := is.extractor.Extract(file.Path)
		if err != nil {
			return nil, fmt.Errorf("extracting %s: %w", file.Name, err)
		}

		position := 0
		for _, page := range pages {
			for _, para := range chunker.Split(page.Text, position) {
				position = para.Position + 1
				if _, dup := seen[para.Text]; dup {
					continue
				}
				seen[para.Text] = struct{}{}
				pending = append(pending, pendingPassage{
					sourceFile: file.Name,
					page:       page.Number,
					position:   para.Position,
					text:       para.Text,
				})
			}
		}
	}

	session := &store.SessionIndex{
		SessionId: payload.SessionId,
		CreatedAt: time.Now(),
		Files:     files,
		Passages:  make([]store.Passage, 0, len(pending)),
	}

	if len(pending) == 0 {
		return session, nil
	}

	texts := make([]string, len(pending))
	for i, p := range pending {
		texts[i] = p.text
	}

	vectors, err := is.embeddingProvider.EmbedBatch(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embedding session content: %w", err)
	}

	for i, p := range pending {
		session.Passages = append(session.Passages, store.Passage{
			Id:         uuid.New().String(),
			SourceFile: p.sourceFile,
			Page:       p.page,
			Position:   p.position,
			Text:       p.text,
			Vector:     vectors[i],
		})
	}
	return session, nil
}

func (is *indexerService) fail(sessionId string, detail string) {
	is.tracker.Set(sessionId, status.StatusFailed, detail)
	is.log.Error("indexer", "indexing failed", map[string]interface{}{
		"session_id": sessionId,
		"error":      detail,
	})
}
