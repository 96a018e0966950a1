package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"doc-qa-be/internal/dto"
	"doc-qa-be/internal/pkg/apperror"
	"doc-qa-be/internal/pkg/logger"
	"doc-qa-be/pkg/status"
	"doc-qa-be/pkg/store"
)

type ISessionService interface {
	CreateFromUpload(ctx context.Context, files []*multipart.FileHeader) (*dto.CreateSessionResponse, error)
	Status(ctx context.Context, sessionId string) (*dto.SessionStatusResponse, error)
	List(ctx context.Context) ([]*dto.SessionSummaryResponse, error)
	Load(ctx context.Context, sessionId string) (*dto.CurrentSessionResponse, error)
	LoadLatest(ctx context.Context) error
	Delete(ctx context.Context, sessionId string) error
	Current(ctx context.Context) *dto.CurrentSessionResponse
}

type sessionService struct {
	uploadDir    string
	sessionStore *store.FileStore
	tracker      *status.Tracker
	publisher    IPublisherService
	current      *CurrentSession
	log          logger.ILogger
}

func NewSessionService(
	uploadDir string,
	sessionStore *store.FileStore,
	tracker *status.Tracker,
	publisher IPublisherService,
	current *CurrentSession,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		uploadDir:    uploadDir,
		sessionStore: sessionStore,
		tracker:      tracker,
		publisher:    publisher,
		current:      current,
		log:          log,
	}
}

func supportedUpload(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf", ".txt":
		return true
	default:
		return false
	}
}

// CreateFromUpload allocates a fresh session, stores the uploads, and
// enqueues the indexing job. It returns as soon as the job is published.
func (ss *sessionService) CreateFromUpload(ctx context.Context, files []*multipart.FileHeader) (*dto.CreateSessionResponse, error) {
	var accepted []*multipart.FileHeader
	for _, fh := range files {
		if fh != nil && fh.Filename != "" && supportedUpload(fh.Filename) {
			accepted = append(accepted, fh)
		}
	}
	if len(accepted) == 0 {
		return nil, apperror.New(apperror.KindBadRequest, "no PDF or text files provided")
	}

	sessionId := uuid.New().String()
	sessionDir := filepath.Join(ss.uploadDir, sessionId)
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return nil, fmt.Errorf("creating session upload directory: %w", err)
	}

	saved := make([]dto.UploadedFile, 0, len(accepted))
	names := make([]string, 0, len(accepted))
	for _, fh := range accepted {
		name := filepath.Base(fh.Filename)
		path := filepath.Join(sessionDir, name)
		if err := saveUpload(fh, path); err != nil {
			return nil, fmt.Errorf("saving upload %s: %w", name, err)
		}
		saved = append(saved, dto.UploadedFile{Name: name, Path: path})
		names = append(names, name)
	}

	ss.tracker.Set(sessionId, status.StatusCreated, "")

	payload, err := json.Marshal(dto.IndexSessionMessage{
		SessionId: sessionId,
		Files:     saved,
	})
	if err != nil {
		return nil, err
	}
	if err := ss.publisher.Publish(ctx, payload); err != nil {
		ss.tracker.Set(sessionId, status.StatusFailed, fmt.Sprintf("dispatching indexing job: %v", err))
		return nil, err
	}

	ss.log.Info("session", "session created, indexing dispatched", map[string]interface{}{
		"session_id": sessionId,
		"files":      names,
	})

	return &dto.CreateSessionResponse{
		SessionId: sessionId,
		Files:     names,
		Message:   fmt.Sprintf("Successfully uploaded %d document(s). Processing...", len(names)),
	}, nil
}

func saveUpload(fh *multipart.FileHeader, path string) error {
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// Status reports the lifecycle state of a session. Sessions persisted by a
// previous process are READY even though this process never tracked them.
func (ss *sessionService) Status(ctx context.Context, sessionId string) (*dto.SessionStatusResponse, error) {
	rec, tracked := ss.tracker.Lookup(sessionId)
	if !tracked && ss.sessionStore.Exists(sessionId) {
		rec.Status = status.StatusReady
	}

	_, currentFiles, paragraphCount, loaded := ss.current.View()

	return &dto.SessionStatusResponse{
		SessionId:      sessionId,
		Status:         string(rec.Status),
		ErrorDetail:    rec.ErrorDetail,
		HasLoadedIndex: loaded,
		CurrentFiles:   emptyIfNil(currentFiles),
		ParagraphCount: paragraphCount,
	}, nil
}

func (ss *sessionService) List(ctx context.Context) ([]*dto.SessionSummaryResponse, error) {
	summaries, err := ss.sessionStore.List()
	if err != nil {
		return nil, err
	}

	response := make([]*dto.SessionSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, &dto.SessionSummaryResponse{
			SessionId:      s.SessionId,
			CreatedAt:      s.CreatedAt,
			Files:          s.Files,
			ParagraphCount: s.ParagraphCount,
		})
	}
	return response, nil
}

// Load installs a persisted session as the current one.
func (ss *sessionService) Load(ctx context.Context, sessionId string) (*dto.CurrentSessionResponse, error) {
	session, err := ss.sessionStore.Load(sessionId)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperror.SessionNotFound(sessionId)
		}
		return nil, err
	}

	ss.current.Install(session)
	ss.tracker.Set(sessionId, status.StatusReady, "")

	ss.log.Info("session", "session loaded as current", map[string]interface{}{
		"session_id": sessionId,
		"paragraphs": len(session.Passages),
	})

	return ss.Current(ctx), nil
}

// LoadLatest installs the most recently created persisted session, if any.
// Called once at startup.
func (ss *sessionService) LoadLatest(ctx context.Context) error {
	summaries, err := ss.sessionStore.List()
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		ss.log.Info("session", "no persisted sessions found", nil)
		return nil
	}
	_, err = ss.Load(ctx, summaries[0].SessionId)
	return err
}

func (ss *sessionService) Delete(ctx context.Context, sessionId string) error {
	if err := ss.sessionStore.Delete(sessionId); err != nil {
		return err
	}
	ss.tracker.Delete(sessionId)
	ss.current.ClearIf(sessionId)

	// Uploaded source files go with the session.
	if ss.uploadDir != "" {
		os.RemoveAll(filepath.Join(ss.uploadDir, sessionId))
	}
	return nil
}

func (ss *sessionService) Current(ctx context.Context) *dto.CurrentSessionResponse {
	sessionId, files, paragraphCount, loaded := ss.current.View()
	return &dto.CurrentSessionResponse{
		HasLoadedIndex: loaded,
		SessionId:      sessionId,
		CurrentFiles:   emptyIfNil(files),
		ParagraphCount: paragraphCount,
	}
}

func emptyIfNil(files []string) []string {
	if files == nil {
		return []string{}
	}
	return files
}
