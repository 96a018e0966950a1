package apperror

import "fmt"

// Kind identifies the failure class carried back to the caller.
type Kind string

const (
	KindModelUnavailable      Kind = "MODEL_UNAVAILABLE"
	KindSessionNotFound       Kind = "SESSION_NOT_FOUND"
	KindSessionNotReady       Kind = "SESSION_NOT_READY"
	KindEmptyQuestion         Kind = "EMPTY_QUESTION"
	KindGenerationUnavailable Kind = "GENERATION_UNAVAILABLE"
	KindIndexingFailed        Kind = "INDEXING_FAILED"
	KindBadRequest            Kind = "BAD_REQUEST"
)

// AppError is a kinded error. Every failure in the core is scoped to one
// session or one request; none terminate the process.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func SessionNotFound(sessionId string) *AppError {
	return New(KindSessionNotFound, fmt.Sprintf("session %s not found", sessionId))
}

func SessionNotReady(sessionId string, status string) *AppError {
	return New(KindSessionNotReady, fmt.Sprintf("session %s is not ready for queries (status: %s)", sessionId, status))
}

func EmptyQuestion() *AppError {
	return New(KindEmptyQuestion, "question must not be blank")
}

func ModelUnavailable(err error) *AppError {
	return Wrap(KindModelUnavailable, "embedding model unavailable", err)
}

func GenerationUnavailable(err error) *AppError {
	return Wrap(KindGenerationUnavailable, "language model generation failed", err)
}
