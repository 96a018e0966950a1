package dto

import "time"

// UploadedFile is one stored upload handed to the indexing pipeline.
type UploadedFile struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// IndexSessionMessage is the payload published to the indexing topic.
type IndexSessionMessage struct {
	SessionId string         `json:"session_id"`
	Files     []UploadedFile `json:"files"`
}

type CreateSessionResponse struct {
	SessionId string   `json:"session_id"`
	Files     []string `json:"files"`
	Message   string   `json:"message"`
}

type SessionStatusResponse struct {
	SessionId      string   `json:"session_id"`
	Status         string   `json:"status"`
	ErrorDetail    string   `json:"error_detail,omitempty"`
	HasLoadedIndex bool     `json:"has_loaded_index"`
	CurrentFiles   []string `json:"current_files"`
	ParagraphCount int      `json:"paragraph_count"`
}

type SessionSummaryResponse struct {
	SessionId      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	Files          []string  `json:"files"`
	ParagraphCount int       `json:"paragraph_count"`
}

type CurrentSessionResponse struct {
	HasLoadedIndex bool     `json:"has_loaded_index"`
	SessionId      string   `json:"session_id,omitempty"`
	CurrentFiles   []string `json:"current_files"`
	ParagraphCount int      `json:"paragraph_count"`
}
