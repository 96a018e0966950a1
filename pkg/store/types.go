package store

import "time"

// Passage is one indexed unit of document text. It is created during
// indexing and never mutated afterwards.
type Passage struct {
	Id         string    `json:"id" msgpack:"id"`
	SourceFile string    `json:"source_file" msgpack:"source_file"`
	Page       int       `json:"page" msgpack:"page"`
	Position   int       `json:"position" msgpack:"position"`
	Text       string    `json:"text" msgpack:"text"`
	Vector     []float32 `json:"vector" msgpack:"vector"`
}

// SessionIndex is the full indexed state for one upload batch.
// Files preserves first-seen order of the source files.
type SessionIndex struct {
	SessionId string    `json:"session_id" msgpack:"session_id"`
	CreatedAt time.Time `json:"created_at" msgpack:"created_at"`
	Files     []string  `json:"files" msgpack:"files"`
	Passages  []Passage `json:"passages" msgpack:"passages"`
}

// Summary is the listing view of a persisted session.
type Summary struct {
	SessionId      string    `json:"session_id"`
	CreatedAt      time.Time `json:"created_at"`
	Files          []string  `json:"files"`
	ParagraphCount int       `json:"paragraph_count"`
}

func (s *SessionIndex) Summary() Summary {
	return Summary{
		SessionId:      s.SessionId,
		CreatedAt:      s.CreatedAt,
		Files:          s.Files,
		ParagraphCount: len(s.Passages),
	}
}
