package status

import (
	"github.com/patrickmn/go-cache"
)

// Status is the lifecycle state of one indexing session.
type Status string

const (
	StatusCreated  Status = "CREATED"
	StatusIndexing Status = "INDEXING"
	StatusReady    Status = "READY"
	StatusFailed   Status = "FAILED"
)

// Record is the liveness state of one session. READY and FAILED are
// terminal.
type Record struct {
	SessionId   string `json:"session_id"`
	Status      Status `json:"status"`
	ErrorDetail string `json:"error_detail,omitempty"`
}

// Tracker is the process-wide session status map. It is a liveness signal
// only: nothing here survives a restart. Entries never expire.
type Tracker struct {
	records *cache.Cache
}

func NewTracker() *Tracker {
	return &Tracker{
		records: cache.New(cache.NoExpiration, 0),
	}
}

// Set records the current status for a session, replacing any prior record.
func (t *Tracker) Set(sessionId string, s Status, errorDetail string) {
	t.records.Set(sessionId, Record{
		SessionId:   sessionId,
		Status:      s,
		ErrorDetail: errorDetail,
	}, cache.NoExpiration)
}

// Get returns the record for a session, defaulting to CREATED when the
// session is unknown to this process.
func (t *Tracker) Get(sessionId string) Record {
	rec, _ := t.Lookup(sessionId)
	return rec
}

// Lookup is Get with an explicit presence flag, so callers can distinguish
// a genuinely new session from one this process never tracked.
func (t *Tracker) Lookup(sessionId string) (Record, bool) {
	if x, found := t.records.Get(sessionId); found {
		return x.(Record), true
	}
	return Record{SessionId: sessionId, Status: StatusCreated}, false
}

// Delete drops the record for a session. Unknown ids are a no-op.
func (t *Tracker) Delete(sessionId string) {
	t.records.Delete(sessionId)
}
