package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// State-change notifications published after each store mutation.
const (
	TypeApplicationAdded   = "application_added"
	TypeApplicationUpdated = "application_updated"
	TypeProfileUpdated     = "profile_updated"
	TypeSkillAdded         = "skill_added"
	TypeSkillRemoved       = "skill_removed"
	TypeSnapshotImported   = "snapshot_imported"
	TypeLiveJobsTick       = "live_jobs_tick"
	TypePersistenceWarning = "persistence_warning"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) Event {
	if reqID == "" {
		reqID = uuid.NewString()
	}
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	return Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
}

// Encode renders the envelope as one JSON line for logs and wire use.
func (e Event) Encode() string {
	b, _ := json.Marshal(e)
	return string(b)
}
