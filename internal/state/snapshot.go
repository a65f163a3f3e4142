package state

import (
	"encoding/json"

	"careercatalyst-engine/internal/domain"
	"careercatalyst-engine/internal/events"
	"careercatalyst-engine/internal/localstore"
)

// ExportFilename is the fixed download name for exported snapshots.
const ExportFilename = "career-catalyst-data.json"

// ExportSnapshot serializes the full blob as indented JSON, stats
// recomputed so the file never carries stale counters.
func (s *Store) ExportSnapshot() (string, error) {
	b, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ImportSnapshot parses raw and shallow-merges it over the current
// state per top-level key. The merge runs against a scratch copy
// first, so a malformed payload returns ImportError with the live
// state untouched.
func (s *Store) ImportSnapshot(raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := localstore.MergeState(s.st.Clone(), []byte(raw))
	if err != nil {
		return &ImportError{Err: err}
	}

	s.st = merged
	s.persistLocked()
	s.publish(events.TypeSnapshotImported, map[string]int{
		"applications": len(s.st.Applications),
		"skills":       len(s.st.Profile.Skills),
	})
	return nil
}

// LoadSnapshot replaces the whole state, used at startup after the
// adapter has merged the persisted blob over the defaults.
func (s *Store) LoadSnapshot(st domain.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = st
	s.st.Stats = computeStats(s.st.Applications)
}
