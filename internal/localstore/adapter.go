package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"careercatalyst-engine/internal/domain"
)

// StateKey is the single localStorage-style key the dashboard uses.
// The legacy variants disagreed ("careerCatalystData" vs
// "careerCatalystProData"); this is the one canonical schema.
const StateKey = "careercatalyst.state"

// Adapter persists the full state blob under one key. Callers treat
// Save as best-effort: a storage failure is logged and reported as a
// warning, never allowed to fail the mutation that triggered it,
// matching the quota-error resilience of the browser original.
type Adapter struct {
	db  *sql.DB
	key string
}

func NewAdapter(db *sql.DB) *Adapter {
	return &Adapter{db: db, key: StateKey}
}

func (a *Adapter) Save(st domain.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return Put(ctx, a.db, a.key, string(b))
}

// Load returns the persisted state shallow-merged over the defaults, so
// older or partially-saved blobs keep the default fields they lack. A
// malformed blob falls back to defaults with a warning.
func (a *Adapter) Load() (domain.State, bool) {
	def := domain.DefaultState()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	raw, ok, err := Get(ctx, a.db, a.key)
	if err != nil {
		log.Printf("[store] load state: %v", err)
		return def, false
	}
	if !ok {
		return def, false
	}

	merged, err := MergeState(def, []byte(raw))
	if err != nil {
		log.Printf("[store] malformed state blob, using defaults: %v", err)
		return def, false
	}
	return merged, true
}

// MergeState overlays the top-level keys present in raw onto base,
// the {...base, ...parsed} spread of the original.
func MergeState(base domain.State, raw []byte) (domain.State, error) {
	var keys map[string]json.RawMessage
	if err := json.Unmarshal(raw, &keys); err != nil {
		return domain.State{}, err
	}

	out := base
	if v, ok := keys["profile"]; ok {
		var p domain.Profile
		if err := json.Unmarshal(v, &p); err != nil {
			return domain.State{}, err
		}
		out.Profile = p
	}
	if v, ok := keys["applications"]; ok {
		var apps []domain.Application
		if err := json.Unmarshal(v, &apps); err != nil {
			return domain.State{}, err
		}
		out.Applications = normalizeStatuses(apps)
	}
	if v, ok := keys["stats"]; ok {
		var st domain.DashboardStats
		if err := json.Unmarshal(v, &st); err != nil {
			return domain.State{}, err
		}
		out.Stats = st
	}
	if v, ok := keys["jobSearchData"]; ok {
		var js domain.JobSearchSnapshot
		if err := json.Unmarshal(v, &js); err != nil {
			return domain.State{}, err
		}
		out.JobSearchData = js
	}
	return out, nil
}

func normalizeStatuses(apps []domain.Application) []domain.Application {
	for i, app := range apps {
		if s, ok := domain.ParseStatus(string(app.Status)); ok {
			apps[i].Status = s
		}
	}
	return apps
}
