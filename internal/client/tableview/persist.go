package tableview

import (
	"context"
	"encoding/json"

	"github.com/fabienvalero1/userdir/internal/client/storage"
)

// Persister writes view-state snapshots to the preference store and restores
// them on startup. All operations are best-effort: a failing or disabled
// store degrades to in-memory state, never to an error the host must handle.
type Persister struct {
	store storage.Store
}

func NewPersister(store storage.Store) *Persister {
	return &Persister{store: store}
}

// snapshot mirrors State with pointer fields so a restore can tell "absent"
// from "zero" and merge stored fields over defaults.
type snapshot struct {
	Sort        *SortState `json:"sort"`
	Filter      *string    `json:"filter"`
	Page        *int       `json:"page"`
	PageSize    *int       `json:"pageSize"`
	ColumnOrder []string   `json:"columnsOrder"`
}

// Save serializes s under the session-scoped key. Errors are swallowed.
func (p *Persister) Save(ctx context.Context, s State) {
	data, err := json.Marshal(s)
	if err != nil {
		return
	}
	_ = p.store.Set(ctx, storage.ViewStateKey, data)
}

// Restore loads the stored snapshot, shallow-merges it over the defaults,
// and re-clamps the result. A missing or unparseable snapshot yields the
// defaults.
func (p *Persister) Restore(ctx context.Context) State {
	s := DefaultState()

	data, err := p.store.Get(ctx, storage.ViewStateKey)
	if err != nil || data == nil {
		return s
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return s
	}

	if snap.Sort != nil {
		s.Sort = snap.Sort
	}
	if snap.Filter != nil {
		s.Filter = *snap.Filter
	}
	if snap.Page != nil {
		s.Page = *snap.Page
	}
	if snap.PageSize != nil {
		s.PageSize = *snap.PageSize
	}
	if snap.ColumnOrder != nil {
		s.ColumnOrder = snap.ColumnOrder
	}

	return clamp(s)
}

// Clear drops the stored snapshot, ending the persisted session view.
func (p *Persister) Clear(ctx context.Context) {
	_ = p.store.Delete(ctx, storage.ViewStateKey)
}
