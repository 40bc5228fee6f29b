// Package tableview is the client-side view-state machine behind the user
// table: a pure reducer over sort/filter/pagination/column-order state, a
// derived-view projection, snapshot persistence, and a controller that
// coordinates page fetches.
package tableview

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the active ordering. A nil *SortState (or an empty key) means
// rows keep their fetch order.
type SortState struct {
	Key       string        `json:"key"`
	Direction SortDirection `json:"direction"`
}

// State is the user's table view state. One instance per session; mutated
// only through Apply.
type State struct {
	Sort        *SortState `json:"sort,omitempty"`
	Filter      string     `json:"filter"`
	Page        int        `json:"page"`
	PageSize    int        `json:"pageSize"`
	ColumnOrder []string   `json:"columnsOrder,omitempty"`
}

// DefaultState returns the initial view state: no sort, no filter, first
// page of ten, declared column order.
func DefaultState() State {
	return State{
		Filter:   "",
		Page:     1,
		PageSize: 10,
	}
}

// Action is a view-state transition request. Transitions are total: invalid
// input is clamped or ignored, never rejected.
type Action interface {
	isAction()
}

// SetSort replaces the ordering and returns to the first page, since the
// old position is meaningless in a reordered set.
type SetSort struct {
	Key       string
	Direction SortDirection
}

// ClearSort removes the ordering so rows return to fetch order. Like any
// reorder it goes back to the first page.
type ClearSort struct{}

// SetFilter replaces the free-text filter and returns to the first page.
type SetFilter struct {
	Text string
}

// SetPage moves to page n, floored at 1.
type SetPage struct {
	N int
}

// SetPageSize changes the page size and returns to the first page.
type SetPageSize struct {
	N int
}

// SetColumnOrder replaces the column layout order.
type SetColumnOrder struct {
	Keys []string
}

// Reset restores the defaults, or the supplied snapshot when given.
type Reset struct {
	Snapshot *State
}

func (SetSort) isAction()        {}
func (ClearSort) isAction()      {}
func (SetFilter) isAction()      {}
func (SetPage) isAction()        {}
func (SetPageSize) isAction()    {}
func (SetColumnOrder) isAction() {}
func (Reset) isAction()          {}

// Apply is the reducer: a pure function from (state, action) to the next
// state. The input state is never modified.
func Apply(s State, a Action) State {
	switch act := a.(type) {
	case SetSort:
		s.Sort = &SortState{Key: act.Key, Direction: act.Direction}
		s.Page = 1
	case ClearSort:
		s.Sort = nil
		s.Page = 1
	case SetFilter:
		s.Filter = act.Text
		s.Page = 1
	case SetPage:
		s.Page = max(1, act.N)
	case SetPageSize:
		s.PageSize = max(1, act.N)
		s.Page = 1
	case SetColumnOrder:
		s.ColumnOrder = append([]string(nil), act.Keys...)
	case Reset:
		if act.Snapshot != nil {
			return clamp(*act.Snapshot)
		}
		return DefaultState()
	}
	return s
}

// MoveColumn swaps key with its neighbor in the effective column order,
// falling back to the declared order when none is set. Moves past either
// edge, and unknown keys, are no-ops. Besides Reset this is the only
// mutation path for the column order.
func MoveColumn(s State, columns []Column, key string, direction MoveDirection) State {
	order := s.ColumnOrder
	if order == nil {
		order = make([]string, 0, len(columns))
		for _, c := range columns {
			order = append(order, c.Key)
		}
	}

	idx := -1
	for i, k := range order {
		if k == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	target := idx + 1
	if direction == MoveLeft {
		target = idx - 1
	}
	if target < 0 || target >= len(order) {
		return s
	}

	next := append([]string(nil), order...)
	next[idx], next[target] = next[target], next[idx]
	return Apply(s, SetColumnOrder{Keys: next})
}

type MoveDirection string

const (
	MoveLeft  MoveDirection = "left"
	MoveRight MoveDirection = "right"
)

// clamp normalizes a state that arrived from outside the reducer (a restored
// snapshot) so the reducer's invariants hold.
func clamp(s State) State {
	if s.Page < 1 {
		s.Page = 1
	}
	if s.PageSize < 1 {
		s.PageSize = DefaultState().PageSize
	}
	if s.Sort != nil && s.Sort.Key == "" {
		s.Sort = nil
	}
	return s
}
