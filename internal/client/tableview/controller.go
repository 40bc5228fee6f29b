package tableview

import (
	"context"
	"sync"
)

// PageResult is one fetched window of rows plus the unfiltered total.
type PageResult struct {
	Rows  []Row
	Total int64
}

// FetchFunc loads one page of records. limit/offset are derived from the
// current page and page size.
type FetchFunc func(ctx context.Context, limit, offset int) (PageResult, error)

// Controller wires the reducer, the persister, and the fetch path together.
// It owns the view state and the last fetched page; hosts read through
// View()/Loading()/Notice() and mutate only through Dispatch/MoveColumn.
//
// Fetches are not cancelled or coalesced: when page changes race, responses
// are applied in arrival order and the last one wins. A failed fetch keeps
// the previous page in place and records a notice instead of blanking the
// table.
type Controller struct {
	mu      sync.Mutex
	state   State
	columns []Column
	fetch   FetchFunc
	persist *Persister

	rows     []Row
	total    int64
	inflight int
	notice   string

	done chan struct{}
}

func NewController(columns []Column, fetch FetchFunc, persist *Persister, initial State) *Controller {
	return &Controller{
		state:   clamp(initial),
		columns: columns,
		fetch:   fetch,
		persist: persist,
		done:    make(chan struct{}, 1),
	}
}

// Dispatch applies one transition, persists the new state, and issues
// exactly one fetch when the (page, pageSize) pair changed.
func (c *Controller) Dispatch(ctx context.Context, a Action) {
	c.mu.Lock()
	old := c.state
	c.state = Apply(c.state, a)
	c.persist.Save(ctx, c.state)
	needFetch := old.Page != c.state.Page || old.PageSize != c.state.PageSize
	c.mu.Unlock()

	if needFetch {
		c.startFetch(ctx)
	}
}

// MoveColumn shifts a column one position in the layout. Edge moves are
// no-ops; no fetch is needed since the data window is unchanged.
func (c *Controller) MoveColumn(ctx context.Context, key string, direction MoveDirection) {
	c.mu.Lock()
	c.state = MoveColumn(c.state, c.columns, key, direction)
	c.persist.Save(ctx, c.state)
	c.mu.Unlock()
}

// Refresh fetches the current page unconditionally (initial load, retry
// after a failure notice).
func (c *Controller) Refresh(ctx context.Context) {
	c.startFetch(ctx)
}

func (c *Controller) startFetch(ctx context.Context) {
	c.mu.Lock()
	limit := c.state.PageSize
	offset := (c.state.Page - 1) * c.state.PageSize
	c.inflight++
	c.mu.Unlock()

	go func() {
		res, err := c.fetch(ctx, limit, offset)

		c.mu.Lock()
		c.inflight--
		if err != nil {
			// stale-but-present beats a blank table
			c.notice = "failed to load users: " + err.Error()
		} else {
			c.rows = res.Rows
			c.total = res.Total
			c.notice = ""
		}
		c.mu.Unlock()

		select {
		case c.done <- struct{}{}:
		default:
		}
	}()
}

// View returns the derived projection for the current rows and state.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Derive(c.rows, c.columns, c.state, c.total)
}

// State returns a copy of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Loading reports whether any fetch is still in flight.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inflight > 0
}

// Notice returns the user-visible failure notice, or "" when the last
// completed fetch succeeded.
func (c *Controller) Notice() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notice
}

// Done signals each fetch completion. Hosts that just dispatched a
// page change can wait on it instead of polling Loading.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}
