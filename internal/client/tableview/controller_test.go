package tableview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetcher records requested windows and serves queued results.
type scriptedFetcher struct {
	mu      sync.Mutex
	calls   [][2]int // limit, offset
	results []PageResult
	errs    []error
}

func (f *scriptedFetcher) fetch(ctx context.Context, limit, offset int) (PageResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, [2]int{limit, offset})

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return PageResult{}, err
		}
	}
	res := f.results[0]
	if len(f.results) > 1 {
		f.results = f.results[1:]
	}
	return res, nil
}

func (f *scriptedFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func waitDone(t *testing.T, c *Controller) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not complete")
	}
}

func pageOf(names ...string) PageResult {
	rows := make([]Row, 0, len(names))
	for _, n := range names {
		rows = append(rows, Row{"name": n})
	}
	return PageResult{Rows: rows, Total: int64(len(names))}
}

func newTestController(f *scriptedFetcher) *Controller {
	return NewController(testColumns, f.fetch, NewPersister(newMemStore()), DefaultState())
}

func TestController_PageChangeFetchesWindow(t *testing.T) {
	f := &scriptedFetcher{results: []PageResult{pageOf("Alice", "Bob")}}
	c := newTestController(f)
	ctx := context.Background()

	c.Dispatch(ctx, SetPage{N: 3})
	waitDone(t, c)

	require.Equal(t, 1, f.callCount())
	assert.Equal(t, [2]int{10, 20}, f.calls[0], "limit=pageSize, offset=(page-1)*pageSize")
	assert.Len(t, c.View().Rows, 2)
	assert.False(t, c.Loading())
}

func TestController_PageSizeChangeFetches(t *testing.T) {
	f := &scriptedFetcher{results: []PageResult{pageOf("Alice")}}
	c := newTestController(f)
	ctx := context.Background()

	c.Dispatch(ctx, SetPageSize{N: 5})
	waitDone(t, c)

	require.Equal(t, 1, f.callCount())
	assert.Equal(t, [2]int{5, 0}, f.calls[0])
}

func TestController_FilterAndSortDoNotFetch(t *testing.T) {
	f := &scriptedFetcher{results: []PageResult{pageOf("Alice")}}
	c := newTestController(f)
	ctx := context.Background()

	c.Refresh(ctx)
	waitDone(t, c)

	c.Dispatch(ctx, SetFilter{Text: "ali"})
	c.Dispatch(ctx, SetSort{Key: "name", Direction: SortAsc})
	c.MoveColumn(ctx, "name", MoveRight)

	assert.Equal(t, 1, f.callCount(), "client-side transitions must not refetch")
}

func TestController_FailureKeepsPreviousPage(t *testing.T) {
	f := &scriptedFetcher{
		results: []PageResult{pageOf("Alice", "Bob")},
		errs:    []error{nil, errors.New("connection refused")},
	}
	c := newTestController(f)
	ctx := context.Background()

	c.Refresh(ctx)
	waitDone(t, c)
	require.Len(t, c.View().Rows, 2)
	require.Empty(t, c.Notice())

	c.Dispatch(ctx, SetPage{N: 2})
	waitDone(t, c)

	assert.Len(t, c.View().Rows, 2, "stale rows stay visible")
	assert.Contains(t, c.Notice(), "failed to load users")
	assert.False(t, c.Loading())
}

func TestController_LastResponseWins(t *testing.T) {
	release := make(chan struct{})
	first := make(chan struct{})

	var mu sync.Mutex
	calls := 0

	fetch := func(ctx context.Context, limit, offset int) (PageResult, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()

		if n == 1 {
			close(first)
			// the older request finishes after the newer one
			<-release
			return pageOf("Old"), nil
		}
		return pageOf("New"), nil
	}

	c := NewController(testColumns, fetch, NewPersister(newMemStore()), DefaultState())
	ctx := context.Background()

	c.Dispatch(ctx, SetPage{N: 2})
	<-first
	c.Dispatch(ctx, SetPage{N: 3})
	waitDone(t, c)

	close(release)
	waitDone(t, c)

	// no cancellation: the response arriving last is accepted even though a
	// newer request superseded it
	v := c.View()
	require.Len(t, v.Rows, 1)
	assert.Equal(t, "Old", v.Rows[0]["name"])
	assert.False(t, c.Loading())
}

func TestController_LoadingDuringFetch(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})

	fetch := func(ctx context.Context, limit, offset int) (PageResult, error) {
		close(started)
		<-release
		return pageOf("Alice"), nil
	}

	c := NewController(testColumns, fetch, NewPersister(newMemStore()), DefaultState())
	ctx := context.Background()

	c.Refresh(ctx)
	<-started
	assert.True(t, c.Loading())

	close(release)
	waitDone(t, c)
	assert.False(t, c.Loading())
}

func TestController_DispatchPersistsState(t *testing.T) {
	store := newMemStore()
	f := &scriptedFetcher{results: []PageResult{pageOf("Alice")}}
	c := NewController(testColumns, f.fetch, NewPersister(store), DefaultState())
	ctx := context.Background()

	c.Dispatch(ctx, SetFilter{Text: "ali"})

	restored := NewPersister(store).Restore(ctx)
	assert.Equal(t, "ali", restored.Filter)
}
