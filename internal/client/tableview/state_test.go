package tableview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testColumns = []Column{
	{Key: "id", Label: "ID"},
	{Key: "name", Label: "Name"},
	{Key: "email", Label: "Email"},
	{Key: "role", Label: "Role"},
}

func TestApply_SetSortResetsPage(t *testing.T) {
	s := DefaultState()
	s.Page = 4

	next := Apply(s, SetSort{Key: "name", Direction: SortAsc})

	require.NotNil(t, next.Sort)
	assert.Equal(t, "name", next.Sort.Key)
	assert.Equal(t, SortAsc, next.Sort.Direction)
	assert.Equal(t, 1, next.Page)
	assert.Equal(t, 4, s.Page, "input state must not change")
}

func TestApply_ClearSortDropsOrderingAndResetsPage(t *testing.T) {
	s := DefaultState()
	s = Apply(s, SetSort{Key: "email", Direction: SortDesc})
	s = Apply(s, SetPage{N: 3})

	next := Apply(s, ClearSort{})

	assert.Nil(t, next.Sort)
	assert.Equal(t, 1, next.Page)
}

func TestApply_SetFilterResetsPage(t *testing.T) {
	s := DefaultState()
	s.Page = 3

	next := Apply(s, SetFilter{Text: "bob"})

	assert.Equal(t, "bob", next.Filter)
	assert.Equal(t, 1, next.Page)
}

func TestApply_SetPageClampsToOne(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, 7, Apply(s, SetPage{N: 7}).Page)
	assert.Equal(t, 1, Apply(s, SetPage{N: 0}).Page)
	assert.Equal(t, 1, Apply(s, SetPage{N: -3}).Page)
}

func TestApply_SetPageSizeResetsPage(t *testing.T) {
	s := DefaultState()
	s.Page = 5

	next := Apply(s, SetPageSize{N: 25})

	assert.Equal(t, 25, next.PageSize)
	assert.Equal(t, 1, next.Page)
}

func TestApply_ResetIsIdempotent(t *testing.T) {
	s := DefaultState()
	s = Apply(s, SetSort{Key: "email", Direction: SortDesc})
	s = Apply(s, SetFilter{Text: "x"})
	s = Apply(s, SetPage{N: 9})

	once := Apply(s, Reset{})
	twice := Apply(once, Reset{})

	assert.Equal(t, DefaultState(), once)
	assert.Equal(t, once, twice)
}

func TestApply_ResetWithSnapshotClampsIt(t *testing.T) {
	snap := State{Page: -2, PageSize: 0, Filter: "q"}

	next := Apply(DefaultState(), Reset{Snapshot: &snap})

	assert.Equal(t, 1, next.Page)
	assert.Equal(t, DefaultState().PageSize, next.PageSize)
	assert.Equal(t, "q", next.Filter)
}

func TestApply_PageInvariantHoldsAcrossSequences(t *testing.T) {
	actions := []Action{
		SetPage{N: -10},
		SetSort{Key: "role", Direction: SortDesc},
		SetPage{N: 0},
		SetPageSize{N: -1},
		SetFilter{Text: ""},
		SetColumnOrder{Keys: []string{"email", "id"}},
		SetPage{N: 3},
		Reset{},
		SetPage{N: -1},
	}

	s := DefaultState()
	for _, a := range actions {
		s = Apply(s, a)
		require.GreaterOrEqual(t, s.Page, 1)
	}
}

func TestApply_SetColumnOrderCopiesInput(t *testing.T) {
	keys := []string{"email", "id"}
	next := Apply(DefaultState(), SetColumnOrder{Keys: keys})

	keys[0] = "mutated"
	assert.Equal(t, []string{"email", "id"}, next.ColumnOrder)
}

func TestMoveColumn_SwapsWithNeighbor(t *testing.T) {
	s := DefaultState()

	next := MoveColumn(s, testColumns, "name", MoveRight)
	assert.Equal(t, []string{"id", "email", "name", "role"}, next.ColumnOrder)

	next = MoveColumn(next, testColumns, "name", MoveLeft)
	assert.Equal(t, []string{"id", "name", "email", "role"}, next.ColumnOrder)
}

func TestMoveColumn_EdgesAreNoOps(t *testing.T) {
	s := DefaultState()

	assert.Equal(t, s, MoveColumn(s, testColumns, "id", MoveLeft))
	assert.Equal(t, s, MoveColumn(s, testColumns, "role", MoveRight))
}

func TestMoveColumn_UnknownKeyIsNoOp(t *testing.T) {
	s := DefaultState()
	assert.Equal(t, s, MoveColumn(s, testColumns, "ghost", MoveRight))
}

func TestMoveColumn_UsesExistingOrder(t *testing.T) {
	s := Apply(DefaultState(), SetColumnOrder{Keys: []string{"role", "id", "name", "email"}})

	next := MoveColumn(s, testColumns, "role", MoveRight)
	assert.Equal(t, []string{"id", "role", "name", "email"}, next.ColumnOrder)
}
