package tableview

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Column describes one table column: a key matching a row field and a
// human-readable label. The set is declared statically by the host.
type Column struct {
	Key   string
	Label string
}

// Row is one record keyed by column key, already stringified for display.
type Row map[string]string

// View is the derived projection rendered by the host: filtered and sorted
// rows, the effective column layout, and the server-side total.
//
// Total reflects the unfiltered server count for the current page request,
// not the client-filtered count. Surface quirk kept on purpose.
type View struct {
	Rows    []Row
	Columns []Column
	Total   int64
}

var collator = collate.New(language.Und)

// Derive recomputes the visible view from the fetched rows, the declared
// columns, and the current state. Pure: inputs are not modified.
func Derive(rows []Row, columns []Column, s State, total int64) View {
	ds := append([]Row(nil), rows...)

	if s.Filter != "" {
		q := strings.ToLower(s.Filter)
		filtered := ds[:0]
		for _, r := range ds {
			if rowMatches(r, columns, q) {
				filtered = append(filtered, r)
			}
		}
		ds = filtered
	}

	if s.Sort != nil && s.Sort.Key != "" {
		key := s.Sort.Key
		dir := 1
		if s.Sort.Direction == SortDesc {
			dir = -1
		}
		// stable: rows comparing equal keep their fetch-order position
		sort.SliceStable(ds, func(i, j int) bool {
			return collator.CompareString(ds[i][key], ds[j][key])*dir < 0
		})
	}

	layout := columns
	if s.ColumnOrder != nil {
		byKey := make(map[string]Column, len(columns))
		for _, c := range columns {
			byKey[c.Key] = c
		}
		layout = make([]Column, 0, len(s.ColumnOrder))
		for _, k := range s.ColumnOrder {
			if c, ok := byKey[k]; ok {
				layout = append(layout, c)
			}
		}
	}

	return View{Rows: ds, Columns: layout, Total: total}
}

// rowMatches reports whether any declared column's value contains q,
// case-insensitively.
func rowMatches(r Row, columns []Column, q string) bool {
	for _, c := range columns {
		if strings.Contains(strings.ToLower(r[c.Key]), q) {
			return true
		}
	}
	return false
}
