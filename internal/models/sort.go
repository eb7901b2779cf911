package models

import (
	"fmt"
	"sort"
	"strings"
)

// SortField is a field that lists can be ordered by.
//
// swagger:enum SortField
type SortField string

const (
	SortByDate     SortField = "date"
	SortByKind     SortField = "kind"
	SortByCategory SortField = "category"
	SortByAmount   SortField = "amount"
)

// Direction is the order of a sort.
//
// swagger:enum Direction
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec describes the display order of a list.
type SortSpec struct {
	Field     SortField `json:"field" example:"date"`
	Direction Direction `json:"direction" example:"desc"`
}

// DefaultSort shows the most recent records first.
var DefaultSort = SortSpec{Field: SortByDate, Direction: Descending}

// ParseSortSpec parses the query values for sorting.
//
// An empty field means the default sort. An empty direction means ascending.
func ParseSortSpec(field, direction string) (SortSpec, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	direction = strings.ToLower(strings.TrimSpace(direction))

	if field == "" {
		if direction == "" {
			return DefaultSort, nil
		}
		field = string(SortByDate)
	}

	spec := SortSpec{Field: SortField(field), Direction: Ascending}
	switch spec.Field {
	case SortByDate, SortByKind, SortByCategory, SortByAmount:
	default:
		return SortSpec{}, invalid("sort", "cannot sort by %q, must be one of date, kind, category, amount", field)
	}

	switch Direction(direction) {
	case "", Ascending:
	case Descending:
		spec.Direction = Descending
	default:
		return SortSpec{}, invalid("direction", "direction %q is not valid, must be asc or desc", direction)
	}

	return spec, nil
}

func (s SortSpec) String() string {
	return fmt.Sprintf("%s %s", s.Field, s.Direction)
}

// SortState remembers the last requested sort of a list view.
// Its zero value uses DefaultSort.
type SortState struct {
	spec *SortSpec
}

// Spec returns the current sort.
func (s *SortState) Spec() SortSpec {
	if s.spec == nil {
		return DefaultSort
	}
	return *s.spec
}

// Toggle requests a sort by field. Requesting the field that is already sorted by
// flips the direction, any other field starts ascending.
func (s *SortState) Toggle(field SortField) SortSpec {
	next := SortSpec{Field: field, Direction: Ascending}
	if current := s.Spec(); current.Field == field && current.Direction == Ascending {
		next.Direction = Descending
	}

	s.spec = &next
	return next
}

// compare returns a negative number, zero or a positive number.
type compare[T any] func(a, b T) int

// sorted returns a sorted copy of records. Equal records keep their
// relative order for both directions.
func sorted[T any](records []T, direction Direction, cmp compare[T]) []T {
	c := make([]T, len(records))
	copy(c, records)

	sort.SliceStable(c, func(i, j int) bool {
		if direction == Descending {
			return cmp(c[i], c[j]) > 0
		}
		return cmp(c[i], c[j]) < 0
	})

	return c
}

// SortTransactions returns a sorted copy of transactions. The input is not modified.
func SortTransactions(transactions []Transaction, spec SortSpec) []Transaction {
	return sorted(transactions, spec.Direction, func(a, b Transaction) int {
		switch spec.Field {
		case SortByKind:
			return strings.Compare(strings.ToLower(string(a.Kind)), strings.ToLower(string(b.Kind)))
		case SortByCategory:
			return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		case SortByAmount:
			return a.Amount.Cmp(b.Amount)
		default:
			return compareDates(a.Date.String(), b.Date.String())
		}
	})
}

// SortMinistryItems returns a sorted copy of items. The input is not modified.
//
// Ministry items have no amount, sorting by amount keeps the insertion order.
func SortMinistryItems(items []MinistryItem, spec SortSpec) []MinistryItem {
	return sorted(items, spec.Direction, func(a, b MinistryItem) int {
		switch spec.Field {
		case SortByKind:
			return strings.Compare(strings.ToLower(string(a.Kind)), strings.ToLower(string(b.Kind)))
		case SortByCategory:
			return strings.Compare(strings.ToLower(a.Category), strings.ToLower(b.Category))
		case SortByAmount:
			return 0
		default:
			return compareDates(a.Date.String(), b.Date.String())
		}
	})
}

// compareDates compares YYYY-MM-DD strings, which order lexically.
func compareDates(a, b string) int {
	return strings.Compare(a, b)
}
