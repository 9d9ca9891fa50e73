package history

import (
	"sort"
	"strings"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

type SortKey string

const (
	SortByID          SortKey = "id"
	SortByName        SortKey = "name"
	SortByInterpreter SortKey = "interpreter"
	SortByReigns      SortKey = "reigns"
	SortByDefenses    SortKey = "defenses"
	SortByDays        SortKey = "days"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortSpec is passed explicitly on every call; the engine keeps no ambient
// sort state between invocations.
type SortSpec struct {
	Key       SortKey
	Direction SortDirection
}

func DefaultSort() SortSpec {
	return SortSpec{Key: SortByDays, Direction: SortDesc}
}

// ParseSortSpec validates query-level sort parameters, falling back to the
// default for empty values.
func ParseSortSpec(key, direction string) (SortSpec, error) {
	spec := DefaultSort()
	if key != "" {
		switch SortKey(key) {
		case SortByID, SortByName, SortByInterpreter, SortByReigns, SortByDefenses, SortByDays:
			spec.Key = SortKey(key)
		default:
			return SortSpec{}, domain.ErrInvalidSortKey
		}
	}
	if direction != "" {
		switch SortDirection(direction) {
		case SortAsc, SortDesc:
			spec.Direction = SortDirection(direction)
		default:
			return SortSpec{}, domain.ErrInvalidSortDirection
		}
	}
	return spec, nil
}

// sortRows orders aggregate rows by the requested key. Text keys compare
// case-insensitively; ties always break by ascending wrestler id regardless
// of direction, so re-running on the same snapshot yields identical order.
func sortRows(rows []AggregateRow, spec SortSpec) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareRows(&rows[i], &rows[j], spec.Key)
		if c == 0 {
			return rows[i].WrestlerID < rows[j].WrestlerID
		}
		if spec.Direction == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareRows(a, b *AggregateRow, key SortKey) int {
	switch key {
	case SortByName:
		return compareFold(a.Name, b.Name)
	case SortByInterpreter:
		return compareFold(a.InterpreterName, b.InterpreterName)
	case SortByReigns:
		return compareInt(a.ReignCount, b.ReignCount)
	case SortByDefenses:
		return compareInt(a.DefenseCount, b.DefenseCount)
	case SortByDays:
		return compareInt(a.TotalDays, b.TotalDays)
	default:
		return compareInt64(a.WrestlerID, b.WrestlerID)
	}
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
