package history

import (
	"time"
)

// Aggregate folds a championship's timeline and defense records into one row
// per distinct individual title-holder: every wrestler who held the title
// directly or occupied a slot of a tag-team reign. Vacant entries and
// excluded records never contribute. The result is deterministic for a given
// snapshot and sort spec.
func Aggregate(entries []TimelineEntry, defensesByReign map[int64][]DefenseRecord, now time.Time, spec SortSpec) []AggregateRow {
	rows := make(map[int64]*AggregateRow)
	var order []int64

	row := func(id int64) *AggregateRow {
		if r, ok := rows[id]; ok {
			return r
		}
		r := &AggregateRow{WrestlerID: id}
		rows[id] = r
		order = append(order, id)
		return r
	}

	for i := range entries {
		e := &entries[i]
		if e.Kind != EntryReign {
			continue
		}
		r := e.Reign

		// The entry's window, not the raw record: the timeline may have
		// closed an open reign at its successor's start.
		days := e.DaysHeld

		// Attributable individuals: the direct holder, or every rostered
		// member of a tag-team reign. A member is credited with the full
		// reign window, not just their own slice.
		var holders []int64
		if r.WrestlerID != nil {
			holders = []int64{*r.WrestlerID}
			rr := row(*r.WrestlerID)
			if rr.Name == "" && r.Wrestler != nil {
				rr.Name = r.Wrestler.Name
				rr.Country = r.Wrestler.Country
			}
		} else {
			members, _ := validMembers(r.ID, r.Members)
			seen := make(map[int64]bool)
			for _, m := range members {
				rr := row(m.WrestlerID)
				if rr.Name == "" && m.Wrestler != nil {
					rr.Name = m.Wrestler.Name
					rr.Country = m.Wrestler.Country
				}
				if m.Interpreter != nil {
					rr.InterpreterName = m.Interpreter.Name
				}
				if !seen[m.WrestlerID] {
					seen[m.WrestlerID] = true
					holders = append(holders, m.WrestlerID)
				}
			}
		}

		for _, id := range holders {
			rr := row(id)
			rr.ReignCount++
			rr.TotalDays += days
			if e.Ongoing {
				rr.IsCurrent = true
			}
		}

		for _, d := range defensesByReign[r.ID] {
			for _, id := range d.DefenderIDs {
				row(id).DefenseCount++
			}
		}
	}

	out := make([]AggregateRow, 0, len(order))
	for _, id := range order {
		r := rows[id]
		r.TotalDaysLabel = daysLabel(r.TotalDays, r.IsCurrent)
		out = append(out, *r)
	}
	sortRows(out, spec)
	return out
}
