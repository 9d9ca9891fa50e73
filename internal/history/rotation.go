package history

import (
	"time"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

// OccupantsAt returns the distinct wrestlers occupying a tag-team reign's
// slots at the given instant. A member with no end date is still occupying.
// Members whose interval is inverted are skipped; callers flag those
// separately. Overlapping members are all returned, so a defense inside the
// overlap credits every simultaneous occupant.
func OccupantsAt(members []domain.ReignMember, at time.Time) []int64 {
	var ids []int64
	seen := make(map[int64]bool)
	for _, m := range members {
		if m.EndAt != nil && m.EndAt.Before(m.StartAt) {
			continue
		}
		if at.Before(m.StartAt) {
			continue
		}
		if m.EndAt != nil && !at.Before(*m.EndAt) {
			continue
		}
		if !seen[m.WrestlerID] {
			seen[m.WrestlerID] = true
			ids = append(ids, m.WrestlerID)
		}
	}
	return ids
}

// validMembers splits a reign's member rows into usable intervals and
// diagnostics for the inverted ones.
func validMembers(reignID int64, members []domain.ReignMember) ([]domain.ReignMember, []Diagnostic) {
	var diags []Diagnostic
	valid := make([]domain.ReignMember, 0, len(members))
	for _, m := range members {
		if m.EndAt != nil && m.EndAt.Before(m.StartAt) {
			diags = append(diags, Diagnostic{
				Kind:    DiagMalformedInterval,
				ReignID: reignID,
				Detail:  "reign member interval ends before it starts",
			})
			continue
		}
		valid = append(valid, m)
	}
	return valid, diags
}
