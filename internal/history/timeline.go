package history

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/triviaswwe/tw-database-web-sub000/internal/domain"
)

// holderKey identifies a reign's holder across both holder kinds.
type holderKey struct {
	team bool
	id   int64
}

func holderKeyFor(r *domain.Reign) holderKey {
	if r.TagTeamID != nil {
		return holderKey{team: true, id: *r.TagTeamID}
	}
	return holderKey{id: *r.WrestlerID}
}

// reignDiagnostic rejects reign records the engine must not interpret: an
// ambiguous holder or an inverted interval. Rejection means a diagnostic,
// never a guess.
func reignDiagnostic(r *domain.Reign) (Diagnostic, bool) {
	switch {
	case r.WrestlerID != nil && r.TagTeamID != nil:
		return Diagnostic{
			Kind:    DiagAmbiguousHolder,
			ReignID: r.ID,
			Detail:  "reign names both a wrestler and a tag team as holder",
		}, true
	case r.WrestlerID == nil && r.TagTeamID == nil:
		return Diagnostic{
			Kind:    DiagAmbiguousHolder,
			ReignID: r.ID,
			Detail:  "reign names no holder",
		}, true
	case r.LostAt != nil && r.LostAt.Before(r.WonAt):
		return Diagnostic{
			Kind:    DiagMalformedInterval,
			ReignID: r.ID,
			Detail:  fmt.Sprintf("reign lost at %s before it was won at %s", r.LostAt.Format(time.RFC3339), r.WonAt.Format(time.RFC3339)),
		}, true
	}
	return Diagnostic{}, false
}

// BuildTimeline orders a championship's reigns by start date and synthesizes
// vacant entries for the gaps between them. Reign numbers are recomputed from
// the ordered sequence; stored ordinals are ignored since upstream values can
// be stale. Malformed or ambiguous reign records are excluded and flagged.
// An open reign that has a successor closes at the successor's start, so at
// most one returned entry is ever ongoing.
func BuildTimeline(reigns []domain.Reign, now time.Time) ([]TimelineEntry, []Diagnostic) {
	var diags []Diagnostic

	valid := make([]domain.Reign, 0, len(reigns))
	for _, r := range reigns {
		if diag, ok := reignDiagnostic(&r); ok {
			diags = append(diags, diag)
			continue
		}
		valid = append(valid, r)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if !valid[i].WonAt.Equal(valid[j].WonAt) {
			return valid[i].WonAt.Before(valid[j].WonAt)
		}
		return valid[i].ID < valid[j].ID
	})

	entries := make([]TimelineEntry, 0, len(valid))
	ordinals := make(map[holderKey]int)

	var prevEnd *time.Time
	for i := range valid {
		r := &valid[i]

		// An open reign with a successor is closed at the successor's start:
		// a championship has at most one active reign, and the later win is
		// the evidence the earlier one ended.
		endAt := r.LostAt
		if endAt == nil && i+1 < len(valid) {
			endAt = &valid[i+1].WonAt
		}

		// A vacancy exists only when the previous reign ended strictly
		// before this one began. Equal boundary dates mean the title changed
		// hands the same day.
		if prevEnd != nil && prevEnd.Before(r.WonAt) {
			start := *prevEnd
			end := r.WonAt
			entries = append(entries, TimelineEntry{
				Kind:          EntryVacant,
				StartAt:       start,
				EndAt:         &end,
				DaysHeld:      daysBetween(start, end),
				DaysHeldLabel: strconv.Itoa(daysBetween(start, end)),
			})
		}
		prevEnd = endAt

		key := holderKeyFor(r)
		ordinals[key]++

		entry := TimelineEntry{
			Kind:        EntryReign,
			Reign:       r,
			ReignNumber: ordinals[key],
			StartAt:     r.WonAt,
			EndAt:       endAt,
			Ongoing:     endAt == nil,
		}
		end := now
		if endAt != nil {
			end = *endAt
		}
		entry.DaysHeld = daysBetween(r.WonAt, end)
		entry.DaysHeldLabel = daysLabel(entry.DaysHeld, entry.Ongoing)
		entries = append(entries, entry)
	}

	return entries, diags
}

// daysBetween truncates to whole elapsed days, never rounding up.
func daysBetween(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start) / (24 * time.Hour))
}

func daysLabel(days int, ongoing bool) string {
	if ongoing {
		return strconv.Itoa(days) + "+"
	}
	return strconv.Itoa(days)
}
