// Package history derives championship title history views from immutable
// fact snapshots: an ordered, gap-aware reign timeline, defense records
// attributed to the correct reign and opponent, and per-individual
// aggregates. Every stage is a pure function; data problems surface as
// diagnostics alongside the result instead of aborting the computation.
package history

// Compute runs all stages over one championship snapshot. Defenses are
// resolved only for reign entries; vacancies have none by definition.
func Compute(snap Snapshot, spec SortSpec) History {
	timeline, diags := BuildTimeline(snap.Reigns, snap.Now)

	defenses := make(map[int64][]DefenseRecord)
	for i := range timeline {
		e := &timeline[i]
		if e.Kind != EntryReign {
			continue
		}
		recs, defDiags := ResolveDefenses(e.Reign, snap.Matches)
		defenses[e.Reign.ID] = recs
		diags = append(diags, defDiags...)
	}

	rows := Aggregate(timeline, defenses, snap.Now, spec)

	return History{
		Timeline:        timeline,
		DefensesByReign: defenses,
		Aggregates:      rows,
		Diagnostics:     diags,
	}
}
