package timeconv

import "time"

// localize places the wall clock of t in loc. A wall clock that occurs
// twice (clocks falling back) or never (clocks springing forward) is read
// as standard time.
func localize(t time.Time, loc *time.Location) time.Time {
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	wall := time.Date(y, mo, d, h, mi, s, t.Nanosecond(), time.UTC)

	// The zone's offsets half a day either side cover any single transition.
	around := [2]time.Time{wall.Add(-12 * time.Hour), wall.Add(12 * time.Hour)}

	var valid []time.Time
	for _, p := range around {
		_, off := p.In(loc).Zone()
		inst := wall.Add(-time.Duration(off) * time.Second).In(loc)
		if _, got := inst.Zone(); got == off {
			valid = append(valid, inst)
		}
	}
	for _, inst := range valid {
		if !inst.IsDST() {
			return inst
		}
	}
	if len(valid) > 0 {
		return valid[0]
	}

	// Skipped wall clock: apply the standard offset.
	for _, p := range around {
		in := p.In(loc)
		if !in.IsDST() {
			_, off := in.Zone()
			return wall.Add(-time.Duration(off) * time.Second).In(loc)
		}
	}
	return time.Date(y, mo, d, h, mi, s, t.Nanosecond(), loc)
}
