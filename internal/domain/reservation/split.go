package reservation

// SplitPlan is the result of releasing a set of hours from a booked hour range. Remaining is
// ordered by start hour; the first range stays with the original reservation.
type SplitPlan struct {
	Booked    HourRange
	Cancelled HourSet
	Remaining []HourRange
}

// PlanSplit only looks at the start hour of each slot, so a slot never releases more than
// one hour. Slots outside the booked range release nothing.
func PlanSplit(w Window, slots []Slot) SplitPlan {
	booked := ToHourRange(w)
	cancelled := make(HourSet, len(slots))
	for _, s := range slots {
		cancelled[ToHour(s.From)] = struct{}{}
	}
	return SplitPlan{
		Booked:    booked,
		Cancelled: cancelled,
		Remaining: Coalesce(booked, cancelled),
	}
}

// CancelsAll is true when no hour survives; the request then behaves as a full cancellation.
func (p SplitPlan) CancelsAll() bool {
	return len(p.Remaining) == 0
}

func (p SplitPlan) Primary() (HourRange, bool) {
	if p.CancelsAll() {
		return HourRange{}, false
	}
	return p.Remaining[0], true
}

func (p SplitPlan) Fragments() []HourRange {
	if len(p.Remaining) < 2 {
		return nil
	}
	return p.Remaining[1:]
}
