package reservation

import "sort"

// FindConflict returns the earliest-allocated live reservation on room whose window overlaps
// proposed. excludeID skips the reservation being re-admitted by a status change. pending and
// confirmed both block; rejected and cancelled free their window.
func FindConflict(existing []*Reservation, room Room, proposed Window, excludeID string) (*Reservation, bool) {
	candidates := make([]*Reservation, 0, len(existing))
	for _, r := range existing {
		if r.Room() != room || !r.IsLive() || r.ID().String() == excludeID {
			continue
		}
		if Overlaps(r.Window(), proposed) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].ID().Seq() < candidates[j].ID().Seq()
	})
	return candidates[0], true
}

// HasConflict is FindConflict without the payload.
func HasConflict(existing []*Reservation, room Room, proposed Window) bool {
	_, found := FindConflict(existing, room, proposed, "")
	return found
}

// OccupiedHours collects the whole hours held on date by live reservations in existing.
func OccupiedHours(existing []*Reservation, date Date) HourSet {
	occupied := make(HourSet)
	for _, r := range existing {
		if !r.IsLive() || !r.Window().CoversDate(date) {
			continue
		}
		w := r.Window()
		end := w.EndTime().Hour()
		if w.EndTime().Minute() > 0 || w.EndTime().Second() > 0 {
			end++
		}
		occupied.Add(HourRange{Start: w.StartTime().Hour(), End: end})
	}
	return occupied
}

// FreeRanges lists the bookable whole-hour ranges of [open, close) that no live reservation
// touches.
func FreeRanges(existing []*Reservation, date Date, open, close int) []HourRange {
	return Coalesce(HourRange{Start: open, End: close}, OccupiedHours(existing, date))
}
