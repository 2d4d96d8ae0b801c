package reservation

import "sort"

// HourRange is the half-open whole-hour range [Start, End).
type HourRange struct {
	Start int
	End   int
}

func (r HourRange) Len() int {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

func (r HourRange) IsEmpty() bool        { return r.Len() == 0 }
func (r HourRange) Contains(h int) bool  { return h >= r.Start && h < r.End }
func (r HourRange) StartTime() TimeOfDay { return AtHour(r.Start) }
func (r HourRange) EndTime() TimeOfDay   { return AtHour(r.End) }

func (r HourRange) Hours() []int {
	hours := make([]int, 0, r.Len())
	for h := r.Start; h < r.End; h++ {
		hours = append(hours, h)
	}
	return hours
}

type HourSet map[int]struct{}

func NewHourSet(hours ...int) HourSet {
	s := make(HourSet, len(hours))
	for _, h := range hours {
		s[h] = struct{}{}
	}
	return s
}

func (s HourSet) Has(h int) bool {
	_, ok := s[h]
	return ok
}

func (s HourSet) Add(r HourRange) {
	for h := r.Start; h < r.End; h++ {
		s[h] = struct{}{}
	}
}

func (s HourSet) Sorted() []int {
	out := make([]int, 0, len(s))
	for h := range s {
		out = append(out, h)
	}
	sort.Ints(out)
	return out
}

// ToHour drops minutes and seconds.
func ToHour(t TimeOfDay) int {
	return t.Hour()
}

// ToHourRange is the granularity at which splitting operates; sub-hour precision is lost.
func ToHourRange(w Window) HourRange {
	return HourRange{Start: ToHour(w.StartTime()), End: ToHour(w.EndTime())}
}

// Coalesce run-length encodes the hours of r that are not in excluded, in ascending order.
func Coalesce(r HourRange, excluded HourSet) []HourRange {
	var out []HourRange
	runStart := -1
	for h := r.Start; h < r.End; h++ {
		if excluded.Has(h) {
			if runStart >= 0 {
				out = append(out, HourRange{Start: runStart, End: h})
				runStart = -1
			}
			continue
		}
		if runStart < 0 {
			runStart = h
		}
	}
	if runStart >= 0 {
		out = append(out, HourRange{Start: runStart, End: r.End})
	}
	return out
}
