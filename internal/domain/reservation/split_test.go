//go:build unit

package reservation_test

import (
	"testing"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slotsAt(hours ...int) []reservation.Slot {
	slots := make([]reservation.Slot, 0, len(hours))
	for _, h := range hours {
		slots = append(slots, reservation.NewSlot(reservation.AtHour(h), nil))
	}
	return slots
}

func windowOf(t *testing.T, start, end string) reservation.Window {
	t.Helper()
	r, err := builder.NewReservationBuilder().WithTimes(start, end).BuildDomain()
	require.NoError(t, err)
	return r.Window()
}

func TestPlanSplit(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		cancel    []int
		remaining []reservation.HourRange
	}{
		{
			name:      "middle hours split into two",
			start:     "09:00",
			end:       "13:00",
			cancel:    []int{10, 11},
			remaining: []reservation.HourRange{{Start: 9, End: 10}, {Start: 12, End: 13}},
		},
		{
			name:      "leading hour shrinks",
			start:     "09:00",
			end:       "13:00",
			cancel:    []int{9},
			remaining: []reservation.HourRange{{Start: 10, End: 13}},
		},
		{
			name:      "trailing hour shrinks",
			start:     "09:00",
			end:       "13:00",
			cancel:    []int{12},
			remaining: []reservation.HourRange{{Start: 9, End: 12}},
		},
		{
			name:      "alternating hours produce three ranges",
			start:     "08:00",
			end:       "13:00",
			cancel:    []int{9, 11},
			remaining: []reservation.HourRange{{Start: 8, End: 9}, {Start: 10, End: 11}, {Start: 12, End: 13}},
		},
		{
			name:   "every hour cancelled",
			start:  "09:00",
			end:    "11:00",
			cancel: []int{9, 10},
		},
		{
			name:      "slots outside the booking release nothing",
			start:     "09:00",
			end:       "11:00",
			cancel:    []int{7, 15},
			remaining: []reservation.HourRange{{Start: 9, End: 11}},
		},
		{
			name:      "duplicate slots count once",
			start:     "09:00",
			end:       "12:00",
			cancel:    []int{10, 10},
			remaining: []reservation.HourRange{{Start: 9, End: 10}, {Start: 11, End: 12}},
		},
		{
			name:      "minutes are truncated to the hour",
			start:     "09:30",
			end:       "12:45",
			cancel:    []int{10},
			remaining: []reservation.HourRange{{Start: 9, End: 10}, {Start: 11, End: 12}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			plan := reservation.PlanSplit(windowOf(t, c.start, c.end), slotsAt(c.cancel...))

			if diff := cmp.Diff(c.remaining, plan.Remaining, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("remaining mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(c.remaining) == 0, plan.CancelsAll())
		})
	}
}

func TestSplitPlan_PrimaryAndFragments(t *testing.T) {
	plan := reservation.PlanSplit(windowOf(t, "08:00", "13:00"), slotsAt(9, 11))

	primary, ok := plan.Primary()
	require.True(t, ok)
	assert.Equal(t, reservation.HourRange{Start: 8, End: 9}, primary)
	assert.Equal(t, []reservation.HourRange{{Start: 10, End: 11}, {Start: 12, End: 13}}, plan.Fragments())

	empty := reservation.PlanSplit(windowOf(t, "09:00", "10:00"), slotsAt(9))
	_, ok = empty.Primary()
	assert.False(t, ok)
	assert.Nil(t, empty.Fragments())
}

// Every booked hour ends up either cancelled or in exactly one remaining range, and the
// remaining ranges are disjoint, ascending and never adjacent.
func TestPlanSplit_ConservesHours(t *testing.T) {
	const start, end = 8, 14
	hours := end - start
	window := windowOf(t, "08:00", "14:00")

	for mask := 0; mask < 1<<hours; mask++ {
		var cancel []int
		for i := 0; i < hours; i++ {
			if mask&(1<<i) != 0 {
				cancel = append(cancel, start+i)
			}
		}
		plan := reservation.PlanSplit(window, slotsAt(cancel...))

		seen := make(map[int]int)
		prevEnd := -1
		for _, r := range plan.Remaining {
			require.False(t, r.IsEmpty(), "mask %b", mask)
			require.Greater(t, r.Start, prevEnd, "mask %b: ranges must be separated", mask)
			prevEnd = r.End
			for _, h := range r.Hours() {
				seen[h]++
			}
		}
		for h := start; h < end; h++ {
			if plan.Cancelled.Has(h) {
				assert.Zero(t, seen[h], "mask %b hour %d", mask, h)
			} else {
				assert.Equal(t, 1, seen[h], "mask %b hour %d", mask, h)
			}
		}
		assert.Equal(t, mask == 1<<hours-1, plan.CancelsAll(), "mask %b", mask)
	}
}

func TestNewSlot(t *testing.T) {
	s := reservation.NewSlot(reservation.AtHour(10), nil)
	assert.Equal(t, "11:00", s.To.String())

	last := reservation.NewSlot(reservation.AtHour(23), nil)
	assert.Equal(t, "24:00", last.To.String())

	to := reservation.AtHour(12)
	explicit := reservation.NewSlot(reservation.AtHour(10), &to)
	assert.Equal(t, "12:00", explicit.To.String())
}

func TestCoalesce(t *testing.T) {
	got := reservation.Coalesce(reservation.HourRange{Start: 8, End: 22}, reservation.NewHourSet(8, 9, 12, 21))
	want := []reservation.HourRange{{Start: 10, End: 12}, {Start: 13, End: 21}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coalesce mismatch (-want +got):\n%s", diff)
	}
}
