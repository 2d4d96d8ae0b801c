//go:build unit

package reservation_test

import (
	"testing"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	base := builder.NewReservationBuilder().WithTimes("14:00", "15:00").MustBuildDomain().Window()

	cases := []struct {
		name    string
		mutate  func(*builder.ReservationBuilder)
		overlap bool
	}{
		{
			name:    "half hour overlap",
			mutate:  func(b *builder.ReservationBuilder) { b.WithTimes("14:30", "15:30") },
			overlap: true,
		},
		{
			name:   "touching end is free",
			mutate: func(b *builder.ReservationBuilder) { b.WithTimes("15:00", "16:00") },
		},
		{
			name:   "touching start is free",
			mutate: func(b *builder.ReservationBuilder) { b.WithTimes("13:00", "14:00") },
		},
		{
			name:    "containing window",
			mutate:  func(b *builder.ReservationBuilder) { b.WithTimes("08:00", "20:00") },
			overlap: true,
		},
		{
			name: "other day",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithDates("2025-03-11", "2025-03-11").WithTimes("14:00", "15:00")
			},
		},
		{
			name: "date range covering the day",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithDates("2025-03-09", "2025-03-12").WithTimes("14:15", "14:45")
			},
			overlap: true,
		},
		{
			name: "date ranges touching on the last day",
			mutate: func(b *builder.ReservationBuilder) {
				b.WithDates("2025-03-01", "2025-03-10").WithTimes("14:00", "15:00")
			},
			overlap: true,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			other := builder.NewReservationBuilder().With(c.mutate).MustBuildDomain().Window()
			assert.Equal(t, c.overlap, reservation.Overlaps(base, other))
			assert.Equal(t, c.overlap, reservation.Overlaps(other, base), "overlap must be symmetric")
		})
	}
}

func TestFindConflict(t *testing.T) {
	proposed := builder.NewReservationBuilder().WithTimes("14:30", "15:30").MustBuildDomain()

	t.Run("live overlap conflicts", func(t *testing.T) {
		existing := []*reservation.Reservation{
			builder.NewReservationBuilder().WithSeq(3).WithTimes("14:00", "15:00").MustBuildDomain(),
		}
		hit, found := reservation.FindConflict(existing, proposed.Room(), proposed.Window(), "")
		require.True(t, found)
		assert.Equal(t, "RSV-03", hit.ID().String())
	})

	t.Run("earliest allocated wins", func(t *testing.T) {
		existing := []*reservation.Reservation{
			builder.NewReservationBuilder().WithSeq(120).WithTimes("15:00", "16:00").MustBuildDomain(),
			builder.NewReservationBuilder().WithSeq(9).WithTimes("14:00", "15:00").MustBuildDomain(),
		}
		hit, found := reservation.FindConflict(existing, proposed.Room(), proposed.Window(), "")
		require.True(t, found)
		assert.Equal(t, int64(9), hit.ID().Seq())
	})

	t.Run("cancelled and rejected free their window", func(t *testing.T) {
		existing := []*reservation.Reservation{
			builder.NewReservationBuilder().WithSeq(1).WithTimes("14:00", "15:00").
				WithStatus(reservation.StatusCancelled).MustBuildDomain(),
			builder.NewReservationBuilder().WithSeq(2).WithTimes("14:00", "15:00").
				WithStatus(reservation.StatusRejected).MustBuildDomain(),
		}
		assert.False(t, reservation.HasConflict(existing, proposed.Room(), proposed.Window()))
	})

	t.Run("confirmed blocks like pending", func(t *testing.T) {
		existing := []*reservation.Reservation{
			builder.NewReservationBuilder().WithTimes("14:00", "15:00").
				WithStatus(reservation.StatusConfirmed).MustBuildDomain(),
		}
		assert.True(t, reservation.HasConflict(existing, proposed.Room(), proposed.Window()))
	})

	t.Run("other room is independent", func(t *testing.T) {
		existing := []*reservation.Reservation{
			builder.NewReservationBuilder().WithRoom("hq", "lyra").WithTimes("14:00", "15:00").MustBuildDomain(),
			builder.NewReservationBuilder().WithRoom("annex", "orion").WithTimes("14:00", "15:00").MustBuildDomain(),
		}
		assert.False(t, reservation.HasConflict(existing, proposed.Room(), proposed.Window()))
	})

	t.Run("self is excluded", func(t *testing.T) {
		self := builder.NewReservationBuilder().WithSeq(4).WithTimes("14:30", "15:30").MustBuildDomain()
		_, found := reservation.FindConflict(
			[]*reservation.Reservation{self}, self.Room(), self.Window(), self.ID().String(),
		)
		assert.False(t, found)
	})
}

func TestFreeRanges(t *testing.T) {
	day, err := reservation.ParseDate("2025-03-10")
	require.NoError(t, err)

	existing := []*reservation.Reservation{
		builder.NewReservationBuilder().WithTimes("09:00", "11:00").MustBuildDomain(),
		builder.NewReservationBuilder().WithTimes("13:30", "14:15").MustBuildDomain(),
		builder.NewReservationBuilder().WithTimes("16:00", "17:00").
			WithStatus(reservation.StatusCancelled).MustBuildDomain(),
		builder.NewReservationBuilder().WithDates("2025-03-11", "2025-03-11").
			WithTimes("08:00", "22:00").MustBuildDomain(),
	}

	got := reservation.FreeRanges(existing, day, 8, 22)
	assert.Equal(t, []reservation.HourRange{
		{Start: 8, End: 9},
		{Start: 11, End: 13},
		{Start: 15, End: 22},
	}, got)
}

func TestValidateTransition(t *testing.T) {
	allowed := map[reservation.Status][]reservation.Status{
		reservation.StatusPending:   {reservation.StatusConfirmed, reservation.StatusRejected, reservation.StatusCancelled},
		reservation.StatusConfirmed: {reservation.StatusCancelled, reservation.StatusPending},
		reservation.StatusRejected:  {reservation.StatusPending},
	}
	all := []reservation.Status{
		reservation.StatusPending, reservation.StatusConfirmed, reservation.StatusRejected, reservation.StatusCancelled,
	}

	for _, from := range all {
		for _, to := range all {
			want := from == to
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			err := reservation.ValidateTransition(from, to, reservation.PolicyStrict)
			if want {
				assert.NoError(t, err, "%s -> %s", from, to)
			} else {
				assert.ErrorIs(t, err, reservation.ErrTransitionNotAllowed, "%s -> %s", from, to)
			}
			assert.NoError(t, reservation.ValidateTransition(from, to, reservation.PolicyPermissive))
		}
	}
}
