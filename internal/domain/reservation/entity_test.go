//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"room-reservation-engine/internal/domain/reservation"
	"room-reservation-engine/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.ReservationBuilder)
	errIs  error
}

func TestReservation(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		b := builder.NewReservationBuilder()
		actual, err := b.BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "RSV-01", actual.ID().String())
		assert.Equal(t, int64(1), actual.ID().Seq())
		assert.Equal(t, reservation.StatusPending, actual.Status())
		assert.Equal(t, "hq/orion", actual.Room().Key())
		assert.Equal(t, "09:00", actual.Window().StartTime().String())
		assert.Equal(t, "13:00", actual.Window().EndTime().String())
		assert.Equal(t, b.Now, actual.CreatedAt())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("room validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing catalog",
				mutate: func(b *builder.ReservationBuilder) { b.WithRoom("", "orion") },
				errIs:  reservation.ErrMissingRoom,
			},
			{
				name:   "whitespace room",
				mutate: func(b *builder.ReservationBuilder) { b.WithRoom("hq", "   ") },
				errIs:  reservation.ErrMissingRoom,
			},
		})
	})

	t.Run("window validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "end before start time",
				mutate: func(b *builder.ReservationBuilder) { b.WithTimes("15:00", "14:00") },
				errIs:  reservation.ErrInvalidTimeRange,
			},
			{
				name:   "zero length",
				mutate: func(b *builder.ReservationBuilder) { b.WithTimes("14:00", "14:00") },
				errIs:  reservation.ErrInvalidTimeRange,
			},
			{
				name:   "end date before start date",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("2025-03-11", "2025-03-10") },
				errIs:  reservation.ErrInvalidDateRange,
			},
			{
				name:   "malformed date",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("2025/03/10", "2025-03-10") },
				errIs:  reservation.ErrInvalidDate,
			},
			{
				name:   "malformed time",
				mutate: func(b *builder.ReservationBuilder) { b.WithTimes("9am", "10:00") },
				errIs:  reservation.ErrInvalidTime,
			},
			{
				name:   "end of day bound accepted",
				mutate: func(b *builder.ReservationBuilder) { b.WithTimes("22:00", "24:00") },
			},
			{
				name:   "past midnight rejected",
				mutate: func(b *builder.ReservationBuilder) { b.WithTimes("22:00", "24:30") },
				errIs:  reservation.ErrInvalidTime,
			},
			{
				name:   "multi day window",
				mutate: func(b *builder.ReservationBuilder) { b.WithDates("2025-03-10", "2025-03-14") },
			},
		})
	})

	t.Run("attendees and owner", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "negative attendees",
				mutate: func(b *builder.ReservationBuilder) { b.Attendees = -1 },
				errIs:  reservation.ErrNegativeAttendees,
			},
			{
				name:   "zero attendees allowed",
				mutate: func(b *builder.ReservationBuilder) { b.Attendees = 0 },
			},
			{
				name:   "nil owner",
				mutate: func(b *builder.ReservationBuilder) { b.WithOwner(uuid.Nil) },
				errIs:  reservation.ErrMissingOwner,
			},
		})
	})

	t.Run("purpose trimming", func(t *testing.T) {
		actual, err := builder.NewReservationBuilder().
			With(func(b *builder.ReservationBuilder) { b.Purpose = "  standup  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "standup", actual.Purpose())
	})
}

func TestReservation_ChangeStatus(t *testing.T) {
	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("strict policy accepts pending to confirmed", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()

		prev, err := r.ChangeStatus(reservation.StatusConfirmed, reservation.PolicyStrict, later)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusPending, prev)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
		assert.Equal(t, later, r.UpdatedAt())
	})

	t.Run("strict policy rejects cancelled to confirmed", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).MustBuildDomain()

		_, err := r.ChangeStatus(reservation.StatusConfirmed, reservation.PolicyStrict, later)
		require.ErrorIs(t, err, reservation.ErrTransitionNotAllowed)
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("permissive policy accepts any target", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusCancelled).MustBuildDomain()

		_, err := r.ChangeStatus(reservation.StatusConfirmed, reservation.PolicyPermissive, later)
		require.NoError(t, err)
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("unknown status is rejected under either policy", func(t *testing.T) {
		r := builder.NewReservationBuilder().MustBuildDomain()

		_, err := r.ChangeStatus(reservation.Status("archived"), reservation.PolicyPermissive, later)
		require.ErrorIs(t, err, reservation.ErrInvalidStatus)
	})
}

func TestReservation_Cancel(t *testing.T) {
	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)

	t.Run("live reservation becomes cancelled", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusConfirmed).MustBuildDomain()
		require.NoError(t, r.Cancel(later))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("rejected reservation cannot be cancelled", func(t *testing.T) {
		r := builder.NewReservationBuilder().WithStatus(reservation.StatusRejected).MustBuildDomain()
		require.ErrorIs(t, r.Cancel(later), reservation.ErrNotLive)
	})
}

func TestReservation_Fragment(t *testing.T) {
	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	original := builder.NewReservationBuilder().
		WithDates("2025-03-10", "2025-03-12").
		WithStatus(reservation.StatusConfirmed).
		MustBuildDomain()

	frag := original.Fragment(reservation.NewIdentifier("RSV", 7), reservation.HourRange{Start: 12, End: 13}, later)

	assert.Equal(t, "RSV-07", frag.ID().String())
	assert.Equal(t, original.OwnerID(), frag.OwnerID())
	assert.Equal(t, original.Room(), frag.Room())
	assert.Equal(t, original.Purpose(), frag.Purpose())
	assert.Equal(t, original.Attendees(), frag.Attendees())
	assert.Equal(t, reservation.StatusConfirmed, frag.Status())
	assert.True(t, frag.Window().StartDate().Equal(original.Window().StartDate()))
	assert.True(t, frag.Window().EndDate().Equal(original.Window().EndDate()))
	assert.Equal(t, "12:00", frag.Window().StartTime().String())
	assert.Equal(t, "13:00", frag.Window().EndTime().String())
	assert.Equal(t, later, frag.CreatedAt())

	original.ShrinkTo(reservation.HourRange{Start: 9, End: 10}, later)
	assert.Equal(t, "09:00", original.Window().StartTime().String())
	assert.Equal(t, "10:00", original.Window().EndTime().String())
	assert.Equal(t, reservation.StatusConfirmed, original.Status())
}

func TestReservation_Clone(t *testing.T) {
	r := builder.NewReservationBuilder().MustBuildDomain()
	c := r.Clone()

	if diff := cmp.Diff(r.ID().String(), c.ID().String()); diff != "" {
		t.Errorf("clone id mismatch (-want +got):\n%s", diff)
	}
	_, err := c.ChangeStatus(reservation.StatusConfirmed, reservation.PolicyStrict, time.Now())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusPending, r.Status())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewReservationBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
