package reservation

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date without time-of-day or zone.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return DateOf(t), nil
}

func (d Date) Time() time.Time        { return d.t }
func (d Date) IsZero() bool           { return d.t.IsZero() }
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }
func (d Date) After(other Date) bool  { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool  { return d.t.Equal(other.t) }
func (d Date) String() string         { return d.t.Format(dateLayout) }

const secondsPerDay = 24 * 60 * 60

// TimeOfDay counts seconds since midnight. 24:00 is accepted as an end-of-day bound.
type TimeOfDay struct {
	seconds int
}

func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, ErrInvalidTime
	}
	total := hour*3600 + minute*60 + second
	if total > secondsPerDay {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{seconds: total}, nil
}

func TimeOfDayFromSeconds(seconds int) (TimeOfDay, error) {
	if seconds < 0 || seconds > secondsPerDay {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{seconds: seconds}, nil
}

// AtHour is the whole-hour time h:00, h in [0, 24].
func AtHour(h int) TimeOfDay {
	return TimeOfDay{seconds: h * 3600}
}

// ParseTimeOfDay accepts "15:04" and "15:04:05".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return TimeOfDay{}, ErrInvalidTime
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if len(p) != 2 {
			return TimeOfDay{}, ErrInvalidTime
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return TimeOfDay{}, ErrInvalidTime
		}
		nums[i] = n
	}
	return NewTimeOfDay(nums[0], nums[1], nums[2])
}

func (t TimeOfDay) Hour() int                   { return t.seconds / 3600 }
func (t TimeOfDay) Minute() int                 { return t.seconds % 3600 / 60 }
func (t TimeOfDay) Second() int                 { return t.seconds % 60 }
func (t TimeOfDay) Seconds() int                { return t.seconds }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.seconds < other.seconds }
func (t TimeOfDay) After(other TimeOfDay) bool  { return t.seconds > other.seconds }

func (t TimeOfDay) String() string {
	if t.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// Room is the addressable resource unit: a room only exists within a catalog.
type Room struct {
	catalogID string
	roomID    string
}

func NewRoom(catalogID, roomID string) (Room, error) {
	catalogID = strings.TrimSpace(catalogID)
	roomID = strings.TrimSpace(roomID)
	if catalogID == "" || roomID == "" {
		return Room{}, ErrMissingRoom
	}
	return Room{catalogID: catalogID, roomID: roomID}, nil
}

func (r Room) CatalogID() string { return r.catalogID }
func (r Room) RoomID() string    { return r.roomID }
func (r Room) Key() string       { return r.catalogID + "/" + r.roomID }

// Window is "some day in [startDate, endDate], during [startTime, endTime)".
type Window struct {
	startDate Date
	endDate   Date
	startTime TimeOfDay
	endTime   TimeOfDay
}

func NewWindow(startDate, endDate Date, startTime, endTime TimeOfDay) (Window, error) {
	if startDate.IsZero() || endDate.IsZero() {
		return Window{}, ErrInvalidDate
	}
	if startDate.After(endDate) {
		return Window{}, ErrInvalidDateRange
	}
	if !startTime.Before(endTime) {
		return Window{}, ErrInvalidTimeRange
	}
	return Window{startDate: startDate, endDate: endDate, startTime: startTime, endTime: endTime}, nil
}

func (w Window) StartDate() Date      { return w.startDate }
func (w Window) EndDate() Date        { return w.endDate }
func (w Window) StartTime() TimeOfDay { return w.startTime }
func (w Window) EndTime() TimeOfDay   { return w.endTime }

// CoversDate reports whether d falls inside the window's date range.
func (w Window) CoversDate(d Date) bool {
	return !d.Before(w.startDate) && !d.After(w.endDate)
}

// withHours keeps the dates and replaces the time-of-day with a whole-hour range.
func (w Window) withHours(r HourRange) Window {
	w.startTime = AtHour(r.Start)
	w.endTime = AtHour(r.End)
	return w
}

// Overlaps conjoins an inclusive date-range test with a half-open time-of-day test. It does
// not model one combined timestamp interval across day boundaries.
func Overlaps(a, b Window) bool {
	return !a.startDate.After(b.endDate) &&
		!a.endDate.Before(b.startDate) &&
		a.startTime.Before(b.endTime) &&
		a.endTime.After(b.startTime)
}

func (w Window) Overlaps(other Window) bool {
	return Overlaps(w, other)
}
