package reservation

import (
	"fmt"
	"strconv"
	"strings"
)

type EntityClass string

const (
	ClassReservation  EntityClass = "reservation"
	ClassCancellation EntityClass = "cancellation"
)

// minimum suffix width; larger counters widen the suffix instead of wrapping
const identifierPadWidth = 2

type Prefixes struct {
	Reservation  string
	Cancellation string
}

func DefaultPrefixes() Prefixes {
	return Prefixes{Reservation: "RSV", Cancellation: "CXL"}
}

func (p Prefixes) For(class EntityClass) string {
	if class == ClassCancellation {
		return p.Cancellation
	}
	return p.Reservation
}

// Identifier is the display form of a per-class counter value. Ordering must use Seq, never
// the string.
type Identifier struct {
	value string
	seq   int64
}

func NewIdentifier(prefix string, seq int64) Identifier {
	return Identifier{value: FormatIdentifier(prefix, seq), seq: seq}
}

func ReconstructIdentifier(value string, seq int64) Identifier {
	return Identifier{value: value, seq: seq}
}

func (i Identifier) String() string { return i.value }
func (i Identifier) Seq() int64     { return i.seq }
func (i Identifier) IsZero() bool   { return i.value == "" }

func FormatIdentifier(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, identifierPadWidth, seq)
}

func ParseIdentifier(id string) (prefix string, seq int64, err error) {
	i := strings.LastIndex(id, "-")
	if i <= 0 || i == len(id)-1 {
		return "", 0, ErrMalformedIdentifier
	}
	seq, err = strconv.ParseInt(id[i+1:], 10, 64)
	if err != nil || seq < 1 {
		return "", 0, ErrMalformedIdentifier
	}
	return id[:i], seq, nil
}

// NextIdentifier returns the identifier after latest. An empty or unparseable latest yields
// the first identifier of the series, so callers must tolerate a possible collision in that
// case.
func NextIdentifier(prefix, latest string) Identifier {
	_, seq, err := ParseIdentifier(latest)
	if err != nil {
		return NewIdentifier(prefix, 1)
	}
	return NewIdentifier(prefix, seq+1)
}
