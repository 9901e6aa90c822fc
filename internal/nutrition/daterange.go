package nutrition

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidRange is advisory: callers get the 24h window and may log it.
var ErrInvalidRange = errors.New("invalid nutrition range")

type Range string

const (
	Range24h Range = "24h"
	Range7d  Range = "7d"
	Range15d Range = "15d"
	Range30d Range = "30d"
)

const day = 24 * time.Hour

// Days returns the number of days averaged over, 0 for single day ranges.
func (r Range) Days() int {
	switch r {
	case Range7d:
		return 7
	case Range15d:
		return 15
	case Range30d:
		return 30
	default:
		return 0
	}
}

// Window is the resolved meal time window: meals with Start <= createdAt < EndExclusive().
type Window struct {
	Range     Range
	Start     time.Time
	End       time.Time // inclusive, millisecond precision
	Divisor   int
	IsAverage bool
}

func (w Window) EndExclusive() time.Time {
	return w.End.Add(time.Millisecond)
}

type Resolver struct {
	clampToMembershipAge bool
}

func NewResolver(clampToMembershipAge bool) Resolver {
	return Resolver{
		clampToMembershipAge: clampToMembershipAge,
	}
}

// Resolve uses the default resolver, averaging over the nominal number of days.
func Resolve(now time.Time, explicitDate *time.Time, rng string) (Window, error) {
	return Resolver{}.Resolve(now, explicitDate, rng, nil)
}

// Resolve turns a (date, range) request into a concrete window. The returned
// error only ever wraps ErrInvalidRange, and the window is valid regardless.
// joinedAt is only consulted when clamping to membership age.
func (r Resolver) Resolve(now time.Time, explicitDate *time.Time, rng string, joinedAt *time.Time) (Window, error) {
	now = now.UTC()
	parsed := Range(strings.TrimSpace(rng))

	switch parsed {
	case "", Range24h:
		dayStart := startOfDay(now)
		if explicitDate != nil {
			dayStart = startOfDay(explicitDate.UTC())
		}
		return singleDay(dayStart), nil
	case Range7d, Range15d, Range30d:
		n := parsed.Days()
		return Window{
			Range:     parsed,
			Start:     now.Add(-time.Duration(n) * day),
			End:       now,
			Divisor:   r.divisor(now, n, joinedAt),
			IsAverage: true,
		}, nil
	default:
		return singleDay(startOfDay(now)), fmt.Errorf("%w: %q", ErrInvalidRange, rng)
	}
}

// divisor is the number of days an average is taken over. With clamping on,
// the day of joining counts as day one, so a member who joined 36h ago
// averages over 2 days. The result stays within [1, n].
func (r Resolver) divisor(now time.Time, n int, joinedAt *time.Time) int {
	if !r.clampToMembershipAge || joinedAt == nil {
		return n
	}
	daysSinceJoined := int(now.Sub(joinedAt.UTC())/day) + 1
	return max(1, min(n, daysSinceJoined))
}

func singleDay(dayStart time.Time) Window {
	return Window{
		Range:     Range24h,
		Start:     dayStart,
		End:       dayStart.Add(day - time.Millisecond),
		Divisor:   1,
		IsAverage: false,
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
