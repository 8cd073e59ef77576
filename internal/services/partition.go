package services

import (
	"slices"
	"time"

	"techscene/internal/domain"
)

const (
	eventDateLayout = "2006-01-02"
	eventTimeLayout = "15:04"
)

// eventMoment is a sortable instant for an event. ok is false when the stored
// date or time could not be parsed.
type eventMoment struct {
	at time.Time
	ok bool
}

func momentOf(date, clock string, loc *time.Location) eventMoment {
	at, err := time.ParseInLocation(eventDateLayout+" "+eventTimeLayout, date+" "+trimSeconds(clock), loc)
	if err != nil {
		return eventMoment{}
	}
	return eventMoment{at: at, ok: true}
}

// trimSeconds accepts HH:MM:SS as stored by Postgres time columns.
func trimSeconds(clock string) string {
	if len(clock) == len("15:04:05") && clock[5] == ':' {
		return clock[:5]
	}
	return clock
}

// closingMoment is the end_time when present, otherwise the start_time.
func closingMoment(e *domain.Event, loc *time.Location) eventMoment {
	if e.EndTime != nil && *e.EndTime != "" {
		return momentOf(e.Date, *e.EndTime, loc)
	}
	return momentOf(e.Date, e.StartTime, loc)
}

// IsEventPast reports whether the event's closing moment is strictly before now.
// Events whose date or time cannot be parsed are never past.
func IsEventPast(e *domain.Event, now time.Time) bool {
	m := closingMoment(e, now.Location())
	return m.ok && m.at.Before(now)
}

// Partition splits events into upcoming (soonest first) and past (most recent first).
// Both sorts are stable and unparseable events sort after all others. The input slice
// is not modified.
func Partition(events []*domain.Event, now time.Time) domain.EventPartition {
	loc := now.Location()
	out := domain.EventPartition{
		Upcoming: make([]*domain.Event, 0, len(events)),
		Past:     make([]*domain.Event, 0),
	}
	for _, e := range events {
		if IsEventPast(e, now) {
			out.Past = append(out.Past, e)
		} else {
			out.Upcoming = append(out.Upcoming, e)
		}
	}

	slices.SortStableFunc(out.Upcoming, func(a, b *domain.Event) int {
		return compareMoments(momentOf(a.Date, a.StartTime, loc), momentOf(b.Date, b.StartTime, loc))
	})
	// Past events always have a parseable closing moment.
	slices.SortStableFunc(out.Past, func(a, b *domain.Event) int {
		return closingMoment(b, loc).at.Compare(closingMoment(a, loc).at)
	})
	return out
}

// compareMoments orders ascending with unparseable moments last.
func compareMoments(a, b eventMoment) int {
	switch {
	case !a.ok && !b.ok:
		return 0
	case !a.ok:
		return 1
	case !b.ok:
		return -1
	}
	return a.at.Compare(b.at)
}
