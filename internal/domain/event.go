package domain

import (
	"context"
	"fmt"
	"time"
)

// EventType is the kind of gathering an event is.
type EventType string

const (
	EventTypeHackathon  EventType = "hackathon"
	EventTypeMeetup     EventType = "meetup"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeConference EventType = "conference"
	EventTypeNetworking EventType = "networking"
)

// EventTypes lists every EventType in display order.
var EventTypes = []EventType{
	EventTypeHackathon,
	EventTypeMeetup,
	EventTypeWorkshop,
	EventTypeConference,
	EventTypeNetworking,
}

// Valid reports whether t is one of the known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeHackathon, EventTypeMeetup, EventTypeWorkshop, EventTypeConference, EventTypeNetworking:
		return true
	}
	return false
}

// ParseEventType converts user or stored input into an EventType.
func ParseEventType(v string) (EventType, error) {
	t := EventType(v)
	if !t.Valid() {
		return "", fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, v)
	}
	return t, nil
}

// EventSource records where an event entered the directory.
type EventSource string

const (
	EventSourceLuma       EventSource = "luma"
	EventSourceEventbrite EventSource = "eventbrite"
	EventSourceManual     EventSource = "manual"
)

// Valid reports whether s is one of the known sources.
func (s EventSource) Valid() bool {
	switch s {
	case EventSourceLuma, EventSourceEventbrite, EventSourceManual:
		return true
	}
	return false
}

// Imported reports whether the source is an external calendar feed.
func (s EventSource) Imported() bool {
	switch s {
	case EventSourceLuma, EventSourceEventbrite:
		return true
	case EventSourceManual:
		return false
	}
	return false
}

// ParseEventSource converts user or stored input into an EventSource.
func ParseEventSource(v string) (EventSource, error) {
	s := EventSource(v)
	if !s.Valid() {
		return "", fmt.Errorf("%w: unknown event source %q", ErrInvalidInput, v)
	}
	return s, nil
}

// Event is a scheduled community gathering.
// Date is a calendar date (YYYY-MM-DD); StartTime and EndTime are wall-clock times (HH:MM).
// swagger:model Event
type Event struct {
	ID              string         `json:"id"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Date            string         `json:"date"`
	StartTime       string         `json:"start_time"`
	EndTime         *string        `json:"end_time"`
	Venue           string         `json:"venue"`
	Location        string         `json:"location"`
	Type            EventType      `json:"type"`
	Topics          []string       `json:"topics"`
	HostName        string         `json:"host_name"`
	RegistrationURL *string        `json:"registration_url"`
	ImageURL        *string        `json:"image_url"`
	Source          EventSource    `json:"source"`
	CreatedAt       time.Time      `json:"created_at"`
	ApprovalStatus  ApprovalStatus `json:"approval_status"`
	ApprovedAt      *time.Time     `json:"approved_at"`
}

// HasTopic reports whether topic is one of the event's topics.
func (e *Event) HasTopic(topic string) bool {
	for _, t := range e.Topics {
		if t == topic {
			return true
		}
	}
	return false
}

// EventSubmission is the raw event form as posted by a signed-in user or produced by a
// feed import. Comma-separated fields are split during normalization. ApprovalStatus and
// ApprovedAt are accepted so that clients sending them are not rejected, but they are
// always overridden.
type EventSubmission struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	Venue           string     `json:"venue"`
	Location        string     `json:"location"`
	Type            string     `json:"type"`
	Topics          string     `json:"topics"`
	HostName        string     `json:"host_name"`
	RegistrationURL string     `json:"registration_url"`
	ImageURL        string     `json:"image_url"`
	Source          string     `json:"source,omitempty"`
	ApprovalStatus  string     `json:"approval_status,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
}

// EventFilter holds the user-selected predicates for narrowing an event list.
// Empty or "all" values impose no constraint.
type EventFilter struct {
	Query string
	Type  string
	Topic string
}

// EventPartition is an event list split into upcoming and past, each sorted for display.
type EventPartition struct {
	Upcoming []*Event `json:"upcoming"`
	Past     []*Event `json:"past"`
}

// EventFacets are the distinct filter values present in an event list.
type EventFacets struct {
	Types  []EventType `json:"types"`
	Topics []string    `json:"topics"`
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	// ListApproved returns approved events with a non-null approved_at, ordered by date ascending.
	ListApproved(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, event *Event) error
	ExistsByRegistrationURL(ctx context.Context, url string) (bool, error)
}

// EventCatalog is a static event dataset used when the store yields nothing.
type EventCatalog interface {
	Events() []*Event
}

// EventTab selects which partition of the public feed is returned.
type EventTab string

const (
	EventTabUpcoming EventTab = "upcoming"
	EventTabPast     EventTab = "past"
)

// EventFeed is the public event listing after partitioning and filtering.
type EventFeed struct {
	UpcomingCount int         `json:"upcoming_count"`
	PastCount     int         `json:"past_count"`
	Events        []*Event    `json:"events"`
	Facets        EventFacets `json:"facets"`
	Fallback      bool        `json:"fallback"`
}

// EventService defines the business logic for listing and submitting events.
type EventService interface {
	// ListApprovedEvents returns events past the approval buffer; store failures yield an empty list.
	ListApprovedEvents(ctx context.Context) []*Event
	// PublicEvents returns the publicly visible events, falling back to the static catalog
	// when the store yields none. The boolean reports whether the fallback was used.
	PublicEvents(ctx context.Context) ([]*Event, bool)
	Feed(ctx context.Context, tab EventTab, filter EventFilter) EventFeed
	GetPublicEvent(ctx context.Context, id string) (*Event, error)
	SubmitEvent(ctx context.Context, raw EventSubmission) (*Event, error)
}
