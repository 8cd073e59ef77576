package services

import (
	"slices"
	"strings"

	"techscene/internal/domain"
)

// filterAll is the sentinel a client sends to clear a category filter.
const filterAll = "all"

func unconstrained(v string) bool {
	return v == "" || v == filterAll
}

// FilterEvents returns the events matching every provided predicate, in input order.
// The query matches title, description or venue case-insensitively.
func FilterEvents(events []*domain.Event, f domain.EventFilter) []*domain.Event {
	query := strings.ToLower(f.Query)
	out := make([]*domain.Event, 0, len(events))
	for _, e := range events {
		if !unconstrained(f.Type) && string(e.Type) != f.Type {
			continue
		}
		if !unconstrained(f.Topic) && !e.HasTopic(f.Topic) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) &&
			!strings.Contains(strings.ToLower(e.Venue), query) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterPeople returns the profiles matching every provided predicate, in input order.
// The query matches the space-joined searchable text of a profile case-insensitively.
func FilterPeople(people []*domain.Person, f domain.PersonFilter) []*domain.Person {
	query := strings.ToLower(f.Query)
	out := make([]*domain.Person, 0, len(people))
	for _, p := range people {
		if !unconstrained(f.Role) && string(p.Role) != f.Role {
			continue
		}
		if !unconstrained(f.Interest) && !p.HasInterest(f.Interest) {
			continue
		}
		if query != "" && !strings.Contains(searchableText(p), query) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func searchableText(p *domain.Person) string {
	parts := []string{p.Name}
	for _, opt := range []*string{p.Bio, p.Building, p.Company} {
		if opt != nil {
			parts = append(parts, *opt)
		}
	}
	parts = append(parts, p.Interests...)
	parts = append(parts, p.Communities...)

	nonEmpty := parts[:0]
	for _, s := range parts {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.ToLower(strings.Join(nonEmpty, " "))
}

// EventFacets lists the event types in first-seen order and the topics sorted.
func EventFacets(events []*domain.Event) domain.EventFacets {
	facets := domain.EventFacets{Types: []domain.EventType{}, Topics: []string{}}
	seenType := make(map[domain.EventType]struct{})
	seenTopic := make(map[string]struct{})
	for _, e := range events {
		if _, ok := seenType[e.Type]; !ok {
			seenType[e.Type] = struct{}{}
			facets.Types = append(facets.Types, e.Type)
		}
		for _, t := range e.Topics {
			if _, ok := seenTopic[t]; !ok {
				seenTopic[t] = struct{}{}
				facets.Topics = append(facets.Topics, t)
			}
		}
	}
	slices.Sort(facets.Topics)
	return facets
}

// PersonFacets lists the roles in first-seen order and the interests sorted.
func PersonFacets(people []*domain.Person) domain.PersonFacets {
	facets := domain.PersonFacets{Roles: []domain.Role{}, Interests: []string{}}
	seenRole := make(map[domain.Role]struct{})
	seenInterest := make(map[string]struct{})
	for _, p := range people {
		if _, ok := seenRole[p.Role]; !ok {
			seenRole[p.Role] = struct{}{}
			facets.Roles = append(facets.Roles, p.Role)
		}
		for _, i := range p.Interests {
			if _, ok := seenInterest[i]; !ok {
				seenInterest[i] = struct{}{}
				facets.Interests = append(facets.Interests, i)
			}
		}
	}
	slices.Sort(facets.Interests)
	return facets
}
