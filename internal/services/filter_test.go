package services

import (
	"testing"

	"techscene/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleEvents() []*domain.Event {
	return []*domain.Event{
		{ID: "e1", Title: "AI Builders Night", Description: "Demos and drinks", Venue: "Second Home", Type: domain.EventTypeMeetup, Topics: []string{"AI", "Startups"}},
		{ID: "e2", Title: "Prompting 101", Description: "Hands-on LLM workshop", Venue: "Google Campus", Type: domain.EventTypeWorkshop, Topics: []string{"AI"}},
		{ID: "e3", Title: "Solidity Deep Dive", Description: "Smart contracts", Venue: "Rise", Type: domain.EventTypeWorkshop, Topics: []string{"Web3"}},
		{ID: "e4", Title: "London Hack Weekend", Description: "48 hours of building", Venue: "Imperial", Type: domain.EventTypeHackathon, Topics: nil},
	}
}

func personIDs(people []*domain.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.ID)
	}
	return out
}

func samplePeople() []*domain.Person {
	return []*domain.Person{
		{ID: "p1", Name: "Ada Lovelace", Bio: strPtr("Building compilers"), Role: domain.RoleDeveloper, Interests: []string{"AI", "Compilers"}, Communities: []string{"London Gophers"}},
		{ID: "p2", Name: "Grace Hopper", Company: strPtr("Navy Labs"), Role: domain.RoleFounder, Interests: []string{"DevTools"}},
		{ID: "p3", Name: "Alan Turing", Building: strPtr("a thinking machine"), Role: domain.RoleDeveloper, Interests: []string{"AI"}, Communities: []string{"Cerebral Valley"}},
		{ID: "p4", Name: "Mary Money", Role: domain.RoleInvestor},
	}
}

func TestFilterEvents(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.EventFilter
		want   []string
	}{
		{"no predicates", domain.EventFilter{}, []string{"e1", "e2", "e3", "e4"}},
		{"all sentinels", domain.EventFilter{Type: "all", Topic: "all"}, []string{"e1", "e2", "e3", "e4"}},
		{"type and topic", domain.EventFilter{Type: "workshop", Topic: "AI"}, []string{"e2"}},
		{"topic only", domain.EventFilter{Topic: "AI"}, []string{"e1", "e2"}},
		{"topic is exact", domain.EventFilter{Topic: "ai"}, []string{}},
		{"query matches title case-insensitively", domain.EventFilter{Query: "HACK"}, []string{"e4"}},
		{"query matches description", domain.EventFilter{Query: "llm"}, []string{"e2"}},
		{"query matches venue", domain.EventFilter{Query: "campus"}, []string{"e2"}},
		{"query does not match topics", domain.EventFilter{Query: "web3"}, []string{}},
		{"all predicates combined", domain.EventFilter{Query: "smart", Type: "workshop", Topic: "Web3"}, []string{"e3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterEvents(sampleEvents(), tt.filter)))
		})
	}
}

func TestFilterEvents_DoesNotMutateInput(t *testing.T) {
	events := sampleEvents()
	_ = FilterEvents(events, domain.EventFilter{Type: "workshop"})
	assert.Equal(t, []string{"e1", "e2", "e3", "e4"}, ids(events))
	assert.Equal(t, []string{"AI", "Startups"}, events[0].Topics)
}

func TestFilterPeople(t *testing.T) {
	tests := []struct {
		name   string
		filter domain.PersonFilter
		want   []string
	}{
		{"no predicates", domain.PersonFilter{}, []string{"p1", "p2", "p3", "p4"}},
		{"all sentinels", domain.PersonFilter{Role: "all", Interest: "all"}, []string{"p1", "p2", "p3", "p4"}},
		{"role", domain.PersonFilter{Role: "developer"}, []string{"p1", "p3"}},
		{"role and interest", domain.PersonFilter{Role: "developer", Interest: "Compilers"}, []string{"p1"}},
		{"query hits bio", domain.PersonFilter{Query: "COMPILERS"}, []string{"p1"}},
		{"query hits building", domain.PersonFilter{Query: "thinking"}, []string{"p3"}},
		{"query hits company", domain.PersonFilter{Query: "navy"}, []string{"p2"}},
		{"query hits communities", domain.PersonFilter{Query: "gophers"}, []string{"p1"}},
		{"query hits interests", domain.PersonFilter{Query: "devtools"}, []string{"p2"}},
		{"query spans joined fields", domain.PersonFilter{Query: "hopper navy"}, []string{"p2"}},
		{"no match", domain.PersonFilter{Query: "rust"}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, personIDs(FilterPeople(samplePeople(), tt.filter)))
		})
	}
}

func TestEventFacets(t *testing.T) {
	facets := EventFacets(sampleEvents())
	assert.Equal(t, []domain.EventType{domain.EventTypeMeetup, domain.EventTypeWorkshop, domain.EventTypeHackathon}, facets.Types)
	assert.Equal(t, []string{"AI", "Startups", "Web3"}, facets.Topics)
}

func TestPersonFacets(t *testing.T) {
	facets := PersonFacets(samplePeople())
	assert.Equal(t, []domain.Role{domain.RoleDeveloper, domain.RoleFounder, domain.RoleInvestor}, facets.Roles)
	assert.Equal(t, []string{"AI", "Compilers", "DevTools"}, facets.Interests)

	empty := PersonFacets(nil)
	assert.NotNil(t, empty.Roles)
	assert.NotNil(t, empty.Interests)
}
