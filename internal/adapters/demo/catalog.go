package demo

import (
	"embed"
	"encoding/json"
	"fmt"

	"techscene/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog is the static sample dataset shown while the store has no public records.
// It implements both domain.EventCatalog and domain.PersonCatalog.
type Catalog struct {
	events []*domain.Event
	people []*domain.Person
}

// Load reads the embedded sample events and profiles.
func Load() (*Catalog, error) {
	c := &Catalog{}
	if err := readJSON("data/events.json", &c.events); err != nil {
		return nil, err
	}
	if err := readJSON("data/people.json", &c.people); err != nil {
		return nil, err
	}
	return c, nil
}

func readJSON(name string, v any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (c *Catalog) Events() []*domain.Event {
	return c.events
}

func (c *Catalog) People() []*domain.Person {
	return c.people
}
