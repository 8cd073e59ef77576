package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"techscene/internal/domain"

	"gopkg.in/yaml.v3"
)

// FeedConfig describes a single ICS calendar feed and the defaults stamped on its entries.
type FeedConfig struct {
	// Name labels the feed in logs and import results. Defaults to the URL.
	Name     string   `yaml:"name"`
	URL      string   `yaml:"url"`
	Source   string   `yaml:"source"`
	Type     string   `yaml:"type"`
	Topics   []string `yaml:"topics"`
	HostName string   `yaml:"host_name"`
}

// FeedsFile is the top-level layout of the importer's feeds file.
type FeedsFile struct {
	Feeds []FeedConfig `yaml:"feeds"`
}

// LoadFeeds reads and validates the feeds file at path.
func LoadFeeds(path string) ([]domain.FeedSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read feeds file: %w", err)
	}
	return ParseFeeds(raw)
}

// ParseFeeds decodes a feeds document. Unknown keys are rejected so typos surface early.
func ParseFeeds(raw []byte) ([]domain.FeedSource, error) {
	var file FeedsFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("decode feeds file: %w", err)
	}
	if len(file.Feeds) == 0 {
		return nil, errors.New("feeds file lists no feeds")
	}

	feeds := make([]domain.FeedSource, 0, len(file.Feeds))
	for i, fc := range file.Feeds {
		feed, err := fc.source()
		if err != nil {
			return nil, fmt.Errorf("feed %d: %w", i+1, err)
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

func (fc FeedConfig) source() (domain.FeedSource, error) {
	url := strings.TrimSpace(fc.URL)
	if url == "" {
		return domain.FeedSource{}, errors.New("url is required")
	}
	source, err := domain.ParseEventSource(strings.TrimSpace(fc.Source))
	if err != nil {
		return domain.FeedSource{}, err
	}
	if !source.Imported() {
		return domain.FeedSource{}, fmt.Errorf("%w: source must be luma or eventbrite", domain.ErrInvalidInput)
	}
	typ := domain.EventTypeMeetup
	if t := strings.TrimSpace(fc.Type); t != "" {
		if typ, err = domain.ParseEventType(t); err != nil {
			return domain.FeedSource{}, err
		}
	}
	hostName := strings.TrimSpace(fc.HostName)
	if hostName == "" {
		return domain.FeedSource{}, errors.New("host_name is required")
	}
	name := strings.TrimSpace(fc.Name)
	if name == "" {
		name = url
	}
	topics := make([]string, 0, len(fc.Topics))
	for _, t := range fc.Topics {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}
	return domain.FeedSource{
		Name:     name,
		URL:      url,
		Source:   source,
		Type:     typ,
		Topics:   topics,
		HostName: hostName,
	}, nil
}
