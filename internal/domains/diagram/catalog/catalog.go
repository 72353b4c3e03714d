// Package catalog holds the interpretation text for each house.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"
	"starlight/internal/domains/diagram/model"

	"gopkg.in/yaml.v3"
)

//go:embed houses.yaml
var housesYAML []byte

var ErrIncomplete = errors.New("house catalog must describe every house exactly once")

type Entry struct {
	House   int    `yaml:"house"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
}

type Catalog struct {
	entries []Entry
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(housesYAML)
}

func Parse(data []byte) (*Catalog, error) {
	var doc struct {
		Houses []Entry `yaml:"houses"`
	}

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse house catalog: %w", err)
	}

	sort.Slice(doc.Houses, func(i, j int) bool { return doc.Houses[i].House < doc.Houses[j].House })

	if len(doc.Houses) != model.Houses {
		return nil, ErrIncomplete
	}

	for i, entry := range doc.Houses {
		if entry.House != i+1 {
			return nil, ErrIncomplete
		}
	}

	return &Catalog{entries: doc.Houses}, nil
}

// Entry returns the text for a house numbered 1 to 12.
func (c *Catalog) Entry(house int) (Entry, bool) {
	if !model.Valid(house) {
		return Entry{}, false
	}

	return c.entries[house-1], true
}

func (c *Catalog) Titles() []string {
	titles := make([]string, len(c.entries))
	for i, entry := range c.entries {
		titles[i] = entry.Title
	}

	return titles
}
