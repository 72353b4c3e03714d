// Package catalog holds the articles the site can open in a modal.
package catalog

import (
	"embed"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed articles.yaml articles/*.md
var files embed.FS

const (
	indexFile  = "articles.yaml"
	articleDir = "articles"
)

type Entry struct {
	Key     string `yaml:"key"`
	Title   string `yaml:"title"`
	Summary string `yaml:"summary"`
	File    string `yaml:"file"`
	Body    []byte `yaml:"-"`
}

type Catalog struct {
	order   []string
	entries map[string]Entry
}

// Default loads the embedded catalog and every article body it lists.
func Default() (*Catalog, error) {
	index, err := files.ReadFile(indexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read article index: %w", err)
	}

	var doc struct {
		Articles []Entry `yaml:"articles"`
	}

	if err := yaml.Unmarshal(index, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse article index: %w", err)
	}

	c := &Catalog{entries: make(map[string]Entry, len(doc.Articles))}

	for _, entry := range doc.Articles {
		entry.Body, err = files.ReadFile(path.Join(articleDir, entry.File))
		if err != nil {
			return nil, fmt.Errorf("failed to read article %q: %w", entry.Key, err)
		}

		c.order = append(c.order, entry.Key)
		c.entries[entry.Key] = entry
	}

	return c, nil
}

func (c *Catalog) Get(key string) (Entry, bool) {
	entry, ok := c.entries[key]

	return entry, ok
}

// List returns the entries in index order.
func (c *Catalog) List() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, key := range c.order {
		out = append(out, c.entries[key])
	}

	return out
}
