// Package levels provides the level catalog built from session configuration
// and Stage, an in-memory level loader for the flow controller.
package levels

import (
	"fmt"

	"github.com/vovakirdan/levelrun/internal/config"
)

// Info describes a level in the catalog.
type Info struct {
	ID    string
	Name  string
	Next  string // Empty on the final level
	Index int    // Position in the authored order, starting at 0
}

// Catalog is the ordered, read-only list of authored levels.
type Catalog struct {
	first string
	order []string
	byID  map[string]Info
}

// NewCatalog builds a catalog from level configuration.
// Duplicate IDs are rejected; the first occurrence would otherwise shadow later ones.
func NewCatalog(cfg config.LevelsConfig) (*Catalog, error) {
	c := &Catalog{
		first: cfg.First,
		order: make([]string, 0, len(cfg.List)),
		byID:  make(map[string]Info, len(cfg.List)),
	}
	for i, lvl := range cfg.List {
		if _, exists := c.byID[lvl.ID]; exists {
			return nil, fmt.Errorf("levels: level %q already registered", lvl.ID)
		}
		name := lvl.Name
		if name == "" {
			name = lvl.ID
		}
		c.byID[lvl.ID] = Info{ID: lvl.ID, Name: name, Next: lvl.Next, Index: i}
		c.order = append(c.order, lvl.ID)
	}
	return c, nil
}

// First returns the ID of the level every session starts on.
func (c *Catalog) First() string {
	return c.first
}

// List returns all levels in authored order.
func (c *Catalog) List() []Info {
	result := make([]Info, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, c.byID[id])
	}
	return result
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id string) (Info, bool) {
	info, ok := c.byID[id]
	return info, ok
}

// Exists checks if a level with the given ID is in the catalog.
func (c *Catalog) Exists(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Next returns the level that follows id. The final level, and any level
// not in the catalog, has no next level.
func (c *Catalog) Next(id string) (string, bool) {
	info, ok := c.byID[id]
	if !ok || info.Next == "" {
		return "", false
	}
	return info.Next, true
}

// Name returns the display name of a level, falling back to its ID.
func (c *Catalog) Name(id string) string {
	if info, ok := c.byID[id]; ok {
		return info.Name
	}
	return id
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.order)
}
