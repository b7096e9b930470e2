package activity

import (
	"fmt"
	"strings"

	"github.com/yanqian/weather-planner/internal/domain/weather"
)

// Catalog is the read-only activity registry. It is safe for concurrent use.
type Catalog struct {
	items []Activity
	byID  map[string]int
}

// NewCatalog validates items and builds a catalog. IDs must be unique and every
// activity must list at least one known weather category.
func NewCatalog(items []Activity) (*Catalog, error) {
	c := &Catalog{
		items: make([]Activity, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, item := range items {
		if strings.TrimSpace(item.ID) == "" {
			return nil, fmt.Errorf("activity %q has an empty id", item.Name)
		}
		if _, dup := c.byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate activity id %q", item.ID)
		}
		if len(item.SuitableWeather) == 0 {
			return nil, fmt.Errorf("activity %q has no suitable weather", item.ID)
		}
		for _, w := range item.SuitableWeather {
			if !w.Valid() {
				return nil, fmt.Errorf("activity %q lists unknown weather %q", item.ID, w)
			}
		}
		if !item.Category.Valid() {
			return nil, fmt.Errorf("activity %q has unknown category %q", item.ID, item.Category)
		}
		c.byID[item.ID] = len(c.items)
		c.items = append(c.items, cloneActivity(item))
	}
	return c, nil
}

// DefaultCatalog returns the built-in activity catalog.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultActivities)
	if err != nil {
		panic(fmt.Sprintf("activity: built-in catalog invalid: %v", err))
	}
	return c
}

// Len returns the number of activities.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns every activity in declaration order.
func (c *Catalog) All() []Activity {
	out := make([]Activity, 0, len(c.items))
	for _, item := range c.items {
		out = append(out, cloneActivity(item))
	}
	return out
}

// ByID looks up an activity.
func (c *Catalog) ByID(id string) (Activity, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Activity{}, false
	}
	return cloneActivity(c.items[idx]), true
}

// ByWeather returns activities viable in category w, in declaration order.
func (c *Catalog) ByWeather(w weather.Category) []Activity {
	out := make([]Activity, 0)
	for _, item := range c.items {
		if item.SuitableFor(w) {
			out = append(out, cloneActivity(item))
		}
	}
	return out
}

// Search matches query case-insensitively against name, description and tags.
func (c *Catalog) Search(query string) []Activity {
	needle := strings.ToLower(query)
	out := make([]Activity, 0)
	for _, item := range c.items {
		if matches(item, needle) {
			out = append(out, cloneActivity(item))
		}
	}
	return out
}

func matches(a Activity, needle string) bool {
	if strings.Contains(strings.ToLower(a.Name), needle) ||
		strings.Contains(strings.ToLower(a.Description), needle) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

func cloneActivity(a Activity) Activity {
	a.SuitableWeather = append([]weather.Category(nil), a.SuitableWeather...)
	a.Tags = append([]string(nil), a.Tags...)
	return a
}
