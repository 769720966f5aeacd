package bookstall

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Item is a single catalog record. Items are compared structurally.
type Item struct {
	Name     string  `yaml:"name" mapstructure:"name"`
	Category string  `yaml:"category" mapstructure:"category"`
	Price    float64 `yaml:"price" mapstructure:"price"`
}

// Validate checks that the item carries a name and category and a non-negative price.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("validate item: empty name: %w", ErrInvalidInput)
	}
	if strings.TrimSpace(i.Category) == "" {
		return fmt.Errorf("validate item %q: empty category: %w", i.Name, ErrInvalidInput)
	}
	if i.Price < 0 {
		return fmt.Errorf("validate item %q: negative price %s: %w", i.Name, FormatPrice(i.Price), ErrInvalidInput)
	}
	return nil
}

// FormatPrice renders a price in its shortest decimal form ("201", "19.99").
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// Catalog is an ordered, read-only collection of items. It is built once at
// startup and shared by every request; none of its methods mutate it, so it is
// safe for concurrent use without locking.
type Catalog struct {
	items []Item
}

// NewCatalog creates a catalog holding a copy of items in the given order.
func NewCatalog(items ...Item) *Catalog {
	return &Catalog{items: slices.Clone(items)}
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns a copy of every item in catalog order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// Filter returns the items for which keep reports true, in catalog order.
func (c *Catalog) Filter(keep func(Item) bool) []Item {
	var out []Item
	for _, item := range c.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// ByCategory returns the items whose category equals category, ignoring case.
// An empty category matches nothing.
func (c *Catalog) ByCategory(category string) []Item {
	if category == "" {
		return nil
	}
	return c.Filter(func(item Item) bool {
		return strings.EqualFold(item.Category, category)
	})
}

// Categories returns the distinct categories in order of first appearance.
func (c *Catalog) Categories() []string {
	var out []string
	for _, item := range c.items {
		if !slices.ContainsFunc(out, func(s string) bool { return strings.EqualFold(s, item.Category) }) {
			out = append(out, item.Category)
		}
	}
	return out
}
