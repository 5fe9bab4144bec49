package domain

import (
	"fmt"
	"strings"

	"github.com/samirrijal/parkplanner/internal/pkg/geospatial"
)

// Catalog is the immutable, ordered set of parks a trip is planned from.
type Catalog struct {
	parks []Park
	index map[int]int
}

// NewCatalog builds a catalog from parks in the given order. It fails with
// ErrEmptyCatalog for no parks and ErrInvalidCatalog when a park breaks a
// field invariant or repeats an id.
func NewCatalog(parks []Park) (*Catalog, error) {
	if len(parks) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		parks: make([]Park, len(parks)),
		index: make(map[int]int, len(parks)),
	}
	copy(c.parks, parks)

	for i, p := range c.parks {
		switch {
		case p.ID < 0:
			return nil, fmt.Errorf("%w: negative park id %d", ErrInvalidCatalog, p.ID)
		case p.Name == "":
			return nil, fmt.Errorf("%w: park %d has no name", ErrInvalidCatalog, p.ID)
		case !geospatial.ValidLatitude(p.Location.Lat):
			return nil, fmt.Errorf("%w: park %d: %w", ErrInvalidCatalog, p.ID, geospatial.ErrInvalidLatitude)
		case !geospatial.ValidLongitude(p.Location.Lon):
			return nil, fmt.Errorf("%w: park %d: %w", ErrInvalidCatalog, p.ID, geospatial.ErrInvalidLongitude)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate park id %d", ErrInvalidCatalog, p.ID)
		}
		c.index[p.ID] = i
	}

	return c, nil
}

// Len returns the number of parks.
func (c *Catalog) Len() int {
	return len(c.parks)
}

// Parks returns every park in file order.
func (c *Catalog) Parks() []Park {
	out := make([]Park, len(c.parks))
	copy(out, c.parks)
	return out
}

// FindByID returns the park with the given id or ErrNotFound.
func (c *Catalog) FindByID(id int) (Park, error) {
	i, ok := c.index[id]
	if !ok {
		return Park{}, fmt.Errorf("park %d: %w", id, ErrNotFound)
	}
	return c.parks[i], nil
}

// Match returns, in catalog order, the parks whose name contains query.
// Comparison folds ASCII letters only; an empty query matches every park.
func (c *Catalog) Match(query string) []Park {
	q := FoldASCII(query)

	var out []Park
	for _, p := range c.parks {
		if strings.Contains(FoldASCII(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// FoldASCII lower-cases A-Z and leaves every other rune untouched.
func FoldASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
