package catalog

import "dineout/internal/domain"

// Catalog is the read-only restaurant collection loaded once at startup.
type Catalog struct {
	restaurants []domain.Restaurant
	byID        map[string]int
}

func New(restaurants []domain.Restaurant) *Catalog {
	c := &Catalog{
		restaurants: restaurants,
		byID:        make(map[string]int, len(restaurants)),
	}
	for i, r := range restaurants {
		c.byID[r.ID] = i
	}
	return c
}

// Default returns a catalog backed by the built-in sample data.
func Default() *Catalog {
	return New(SampleRestaurants())
}

// List returns the restaurants in catalog order.
func (c *Catalog) List() []domain.Restaurant {
	out := make([]domain.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) Get(id string) (domain.Restaurant, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Restaurant{}, false
	}
	return c.restaurants[i], true
}

// Item looks up a menu item within a restaurant.
func (c *Catalog) Item(restaurantID, itemID string) (domain.MenuItem, bool) {
	r, ok := c.Get(restaurantID)
	if !ok {
		return domain.MenuItem{}, false
	}
	return r.ItemByID(itemID)
}

func (c *Catalog) Len() int {
	return len(c.restaurants)
}
