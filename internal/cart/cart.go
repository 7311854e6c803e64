// Package cart holds the in-progress item selection for one prospective
// order and the checkout state that goes with it.
package cart

import "dineout/internal/domain"

// Line is a cart entry: a snapshot of the menu item plus a quantity.
// Quantity is always > 0 for a line present in the cart.
type Line struct {
	Item     domain.MenuItem `json:"item"`
	Quantity int             `json:"quantity"`
}

// Cart is keyed by menu-item id so that two structurally identical items
// stay distinct and later catalog edits cannot reach a stored line. Line
// order is first-insertion order, which keeps totals and snapshots
// deterministic.
type Cart struct {
	lines map[string]Line
	order []string
}

func New() *Cart {
	return &Cart{lines: make(map[string]Line)}
}

// SetQuantity sets the quantity for an item. A quantity <= 0 removes the
// line entirely; it is never stored as zero.
func (c *Cart) SetQuantity(item domain.MenuItem, quantity int) {
	if quantity <= 0 {
		c.Remove(item.ID)
		return
	}
	if _, ok := c.lines[item.ID]; !ok {
		c.order = append(c.order, item.ID)
	}
	c.lines[item.ID] = Line{Item: item, Quantity: quantity}
}

// Add increments the quantity for an item, inserting it if absent.
func (c *Cart) Add(item domain.MenuItem, quantity int) {
	current := 0
	if line, ok := c.lines[item.ID]; ok {
		current = line.Quantity
	}
	c.SetQuantity(item, current+quantity)
}

func (c *Cart) Remove(itemID string) {
	if _, ok := c.lines[itemID]; !ok {
		return
	}
	delete(c.lines, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Quantity returns the current quantity for an item id, 0 if absent.
func (c *Cart) Quantity(itemID string) int {
	return c.lines[itemID].Quantity
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice is the sum of price*quantity over all lines. Rounding to two
// decimals is a presentation concern, not done here.
func (c *Cart) TotalPrice() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Item.Price * float64(line.Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = make(map[string]Line)
	c.order = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.lines[id])
	}
	return out
}

// Snapshot freezes the cart contents into order lines. The result shares no
// state with the cart; later mutations cannot touch it.
func (c *Cart) Snapshot() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.order))
	for _, id := range c.order {
		line := c.lines[id]
		items = append(items, domain.OrderItem{
			ItemID:   line.Item.ID,
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	return items
}
