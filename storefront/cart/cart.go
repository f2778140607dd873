// Package cart holds the shopping cart: one line per item id, kept in the
// order items were first added.
package cart

import "bike-shop/models"

// Lookup resolves an item id against the current catalog snapshot.
type Lookup interface {
	Find(id int) (models.Item, bool)
}

type Line struct {
	models.Item
	Quantity int `json:"quantity"`
}

func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

type Totals struct {
	ItemCount int     `json:"item_count"`
	AmountDue float64 `json:"amount_due"`
}

// Cart is not safe for concurrent use; it belongs to a single UI loop.
type Cart struct {
	catalog Lookup
	lines   []*Line
}

func New(catalog Lookup) *Cart {
	return &Cart{catalog: catalog}
}

// AddItem adds one unit of the item. It reports false and leaves the cart
// untouched when the id is not in the catalog.
func (c *Cart) AddItem(id int) bool {
	item, ok := c.catalog.Find(id)
	if !ok {
		return false
	}

	if line := c.line(id); line != nil {
		line.Quantity++
		return true
	}

	c.lines = append(c.lines, &Line{Item: item, Quantity: 1})
	return true
}

func (c *Cart) RemoveItem(id int) {
	for i, line := range c.lines {
		if line.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the quantity of an existing line exactly. A quantity of
// zero or less removes the line; unknown ids are ignored.
func (c *Cart) SetQuantity(id, quantity int) {
	line := c.line(id)
	if line == nil {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	line.Quantity = quantity
}

// Totals is recomputed from the lines on every call.
func (c *Cart) Totals() Totals {
	var t Totals
	for _, line := range c.lines {
		t.ItemCount += line.Quantity
		t.AmountDue += line.Subtotal()
	}
	return t
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) line(id int) *Line {
	for _, line := range c.lines {
		if line.ID == id {
			return line
		}
	}
	return nil
}
