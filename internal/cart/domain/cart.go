package domain

import "github.com/shopspring/decimal"

// Rating is the catalog rating snapshot carried on a line item. It is
// display-only; nothing in the cart aggregates it.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is the catalog snapshot captured when an item enters the cart.
// The cart never re-fetches product data, so a later catalog change does not
// alter an existing line item.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      *Rating         `json:"rating,omitempty"`
}

type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// Cart holds an ordered sequence of line items, unique by product id.
// Insertion order is display order. All mutators are total: invalid input
// degrades to a no-op, never an error.
type Cart struct {
	Items []LineItem
}

// Add appends a quantity-1 line item for p, or increments the quantity of
// the existing line for p.ID. The stored snapshot is not refreshed when the
// product is already present.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, LineItem{Product: p, Quantity: 1})
}

// Remove deletes the line item for productID, preserving the order of the
// rest. Unknown ids are a no-op.
func (c *Cart) Remove(productID int) {
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of the line item for productID.
// Quantities below 1 are a no-op; removal only happens through Remove.
func (c *Cart) SetQuantity(productID, quantity int) {
	if quantity < 1 {
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.Items = nil
}

// Total is the exact sum of price times quantity over all line items.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, li := range c.Items {
		total = total.Add(li.Subtotal())
	}
	return total
}

// ItemCount is the sum of quantities, not the number of distinct lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, li := range c.Items {
		n += li.Quantity
	}
	return n
}

// Clone returns a copy whose item slice is independent of the receiver's.
func (c Cart) Clone() Cart {
	if c.Items == nil {
		return Cart{}
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items}
}
