package views

import "github.com/larekdev/weblarek/internal/events"

// Basket lists the selected products with their running total. Rows and
// total are always replaced together, in one render.
type Basket struct {
	bus *events.Bus

	Rows  []*Card
	Total float64
}

// NewBasket binds the basket view to the bus.
func NewBasket(bus *events.Bus) *Basket {
	return &Basket{bus: bus}
}

// Render replaces the row list and the total atomically with respect to a
// single basket:changed event.
func (b *Basket) Render(rows []*Card, total float64) {
	b.Rows = rows
	b.Total = total
}

// Checkout is the "place order" button: it opens the first checkout form.
func (b *Basket) Checkout() {
	b.bus.Emit(events.OrderOpen, nil)
}
