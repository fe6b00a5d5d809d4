package views

import "github.com/larekdev/weblarek/internal/events"

// Page is the top-level chrome: the catalog grid, the basket counter in the
// header, and the scroll lock while a modal is open.
type Page struct {
	bus *events.Bus

	Counter int
	Catalog []*Card
	Locked  bool
}

// NewPage binds the page to the bus.
func NewPage(bus *events.Bus) *Page {
	return &Page{bus: bus}
}

// RenderCatalog replaces the catalog grid.
func (p *Page) RenderCatalog(cards []*Card) {
	p.Catalog = cards
}

// RenderCounter updates the header basket counter.
func (p *Page) RenderCounter(n int) {
	p.Counter = n
}

// OpenBasket is the click on the header basket button.
func (p *Page) OpenBasket() {
	p.bus.Emit(events.BasketOpen, nil)
}
