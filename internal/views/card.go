// Package views holds the thin view components of the storefront. Each view
// keeps a plain-data snapshot that the host UI renders, and turns user
// interactions into intent events on the bus. Views never touch the
// application state directly.
package views

import (
	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
)

// Card shows one product, in the catalog grid, the preview modal or a
// basket row. Selected mirrors basket membership and is set by the
// orchestrator on render.
type Card struct {
	bus *events.Bus

	ID          string
	Title       string
	Description string
	Image       string
	Category    domain.Category
	Price       *float64
	Selected    bool
	Index       int
}

// NewCard builds a card snapshot for a product.
func NewCard(bus *events.Bus, p domain.Product) *Card {
	return &Card{
		bus:         bus,
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Category:    p.Category,
		Price:       p.Price,
	}
}

// Select is the click on a catalog card: it asks for the preview.
func (c *Card) Select() {
	c.bus.Emit(events.CardSelect, c.ID)
}

// Toggle is the button in the preview modal: it adds the product to the
// basket, or removes it when already there.
func (c *Card) Toggle() {
	if c.Selected {
		c.bus.Emit(events.ProductDelete, c.ID)
	} else {
		c.bus.Emit(events.ProductAdd, c.ID)
	}
}

// Remove is the delete button on a basket row.
func (c *Card) Remove() {
	c.bus.Emit(events.ProductDelete, c.ID)
}
