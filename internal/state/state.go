// Package state holds the observable application state: catalog, basket,
// previewed item and the in-progress order form. Every mutator finishes
// updating internal state before it emits its change event, so subscribers
// never observe a torn snapshot. The state is meant to be driven from a
// single goroutine; the bus underneath is safe either way.
package state

import (
	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
)

// AppState is constructed once at startup with an injected bus and empty
// catalog, basket and order.
type AppState struct {
	bus *events.Bus

	catalog []domain.Product
	preview string

	// Basket membership is the presence of an id in basketIDs; insertion
	// order is display order. Snapshots of the products are kept separately
	// so catalog entries are never mutated as a side channel.
	basketIDs   []string
	basketItems map[string]domain.Product

	order         domain.OrderForm
	orderErrors   domain.FormErrors
	contactErrors domain.FormErrors
}

// New creates an empty application state bound to the given bus.
func New(bus *events.Bus) *AppState {
	return &AppState{
		bus:           bus,
		basketItems:   make(map[string]domain.Product),
		orderErrors:   domain.FormErrors{},
		contactErrors: domain.FormErrors{},
	}
}

// SetCatalog replaces the catalog wholesale and emits items:changed.
func (s *AppState) SetCatalog(items []domain.Product) {
	s.catalog = append([]domain.Product(nil), items...)
	s.bus.Emit(events.ItemsChanged, s.Catalog())
}

// Catalog returns a copy of the current catalog.
func (s *AppState) Catalog() []domain.Product {
	return append([]domain.Product(nil), s.catalog...)
}

// Product looks a catalog entry up by id.
func (s *AppState) Product(id string) (domain.Product, error) {
	for _, p := range s.catalog {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

// SetPreview marks the product as currently shown in the detail view and
// emits preview:changed with the full product. Preview is independent of
// basket membership.
func (s *AppState) SetPreview(p domain.Product) {
	s.preview = p.ID
	s.bus.Emit(events.PreviewChanged, p)
}

// Preview returns the id of the previewed product, or "".
func (s *AppState) Preview() string {
	return s.preview
}

// AddToBasket appends the product to the basket. Adding a product whose id
// is already present is rejected with ErrDuplicateItem and emits nothing.
func (s *AppState) AddToBasket(p domain.Product) error {
	if s.InBasket(p.ID) {
		return domain.ErrDuplicateItem
	}
	s.basketIDs = append(s.basketIDs, p.ID)
	s.basketItems[p.ID] = p
	s.bus.Emit(events.BasketChanged, s.BasketItems())
	return nil
}

// RemoveFromBasket removes the product by id.
func (s *AppState) RemoveFromBasket(p domain.Product) error {
	return s.RemoveFromBasketByID(p.ID)
}

// RemoveFromBasketByID removes one basket entry and emits basket:changed.
func (s *AppState) RemoveFromBasketByID(id string) error {
	for i, got := range s.basketIDs {
		if got == id {
			s.basketIDs = append(s.basketIDs[:i], s.basketIDs[i+1:]...)
			delete(s.basketItems, id)
			s.bus.Emit(events.BasketChanged, s.BasketItems())
			return nil
		}
	}
	return domain.ErrNotInBasket
}

// ClearBasket empties the basket and emits basket:changed.
func (s *AppState) ClearBasket() {
	s.basketIDs = nil
	s.basketItems = make(map[string]domain.Product)
	s.bus.Emit(events.BasketChanged, s.BasketItems())
}

// InBasket reports basket membership for a product id.
func (s *AppState) InBasket(id string) bool {
	_, ok := s.basketItems[id]
	return ok
}

// BasketItems returns the basket contents in insertion order.
func (s *AppState) BasketItems() []domain.Product {
	out := make([]domain.Product, 0, len(s.basketIDs))
	for _, id := range s.basketIDs {
		out = append(out, s.basketItems[id])
	}
	return out
}

// BasketAmount returns the number of basket entries, priceless ones
// included.
func (s *AppState) BasketAmount() int {
	return len(s.basketIDs)
}

// BasketTotal sums the prices of basket entries. Priceless items are
// skipped, so the displayed total always matches the submitted one.
func (s *AppState) BasketTotal() float64 {
	var total float64
	for _, id := range s.basketIDs {
		total += s.basketItems[id].PriceValue()
	}
	return total
}

// SetOrderField writes one field of the first checkout sub-form and
// immediately re-validates that sub-form. An unknown field is a programmer
// error and panics.
func (s *AppState) SetOrderField(field domain.OrderField, value string) {
	switch field {
	case domain.OrderFieldPayment:
		s.order.Payment = domain.Payment(value)
	case domain.OrderFieldAddress:
		s.order.Address = value
	default:
		panic("state: unknown order field " + string(field))
	}
	s.ValidateOrder()
}

// SetContactsField writes one field of the second checkout sub-form and
// immediately re-validates that sub-form.
func (s *AppState) SetContactsField(field domain.ContactField, value string) {
	switch field {
	case domain.ContactFieldEmail:
		s.order.Email = value
	case domain.ContactFieldPhone:
		s.order.Phone = value
	default:
		panic("state: unknown contact field " + string(field))
	}
	s.ValidateContacts()
}

// OrderData returns the current order form values.
func (s *AppState) OrderData() domain.OrderForm {
	return s.order
}

// OrderErrors returns the last order-pass validation result.
func (s *AppState) OrderErrors() domain.FormErrors {
	return s.orderErrors.Clone()
}

// ContactErrors returns the last contacts-pass validation result.
func (s *AppState) ContactErrors() domain.FormErrors {
	return s.contactErrors.Clone()
}

// BuildSubmission assembles the order payload from the current basket and
// form without mutating anything. Priceless items are filtered from both
// the item list and the total.
func (s *AppState) BuildSubmission() domain.OrderPayload {
	items := make([]string, 0, len(s.basketIDs))
	for _, id := range s.basketIDs {
		if s.basketItems[id].Priced() {
			items = append(items, id)
		}
	}
	return domain.OrderPayload{
		Payment: s.order.Payment,
		Address: s.order.Address,
		Email:   s.order.Email,
		Phone:   s.order.Phone,
		Items:   items,
		Total:   s.BasketTotal(),
	}
}

// ResetOrder clears the order form and both error maps. Idempotent; emits
// nothing.
func (s *AppState) ResetOrder() {
	s.order = domain.OrderForm{}
	s.orderErrors = domain.FormErrors{}
	s.contactErrors = domain.FormErrors{}
}
