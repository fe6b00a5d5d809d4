// Package app wires the storefront together: it subscribes the fixed table
// of event handlers that connect state mutations to view renders, and view
// intents back to state mutators.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
	"github.com/larekdev/weblarek/internal/state"
	"github.com/larekdev/weblarek/internal/views"
)

const submitTimeout = 10 * time.Second

// App owns the bus, the application state, the views and the service
// client, and keeps them consistent through event subscriptions.
type App struct {
	bus     *events.Bus
	state   *state.AppState
	service domain.ProductService
	log     zerolog.Logger

	Page     *views.Page
	Modal    *views.Modal
	Basket   *views.Basket
	Order    *views.OrderForm
	Contacts *views.Contacts
	Success  *views.Success

	// Card currently shown in the preview modal, nil when none.
	PreviewCard *views.Card

	submitting bool
}

// New builds the storefront and registers every event subscription.
func New(bus *events.Bus, service domain.ProductService, log zerolog.Logger) *App {
	a := &App{
		bus:      bus,
		state:    state.New(bus),
		service:  service,
		log:      log,
		Page:     views.NewPage(bus),
		Modal:    views.NewModal(bus),
		Basket:   views.NewBasket(bus),
		Order:    views.NewOrderForm(bus),
		Contacts: views.NewContacts(bus),
		Success:  views.NewSuccess(bus),
	}
	a.wire()
	return a
}

// State exposes the application state for hosts and tests.
func (a *App) State() *state.AppState {
	return a.state
}

// Bus exposes the event bus so hosts can attach their own subscribers.
func (a *App) Bus() *events.Bus {
	return a.bus
}

// Bootstrap fetches the catalog and installs it into the state, which
// renders the grid through items:changed.
func (a *App) Bootstrap(ctx context.Context) error {
	items, err := a.service.FetchCatalog(ctx)
	if err != nil {
		return err
	}
	a.state.SetCatalog(items)
	return nil
}

func (a *App) wire() {
	// Debug tap: every event, whatever its name.
	a.bus.SubscribeAll(func(e events.Event) {
		a.log.Debug().Str("event", e.Name).Interface("payload", e.Payload).Msg("bus")
	})

	a.bus.Subscribe(events.ItemsChanged, a.onItemsChanged)
	a.bus.Subscribe(events.CardSelect, a.onCardSelect)
	a.bus.Subscribe(events.PreviewChanged, a.onPreviewChanged)
	a.bus.Subscribe(events.ProductAdd, a.onProductAdd)
	a.bus.Subscribe(events.ProductDelete, a.onProductDelete)
	a.bus.Subscribe(events.BasketChanged, a.onBasketChanged)
	a.bus.Subscribe(events.BasketOpen, a.onBasketOpen)
	a.bus.Subscribe(events.OrderOpen, a.onOrderOpen)
	a.bus.Match(events.IsOrderFieldEvent, a.onOrderFieldChanged)
	a.bus.Match(events.IsContactsFieldEvent, a.onContactsFieldChanged)
	a.bus.Subscribe(events.OrderErrorsChanged, a.onOrderErrors)
	a.bus.Subscribe(events.ContactsErrorsChanged, a.onContactsErrors)
	a.bus.Subscribe(events.OrderSubmit, a.onOrderSubmit)
	a.bus.Subscribe(events.ContactsSubmit, a.onContactsSubmit)
	a.bus.Subscribe(events.OrderSuccess, a.onOrderSuccess)
	a.bus.Subscribe(events.ModalOpen, a.onModalOpen)
	a.bus.Subscribe(events.ModalClose, a.onModalClose)
}

func (a *App) onItemsChanged(events.Event) {
	items := a.state.Catalog()
	cards := make([]*views.Card, 0, len(items))
	for _, p := range items {
		c := views.NewCard(a.bus, p)
		c.Selected = a.state.InBasket(p.ID)
		cards = append(cards, c)
	}
	a.Page.RenderCatalog(cards)
}

func (a *App) onCardSelect(e events.Event) {
	id, ok := e.Payload.(string)
	if !ok {
		panic("app: card:select payload is not a product id")
	}
	p, err := a.state.Product(id)
	if err != nil {
		a.log.Error().Err(err).Str("id", id).Msg("select unknown product")
		return
	}
	a.state.SetPreview(p)
}

func (a *App) onPreviewChanged(e events.Event) {
	p, ok := e.Payload.(domain.Product)
	if !ok {
		panic("app: preview:changed payload is not a product")
	}
	c := views.NewCard(a.bus, p)
	c.Selected = a.state.InBasket(p.ID)
	a.PreviewCard = c
	a.Modal.Show(views.ContentPreview)
}

func (a *App) onProductAdd(e events.Event) {
	id := e.Payload.(string)
	p, err := a.state.Product(id)
	if err != nil {
		a.log.Error().Err(err).Str("id", id).Msg("add unknown product")
		return
	}
	if err := a.state.AddToBasket(p); err != nil {
		a.log.Warn().Err(err).Str("id", id).Msg("basket add rejected")
	}
}

func (a *App) onProductDelete(e events.Event) {
	id := e.Payload.(string)
	if err := a.state.RemoveFromBasketByID(id); err != nil {
		a.log.Warn().Err(err).Str("id", id).Msg("basket remove rejected")
	}
}

// onBasketChanged refreshes everything that depends on the basket slice in
// one handler: rows, total, header counter and, when open, the preview
// card's Selected flag.
func (a *App) onBasketChanged(events.Event) {
	items := a.state.BasketItems()
	rows := make([]*views.Card, 0, len(items))
	for i, p := range items {
		c := views.NewCard(a.bus, p)
		c.Selected = true
		c.Index = i + 1
		rows = append(rows, c)
	}
	a.Basket.Render(rows, a.state.BasketTotal())
	a.Page.RenderCounter(a.state.BasketAmount())
	if a.PreviewCard != nil {
		a.PreviewCard.Selected = a.state.InBasket(a.PreviewCard.ID)
	}
}

func (a *App) onBasketOpen(events.Event) {
	a.Modal.Show(views.ContentBasket)
}

func (a *App) onOrderOpen(events.Event) {
	form := a.state.OrderData()
	a.Order.Render(form.Payment, form.Address, a.state.ValidateOrder())
	a.Modal.Show(views.ContentOrder)
}

func (a *App) onOrderFieldChanged(e events.Event) {
	fc, ok := e.Payload.(events.FieldChange)
	if !ok {
		panic("app: order field event payload is not a FieldChange")
	}
	a.state.SetOrderField(domain.OrderField(fc.Field), fc.Value)
}

func (a *App) onContactsFieldChanged(e events.Event) {
	fc, ok := e.Payload.(events.FieldChange)
	if !ok {
		panic("app: contacts field event payload is not a FieldChange")
	}
	a.state.SetContactsField(domain.ContactField(fc.Field), fc.Value)
}

func (a *App) onOrderErrors(e events.Event) {
	a.Order.SetErrors(e.Payload.(domain.FormErrors))
}

func (a *App) onContactsErrors(e events.Event) {
	a.Contacts.SetErrors(e.Payload.(domain.FormErrors))
}

// onOrderSubmit advances to the contacts form, but only when the order pass
// is valid; an invalid pass re-emits its errors and stays put.
func (a *App) onOrderSubmit(events.Event) {
	if !a.state.ValidateOrder() {
		return
	}
	form := a.state.OrderData()
	a.Contacts.Render(form.Email, form.Phone, a.state.ValidateContacts())
	a.Modal.Show(views.ContentContacts)
}

// onContactsSubmit posts the order. While a submission is pending a second
// attempt is refused with order:submit-blocked. On failure nothing is
// cleared, so the user can retry.
func (a *App) onContactsSubmit(events.Event) {
	if a.submitting {
		a.bus.Emit(events.OrderSubmitBlocked, nil)
		return
	}
	if !a.state.ValidateContacts() {
		return
	}
	payload := a.state.BuildSubmission()

	ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
	defer cancel()

	a.submitting = true
	res, err := a.service.SubmitOrder(ctx, payload)
	a.submitting = false
	if err != nil {
		a.log.Error().Err(err).Msg("order submission failed")
		a.bus.Emit(events.OrderFailed, err)
		return
	}

	a.bus.Emit(events.OrderSuccess, res)
	a.state.ClearBasket()
	a.state.ResetOrder()
}

func (a *App) onOrderSuccess(e events.Event) {
	res, ok := e.Payload.(domain.OrderResult)
	if !ok {
		panic("app: order:success payload is not an order result")
	}
	a.Success.Render(res.Total)
	a.Modal.Show(views.ContentSuccess)
}

func (a *App) onModalOpen(events.Event) {
	a.Page.Locked = true
}

func (a *App) onModalClose(events.Event) {
	a.Modal.Open = false
	a.Modal.Content = ""
	a.Page.Locked = false
}
