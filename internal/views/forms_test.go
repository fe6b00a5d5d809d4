package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
	"github.com/larekdev/weblarek/internal/views"
)

func TestOrderFormEmitsFieldChanges(t *testing.T) {
	bus := events.NewBus()
	var got []events.Event
	bus.SubscribeAll(func(e events.Event) { got = append(got, e) })

	f := views.NewOrderForm(bus)
	f.SetPayment(domain.PaymentCard)
	f.SetAddress("Москва")
	f.Submit()

	require.Len(t, got, 3)
	assert.Equal(t, "order.payment:changed", got[0].Name)
	assert.Equal(t, events.FieldChange{Field: "payment", Value: "card"}, got[0].Payload)
	assert.Equal(t, "order.address:changed", got[1].Name)
	assert.Equal(t, events.OrderSubmit, got[2].Name)
}

func TestContactsEmitsNamespacedEvents(t *testing.T) {
	bus := events.NewBus()
	var names []string
	bus.SubscribeAll(func(e events.Event) { names = append(names, e.Name) })

	f := views.NewContacts(bus)
	f.SetEmail("a@b.co")
	f.SetPhone("89991234567")
	f.Submit()

	assert.Equal(t, []string{"contacts.email:changed", "contacts.phone:changed", events.ContactsSubmit}, names)
	assert.True(t, events.IsContactsFieldEvent(names[0]))
	assert.False(t, events.IsOrderFieldEvent(names[0]))
}

func TestSetErrorsJoinsInStableOrder(t *testing.T) {
	f := views.NewOrderForm(events.NewBus())

	f.SetErrors(domain.FormErrors{
		"payment": "Необходимо выбрать способ оплаты",
		"address": "Необходимо указать адрес",
	})

	assert.False(t, f.Valid)
	assert.Equal(t, "Необходимо указать адрес; Необходимо выбрать способ оплаты", f.Errors)

	f.SetErrors(domain.FormErrors{})
	assert.True(t, f.Valid)
	assert.Empty(t, f.Errors)
}

func TestCardToggle(t *testing.T) {
	bus := events.NewBus()
	var names []string
	bus.SubscribeAll(func(e events.Event) { names = append(names, e.Name) })

	c := views.NewCard(bus, domain.Product{ID: "1", Title: "товар"})
	c.Toggle()
	c.Selected = true
	c.Toggle()
	c.Remove()

	assert.Equal(t, []string{events.ProductAdd, events.ProductDelete, events.ProductDelete}, names)
}
