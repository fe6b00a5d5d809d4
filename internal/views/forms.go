package views

import (
	"sort"
	"strings"

	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
)

// OrderForm is the first checkout sub-form: payment method and delivery
// address.
type OrderForm struct {
	bus *events.Bus

	Payment domain.Payment
	Address string
	Valid   bool
	Errors  string
}

// NewOrderForm binds the form to the bus.
func NewOrderForm(bus *events.Bus) *OrderForm {
	return &OrderForm{bus: bus}
}

// Render shows the form with current values and validity.
func (f *OrderForm) Render(payment domain.Payment, address string, valid bool) {
	f.Payment = payment
	f.Address = address
	f.Valid = valid
	f.Errors = ""
}

// SetErrors shows the order-pass validation result.
func (f *OrderForm) SetErrors(errs domain.FormErrors) {
	f.Valid = len(errs) == 0
	f.Errors = joinErrors(errs)
}

// SetPayment is the payment toggle.
func (f *OrderForm) SetPayment(p domain.Payment) {
	f.Payment = p
	f.bus.Emit(events.OrderFieldChanged(string(domain.OrderFieldPayment)),
		events.FieldChange{Field: string(domain.OrderFieldPayment), Value: string(p)})
}

// SetAddress is the address input.
func (f *OrderForm) SetAddress(v string) {
	f.Address = v
	f.bus.Emit(events.OrderFieldChanged(string(domain.OrderFieldAddress)),
		events.FieldChange{Field: string(domain.OrderFieldAddress), Value: v})
}

// Submit advances to the contacts form.
func (f *OrderForm) Submit() {
	f.bus.Emit(events.OrderSubmit, nil)
}

// Contacts is the second checkout sub-form: email and phone.
type Contacts struct {
	bus *events.Bus

	Email  string
	Phone  string
	Valid  bool
	Errors string
}

// NewContacts binds the form to the bus.
func NewContacts(bus *events.Bus) *Contacts {
	return &Contacts{bus: bus}
}

// Render shows the form with current values and validity.
func (f *Contacts) Render(email, phone string, valid bool) {
	f.Email = email
	f.Phone = phone
	f.Valid = valid
	f.Errors = ""
}

// SetErrors shows the contacts-pass validation result.
func (f *Contacts) SetErrors(errs domain.FormErrors) {
	f.Valid = len(errs) == 0
	f.Errors = joinErrors(errs)
}

// SetEmail is the email input.
func (f *Contacts) SetEmail(v string) {
	f.Email = v
	f.bus.Emit(events.ContactsFieldChanged(string(domain.ContactFieldEmail)),
		events.FieldChange{Field: string(domain.ContactFieldEmail), Value: v})
}

// SetPhone is the phone input.
func (f *Contacts) SetPhone(v string) {
	f.Phone = v
	f.bus.Emit(events.ContactsFieldChanged(string(domain.ContactFieldPhone)),
		events.FieldChange{Field: string(domain.ContactFieldPhone), Value: v})
}

// Submit sends the finalized order.
func (f *Contacts) Submit() {
	f.bus.Emit(events.ContactsSubmit, nil)
}

// joinErrors renders an error map as a single line, fields in stable order.
func joinErrors(errs domain.FormErrors) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, errs[k])
	}
	return strings.Join(msgs, "; ")
}
