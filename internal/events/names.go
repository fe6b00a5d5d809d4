package events

import "strings"

// Event names. Change events are emitted by the application state after a
// mutation; the rest are user intents emitted by views.
const (
	ItemsChanged          = "items:changed"
	PreviewChanged        = "preview:changed"
	BasketChanged         = "basket:changed"
	OrderErrorsChanged    = "form-errors.order:changed"
	ContactsErrorsChanged = "form-errors.contacts:changed"

	CardSelect     = "card:select"
	ProductAdd     = "product:add"
	ProductDelete  = "product:delete"
	BasketOpen     = "basket:open"
	OrderOpen      = "order:open"
	OrderSubmit    = "order:submit"
	ContactsSubmit = "contacts:submit"
	ModalOpen      = "modal:open"
	ModalClose     = "modal:close"

	OrderSuccess       = "order:success"
	OrderFailed        = "order:failed"
	OrderSubmitBlocked = "order:submit-blocked"
)

// FieldChange is the payload of every field-edit event.
type FieldChange struct {
	Field string
	Value string
}

// OrderFieldChanged names the edit event for one order-form field,
// e.g. "order.address:changed".
func OrderFieldChanged(field string) string {
	return "order." + field + ":changed"
}

// ContactsFieldChanged names the edit event for one contacts-form field.
func ContactsFieldChanged(field string) string {
	return "contacts." + field + ":changed"
}

// IsOrderFieldEvent matches any order-form field edit.
func IsOrderFieldEvent(name string) bool {
	return strings.HasPrefix(name, "order.") && strings.HasSuffix(name, ":changed")
}

// IsContactsFieldEvent matches any contacts-form field edit.
func IsContactsFieldEvent(name string) bool {
	return strings.HasPrefix(name, "contacts.") && strings.HasSuffix(name, ":changed")
}
