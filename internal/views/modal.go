package views

import "github.com/larekdev/weblarek/internal/events"

// Modal content identifiers.
const (
	ContentPreview  = "preview"
	ContentBasket   = "basket"
	ContentOrder    = "order"
	ContentContacts = "contacts"
	ContentSuccess  = "success"
)

// Modal is the single overlay container. Only one content is shown at a
// time; opening and closing emit modal:open/modal:close so the page can
// lock and unlock scrolling.
type Modal struct {
	bus *events.Bus

	Open    bool
	Content string
}

// NewModal binds the modal to the bus.
func NewModal(bus *events.Bus) *Modal {
	return &Modal{bus: bus}
}

// Show opens the modal with the named content.
func (m *Modal) Show(content string) {
	m.Content = content
	m.Open = true
	m.bus.Emit(events.ModalOpen, content)
}

// Close hides the modal.
func (m *Modal) Close() {
	m.Open = false
	m.Content = ""
	m.bus.Emit(events.ModalClose, nil)
}
