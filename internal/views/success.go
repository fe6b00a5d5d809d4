package views

import "github.com/larekdev/weblarek/internal/events"

// Success shows the server-confirmed total after a completed order.
type Success struct {
	bus *events.Bus

	Total float64
}

// NewSuccess binds the view to the bus.
func NewSuccess(bus *events.Bus) *Success {
	return &Success{bus: bus}
}

// Render shows the total returned by the server, not the locally computed
// one.
func (v *Success) Render(total float64) {
	v.Total = total
}

// Dismiss is the "за новыми покупками" button.
func (v *Success) Dismiss() {
	v.bus.Emit(events.ModalClose, nil)
}
