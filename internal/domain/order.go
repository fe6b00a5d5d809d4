package domain

// Payment is the selected payment method. The zero value means the user has
// not picked one yet.
type Payment string

const (
	PaymentCard Payment = "card"
	PaymentCash Payment = "cash"
)

// OrderField identifies a field of the first checkout sub-form.
type OrderField string

const (
	OrderFieldPayment OrderField = "payment"
	OrderFieldAddress OrderField = "address"
)

// ContactField identifies a field of the second checkout sub-form.
type ContactField string

const (
	ContactFieldEmail ContactField = "email"
	ContactFieldPhone ContactField = "phone"
)

// OrderForm is the two-stage checkout form: payment and address are collected
// first, email and phone after.
type OrderForm struct {
	Payment Payment
	Address string
	Email   string
	Phone   string
}

// FormErrors maps a field name to a human-readable validation message. Each
// validation pass produces its own map; the order pass and the contacts pass
// never clear each other's.
type FormErrors map[string]string

// Clone returns an independent copy, so bus subscribers cannot alias the
// live map.
func (e FormErrors) Clone() FormErrors {
	out := make(FormErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// OrderPayload is the finalized order sent to the server. Items holds only
// ids of priced basket entries, and Total counts only those entries.
type OrderPayload struct {
	Payment Payment  `json:"payment"`
	Address string   `json:"address"`
	Email   string   `json:"email"`
	Phone   string   `json:"phone"`
	Items   []string `json:"items"`
	Total   float64  `json:"total"`
}

// OrderResult is the server's response to a submitted order.
type OrderResult struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
}
