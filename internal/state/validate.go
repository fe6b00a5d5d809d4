package state

import (
	"regexp"
	"strings"

	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
)

// User-facing validation messages.
const (
	MsgPaymentRequired = "Необходимо выбрать способ оплаты"
	MsgAddressRequired = "Необходимо указать адрес"
	MsgEmailRequired   = "Необходимо указать email"
	MsgEmailInvalid    = "Некорректный формат email"
	MsgPhoneRequired   = "Необходимо указать телефон"
	MsgPhoneInvalid    = "Некорректный формат телефона"
)

var (
	emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// Optional +7/8 prefix, optional parens around the area code, spaces or
	// dashes among the 10 trailing digits.
	phoneRe = regexp.MustCompile(`^(\+7|8)?[\s(-]*\d{3}[\s)-]*\d{3}[\s-]*\d{2}[\s-]*\d{2}$`)
)

// ValidateOrder recomputes the payment/address error map, emits
// form-errors.order:changed with it and reports validity. It never touches
// the contacts-pass errors.
func (s *AppState) ValidateOrder() bool {
	errs := domain.FormErrors{}
	if s.order.Payment == "" {
		errs[string(domain.OrderFieldPayment)] = MsgPaymentRequired
	}
	if strings.TrimSpace(s.order.Address) == "" {
		errs[string(domain.OrderFieldAddress)] = MsgAddressRequired
	}
	s.orderErrors = errs
	s.bus.Emit(events.OrderErrorsChanged, errs.Clone())
	return len(errs) == 0
}

// ValidateContacts recomputes the email/phone error map, emits
// form-errors.contacts:changed with it and reports validity. Presence is
// checked before format, so an empty field reports "required" only.
func (s *AppState) ValidateContacts() bool {
	errs := domain.FormErrors{}
	switch email := strings.TrimSpace(s.order.Email); {
	case email == "":
		errs[string(domain.ContactFieldEmail)] = MsgEmailRequired
	case !emailRe.MatchString(email):
		errs[string(domain.ContactFieldEmail)] = MsgEmailInvalid
	}
	switch phone := strings.TrimSpace(s.order.Phone); {
	case phone == "":
		errs[string(domain.ContactFieldPhone)] = MsgPhoneRequired
	case !phoneRe.MatchString(phone):
		errs[string(domain.ContactFieldPhone)] = MsgPhoneInvalid
	}
	s.contactErrors = errs
	s.bus.Emit(events.ContactsErrorsChanged, errs.Clone())
	return len(errs) == 0
}
