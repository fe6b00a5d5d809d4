package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/larekdev/weblarek/internal/domain"
	"github.com/larekdev/weblarek/internal/events"
	"github.com/larekdev/weblarek/internal/state"
)

func TestEmailFormats(t *testing.T) {
	cases := []struct {
		email string
		want  string // expected message, "" for valid
	}{
		{"a@b.co", ""},
		{"ivan.petrov+shop@yandex.ru", ""},
		{"", state.MsgEmailRequired},
		{"bad", state.MsgEmailInvalid},
		{"@yandex.ru", state.MsgEmailInvalid},
		{"ivan@", state.MsgEmailInvalid},
		{"ivan@yandex", state.MsgEmailInvalid},
		{"ivan petrov@yandex.ru", state.MsgEmailInvalid},
	}
	for _, tc := range cases {
		s := state.New(events.NewBus())
		s.SetContactsField(domain.ContactFieldEmail, tc.email)
		got := s.ContactErrors()["email"]
		assert.Equal(t, tc.want, got, "email %q", tc.email)
	}
}

func TestPhoneFormats(t *testing.T) {
	cases := []struct {
		phone string
		want  string
	}{
		{"+7 (999) 123-45-67", ""},
		{"+79991234567", ""},
		{"89991234567", ""},
		{"8 999 123 45 67", ""},
		{"999-123-45-67", ""},
		{"9991234567", ""},
		{"", state.MsgPhoneRequired},
		{"123", state.MsgPhoneInvalid},
		{"телефон", state.MsgPhoneInvalid},
		{"+1 555 123 4567", state.MsgPhoneInvalid},
		{"+7 999 123", state.MsgPhoneInvalid},
	}
	for _, tc := range cases {
		s := state.New(events.NewBus())
		s.SetContactsField(domain.ContactFieldPhone, tc.phone)
		got := s.ContactErrors()["phone"]
		assert.Equal(t, tc.want, got, "phone %q", tc.phone)
	}
}

func TestPresenceCheckedBeforeFormat(t *testing.T) {
	s := state.New(events.NewBus())

	s.SetContactsField(domain.ContactFieldEmail, "   ")

	assert.Equal(t, state.MsgEmailRequired, s.ContactErrors()["email"])
}
