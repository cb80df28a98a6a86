package service

import (
	"context"

	"portfolio/internal/contact"
	"portfolio/internal/logging"
)

// Handoff is the composed mail-client link for a contact submission.
type Handoff struct {
	Address string `json:"address"`
	URI     string `json:"uri"`
}

// ContactService turns a contact form into a mail-client handoff. Nothing is
// sent or stored.
type ContactService interface {
	Compose(ctx context.Context, form contact.Form) (*Handoff, error)
}

type contactService struct {
	address string
}

func NewContactService(address string) ContactService {
	return &contactService{address: address}
}

func (s *contactService) Compose(ctx context.Context, form contact.Form) (*Handoff, error) {
	if s.address == "" {
		return nil, contact.ErrNoAddress
	}
	if err := contact.Validate(form); err != nil {
		return nil, err
	}
	uri := contact.ComposeHandoff(s.address, form)
	logging.Info("contact", "handoff_composed", map[string]any{
		"subject_len": len(form.Subject),
		"body_len":    len(form.Message),
	})
	return &Handoff{Address: s.address, URI: uri}, nil
}
