package service

import (
	"fmt"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/mail"
)

type ContactService struct {
	sender mail.Sender
}

func NewContactService(sender mail.Sender) *ContactService {
	return &ContactService{sender: sender}
}

// ContactEcho mirrors what was handed to the transport, returned to the
// caller on success.
type ContactEcho struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (s *ContactService) Send(name, email, subject, message string) (*ContactEcho, error) {
	text := fmt.Sprintf("name: %s, email: %s - message: %s", name, email, message)
	if err := s.sender.Send(subject, text); err != nil {
		return nil, apperr.Delivery("could not deliver contact message", err)
	}
	return &ContactEcho{
		From:    s.sender.From(),
		To:      s.sender.To(),
		Subject: subject,
		Text:    text,
	}, nil
}
