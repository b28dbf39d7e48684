package email

import (
	"fmt"
	"net/smtp"

	"github.com/shopspring/decimal"
)

// Service sends mail through an SMTP relay
type Service struct {
	host string
	port string
	from string
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewService creates a new email service
func NewService(host, port, from string) *Service {
	return &Service{
		host: host,
		port: port,
		from: from,
		send: smtp.SendMail,
	}
}

// SendOrderConfirmation sends the order confirmation for a placed order
func (s *Service) SendOrderConfirmation(to string, orderID int64, total decimal.Decimal, items []OrderItem) error {
	subject := fmt.Sprintf("Order confirmation #%d", orderID)
	body := BuildOrderConfirmationBody(orderID, total, items)
	if err := s.deliver(to, subject, body); err != nil {
		return fmt.Errorf("failed to send order confirmation to %s: %w", to, err)
	}
	return nil
}

func (s *Service) deliver(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		s.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return s.send(addr, nil, s.from, []string{to}, []byte(msg))
}
