package service

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	Dialer *gomail.Dialer
	From   string
	Logger *logrus.Logger
}

func NewEmailService(host string, port int, user, pass, from string, logger *logrus.Logger) *EmailService {
	return &EmailService{
		Dialer: gomail.NewDialer(host, port, user, pass),
		From:   from,
		Logger: logger,
	}
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.Dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

//SendOrderConfirmation mails the buyer after a verified payment. Callers
//run it in a goroutine, a failed send never fails the order.
func (s *EmailService) SendOrderConfirmation(to, name, paymentID string) error {
	subject := "Order Confirmation"
	body := fmt.Sprintf("<p>Thank you for your order, <b>%s</b>!<br/>Your payment ID is <b>%s</b>.</p>", name, paymentID)
	return s.SendEmail(to, subject, body)
}
