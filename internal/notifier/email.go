package notifier

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPConfig holds the mail server and addresses for EmailSender.
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	FromName string `yaml:"from_name"`
	To       string `yaml:"to"`
	UseTLS   bool   `yaml:"use_tls"` // STARTTLS; false means implicit SSL
}

type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers reminders by mail.
type EmailSender struct {
	cfg    SMTPConfig
	dialer mailDialer
}

// NewEmailSender builds a gomail dialer from cfg.
func NewEmailSender(cfg SMTPConfig) *EmailSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.SSL = !cfg.UseTLS
	d.TLSConfig = &tls.Config{ServerName: cfg.Host}
	return &EmailSender{cfg: cfg, dialer: d}
}

// Name implements Sender.
func (e *EmailSender) Name() string { return "email" }

// Available implements Sender.
func (e *EmailSender) Available() error {
	switch {
	case e.cfg.Host == "":
		return errors.New("smtp host is not configured")
	case e.cfg.To == "":
		return errors.New("reminder recipient is not configured")
	case e.cfg.From == "":
		return errors.New("sender address is not configured")
	}
	return nil
}

// Send implements Sender.
func (e *EmailSender) Send(ctx context.Context, title, body string) error {
	if err := e.Available(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	if e.cfg.FromName != "" {
		m.SetAddressHeader("From", e.cfg.From, e.cfg.FromName)
	} else {
		m.SetHeader("From", e.cfg.From)
	}
	m.SetHeader("To", e.cfg.To)
	m.SetHeader("Subject", title)
	m.SetBody("text/plain", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
