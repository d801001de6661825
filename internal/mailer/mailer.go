package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Sender отправляет одно письмо. Реализации: SMTP и заглушка для тестов.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTP — отправка через net/smtp с STARTTLS-аутентификацией сервера.
type SMTP struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *zap.SugaredLogger
}

func NewSMTP(host string, port int, username, password, from string, logger *zap.SugaredLogger) *SMTP {
	return &SMTP{host: host, port: port, username: username, password: password, from: from, logger: logger}
}

func (s *SMTP) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	s.logger.Infow("email sent", "to", to, "subject", subject)
	return nil
}

// Nop — отключённая почта: письма не уходят, факт фиксируется в логе.
type Nop struct {
	logger *zap.SugaredLogger
}

func NewNop(logger *zap.SugaredLogger) *Nop {
	return &Nop{logger: logger}
}

func (n *Nop) Send(to, subject, _ string) error {
	n.logger.Infow("email disabled, skipping", "to", to, "subject", subject)
	return nil
}
