package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"fanimal/internal/shared/config"
	"fanimal/internal/shared/logger"
)

// SMTPMailer sends transactional email over SMTP.
type SMTPMailer struct {
	cfg    config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPMailer(cfg config.EmailConfig, logger logger.Interface) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPMailer{
		cfg:    cfg,
		dialer: dialer,
		logger: logger,
	}
}

func (s *SMTPMailer) SendWelcomeEmail(toEmail, displayName string) error {
	if !s.cfg.Enabled {
		s.logger.Debugw("email delivery disabled, skipping welcome email", "to", toEmail)
		return nil
	}

	subject := "Welcome to Fanimal"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>Your Fanimal account is ready.</p>
			<p>Browse the shelters and pick an animal friend to support with a monthly donation.</p>
			<p>Every contribution goes toward food, care and a warm place to sleep.</p>
		</body>
		</html>
	`, displayName)

	plainBody := fmt.Sprintf(`
Welcome, %s!

Your Fanimal account is ready.

Browse the shelters and pick an animal friend to support with a monthly donation.
Every contribution goes toward food, care and a warm place to sleep.
	`, displayName)

	return s.sendEmail(toEmail, subject, htmlBody, plainBody)
}

func (s *SMTPMailer) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromAddress, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
