package email

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"

	"ecommerce-backend/internal/config"
)

type EmailService interface {
	SendEmail(ctx context.Context, req EmailRequest) error
}

type smtpEmailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPEmailService(cfg config.SMTPConfig) EmailService {
	return &smtpEmailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// buildMessage dựng gomail message từ request, tách riêng để test không cần SMTP
func buildMessage(from string, req EmailRequest) (*gomail.Message, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", req.To...)
	if len(req.Cc) > 0 {
		m.SetHeader("Cc", req.Cc...)
	}
	m.SetHeader("Subject", req.Subject)

	contentType := "text/plain"
	if req.IsHTML {
		contentType = "text/html"
	}
	m.SetBody(contentType, req.Body)

	for _, a := range req.Inline {
		m.Embed(a.Filename, fileSettings(a)...)
	}
	for _, a := range req.Attachments {
		m.Attach(a.Filename, fileSettings(a)...)
	}
	return m, nil
}

func fileSettings(a Attachment) []gomail.FileSetting {
	content := a.Content
	settings := []gomail.FileSetting{
		gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}),
	}
	if a.MimeType != "" {
		settings = append(settings, gomail.SetHeader(map[string][]string{"Content-Type": {a.MimeType}}))
	}
	return settings
}

func (s *smtpEmailService) SendEmail(ctx context.Context, req EmailRequest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := buildMessage(s.from, req)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Error().Err(err).Strs("to", req.To).Str("host", s.dialer.Host).Msg("Failed to send email")
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
