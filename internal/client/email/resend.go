// Package email delivers transactional email through Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/logger"
	"github.com/hrplatform/freelancer-api/internal/services"
)

// ResendSender sends email via the Resend API. It implements
// services.EmailSender.
type ResendSender struct {
	client    *resend.Client
	fromEmail string
	fromName  string
	logger    *zap.Logger
}

var _ services.EmailSender = (*ResendSender)(nil)

// NewResendSender creates a sender delivering from the given address.
func NewResendSender(apiKey, fromEmail, fromName string) *ResendSender {
	return &ResendSender{
		client:    resend.NewClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		logger:    logger.Log,
	}
}

// Send delivers one email and returns the provider message id.
func (s *ResendSender) Send(ctx context.Context, to, subject, html string) (string, error) {
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{to},
		Subject: subject,
		Html:    html,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debug("Sent email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("message_id", sent.Id))
	return sent.Id, nil
}
