package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/hrplatform/freelancer-api/internal/db"
	"github.com/hrplatform/freelancer-api/internal/helpers"
	"github.com/hrplatform/freelancer-api/internal/logger"
)

// EmailService renders and delivers the transactional notifications:
// payment approved, payment paid, contract expiring, milestone due.
type EmailService struct {
	sender   EmailSender
	fromName string
	logger   *zap.Logger
}

// NewEmailService creates a new email service
func NewEmailService(sender EmailSender, fromName string) *EmailService {
	return &EmailService{
		sender:   sender,
		fromName: fromName,
		logger:   logger.Log,
	}
}

var paymentApprovedTemplate = template.Must(template.New("payment_approved").Parse(`
<p>Hi {{.Name}},</p>
<p>Your payment <strong>{{.PaymentNumber}}</strong> has been approved.</p>
<p>Net amount: <strong>{{.NetAmount}}</strong></p>
<p>You will receive the funds within the agreed payment terms.</p>
<p>{{.FromName}}</p>
`))

var paymentPaidTemplate = template.Must(template.New("payment_paid").Parse(`
<p>Hi {{.Name}},</p>
<p>Payment <strong>{{.PaymentNumber}}</strong> has been sent.</p>
<p>Net amount: <strong>{{.NetAmount}}</strong>{{if .Reference}} (reference {{.Reference}}){{end}}</p>
<p>{{.FromName}}</p>
`))

var contractExpiringTemplate = template.Must(template.New("contract_expiring").Parse(`
<p>Hi {{.Name}},</p>
<p>Your contract <strong>{{.ContractNumber}}</strong> ends on {{.EndDate}}.</p>
<p>Please get in touch if you would like to discuss a renewal.</p>
<p>{{.FromName}}</p>
`))

var milestoneDueTemplate = template.Must(template.New("milestone_due").Parse(`
<p>Hi {{.Name}},</p>
<p>Milestone <strong>{{.MilestoneTitle}}</strong> on contract
<strong>{{.ContractNumber}}</strong> is due on {{.DueDate}}.</p>
<p>{{.FromName}}</p>
`))

type emailData struct {
	Name           string
	PaymentNumber  string
	NetAmount      string
	Reference      string
	ContractNumber string
	EndDate        string
	MilestoneTitle string
	DueDate        string
	FromName       string
}

// SendPaymentApproved notifies a freelancer that their payment was signed
// off.
func (s *EmailService) SendPaymentApproved(ctx context.Context, freelancer db.Freelancer, payment db.Payment) error {
	subject := fmt.Sprintf("Payment %s approved", payment.PaymentNumber)
	return s.send(ctx, freelancer.Email, subject, paymentApprovedTemplate, emailData{
		Name:          freelancer.FullName,
		PaymentNumber: payment.PaymentNumber,
		NetAmount:     helpers.FormatMoney(helpers.NumericToDecimal(payment.NetAmount), payment.Currency),
		FromName:      s.fromName,
	})
}

// SendPaymentPaid notifies a freelancer that the funds were sent.
func (s *EmailService) SendPaymentPaid(ctx context.Context, freelancer db.Freelancer, payment db.Payment) error {
	subject := fmt.Sprintf("Payment %s sent", payment.PaymentNumber)
	return s.send(ctx, freelancer.Email, subject, paymentPaidTemplate, emailData{
		Name:          freelancer.FullName,
		PaymentNumber: payment.PaymentNumber,
		NetAmount:     helpers.FormatMoney(helpers.NumericToDecimal(payment.NetAmount), payment.Currency),
		Reference:     helpers.TextToString(payment.PaymentReference),
		FromName:      s.fromName,
	})
}

// SendContractExpiring warns a freelancer about an upcoming contract end.
func (s *EmailService) SendContractExpiring(ctx context.Context, freelancer db.Freelancer, contract db.Contract) error {
	endDate := ""
	if contract.EndDate.Valid {
		endDate = contract.EndDate.Time.Format(dateLayout)
	}
	subject := fmt.Sprintf("Contract %s is ending soon", contract.ContractNumber)
	return s.send(ctx, freelancer.Email, subject, contractExpiringTemplate, emailData{
		Name:           freelancer.FullName,
		ContractNumber: contract.ContractNumber,
		EndDate:        endDate,
		FromName:       s.fromName,
	})
}

// SendMilestoneDue reminds a freelancer about an upcoming milestone.
func (s *EmailService) SendMilestoneDue(ctx context.Context, freelancer db.Freelancer, contract db.Contract, milestone db.Milestone) error {
	dueDate := ""
	if milestone.DueDate.Valid {
		dueDate = milestone.DueDate.Time.Format(dateLayout)
	}
	subject := fmt.Sprintf("Milestone %q is due soon", milestone.Title)
	return s.send(ctx, freelancer.Email, subject, milestoneDueTemplate, emailData{
		Name:           freelancer.FullName,
		ContractNumber: contract.ContractNumber,
		MilestoneTitle: milestone.Title,
		DueDate:        dueDate,
		FromName:       s.fromName,
	})
}

func (s *EmailService) send(ctx context.Context, to, subject string, tmpl *template.Template, data emailData) error {
	if s.sender == nil {
		s.logger.Debug("Email sender not configured, skipping", zap.String("subject", subject))
		return nil
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	messageID, err := s.sender.Send(ctx, to, subject, body.String())
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Sent email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("message_id", messageID))
	return nil
}
