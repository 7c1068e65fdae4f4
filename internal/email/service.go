package email

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"refspring/internal/clients/mail"
	"refspring/internal/money"
	"refspring/internal/observability"
	"refspring/internal/store"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
	ErrRenderTemplate      = errors.New("failed to render email template")
)

const (
	templatePaymentOwed        = "payment_owed"
	templateCampaignSettlement = "campaign_settlement"
)

var templates = template.Must(template.New("").Parse(`
{{define "payment_owed"}}
<html>
	<body>
		<h1>Hi {{.Name}},</h1>
		<p>Your participation in {{.CampaignName}} has ended.</p>
		<p>You are owed <strong>{{.Amount}}</strong> in commission across {{.Conversions}} conversion(s).</p>
		<p><a href="{{.PaymentLink}}">View and claim your payment</a></p>
		<p>Reference: {{.DistributionID}}</p>
	</body>
</html>
{{end}}
{{define "campaign_settlement"}}
<html>
	<body>
		<h1>Hi {{.Name}},</h1>
		<p>The campaign {{.CampaignName}} has been closed by its owner.</p>
		<p>Your final commission is <strong>{{.Amount}}</strong> across {{.Conversions}} conversion(s).</p>
		<p><a href="{{.PaymentLink}}">View and claim your payment</a></p>
		<p>Reference: {{.DistributionID}}</p>
	</body>
</html>
{{end}}
`))

// TemplateData is the data available to payment templates
type TemplateData struct {
	Name           string
	CampaignName   string
	Amount         string
	Conversions    int
	PaymentLink    string
	DistributionID string
}

// PaymentNotice describes one affiliate's settled debt
type PaymentNotice struct {
	Distribution store.PaymentDistribution
	Payment      store.AffiliatePayment
	CampaignName string
}

// EmailService sends payment notifications to affiliates
type EmailService struct {
	mailClient    MailClient
	logger        *observability.Logger
	defaultSender string
	webAppURI     string
}

// New creates a new EmailService
func New(mailClient MailClient, defaultSender, webAppURI string, logger *observability.Logger) *EmailService {
	return &EmailService{
		mailClient:    mailClient,
		logger:        logger,
		defaultSender: defaultSender,
		webAppURI:     strings.TrimRight(webAppURI, "/"),
	}
}

// PaymentLink is where an affiliate claims a settled distribution
func (s *EmailService) PaymentLink(notice PaymentNotice) string {
	return fmt.Sprintf("%s/payouts/%s?affiliate=%s", s.webAppURI, notice.Distribution.ID, notice.Payment.AffiliateID)
}

// SendPaymentNotification tells an affiliate removed from a campaign what they are owed
func (s *EmailService) SendPaymentNotification(ctx context.Context, notice PaymentNotice) error {
	return s.send(ctx, templatePaymentOwed, "Your commission payment is ready", notice)
}

// SendCampaignSettlement tells an affiliate of a deleted campaign what they are owed
func (s *EmailService) SendCampaignSettlement(ctx context.Context, notice PaymentNotice) error {
	return s.send(ctx, templateCampaignSettlement, fmt.Sprintf("%s has closed: final commission", notice.CampaignName), notice)
}

func (s *EmailService) send(ctx context.Context, templateName, subject string, notice PaymentNotice) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "email_type", Value: templateName},
		observability.Field{Key: "recipient", Value: notice.Payment.Email},
		observability.Field{Key: "distribution_id", Value: notice.Distribution.ID.String()},
	)

	if !strings.Contains(notice.Payment.Email, "@") {
		s.logger.Warn(ctx, "payment notification has no valid recipient")
		return ErrInvalidEmailAddress
	}

	htmlContent, err := s.renderTemplate(templateName, TemplateData{
		Name:           notice.Payment.Name,
		CampaignName:   notice.CampaignName,
		Amount:         money.FormatMajorUnits(notice.Payment.Amount),
		Conversions:    notice.Payment.Conversions,
		PaymentLink:    s.PaymentLink(notice),
		DistributionID: notice.Distribution.ID.String(),
	})
	if err != nil {
		s.logger.Error(ctx, "failed to render payment email template", err)
		return fmt.Errorf("%w: %s", ErrRenderTemplate, err.Error())
	}

	_, err = s.mailClient.Send(ctx, mail.Message{
		From:    s.defaultSender,
		To:      notice.Payment.Email,
		Subject: subject,
		HTML:    htmlContent,
	})
	if err != nil {
		s.logger.Error(ctx, "failed to send payment email", err)
		return fmt.Errorf("%w: %s", ErrSendingEmail, err.Error())
	}

	return nil
}

// renderTemplate renders a template with the provided data
func (s *EmailService) renderTemplate(templateName string, data TemplateData) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}
