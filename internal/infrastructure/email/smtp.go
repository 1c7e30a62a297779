package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	workflowUC "github.com/subwatch-inc/subwatch/internal/application/workflow/usecases"
	"github.com/subwatch-inc/subwatch/internal/shared/config"
	"github.com/subwatch-inc/subwatch/internal/shared/services/markdown"
)

type SMTPEmailService struct {
	config   *config.EmailConfig
	dialer   *gomail.Dialer
	markdown markdown.MarkdownService
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config:   cfg,
		dialer:   dialer,
		markdown: markdown.NewMarkdownService(),
	}
}

// SendRenewalReminder sends one renewal reminder email. The body is
// authored as markdown and rendered to sanitized HTML; the subscription
// name and payment method are user-supplied text, so the sanitizer runs
// on the final document.
func (s *SMTPEmailService) SendRenewalReminder(ctx context.Context, params workflowUC.ReminderEmailParams) error {
	subject := fmt.Sprintf("⏳ %s renews in %d days", params.SubscriptionName, params.DaysLeft)
	if params.DaysLeft == 1 {
		subject = fmt.Sprintf("⏳ %s renews tomorrow", params.SubscriptionName)
	}

	plainBody := renderReminderMarkdown(params)
	htmlBody, err := s.markdown.ToHTMLSanitized(plainBody)
	if err != nil {
		return fmt.Errorf("failed to render reminder email: %w", err)
	}

	return s.sendEmail(params.To, subject, htmlBody, plainBody)
}

func renderReminderMarkdown(params workflowUC.ReminderEmailParams) string {
	return fmt.Sprintf(`# Renewal reminder

Hi %s,

Your **%s** subscription renews on **%s** (%d days from now).

| | |
|---|---|
| Plan | %s (%s %.2f, %s) |
| Payment method | %s |

Cancel before the renewal date if you no longer need it.
`,
		params.UserName,
		params.SubscriptionName,
		params.RenewalDate,
		params.DaysLeft,
		params.SubscriptionName,
		params.Currency,
		params.Price,
		params.Frequency,
		params.PaymentMethod,
	)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
