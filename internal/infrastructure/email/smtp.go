// Package email delivers transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	appPayment "hostelhub/internal/application/payment"
	"hostelhub/internal/shared/config"
)

// SMTPEmailService implements the payment Notifier contract over a plain
// SMTP connection. Every message carries both a text/plain and a text/html
// part.
type SMTPEmailService struct {
	config *config.EmailConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailService{
		config: cfg,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendBookingConfirmation(ctx context.Context, n appPayment.BookingNotification) error {
	subject := fmt.Sprintf("Booking Confirmed - %s", n.HostelName)

	accessCodeHTML := ""
	accessCodePlain := ""
	if n.RoomAssignable && n.AccessCode != "" {
		accessCodeHTML = fmt.Sprintf(`
			<p>Your room <strong>%s</strong> has been assigned. Use the access code below at check-in:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>Keep this code private. You will need it to check in.</p>`,
			n.RoomLabel, n.AccessCode)
		accessCodePlain = fmt.Sprintf(`
Your room %s has been assigned. Use the access code below at check-in:

    %s

Keep this code private. You will need it to check in.`, n.RoomLabel, n.AccessCode)
	}

	balanceHTML := ""
	balancePlain := ""
	if n.BalanceOwed.IsPositive() {
		balanceHTML = fmt.Sprintf(`<p>Outstanding balance: <strong>%s</strong>. You can top up at any time from your dashboard.</p>`, n.BalanceOwed.StringFixed(2))
		balancePlain = fmt.Sprintf(`
Outstanding balance: %s. You can top up at any time from your dashboard.`, n.BalanceOwed.StringFixed(2))
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Payment Received</h2>
			<p>Hi %s,</p>
			<p>We received your payment of <strong>%s</strong> for %s (%s).</p>
			%s
			%s
			<p>Thank you for choosing %s.</p>
		</body>
		</html>
	`, n.FullName, n.AmountPaid.StringFixed(2), n.HostelName, n.CalendarYear, accessCodeHTML, balanceHTML, n.HostelName)

	plainBody := fmt.Sprintf(`
Payment Received

Hi %s,

We received your payment of %s for %s (%s).
%s
%s

Thank you for choosing %s.
	`, n.FullName, n.AmountPaid.StringFixed(2), n.HostelName, n.CalendarYear, accessCodePlain, balancePlain, n.HostelName)

	return s.sendEmail(n.Email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendAccessCode(ctx context.Context, email, fullName, accessCode string) error {
	subject := "Your Room Access Code"

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Room Access Code</h2>
			<p>Hi %s,</p>
			<p>Use the access code below at check-in:</p>
			<p style="font-size: 24px; letter-spacing: 4px;"><strong>%s</strong></p>
			<p>Keep this code private. If you didn't expect this email, please contact support.</p>
		</body>
		</html>
	`, fullName, accessCode)

	plainBody := fmt.Sprintf(`
Room Access Code

Hi %s,

Use the access code below at check-in:

    %s

Keep this code private. If you didn't expect this email, please contact support.
	`, fullName, accessCode)

	return s.sendEmail(email, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTopUpReceipt(ctx context.Context, n appPayment.TopUpNotification) error {
	subject := "Top-Up Payment Received"

	balanceLine := "Your balance is fully settled."
	if n.BalanceOwed.IsPositive() {
		balanceLine = fmt.Sprintf("Remaining balance: %s.", n.BalanceOwed.StringFixed(2))
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Top-Up Received</h2>
			<p>Hi %s,</p>
			<p>We received your top-up payment of <strong>%s</strong>.</p>
			<p>%s</p>
		</body>
		</html>
	`, n.FullName, n.AmountPaid.StringFixed(2), balanceLine)

	plainBody := fmt.Sprintf(`
Top-Up Received

Hi %s,

We received your top-up payment of %s.
%s
	`, n.FullName, n.AmountPaid.StringFixed(2), balanceLine)

	return s.sendEmail(n.Email, subject, htmlBody, plainBody)
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
