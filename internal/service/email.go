package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type mailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type EmailConfig struct {
	APIKey     string
	FromEmail  string
	FromName   string
	AdminEmail string
	SiteName   string
}

type emailService struct {
	cfg    EmailConfig
	client mailSender
}

// NewEmailService sends through SendGrid. Without an API key messages are only logged.
func NewEmailService(cfg EmailConfig) EmailService {
	var client mailSender
	if cfg.APIKey != "" {
		client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return &emailService{cfg: cfg, client: client}
}

type emailMessage struct {
	toEmail   string
	toName    string
	subject   string
	plainText string
	html      string
}

func (s *emailService) send(ctx context.Context, msg emailMessage) error {
	if s.client == nil {
		logger.Info("Email delivery disabled, message dropped", "to", msg.toEmail, "subject", msg.subject)
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(msg.toName, msg.toEmail)
	message := mail.NewSingleEmail(from, msg.subject, to, msg.plainText, msg.html)

	logger.ExternalServiceCall("sendgrid", "Send", "to", msg.toEmail, "subject", msg.subject)
	response, err := s.client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", msg.toEmail)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err, "to", msg.toEmail)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", msg.toEmail, "status", response.StatusCode)
	return nil
}

func (s *emailService) SendRentalConfirmation(ctx context.Context, r *domain.Reservation) error {
	return s.send(ctx, buildRentalConfirmation(s.cfg.SiteName, r))
}

func (s *emailService) SendTransferConfirmation(ctx context.Context, t *domain.TransferReservation) error {
	return s.send(ctx, buildTransferConfirmation(s.cfg.SiteName, t))
}

func (s *emailService) SendPickupReminder(ctx context.Context, reminder PickupReminder) error {
	return s.send(ctx, buildPickupReminder(s.cfg.SiteName, reminder))
}

func (s *emailService) SendAdminNotification(ctx context.Context, subject, message string) error {
	if s.cfg.AdminEmail == "" {
		logger.Warn("No admin email configured, notification dropped", "subject", subject)
		return nil
	}
	return s.send(ctx, emailMessage{
		toEmail:   s.cfg.AdminEmail,
		toName:    s.cfg.SiteName,
		subject:   fmt.Sprintf("[%s] %s", s.cfg.SiteName, subject),
		plainText: message,
		html:      "<p>" + html.EscapeString(message) + "</p>",
	})
}

type emailRow struct {
	label string
	value string
}

func renderRows(rows []emailRow) (string, string) {
	var plain, markup strings.Builder
	markup.WriteString("<table>")
	for _, r := range rows {
		fmt.Fprintf(&plain, "%s: %s\n", r.label, r.value)
		fmt.Fprintf(&markup, "<tr><td><strong>%s</strong></td><td>%s</td></tr>", html.EscapeString(r.label), html.EscapeString(r.value))
	}
	markup.WriteString("</table>")
	return plain.String(), markup.String()
}

func euros(v float64) string {
	return fmt.Sprintf("%.0f EUR", v)
}

func buildRentalConfirmation(site string, r *domain.Reservation) emailMessage {
	rows := []emailRow{
		{"Reservation", r.ReservationNumber},
		{"Vehicle", r.VehicleName},
		{"Pickup", fmt.Sprintf("%s %s, %s", r.PickupDate, r.PickupTime, r.PickupLocation)},
		{"Return", fmt.Sprintf("%s %s, %s", r.ReturnDate, r.ReturnTime, r.ReturnLocation)},
		{"Days", fmt.Sprintf("%d", r.Days)},
		{"Rental", euros(r.BasePrice)},
	}
	if r.SeasonalAdjustment != 0 {
		rows = append(rows, emailRow{"Seasonal adjustment", fmt.Sprintf("%s (x%g)", euros(r.SeasonalAdjustment), r.SeasonalMultiplier)})
	}
	if r.DeliveryFee+r.ReturnFee > 0 {
		rows = append(rows, emailRow{"Delivery and return", euros(r.DeliveryFee + r.ReturnFee)})
	}
	if r.AdditionalCost > 0 {
		rows = append(rows, emailRow{"Extras", euros(r.AdditionalCost)})
	}
	if r.IsSCDWSelected {
		rows = append(rows, emailRow{"Full protection (SCDW)", euros(r.ProtectionCost)})
	}
	rows = append(rows,
		emailRow{"Deductible", euros(r.DeductibleAmount)},
		emailRow{"Total", euros(r.TotalPrice)},
	)

	plainRows, htmlRows := renderRows(rows)
	greeting := fmt.Sprintf("Hello %s,", r.Customer.Name)
	return emailMessage{
		toEmail:   r.Customer.Email,
		toName:    r.Customer.Name,
		subject:   fmt.Sprintf("%s - rental reservation %s", site, r.ReservationNumber),
		plainText: fmt.Sprintf("%s\n\nWe received your reservation.\n\n%s\nBest regards,\n%s", greeting, plainRows, site),
		html:      fmt.Sprintf("<html><body><p>%s</p><p>We received your reservation.</p>%s<p>Best regards,<br>%s</p></body></html>", html.EscapeString(greeting), htmlRows, html.EscapeString(site)),
	}
}

func buildTransferConfirmation(site string, t *domain.TransferReservation) emailMessage {
	trip := "One way"
	if t.TransferType == domain.TransferTypeRoundTrip {
		trip = "Round trip"
	}
	rows := []emailRow{
		{"Reservation", t.ReservationNumber},
		{"Pickup", fmt.Sprintf("%s %s, %s", t.PickupDate, t.PickupTime, t.PickupAddress)},
		{"Drop-off", t.DropoffAddress},
		{"Trip", trip},
		{"Passengers", fmt.Sprintf("%d", t.Passengers)},
		{"Distance", fmt.Sprintf("%.1f km", t.DistanceKm)},
		{"Total", fmt.Sprintf("%.2f EUR", t.TotalPrice)},
	}

	plainRows, htmlRows := renderRows(rows)
	greeting := fmt.Sprintf("Hello %s,", t.Customer.Name)
	return emailMessage{
		toEmail:   t.Customer.Email,
		toName:    t.Customer.Name,
		subject:   fmt.Sprintf("%s - transfer reservation %s", site, t.ReservationNumber),
		plainText: fmt.Sprintf("%s\n\nWe received your transfer booking.\n\n%s\nBest regards,\n%s", greeting, plainRows, site),
		html:      fmt.Sprintf("<html><body><p>%s</p><p>We received your transfer booking.</p>%s<p>Best regards,<br>%s</p></body></html>", html.EscapeString(greeting), htmlRows, html.EscapeString(site)),
	}
}

func buildPickupReminder(site string, p PickupReminder) emailMessage {
	greeting := fmt.Sprintf("Hello %s,", p.Customer.Name)
	body := fmt.Sprintf("This is a reminder that your reservation %s starts tomorrow, %s at %s, at %s.", p.ReservationNumber, p.PickupDate, p.PickupTime, p.Location)
	return emailMessage{
		toEmail:   p.Customer.Email,
		toName:    p.Customer.Name,
		subject:   fmt.Sprintf("%s - pickup reminder %s", site, p.ReservationNumber),
		plainText: fmt.Sprintf("%s\n\n%s\n\nBest regards,\n%s", greeting, body, site),
		html:      fmt.Sprintf("<html><body><p>%s</p><p>%s</p><p>Best regards,<br>%s</p></body></html>", html.EscapeString(greeting), html.EscapeString(body), html.EscapeString(site)),
	}
}
