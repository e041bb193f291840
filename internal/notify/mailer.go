package notify

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mirirosen/chilik-rosenberg/internal/config"
)

// Mailer sends the operator alert and the customer confirmation over SMTP.
type Mailer struct {
	cfg    config.SMTPConfig
	logger Logger
}

// NewMailer creates a mailer from the SMTP settings
func NewMailer(cfg config.SMTPConfig, logger Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// SendOperatorAlert mails the tour operator about a new booking.
func (m *Mailer) SendOperatorAlert(msg BookingMessage) error {
	notes := "אין"
	if msg.Notes != nil && *msg.Notes != "" {
		notes = *msg.Notes
	}

	subject := fmt.Sprintf("הזמנה חדשה לסיור %s (%s)", msg.TourDateHebrew, msg.BookingRef)
	body := strings.Join([]string{
		"התקבלה הזמנה חדשה:",
		"",
		fmt.Sprintf("מספר הזמנה: %s", msg.BookingRef),
		fmt.Sprintf("שם: %s", msg.Name),
		fmt.Sprintf("טלפון: %s", msg.Phone),
		fmt.Sprintf("אימייל: %s", msg.Email),
		fmt.Sprintf("תאריך סיור: %s (%s)", msg.TourDateHebrew, msg.TourDate),
		fmt.Sprintf("משתתפים: %d", msg.Participants),
		fmt.Sprintf("סה\"כ: ₪%.0f", msg.TotalPrice),
		fmt.Sprintf("הערות: %s", notes),
	}, "\n")

	return m.send(m.cfg.OperatorEmail, subject, body)
}

// SendCustomerConfirmation mails the customer that the booking was received.
func (m *Mailer) SendCustomerConfirmation(msg BookingMessage) error {
	subject := fmt.Sprintf("אישור הזמנה %s - סיור בתאריך %s", msg.BookingRef, msg.TourDateHebrew)
	body := strings.Join([]string{
		fmt.Sprintf("שלום %s,", msg.Name),
		"",
		"ההזמנה שלך התקבלה ונמצאת בטיפול.",
		"",
		fmt.Sprintf("מספר הזמנה: %s", msg.BookingRef),
		fmt.Sprintf("תאריך סיור: %s (%s)", msg.TourDateHebrew, msg.TourDate),
		fmt.Sprintf("משתתפים: %d", msg.Participants),
		fmt.Sprintf("סה\"כ לתשלום: ₪%.0f", msg.TotalPrice),
		"",
		"ניצור איתך קשר לאישור סופי.",
	}, "\n")

	return m.send(msg.Email, subject, body)
}

func (m *Mailer) send(to, subject, body string) error {
	headers := strings.Join([]string{
		fmt.Sprintf("From: %s", m.cfg.From),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="UTF-8"`,
	}, "\r\n")
	msg := []byte(headers + "\r\n\r\n" + body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{to}, msg); err != nil {
		m.logger.Warn("Mailer: failed to send to %s: %v", to, err)
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Info("Mailer: sent %q to %s", subject, to)
	return nil
}
