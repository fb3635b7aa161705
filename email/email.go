package email

import (
	"fmt"
	"net/smtp"
	"os"

	"manara/models"
)

type EmailService struct {
	host     string
	port     string
	user     string
	password string
	from     string
	to       string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
		user:     os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     os.Getenv("SMTP_FROM"),
		to:       os.Getenv("CONTACT_NOTIFY_TO"),
	}
}

// Enabled reports whether SMTP delivery is configured. Contact messages are
// stored either way; the email is a best-effort notification on top.
func (e *EmailService) Enabled() bool {
	return e.host != "" && e.to != ""
}

func (e *EmailService) SendContactNotification(msg models.ContactMessage) error {
	subject := "رسالة جديدة من نموذج الاتصال: " + msg.Subject
	body := fmt.Sprintf(`وصلت رسالة جديدة عبر الموقع.

الاسم: %s
البريد الإلكتروني: %s
الموضوع: %s

%s
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	message := fmt.Sprintf("From: %s\r\n"+
		"To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/plain; charset=utf-8\r\n"+
		"\r\n"+
		"%s\r\n", e.from, e.to, subject, body)

	auth := smtp.PlainAuth("", e.user, e.password, e.host)
	addr := fmt.Sprintf("%s:%s", e.host, e.port)

	if err := smtp.SendMail(addr, auth, e.from, []string{e.to}, []byte(message)); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
