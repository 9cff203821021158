// Package mail sends outbound email via SMTP or the Resend HTTP API.
// The contact relay is its only caller; a failed send is reported to the
// visitor and the message is not persisted or requeued.
package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"strings"
	"time"

	"github.com/ahamedusman/portfolio-core/internal/config"
)

// Message is a single email to send.
type Message struct {
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender dispatches email. Implemented by SMTPSender; tests substitute fakes.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender sends email via SMTP, or Resend when an API key is configured.
type SMTPSender struct {
	cfg config.MailConfig
}

func New(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send dispatches an email. Uses Resend if configured, otherwise SMTP.
func (s *SMTPSender) Send(msg Message) error {
	if !s.cfg.Enable {
		return fmt.Errorf("mail transport is disabled")
	}
	if s.cfg.ResendKey != "" {
		return s.sendResend(msg)
	}
	return s.sendSMTP(msg)
}

func (s *SMTPSender) sendSMTP(msg Message) error {
	host := s.cfg.Host
	port := s.cfg.Port
	if port == 0 {
		port = 587
	}
	addr := fmt.Sprintf("%s:%d", host, port)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(msg.To, ", ")))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	if msg.ReplyTo != "" {
		body.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo))
	}
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Pass, host)
	return smtp.SendMail(addr, auth, from, msg.To, body.Bytes())
}

func (s *SMTPSender) sendResend(msg Message) error {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	payload, _ := json.Marshal(map[string]interface{}{
		"from":     from,
		"to":       msg.To,
		"reply_to": msg.ReplyTo,
		"subject":  msg.Subject,
		"html":     msg.HTML,
	})

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("resend error %d: %s", resp.StatusCode, errResp.Message)
	}
	return nil
}

const contactNotifyTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#333">New contact form message</h2>
  <p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt; wrote:</p>
  <p style="color:#555">Subject: {{.Subject}}</p>
  <table width="100%" style="background:#f3f4f6;border-radius:8px">
    <tr><td style="padding:12px;font-size:14px;line-height:22px;color:#333">{{.Body}}</td></tr>
  </table>
  <p style="color:#999;font-size:12px;margin-top:24px">Sent from the portfolio contact form. Reply directly to reach the sender.</p>
</div>
</body>
</html>`

// ContactData is the data for contact-form relay emails.
type ContactData struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// RenderContactNotify renders the contact relay email body.
func RenderContactNotify(data ContactData) (string, error) {
	t, err := template.New("contact").Parse(contactNotifyTpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
