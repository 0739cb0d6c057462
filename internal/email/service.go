package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"os"

	"hollmovies-web-be/internal/models"

	"github.com/resend/resend-go/v3"
)

const receiptTemplate = `<html><body style="font-family:sans-serif">
<h2>{{.AppName}} — VIP ACTIVATED</h2>
<p>Hi {{.Name}},</p>
<p>Your <b>{{.Plan}}</b> membership is live. Direct mirrors, no popups, and
the rest of your plan perks are unlocked right now.</p>
<p>Need anything? Just reply to this email — dedicated support is part of
the deal.</p>
</body></html>`

const contactTemplate = `<html><body style="font-family:sans-serif">
<h2>Support request</h2>
<p><b>From:</b> {{.Name}} &lt;{{.Email}}&gt;</p>
<p>{{.Message}}</p>
</body></html>`

const digestTemplate = `<html><body style="font-family:sans-serif">
<h2>{{.AppName}} — This week's top picks</h2>
<p>Hi {{.Name}}, here is what the vault is loving right now:</p>
<ul>
{{range .Movies}}<li><b>{{.Title}}</b> — rated {{.Rating}} ({{.Quality}}, {{.Size}})</li>
{{end}}</ul>
<p><a href="{{.AppURL}}">Browse the full archive</a></p>
</body></html>`

var (
	receiptTmpl = template.Must(template.New("receipt").Parse(receiptTemplate))
	contactTmpl = template.Must(template.New("contact").Parse(contactTemplate))
	digestTmpl  = template.Must(template.New("digest").Parse(digestTemplate))
)

func appName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return "HOLLMOVIES4U"
}

func fromAddress() string {
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		return from
	}
	return fmt.Sprintf("%s <vip@hollmovies4u.com>", appName())
}

// SendVIPReceipt confirms a completed membership purchase.
func SendVIPReceipt(toEmail, name, plan string) error {
	if plan == "" {
		plan = "VIP"
	}
	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, map[string]any{
		"AppName": appName(), "Name": name, "Plan": plan,
	}); err != nil {
		return err
	}
	subject := fmt.Sprintf("%s VIP Activated — %s", appName(), plan)
	return send(toEmail, subject, buf.String())
}

// SendContactMessage relays the contact form to the support inbox.
func SendContactMessage(req models.ContactRequest) error {
	inbox := os.Getenv("SUPPORT_EMAIL")
	if inbox == "" {
		inbox = "support@hollmovies4u.com"
	}
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, req); err != nil {
		return err
	}
	subject := fmt.Sprintf("[Support] Message from %s", req.Name)
	return send(inbox, subject, buf.String())
}

// SendDigest mails a VIP member the week's top-rated picks.
func SendDigest(toEmail, name string, movies []models.Movie) error {
	domain := os.Getenv("APP_DOMAIN")
	if domain == "" {
		domain = "http://localhost:8080"
	}
	var buf bytes.Buffer
	if err := digestTmpl.Execute(&buf, map[string]any{
		"AppName": appName(), "Name": name, "Movies": movies, "AppURL": domain,
	}); err != nil {
		return err
	}
	subject := fmt.Sprintf("%s Weekly VIP Digest", appName())
	return send(toEmail, subject, buf.String())
}

func send(toEmail, subject, html string) error {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("[Email] RESEND_API_KEY is missing. Falling back to mock email.")
		return mockSend(toEmail, subject)
	}

	client := resend.NewClient(apiKey)
	params := &resend.SendEmailRequest{
		From:    fromAddress(),
		To:      []string{toEmail},
		Subject: subject,
		Html:    html,
	}
	sent, err := client.Emails.Send(params)
	if err != nil {
		log.Printf("[Email] Failed to send email via Resend: %v", err)
		return err
	}
	log.Printf("[Email] Sent email to %s via Resend. ID: %s", toEmail, sent.Id)
	return nil
}

func mockSend(toEmail, subject string) error {
	log.Printf("---------------------------------------------------")
	log.Printf("MOCK EMAIL TO: %s", toEmail)
	log.Printf("SUBJECT: %s", subject)
	log.Printf("---------------------------------------------------")
	return nil
}
