package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey    string
	from      string
	templates *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

type ContactNotificationData struct {
	Name       string
	Email      string
	Phone      string
	Interest   string
	Message    string
	ReceivedAt time.Time
}

type WelcomeSubscriberData struct {
	Name string
}

func NewEmailService(apiKey string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:    apiKey,
		from:      "Reabita <noreply@reabita.pt>",
		templates: templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	log.Printf("Email sent to %s (%s)", to, subject)
	return nil
}

// SendContactNotification avisa a caixa do escritório de um novo contacto.
func (s *EmailService) SendContactNotification(to string, data ContactNotificationData) error {
	return s.sendTemplateEmail(to, "Novo contacto: "+data.Name, "contact_notification.html", data)
}

// SendSubscriberWelcome dá as boas-vindas a um novo assinante da newsletter.
func (s *EmailService) SendSubscriberWelcome(to, name string) error {
	return s.sendTemplateEmail(to, "Bem-vindo à newsletter Reabita", "subscriber_welcome.html", WelcomeSubscriberData{Name: name})
}
