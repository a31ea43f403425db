package calendar

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

// Client fala com o webhook de agendamento (automação de calendário).
// O webhook é tratado como dependência HTTP opaca: um POST marca a
// reunião, um GET lista os horários livres.
type Client struct {
	webhookURL string
	httpClient *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type BookingInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	ProjectTitle   string `json:"projectTitle,omitempty"`
	Message        string `json:"message,omitempty"`
	IdempotencyKey string `json:"idempotencyKey"`
}

type BookingOutput struct {
	EventID   string `json:"eventId"`
	EventLink string `json:"eventLink"`
	MeetLink  string `json:"meetLink"`
}

type Slot struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleMeeting envia a marcação ao webhook. Qualquer resposta não-2xx
// é devolvida como erro com o corpo do webhook.
func (c *Client) ScheduleMeeting(input BookingInput) (*BookingOutput, error) {
	if c.webhookURL == "" {
		return nil, fmt.Errorf("webhook de calendário não configurado")
	}

	payload, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", c.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao contactar o calendário: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("erro ao marcar reunião: %d - %s", resp.StatusCode, string(body))
	}

	var output BookingOutput
	if err := json.Unmarshal(body, &output); err != nil {
		return nil, fmt.Errorf("resposta inválida do calendário: %w", err)
	}

	log.Printf("Reunião marcada no calendário: %s (%s %s)", output.EventID, input.Date, input.Time)
	return &output, nil
}

// ListSlots pede ao webhook os horários livres entre duas datas.
func (c *Client) ListSlots(startDate, endDate string) ([]Slot, error) {
	if c.webhookURL == "" {
		return nil, fmt.Errorf("webhook de calendário não configurado")
	}

	endpoint := fmt.Sprintf("%s?startDate=%s&endDate=%s",
		c.webhookURL, url.QueryEscape(startDate), url.QueryEscape(endDate))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao contactar o calendário: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("erro ao obter horários: %d - %s", resp.StatusCode, string(body))
	}

	var result struct {
		Slots []Slot `json:"slots"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("resposta inválida do calendário: %w", err)
	}

	return result.Slots, nil
}
