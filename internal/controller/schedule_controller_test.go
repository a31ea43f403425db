package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reabita_backend/internal/model"
	"reabita_backend/pkg/calendar"
	"reabita_backend/pkg/kvstore"
)

func scheduleApp(t *testing.T, webhookURL string) (*gorm.DB, *kvstore.Store, *fiber.App) {
	db := newTestDB(t)
	kv := kvstore.New(db)
	s := NewScheduleController(db, kv, calendar.NewClient(webhookURL))

	app := newTestApp()
	app.Post("/schedule-meeting", s.ScheduleMeeting)
	app.Get("/calendar-slots", s.CalendarSlots)

	return db, kv, app
}

func bookingBody() map[string]interface{} {
	return map[string]interface{}{
		"name":         "Ana",
		"email":        "ana@example.com",
		"phone":        "912345678",
		"date":         "2026-09-10",
		"time":         "15:00",
		"projectTitle": "Edifício Graça 22",
	}
}

func TestScheduleMeetingPersistsVisitContact(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(calendar.BookingOutput{
			EventID:   "evt-1",
			EventLink: "https://calendar.example.com/evt-1",
			MeetLink:  "https://meet.example.com/xyz",
		})
	}))
	defer webhook.Close()

	db, kv, app := scheduleApp(t, webhook.URL)

	resp := doJSON(t, app, "POST", "/schedule-meeting", bookingBody(), false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeBody(t, resp, &body)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "evt-1", body["eventId"])
	assert.Equal(t, "https://meet.example.com/xyz", body["meetLink"])

	var contact model.Contact
	require.NoError(t, db.First(&contact, "email = ?", "ana@example.com").Error)
	assert.Equal(t, model.StageVisita, contact.PipelineStage)
	assert.Contains(t, contact.Message, "Edifício Graça 22")

	// A saga fechou: nenhuma entrada pendente fica para trás.
	entries, err := kv.ScanByPrefix(model.SchedulePendingKeyPrefix)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScheduleMeetingWebhookFailureAbortsBeforePersisting(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "calendar down", http.StatusBadGateway)
	}))
	defer webhook.Close()

	db, kv, app := scheduleApp(t, webhook.URL)

	resp := doJSON(t, app, "POST", "/schedule-meeting", bookingBody(), false)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var count int64
	db.Model(&model.Contact{}).Count(&count)
	assert.Zero(t, count)

	entries, err := kv.ScanByPrefix(model.SchedulePendingKeyPrefix)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestScheduleMeetingRequiresDateAndTime(t *testing.T) {
	_, _, app := scheduleApp(t, "http://127.0.0.1:0")

	body := bookingBody()
	delete(body, "date")

	resp := doJSON(t, app, "POST", "/schedule-meeting", body, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalendarSlotsProxiesWebhook(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"slots": []calendar.Slot{{Date: "2026-09-02", Start: "10:00", End: "10:30"}},
		})
	}))
	defer webhook.Close()

	_, _, app := scheduleApp(t, webhook.URL)

	resp := doJSON(t, app, "GET", "/calendar-slots?startDate=2026-09-01&endDate=2026-09-07", nil, false)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Slots []calendar.Slot `json:"slots"`
		Count int             `json:"count"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, 1, body.Count)
	assert.Len(t, body.Slots, 1)
}

func TestCalendarSlotsUpstreamFailureReturnsEmptyList(t *testing.T) {
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer webhook.Close()

	_, _, app := scheduleApp(t, webhook.URL)

	resp := doJSON(t, app, "GET", "/calendar-slots?startDate=2026-09-01&endDate=2026-09-07", nil, false)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body struct {
		Slots []calendar.Slot `json:"slots"`
		Error string          `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Empty(t, body.Slots)
	assert.NotEmpty(t, body.Error)
}

func TestCalendarSlotsRequiresDateRange(t *testing.T) {
	_, _, app := scheduleApp(t, "http://127.0.0.1:0")

	resp := doJSON(t, app, "GET", "/calendar-slots", nil, false)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
