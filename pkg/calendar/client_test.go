package calendar

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleMeetingSuccess(t *testing.T) {
	var received BookingInput
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(BookingOutput{
			EventID:   "evt-123",
			EventLink: "https://calendar.example.com/evt-123",
			MeetLink:  "https://meet.example.com/abc",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	out, err := client.ScheduleMeeting(BookingInput{
		Name:           "Ana",
		Email:          "ana@example.com",
		Date:           "2026-09-10",
		Time:           "15:00",
		IdempotencyKey: "key-1",
	})

	require.NoError(t, err)
	assert.Equal(t, "evt-123", out.EventID)
	assert.Equal(t, "https://meet.example.com/abc", out.MeetLink)
	assert.Equal(t, "key-1", received.IdempotencyKey)
}

func TestScheduleMeetingWebhookErrorIsPropagated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slot unavailable", http.StatusConflict)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ScheduleMeeting(BookingInput{Name: "Ana"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "slot unavailable")
}

func TestScheduleMeetingWithoutWebhookConfigured(t *testing.T) {
	client := NewClient("")
	_, err := client.ScheduleMeeting(BookingInput{Name: "Ana"})
	assert.Error(t, err)
}

func TestListSlots(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-09-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2026-09-07", r.URL.Query().Get("endDate"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"slots": []Slot{
				{Date: "2026-09-02", Start: "10:00", End: "10:30"},
				{Date: "2026-09-02", Start: "15:00", End: "15:30"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	slots, err := client.ListSlots("2026-09-01", "2026-09-07")

	require.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Start)
}

func TestListSlotsUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.ListSlots("2026-09-01", "2026-09-07")
	assert.Error(t, err)
}
