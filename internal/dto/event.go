package dto

import (
	"time"

	"github.com/expensemaster/expense_master_app/internal/core/domain"
)

// EventRequest carries the writable fields of a calendar event. Title,
// start and end are all required for both create and update.
type EventRequest struct {
	Title string    `json:"title" binding:"required"`
	Start time.Time `json:"start" binding:"required"`
	End   time.Time `json:"end" binding:"required"`
}

// EventResponse is the outward form of an embedded event.
type EventResponse struct {
	EventID string    `json:"eventID"`
	Title   string    `json:"title"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
}

// ToEventResponse converts a domain.Event into its response DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID: e.EventID,
		Title:   e.Title,
		Start:   e.Start,
		End:     e.End,
	}
}

// ListEventsResponse wraps a company's event listing.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToListEventsResponse converts a slice of events.
func ToListEventsResponse(events []domain.Event) ListEventsResponse {
	out := make([]EventResponse, len(events))
	for i := range events {
		out[i] = ToEventResponse(&events[i])
	}
	return ListEventsResponse{Events: out}
}
