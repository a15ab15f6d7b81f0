package gcalendar

import "time"

// EventRequest is the input for creating one calendar event.
type EventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Europe/Berlin"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
}
