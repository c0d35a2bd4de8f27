package models

// CalendarEvent is a dated entry on the shared calendar.
type CalendarEvent struct {
	ID string `json:"id"`

	// Date is the calendar day in YYYY-MM-DD form.
	Date string `json:"date"`

	// Time is the time of day in HH:MM form. It may be empty for all-day events.
	Time string `json:"time"`

	Description string `json:"description"`

	// CreatedBy references the roommate who added the event.
	CreatedBy string `json:"createdBy"`
}

// Reservation books a reservable room for one hour on one day.
type Reservation struct {
	ID         string `json:"id"`
	RoomID     string `json:"roomId"`
	Date       string `json:"date"`
	Hour       int    `json:"hour"`
	RoommateID string `json:"roommateId"`
	Reason     string `json:"reason"`
}

// AvailabilityStatus describes whether a roommate expects to be home.
type AvailabilityStatus string

const (
	StatusHome  AvailabilityStatus = "home"
	StatusMaybe AvailabilityStatus = "maybe"
	StatusAway  AvailabilityStatus = "away"
)

// Valid reports whether s is a known status.
func (s AvailabilityStatus) Valid() bool {
	switch s {
	case StatusHome, StatusMaybe, StatusAway:
		return true
	}
	return false
}

// AvailabilityEntry is one roommate's status for one hour of one weekday.
type AvailabilityEntry struct {
	ID         string `json:"id"`
	RoommateID string `json:"roommateId"`

	// DayOfWeek is 0 (Sunday) through 6 (Saturday).
	DayOfWeek int `json:"dayOfWeek"`

	// Hour is 0 through 23.
	Hour int `json:"hour"`

	Status AvailabilityStatus `json:"status"`

	// RepeatWeekly marks the entry as applying every week.
	RepeatWeekly bool `json:"repeatWeekly"`

	// SpecificDate pins a non-repeating entry to one day (YYYY-MM-DD).
	SpecificDate string `json:"specificDate,omitempty"`
}
