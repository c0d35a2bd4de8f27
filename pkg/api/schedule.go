package api

type Event struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}

type Reservation struct {
	ID         string `json:"id"`
	RoomID     string `json:"roomId"`
	Date       string `json:"date"`
	Hour       int    `json:"hour"`
	RoommateID string `json:"roommateId"`
	Reason     string `json:"reason"`
}

type AvailabilityEntry struct {
	ID           string `json:"id"`
	RoommateID   string `json:"roommateId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	Hour         int    `json:"hour"`
	Status       string `json:"status"`
	RepeatWeekly bool   `json:"repeatWeekly"`
	SpecificDate string `json:"specificDate,omitempty"`
}

type ListEventsRequest struct {
	// Dates restricts the result to these days, sorted by date then time.
	// Empty returns every event.
	Dates []string `json:"dates,omitempty"`
}

type ListEventsResponse struct {
	Events []Event `json:"events"`
}

type CreateEventRequest struct {
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	CreatedBy   string `json:"createdBy"`
}

type CreateEventResponse struct {
	Event Event `json:"event"`
}

type DeleteEventRequest struct {
	ID string `json:"id"`
}

type DeleteEventResponse struct{}

type ListReservationsRequest struct {
	// Date restricts the result to one day. Empty returns everything.
	Date string `json:"date,omitempty"`
}

type ListReservationsResponse struct {
	Reservations []Reservation `json:"reservations"`
}

type CreateReservationRequest struct {
	RoomID     string `json:"roomId"`
	Date       string `json:"date"`
	Hour       int    `json:"hour"`
	RoommateID string `json:"roommateId"`
	Reason     string `json:"reason"`
}

type CreateReservationResponse struct {
	Reservation Reservation `json:"reservation"`
}

type DeleteReservationRequest struct {
	ID string `json:"id"`
}

type DeleteReservationResponse struct{}

type GetAvailabilityRequest struct {
	// DayOfWeek restricts the result to one weekday (0 is Sunday).
	DayOfWeek *int `json:"dayOfWeek,omitempty"`
}

type GetAvailabilityResponse struct {
	Entries []AvailabilityEntry `json:"entries"`
}

type SetAvailabilityRequest struct {
	RoommateID string              `json:"roommateId"`
	Entries    []AvailabilityEntry `json:"entries"`
}

type SetAvailabilityResponse struct {
	Entries []AvailabilityEntry `json:"entries"`
}
