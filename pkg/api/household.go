package api

type Roommate struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Room struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	InChoreRotation bool   `json:"inChoreRotation"`
	Reservable      bool   `json:"reservable"`
}

type ListRoommatesRequest struct{}

type ListRoommatesResponse struct {
	Roommates []Roommate `json:"roommates"`
}

type AddRoommateRequest struct {
	Name string `json:"name"`
}

type AddRoommateResponse struct {
	Roommate Roommate `json:"roommate"`
}

type DeleteRoommateRequest struct {
	ID string `json:"id"`
}

type DeleteRoommateResponse struct {
	Roommates []Roommate `json:"roommates"`
}

type ListRoomsRequest struct {
	// ReservableOnly limits the result to rooms that can be booked.
	ReservableOnly bool `json:"reservableOnly,omitempty"`
}

type ListRoomsResponse struct {
	Rooms []Room `json:"rooms"`
}

type AddRoomRequest struct {
	Name            string `json:"name"`
	InChoreRotation bool   `json:"inChoreRotation"`
	Reservable      bool   `json:"reservable"`
}

type AddRoomResponse struct {
	Room Room `json:"room"`
}

type UpdateRoomRequest struct {
	Room Room `json:"room"`
}

type UpdateRoomResponse struct {
	Rooms []Room `json:"rooms"`
}

type DeleteRoomRequest struct {
	ID string `json:"id"`
}

type DeleteRoomResponse struct {
	Rooms []Room `json:"rooms"`
}
