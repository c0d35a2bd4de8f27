package api

// ChoreAssignment is one room's cleaning duty for the current week.
// RoommateID is empty when the rotation had nobody to assign.
type ChoreAssignment struct {
	RoomID       string `json:"roomId"`
	RoomName     string `json:"roomName"`
	RoommateID   string `json:"roommateId,omitempty"`
	RoommateName string `json:"roommateName,omitempty"`
	Completed    bool   `json:"completed"`
	Week         int    `json:"week"`
}

// Duty is the dishwasher or trash rotation.
type Duty struct {
	Type                 string `json:"type"`
	CurrentRoommateIndex int    `json:"currentRoommateIndex"`
	AssigneeID           string `json:"assigneeId,omitempty"`
	AssigneeName         string `json:"assigneeName,omitempty"`
	Completed            bool   `json:"completed"`
}

type CustomChore struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Recurring            bool   `json:"recurring"`
	AssignedTo           string `json:"assignedTo,omitempty"`
	AssigneeName         string `json:"assigneeName,omitempty"`
	CurrentRoommateIndex int    `json:"currentRoommateIndex"`
	Completed            bool   `json:"completed"`
}

// PersonChores is everything one roommate owns this week.
type PersonChores struct {
	Roommate  Roommate          `json:"roommate"`
	Rotation  []ChoreAssignment `json:"rotation"`
	Recurring []CustomChore     `json:"recurring"`
	OneTime   []CustomChore     `json:"oneTime"`
	Duties    []Duty            `json:"duties"`
}

type Board struct {
	Week       int            `json:"week"`
	StartDate  string         `json:"startDate"`
	People     []PersonChores `json:"people"`
	Unassigned []CustomChore  `json:"unassigned"`
	Done       int            `json:"done"`
	Total      int            `json:"total"`
}

type GetWeekRequest struct{}

type GetWeekResponse struct {
	Week         int               `json:"week"`
	StartDate    string            `json:"startDate"`
	Assignments  []ChoreAssignment `json:"assignments"`
	Duties       []Duty            `json:"duties"`
	CustomChores []CustomChore     `json:"customChores"`
}

type CompleteAssignmentRequest struct {
	RoomID string `json:"roomId"`
}

type CompleteAssignmentResponse struct {
	Assignments []ChoreAssignment `json:"assignments"`
}

type CompleteDutyRequest struct {
	Type string `json:"type"`
}

type CompleteDutyResponse struct {
	Duties []Duty `json:"duties"`
}

type AddCustomChoreRequest struct {
	Name string `json:"name"`

	// AssignedTo is ignored for recurring chores. Empty means unassigned.
	AssignedTo string `json:"assignedTo,omitempty"`

	Recurring bool `json:"recurring"`

	// StartingIndex is the first rotation slot of a recurring chore.
	StartingIndex int `json:"startingIndex"`
}

type AddCustomChoreResponse struct {
	Chore CustomChore `json:"chore"`
}

type CompleteCustomChoreRequest struct {
	ID string `json:"id"`
}

type CompleteCustomChoreResponse struct {
	Chores []CustomChore `json:"chores"`
}

type DeleteCustomChoreRequest struct {
	ID string `json:"id"`
}

type DeleteCustomChoreResponse struct {
	Chores []CustomChore `json:"chores"`
}

type AdvanceWeekRequest struct{}

type AdvanceWeekResponse struct {
	Week        int               `json:"week"`
	Assignments []ChoreAssignment `json:"assignments"`
}

type GetBoardRequest struct{}

type GetBoardResponse struct {
	Board Board `json:"board"`
}
