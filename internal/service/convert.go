package service

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/househub/internal/calculator"
	"github.com/mmynk/househub/internal/household"
	"github.com/mmynk/househub/internal/ledger"
	"github.com/mmynk/househub/internal/models"
	"github.com/mmynk/househub/internal/rotation"
	"github.com/mmynk/househub/pkg/api"
)

// moneyPlaces is the number of decimals amounts are rendered with.
const moneyPlaces = 2

func money(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

func roommateToAPI(r models.Roommate) api.Roommate {
	return api.Roommate{ID: r.ID, Name: r.Name}
}

func roommatesToAPI(roommates []models.Roommate) []api.Roommate {
	out := make([]api.Roommate, len(roommates))
	for i, r := range roommates {
		out[i] = roommateToAPI(r)
	}
	return out
}

func roomToAPI(r models.Room) api.Room {
	return api.Room{
		ID:              r.ID,
		Name:            r.Name,
		InChoreRotation: r.InChoreRotation,
		Reservable:      r.Reservable,
	}
}

func roomsToAPI(rooms []models.Room) []api.Room {
	out := make([]api.Room, len(rooms))
	for i, r := range rooms {
		out[i] = roomToAPI(r)
	}
	return out
}

func assignmentsToAPI(assignments []models.ChoreAssignment, dir *household.Directory) []api.ChoreAssignment {
	out := make([]api.ChoreAssignment, len(assignments))
	for i, a := range assignments {
		out[i] = api.ChoreAssignment{
			RoomID:    a.RoomID,
			RoomName:  dir.RoomName(a.RoomID),
			Completed: a.Completed,
			Week:      a.Week,
		}
		if a.RoommateID != nil {
			out[i].RoommateID = *a.RoommateID
			out[i].RoommateName = dir.RoommateName(*a.RoommateID)
		}
	}
	return out
}

func dutiesToAPI(duties []models.DishwasherTrash, roommateIDs []string, dir *household.Directory) []api.Duty {
	out := make([]api.Duty, len(duties))
	for i, d := range duties {
		out[i] = api.Duty{
			Type:                 string(d.Type),
			CurrentRoommateIndex: d.CurrentRoommateIndex,
			Completed:            d.Completed,
		}
		if id, ok := rotation.Assignee(d.CurrentRoommateIndex, roommateIDs); ok {
			out[i].AssigneeID = id
			out[i].AssigneeName = dir.RoommateName(id)
		}
	}
	return out
}

func customChoresToAPI(chores []models.CustomChore, roommateIDs []string, dir *household.Directory) []api.CustomChore {
	out := make([]api.CustomChore, len(chores))
	for i, c := range chores {
		out[i] = api.CustomChore{
			ID:                   c.ID,
			Name:                 c.Name,
			Recurring:            c.Recurring,
			CurrentRoommateIndex: c.CurrentRoommateIndex,
			Completed:            c.Completed,
		}
		switch {
		case c.Recurring:
			if id, ok := rotation.Assignee(c.CurrentRoommateIndex, roommateIDs); ok {
				out[i].AssigneeName = dir.RoommateName(id)
			}
		case c.AssignedTo != nil:
			out[i].AssignedTo = *c.AssignedTo
			out[i].AssigneeName = dir.RoommateName(*c.AssignedTo)
		}
	}
	return out
}

func paymentToAPI(p models.Payment, dir *household.Directory) api.Payment {
	contributions := make([]api.Contribution, len(p.Contributions))
	for i, c := range p.Contributions {
		contributions[i] = api.Contribution{
			RoommateID:   c.RoommateID,
			RoommateName: dir.RoommateName(c.RoommateID),
			Responsible:  money(c.Responsible),
			Paid:         money(c.Paid),
			FullyPaid:    calculator.FullyPaid(c),
		}
	}
	return api.Payment{
		ID:            p.ID,
		Reason:        p.Reason,
		TotalAmount:   money(p.TotalAmount),
		Notes:         p.Notes,
		Contributions: contributions,
		Remaining:     money(ledger.RemainingBalance(p)),
	}
}

func balancesToAPI(balances []calculator.MemberBalance, dir *household.Directory) []api.Balance {
	out := make([]api.Balance, len(balances))
	for i, b := range balances {
		out[i] = api.Balance{
			RoommateID:   b.RoommateID,
			RoommateName: dir.RoommateName(b.RoommateID),
			Responsible:  money(b.Responsible),
			Paid:         money(b.Paid),
			Outstanding:  money(b.Outstanding),
		}
	}
	return out
}

func eventToAPI(e models.CalendarEvent) api.Event {
	return api.Event{
		ID:          e.ID,
		Date:        e.Date,
		Time:        e.Time,
		Description: e.Description,
		CreatedBy:   e.CreatedBy,
	}
}

func reservationToAPI(r models.Reservation) api.Reservation {
	return api.Reservation{
		ID:         r.ID,
		RoomID:     r.RoomID,
		Date:       r.Date,
		Hour:       r.Hour,
		RoommateID: r.RoommateID,
		Reason:     r.Reason,
	}
}

func availabilityToAPI(entries []models.AvailabilityEntry) []api.AvailabilityEntry {
	out := make([]api.AvailabilityEntry, len(entries))
	for i, e := range entries {
		out[i] = api.AvailabilityEntry{
			ID:           e.ID,
			RoommateID:   e.RoommateID,
			DayOfWeek:    e.DayOfWeek,
			Hour:         e.Hour,
			Status:       string(e.Status),
			RepeatWeekly: e.RepeatWeekly,
			SpecificDate: e.SpecificDate,
		}
	}
	return out
}

func availabilityFromAPI(entries []api.AvailabilityEntry) []models.AvailabilityEntry {
	out := make([]models.AvailabilityEntry, len(entries))
	for i, e := range entries {
		out[i] = models.AvailabilityEntry{
			DayOfWeek:    e.DayOfWeek,
			Hour:         e.Hour,
			Status:       models.AvailabilityStatus(e.Status),
			RepeatWeekly: e.RepeatWeekly,
			SpecificDate: e.SpecificDate,
		}
	}
	return out
}
