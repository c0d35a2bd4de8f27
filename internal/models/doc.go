// Package models defines the core domain models for HouseHub.
//
// # Entities
//
// The household is described by two small registries:
//   - Roommate: a person sharing the house
//   - Room: a space that may take part in the chore rotation, be reservable, or both
//
// Chores come in three shapes:
//   - ChoreAssignment: one row per chore-rotation room per week
//   - DishwasherTrash: the two singleton duties, each with a rolling cursor
//   - CustomChore: user-defined chores, either recurring (cursor-derived
//     assignee) or one-time (fixed assignee or unassigned)
//
// Money is tracked by Payment and its Contributions. Calendar events,
// room reservations and weekly availability round out the model.
//
// # Design Principles
//
//  1. **Weak references**: records reference roommates and rooms by ID string.
//     Deleting a roommate or room never cascades; lookups fall back to a
//     sentinel label at read time.
//  2. **JSON layout is the storage format**: field tags match the persisted
//     keys so that data written by earlier versions keeps loading.
//  3. **Derived assignees**: recurring duties store a cursor, never a roommate ID.
package models
