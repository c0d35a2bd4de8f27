package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/househub/internal/household"
)

func statusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the household and the current chore week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			ctx := cmd.Context()
			week, err := svc.chores.CurrentWeek(ctx)
			if err != nil {
				return err
			}
			start, err := svc.chores.StartDate(ctx)
			if err != nil {
				return err
			}
			roommates, err := svc.registry.Roommates(ctx)
			if err != nil {
				return err
			}
			rooms, err := svc.registry.Rooms(ctx)
			if err != nil {
				return err
			}
			keys, err := svc.store.Keys(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Househub Status")
			fmt.Fprintln(out, strings.Repeat("=", 40))
			fmt.Fprintf(out, "  Database:   %s\n", a.dbPath)
			fmt.Fprintf(out, "  Namespace:  %s\n", svc.store.Namespace())
			fmt.Fprintf(out, "  Keys:       %d\n", len(keys))
			fmt.Fprintf(out, "  Week:       %d (since %s)\n", week, start)
			fmt.Fprintf(out, "  Roommates:  %d\n", len(roommates))
			fmt.Fprintf(out, "  Rooms:      %d (%d in rotation, %d reservable)\n",
				len(rooms), len(household.ChoreRooms(rooms)), len(household.ReservableRooms(rooms)))
			return nil
		},
	}
}

func advanceWeekCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "advance-week",
		Short: "Move to the next chore week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			ctx := cmd.Context()
			week, assignments, err := svc.chores.AdvanceWeek(ctx)
			if err != nil {
				return err
			}
			dir, err := svc.registry.Directory(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Now on week %d\n", week)
			for _, asg := range assignments {
				fmt.Fprintf(out, "  %-20s %s\n", dir.RoomName(asg.RoomID), assigneeName(dir, asg.RoommateID))
			}
			return nil
		},
	}
}

func boardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Print who does what this week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			board, err := svc.chores.Board(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Week %d  (%d/%d done)\n", board.Week, board.Done, board.Total)
			for _, p := range board.People {
				fmt.Fprintf(out, "\n%s\n", p.Roommate.Name)
				for _, asg := range p.Rotation {
					fmt.Fprintf(out, "  %s %s\n", checkbox(asg.Completed), board.Directory.RoomName(asg.RoomID))
				}
				for _, d := range p.Duties {
					fmt.Fprintf(out, "  %s %s\n", checkbox(d.Completed), d.Type)
				}
				for _, c := range p.Recurring {
					fmt.Fprintf(out, "  %s %s (recurring)\n", checkbox(c.Completed), c.Name)
				}
				for _, c := range p.OneTime {
					fmt.Fprintf(out, "  %s %s\n", checkbox(c.Completed), c.Name)
				}
			}
			if len(board.Unassigned) > 0 {
				fmt.Fprintln(out, "\nUp for grabs")
				for _, c := range board.Unassigned {
					fmt.Fprintf(out, "  %s %s\n", checkbox(c.Completed), c.Name)
				}
			}
			return nil
		},
	}
}

func assigneeName(dir *household.Directory, id *string) string {
	if id == nil {
		return "(nobody)"
	}
	return dir.RoommateName(*id)
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
