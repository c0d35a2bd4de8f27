package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func roommatesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roommates",
		Short: "List and edit roommates",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List roommates in rotation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			roommates, err := svc.registry.Roommates(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(roommates) == 0 {
				fmt.Fprintln(out, "No roommates yet.")
				return nil
			}
			for i, rm := range roommates {
				fmt.Fprintf(out, "%d. %s (%s)\n", i+1, rm.Name, rm.ID)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add [name]",
		Short: "Add a roommate at the end of the rotation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			rm, err := svc.registry.AddRoommate(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", rm.Name, rm.ID)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm [id]",
		Short: "Remove a roommate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			remaining, err := svc.registry.DeleteRoommate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d roommates remain\n", len(remaining))
			return nil
		},
	})

	return cmd
}

func roomsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "List and add rooms",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List rooms with their flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			rooms, err := svc.registry.Rooms(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(rooms) == 0 {
				fmt.Fprintln(out, "No rooms yet.")
				return nil
			}
			for _, room := range rooms {
				var flags []string
				if room.InChoreRotation {
					flags = append(flags, "chores")
				}
				if room.Reservable {
					flags = append(flags, "reservable")
				}
				fmt.Fprintf(out, "%-20s [%s] %s\n", room.Name, strings.Join(flags, ","), room.ID)
			}
			return nil
		},
	})

	add := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a room",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chores, _ := cmd.Flags().GetBool("chores")
			reservable, _ := cmd.Flags().GetBool("reservable")

			svc, err := a.open()
			if err != nil {
				return err
			}
			defer svc.store.Close()

			room, err := svc.registry.AddRoom(cmd.Context(), strings.Join(args, " "), chores, reservable)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", room.Name, room.ID)
			return nil
		},
	}
	add.Flags().Bool("chores", true, "Include in the weekly cleaning rotation")
	add.Flags().Bool("reservable", false, "Allow hourly reservations")
	cmd.AddCommand(add)

	return cmd
}
