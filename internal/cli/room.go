package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomListCmd())
	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomLeaveCmd())
	cmd.AddCommand(newRoomLaunchCmd())

	return cmd
}

func newRoomListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RoomList

			if err := client.Get("/api/v1/rooms", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomCreateCmd() *cobra.Command {
	var (
		name        string
		playerCount int
		endKind     string
		endTarget   int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := cfg.RequirePlayerID()
			if err != nil {
				return err
			}
			if name == "" {
				return fmt.Errorf("--name is required")
			}

			req := map[string]any{
				"player_id": playerID,
				"room_name": name,
			}
			// Settings are optional; the server falls back to its
			// defaults when omitted entirely
			if playerCount > 0 || endKind != "" {
				if playerCount == 0 {
					playerCount = 2
				}
				if endKind == "" {
					endKind = "first_to_score"
				}
				settings := map[string]any{
					"kind":         "rock_paper_scissors",
					"player_count": playerCount,
					"end_condition": map[string]any{
						"kind":   endKind,
						"target": endTarget,
					},
				}
				req["settings"] = settings
			}

			var result Room

			if err := client.Post("/api/v1/rooms", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Room name (required)")
	cmd.Flags().IntVar(&playerCount, "players", 0, "Player count (default: server default)")
	cmd.Flags().StringVar(&endKind, "end", "", "End condition kind: total_rounds, first_to_score")
	cmd.Flags().IntVar(&endTarget, "target", 3, "End condition target")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <room-id>",
		Short: "Get room details (members only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := cfg.RequirePlayerID()
			if err != nil {
				return err
			}

			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s?player_id=%d", args[0], playerID)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <room-id>",
		Short: "Join a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := cfg.RequirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{"player_id": playerID}
			var result Room

			path := fmt.Sprintf("/api/v1/rooms/%s/join", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave <room-id>",
		Short: "Leave a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := cfg.RequirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{"player_id": playerID}

			path := fmt.Sprintf("/api/v1/rooms/%s/leave", args[0])
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Left room %s", args[0]))
			return nil
		},
	}
}

func newRoomLaunchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <room-id>",
		Short: "Launch the game (host only, room must be full)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playerID, err := cfg.RequirePlayerID()
			if err != nil {
				return err
			}

			req := map[string]any{"player_id": playerID}
			var result Game

			path := fmt.Sprintf("/api/v1/rooms/%s/launch", args[0])
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
