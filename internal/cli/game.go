package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameStandingsCmd())
	cmd.AddCommand(newGameResetScoresCmd())
	cmd.AddCommand(newGameResetCmd())
	cmd.AddCommand(newGameClearCmd())
	cmd.AddCommand(newGameWatchCmd())

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Snapshot
			if err := client.Get(cmd.Context(), "/api/v1/game", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the game with the current roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Snapshot
			if err := client.Post(cmd.Context(), "/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameStandingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standings",
		Short: "Show players ranked by total score",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StandingsResult
			if err := client.Get(cmd.Context(), "/api/v1/game/standings", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameResetScoresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-scores",
		Short: "Clear all rounds but keep the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, "Clear every round and score?"); err != nil {
				return err
			}

			var result Snapshot
			if err := client.Post(cmd.Context(), "/api/v1/game/reset-scores", map[string]bool{"confirm": true}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Start over with an empty roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, "Drop the roster and every round?"); err != nil {
				return err
			}

			var result Snapshot
			if err := client.Post(cmd.Context(), "/api/v1/game/reset", map[string]bool{"confirm": true}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newGameClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Erase all saved data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, "Erase all saved data? This cannot be undone."); err != nil {
				return err
			}

			var result Snapshot
			if err := client.Delete(cmd.Context(), "/api/v1/data?confirm=true", &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}
