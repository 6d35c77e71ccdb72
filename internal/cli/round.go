package cli

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRoundCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Round commands",
	}

	cmd.AddCommand(newRoundSubmitCmd())
	cmd.AddCommand(newRoundDeleteCmd())

	return cmd
}

func newRoundSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <player-id>=<score>...",
		Short: "Record a round",
		Long: `Record a round. Every player on the roster needs a score.

Example:
  skrew round submit k3j9x0a1b=5 p02mz8q4c=-3`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scores, err := parseScores(args)
			if err != nil {
				return err
			}

			var result SubmitRoundResult
			if err := client.Post(cmd.Context(), "/api/v1/rounds", map[string]any{"scores": scores}, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newRoundDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <round-id>",
		Short: "Delete a round and recompute totals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirm(cmd, "Delete round "+args[0]+"?"); err != nil {
				return err
			}

			var result Snapshot
			if err := client.Delete(cmd.Context(), "/api/v1/rounds/"+url.PathEscape(args[0]), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

// parseScores parses id=score pairs. Each id may appear once.
func parseScores(args []string) (map[string]int, error) {
	scores := make(map[string]int, len(args))
	for _, arg := range args {
		id, value, ok := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid score %q: expected <player-id>=<score>", arg)
		}
		score, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("invalid score %q: %q is not an integer", arg, value)
		}
		if _, dup := scores[id]; dup {
			return nil, fmt.Errorf("player %s scored twice", id)
		}
		scores[id] = score
	}
	return scores, nil
}
