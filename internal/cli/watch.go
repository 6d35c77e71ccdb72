package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
)

func newGameWatchCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream live snapshot updates",
		Long: `Connect to the game's event stream and print every new snapshot.

Press Ctrl+C to disconnect.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return streamSnapshots(ctx, cmd, count)
		},
	}

	cmd.Flags().IntVar(&count, "count", 0, "Exit after this many snapshots (0 streams until interrupted)")

	return cmd
}

// streamSnapshots prints snapshot events until the stream ends or ctx is
// cancelled. A positive limit stops after that many snapshots.
func streamSnapshots(ctx context.Context, cmd *cobra.Command, limit int) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, client.BaseURL()+"/api/v1/game/events", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	// No timeout for SSE
	resp, err := (&http.Client{}).Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	out := output(cmd)
	printed := 0
	err = readEvents(resp, func(event, data string) bool {
		if event != "snapshot" {
			return true
		}
		var snapshot Snapshot
		if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "skipping malformed snapshot: %s\n", err)
			return true
		}
		out.Print(snapshot)
		printed++
		return limit == 0 || printed < limit
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("stream error: %w", err)
	}
	return nil
}

// readEvents parses an SSE stream, calling handle for each complete event
// until handle returns false or the stream ends
func readEvents(resp *http.Response, handle func(event, data string) bool) error {
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var currentEvent string
	var dataLines []string
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "event: "):
			currentEvent = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			dataLines = append(dataLines, strings.TrimPrefix(line, "data: "))
		case line == "":
			if currentEvent != "" {
				if !handle(currentEvent, strings.Join(dataLines, "\n")) {
					return nil
				}
			}
			currentEvent = ""
			dataLines = nil
		}
	}
	return scanner.Err()
}
