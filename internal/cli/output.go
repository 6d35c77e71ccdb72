package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Snapshot:
		o.printSnapshot(v)
	case SubmitRoundResult:
		o.printSubmitRound(v)
	case StandingsResult:
		o.printStandings(v)
	case HealthResult:
		fmt.Fprintf(o.w, "Status: %s\n", v.Status)
		if v.Server != "" {
			fmt.Fprintf(o.w, "Server: %s (%dms)\n", v.Server, v.LatencyMS)
		}
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	TotalScore int    `json:"totalScore"`
	History    []int  `json:"history"`
}

// Round response type
type Round struct {
	ID        string         `json:"id"`
	Number    int            `json:"number"`
	Scores    map[string]int `json:"scores"`
	Timestamp int64          `json:"timestamp"`
}

// Snapshot response type
type Snapshot struct {
	Status  string   `json:"status"`
	Players []Player `json:"players"`
	Rounds  []Round  `json:"rounds"`
}

// RoundReport response type
type RoundReport struct {
	RoundID string   `json:"roundId"`
	Missing []string `json:"missing"`
	Unknown []string `json:"unknown"`
}

// SubmitRoundResult response type
type SubmitRoundResult struct {
	Snapshot Snapshot    `json:"snapshot"`
	Report   RoundReport `json:"report"`
}

// Standing response type
type Standing struct {
	Rank     int    `json:"rank"`
	Player   Player `json:"player"`
	IsLeader bool   `json:"isLeader"`
}

// StandingsResult response type
type StandingsResult struct {
	Status    string     `json:"status"`
	Standings []Standing `json:"standings"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	Server    string `json:"server,omitempty"`
	LatencyMS int64  `json:"latencyMs"`
}

func (o *Output) printSnapshot(s Snapshot) {
	fmt.Fprintf(o.w, "Status: %s\n", s.Status)
	fmt.Fprintf(o.w, "Players (%d):\n", len(s.Players))
	if len(s.Players) > 0 {
		tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "  ID\tNAME\tTOTAL\tHISTORY")
		for _, p := range s.Players {
			fmt.Fprintf(tw, "  %s\t%s\t%d\t%s\n", p.ID, p.Name, p.TotalScore, formatHistory(p.History))
		}
		_ = tw.Flush()
	}

	if len(s.Rounds) == 0 {
		return
	}
	names := make(map[string]string, len(s.Players))
	for _, p := range s.Players {
		names[p.ID] = p.Name
	}
	fmt.Fprintf(o.w, "Rounds (%d):\n", len(s.Rounds))
	for _, r := range s.Rounds {
		entries := make([]string, 0, len(s.Players))
		for _, p := range s.Players {
			if score, ok := r.Scores[p.ID]; ok {
				entries = append(entries, fmt.Sprintf("%s=%d", names[p.ID], score))
			}
		}
		at := time.UnixMilli(r.Timestamp).UTC().Format("2006-01-02 15:04")
		fmt.Fprintf(o.w, "  #%d %s [%s] %s\n", r.Number, r.ID, at, strings.Join(entries, " "))
	}
}

func (o *Output) printSubmitRound(r SubmitRoundResult) {
	fmt.Fprintf(o.w, "Round %s recorded\n", r.Report.RoundID)
	if len(r.Report.Missing) > 0 {
		fmt.Fprintf(o.w, "Not scored: %s\n", strings.Join(r.Report.Missing, ", "))
	}
	if len(r.Report.Unknown) > 0 {
		fmt.Fprintf(o.w, "Ignored: %s\n", strings.Join(r.Report.Unknown, ", "))
	}
	o.printSnapshot(r.Snapshot)
}

func (o *Output) printStandings(s StandingsResult) {
	fmt.Fprintf(o.w, "Status: %s\n", s.Status)
	if len(s.Standings) == 0 {
		fmt.Fprintln(o.w, "No players")
		return
	}
	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tNAME\tTOTAL\t")
	for _, st := range s.Standings {
		leader := ""
		if st.IsLeader {
			leader = "leader"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", st.Rank, st.Player.Name, st.Player.TotalScore, leader)
	}
	_ = tw.Flush()
}

func formatHistory(history []int) string {
	if len(history) == 0 {
		return "-"
	}
	parts := make([]string, len(history))
	for i, v := range history {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
