package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// errAborted is returned when the user declines a confirmation prompt
var errAborted = errors.New("aborted")

// confirm asks a y/N question on the command's stdin.
// The --yes flag answers yes without prompting.
func confirm(cmd *cobra.Command, question string) error {
	if cfg.Yes {
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return errAborted
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return nil
	default:
		return errAborted
	}
}
