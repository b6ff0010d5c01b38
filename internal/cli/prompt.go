package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var ErrMissingValue = errors.New("missing required value")

// resolve returns value when set, otherwise prompts for it or falls back
// to def. An empty def makes the value required.
func (g *globals) resolve(cmd *cobra.Command, value, flag, question, def string) (string, error) {
	if value != "" {
		return value, nil
	}
	if !g.canPrompt(cmd) {
		if def != "" {
			return def, nil
		}
		return "", fmt.Errorf("%w: --%s", ErrMissingValue, flag)
	}

	if def != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s [%s]: ", question, def)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ", question)
	}
	line, err := g.stdin.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", flag, err)
	}
	// Messages keep their spaces; only the line ending is removed.
	answer := strings.TrimRight(line, "\r\n")
	if flag != "message" {
		answer = strings.TrimSpace(answer)
	}
	if answer == "" {
		if def != "" {
			return def, nil
		}
		if flag == "message" && line != "" {
			// An empty line is a valid empty message.
			return "", nil
		}
		return "", fmt.Errorf("%w: --%s", ErrMissingValue, flag)
	}
	return answer, nil
}
