package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// RequireQuery validates that exactly one query argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireQuery(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <query>

Usage: %s

Example:
  %s 'channel=chn_nos&channelcode=&action=configurechannel'`, mediaurl.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", mediaurl.ErrUsage, len(args))
	}
	return nil
}
