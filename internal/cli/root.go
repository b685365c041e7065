package cli

import (
	"github.com/spf13/cobra"
)

const rootLong = `mediaurl builds and parses media-center plugin URLs.

A plugin URL addresses an action of the add-on, optionally for a channel,
a media item and a category:

  plugin://plugin.video.retrospect/?channel=chn_nos&channelcode=uzgjson&action=listfolder&pickle=...

Media items travel as pickles: URL-safe encodings of the item, or references
into the on-disk pickle store.

Configuration is read from mediaurl.yaml in the --config directory, then
from the environment (MEDIAURL_ADDON_PATH, MEDIAURL_PICKLE_STORE, also
loaded from .env), then from flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Query string could not be decoded
  21 - Pickled media item could not be decoded
  22 - Pickle store missing or unreadable`

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "mediaurl",
		Short:         "Build and parse media-center plugin URLs",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose output for all commands")
	flags.Bool("trace", false, "Enable trace output (implies --verbose)")
	flags.String("config", ".", "Directory containing mediaurl.yaml")
	flags.String("addon-path", "", "Plugin base URL (overrides config and environment)")
	flags.String("pickle-store", "", "Pickle store directory (overrides config and environment)")
	_ = rootCmd.RegisterFlagCompletionFunc("config", completeDirectories)
	_ = rootCmd.RegisterFlagCompletionFunc("pickle-store", completeDirectories)

	rootCmd.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newActionsCmd(),
		newStoreCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
	}
	return err
}
