package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/internal/render"
)

func newDecodeCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <query>",
		Short: "Parse a plugin URL or query string",
		Long: `Parse a plugin URL or query string and validate it against the action schema.

The argument may be a full plugin URL, a query with a leading '?', or a bare
query. Pickled items are decoded; store references are resolved through the
pickle store.`,
		Example: `  mediaurl decode 'plugin://plugin.video.retrospect/?action=listcategory&category=kids'
  mediaurl decode --json '?channel=chn_nos&channelcode=&action=configurechannel'`,
		Args: RequireQuery,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			params, err := env.codec.DecodeURL(args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return render.JSON(cmd.OutOrStdout(), params)
			}
			return render.Parameters(cmd.OutOrStdout(), params, render.IsInteractive())
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output parameters as JSON")
	return cmd
}
