package cli

import (
	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/internal/render"
)

func newActionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actions",
		Short: "List actions and their parameters",
		Long: `List every action with its parameters in order.

Optional parameters are shown in [brackets]. Actions declared in
mediaurl.yaml replace built-in actions of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}
			return render.Schema(cmd.OutOrStdout(), env.schema, render.IsInteractive())
		},
	}
}
