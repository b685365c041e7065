package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStoreCmd() *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Manage the pickle store",
	}

	var age time.Duration
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Remove stored listings older than --age",
		Long: `Remove stored listings older than --age.

Without --age the purge_age from mediaurl.yaml is used (default 720h).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment(cmd)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("age") {
				if age, err = env.cfg.PurgeAgeDuration(); err != nil {
					return err
				}
			}
			if env.cfg.PickleStore == "" {
				env.logger.Info("No pickle store configured, nothing to purge")
				return nil
			}

			removed, err := env.store.Purge(age, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d store(s)\n", removed)
			return nil
		},
	}
	purgeCmd.Flags().DurationVar(&age, "age", 0, "Remove stores older than this duration")

	storeCmd.AddCommand(purgeCmd)
	return storeCmd
}
