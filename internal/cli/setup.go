package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/mediaurl/internal/config"
	"github.com/vvka-141/mediaurl/internal/files/filesystem"
	"github.com/vvka-141/mediaurl/internal/logging"
	"github.com/vvka-141/mediaurl/internal/pickle"
	"github.com/vvka-141/mediaurl/internal/query"
	"github.com/vvka-141/mediaurl/internal/schema"
	"github.com/vvka-141/mediaurl/pkg/mediaurl"
)

// environment bundles everything a command needs, resolved from
// mediaurl.yaml, the process environment and flags (in increasing priority).
type environment struct {
	cfg    *config.Config
	logger *logging.ConsoleLogger
	schema *schema.Schema
	store  *pickle.Store
	codec  *query.Codec
}

func loadEnvironment(cmd *cobra.Command) (*environment, error) {
	// .env is optional
	_ = godotenv.Load()

	flags := cmd.Flags()
	configDir, _ := flags.GetString("config")
	verbose, _ := flags.GetBool("verbose")
	trace, _ := flags.GetBool("trace")

	logger := logging.NewWriterLogger(cmd.ErrOrStderr(), logging.LevelFromFlags(verbose, trace))

	cfg, err := config.LoadOrDefault(configDir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	if flags.Changed("addon-path") {
		cfg.AddonPath, _ = flags.GetString("addon-path")
	}
	if flags.Changed("pickle-store") {
		cfg.PickleStore, _ = flags.GetString("pickle-store")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sch, err := cfg.Schema(schema.Default())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", mediaurl.ErrInvalidConfig, err)
	}

	store := pickle.NewStore(filesystem.NewOSFileSystem(), cfg.PickleStore, logger)
	pickler := pickle.NewPickler(store, logger)

	logger.Verbose("Add-on path: %s", cfg.ResolveAddonPath())
	logger.Verbose("Pickle store: %q, %d action(s)", cfg.PickleStore, sch.Len())

	return &environment{
		cfg:    cfg,
		logger: logger,
		schema: sch,
		store:  store,
		codec:  query.New(cfg.ResolveAddonPath(), sch, pickler, logger),
	}, nil
}
