package cli

import (
	"fmt"

	"github.com/rpggio/toolbox/internal/config"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema and exit",
		Long: `Apply pending schema migrations to the configured database. Running it
against an up-to-date database changes nothing. Existing rows are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(rootOpts.ConfigPath)
			if err != nil {
				return err
			}
			logger, closeLog := newLogger(cfg.Log, cmd.ErrOrStderr())
			defer closeLog()

			db, err := openStore(cfg.DB, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			version, _, err := db.SchemaVersion()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d\n", version)
			return nil
		},
	}
}
