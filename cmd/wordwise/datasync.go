package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/wordwise/internal/bootstrap"
	"github.com/at-ishikawa/wordwise/internal/config"
	"github.com/at-ishikawa/wordwise/internal/datasync"
)

func newMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migration commands",
	}

	migrateCmd.AddCommand(
		newMigrateCopyCommand("import-db", "Import the JSON dictionary into the database", config.StoreBackendJSON, config.StoreBackendMySQL),
		newMigrateCopyCommand("export-db", "Export the database into the JSON dictionary", config.StoreBackendMySQL, config.StoreBackendJSON),
	)
	return migrateCmd
}

func newMigrateCopyCommand(use, short, from, to string) *cobra.Command {
	var dryRun bool
	var updateExisting bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			app := bootstrap.New()
			defer func() {
				_ = app.Shutdown(context.Background())
			}()

			source, err := bootstrap.NewStore(ctx, app, withBackend(cfg, from))
			if err != nil {
				return fmt.Errorf("bootstrap.NewStore(%s) > %w", from, err)
			}
			destination, err := bootstrap.NewStore(ctx, app, withBackend(cfg, to))
			if err != nil {
				return fmt.Errorf("bootstrap.NewStore(%s) > %w", to, err)
			}

			out := cmd.OutOrStdout()
			importer := datasync.NewImporter(source, destination, out)
			opts := datasync.ImportOptions{
				DryRun:         dryRun,
				UpdateExisting: updateExisting,
			}
			result, err := importer.Import(ctx, opts)
			if err != nil {
				return fmt.Errorf("importer.Import() > %w", err)
			}

			_, _ = fmt.Fprintln(out, "\nImport Summary:")
			if opts.DryRun {
				_, _ = fmt.Fprintln(out, "  (dry-run mode, no changes made)")
			}
			_, _ = fmt.Fprintf(out, "  Words: %d new, %d skipped, %d updated\n", result.New, result.Skipped, result.Updated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview changes without modifying the destination")
	cmd.Flags().BoolVar(&updateExisting, "update-existing", false, "Update existing words with new data")
	return cmd
}

func withBackend(cfg *config.Config, backend string) *config.Config {
	copied := *cfg
	copied.Store.Backend = backend
	return &copied
}
