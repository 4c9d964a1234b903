package main

import (
	"fmt"
	"log/slog"

	"github.com/at-ishikawa/ktytools/internal/kaikki"
	"github.com/at-ishikawa/ktytools/internal/testsuite"
	"github.com/spf13/cobra"
)

func newTestsCommand() *cobra.Command {
	testsCommand := &cobra.Command{
		Use:   "tests",
		Short: "Maintain the kaikki test fixtures",
	}

	var updateRegistry bool
	updateCommand := &cobra.Command{
		Use:   "update",
		Short: "Regenerate the test fixtures from the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			pairs, err := cfg.LanguagePairs()
			if err != nil {
				return fmt.Errorf("cfg.LanguagePairs > %w", err)
			}

			logger := slog.Default()
			client, err := kaikki.NewClient(kaikki.Config{
				BaseURL:   cfg.Kaikki.BaseURL,
				Timeout:   cfg.Kaikki.Timeout,
				CacheSize: cfg.Kaikki.CacheSize,
			}, logger)
			if err != nil {
				return fmt.Errorf("kaikki.NewClient > %w", err)
			}

			fixtures := testsuite.NewFixtures(cfg.Tests.FixturesDirectory)
			updater := testsuite.NewUpdater(
				testsuite.NewBuilder(client, fixtures, logger),
				testsuite.NewRegenerator(fixtures, logger),
				cfg.Tests.RegistryPath,
				pairs,
				cmd.OutOrStdout(),
				logger,
			)
			if err := updater.Run(cmd.Context(), updateRegistry); err != nil {
				return fmt.Errorf("updater.Run > %w", err)
			}
			return nil
		},
	}
	updateCommand.Flags().BoolVar(&updateRegistry, "update-registry", false, "fetch every test case from kaikki.org and rebuild the registry first")

	testsCommand.AddCommand(updateCommand)
	return testsCommand
}
