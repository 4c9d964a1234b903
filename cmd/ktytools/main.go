package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configFile string
	debugMode  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "failed to execute a command: %+v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "ktytools",
		Short:         "Tools to maintain the kty dictionary test suite",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(debugMode)
		},
	}
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is ./config.yml or $HOME/.config/ktytools/config.yml)")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logs")

	rootCommand.AddCommand(
		newTestsCommand(),
		newRegistryCommand(),
		newScanCommand(),
	)
	return rootCommand
}

func setupLogger(debugMode bool) {
	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: debugMode,
		Level:     level,
	})))
}
