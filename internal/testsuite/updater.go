package testsuite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/ktytools/internal/lang"
	"github.com/at-ishikawa/ktytools/internal/registry"
	"github.com/fatih/color"
)

// Updater runs the whole workflow: optionally rebuild the registry, then
// regenerate the fixtures from it.
type Updater struct {
	builder      *Builder
	regenerator  *Regenerator
	registryPath string
	pairs        lang.Pairs
	output       io.Writer
	logger       *slog.Logger
}

func NewUpdater(
	builder *Builder,
	regenerator *Regenerator,
	registryPath string,
	pairs lang.Pairs,
	output io.Writer,
	logger *slog.Logger,
) *Updater {
	return &Updater{
		builder:      builder,
		regenerator:  regenerator,
		registryPath: registryPath,
		pairs:        pairs,
		output:       output,
		logger:       logger,
	}
}

// Run regenerates the fixtures. With updateRegistry, the registry is rebuilt
// from kaikki.org and saved first. A missing registry is reported on the
// output and is not an error.
func (u *Updater) Run(ctx context.Context, updateRegistry bool) error {
	if updateRegistry {
		u.logger.InfoContext(ctx, "Updating registry", "path", u.registryPath)
		reg, err := u.builder.Build(ctx, u.pairs)
		if err != nil {
			return fmt.Errorf("builder.Build > %w", err)
		}
		if err := registry.Save(u.registryPath, reg); err != nil {
			return fmt.Errorf("registry.Save > %w", err)
		}
	}

	reg, err := registry.Load(u.registryPath)
	if err != nil {
		var missingErr *registry.MissingRegistryError
		if errors.As(err, &missingErr) {
			if _, printErr := color.New(color.FgYellow).Fprintln(u.output, missingErr.Error()); printErr != nil {
				return fmt.Errorf("failed to print a message: %w", printErr)
			}
			return nil
		}
		return fmt.Errorf("registry.Load > %w", err)
	}

	u.logger.InfoContext(ctx, "Updating tests", "directory", u.regenerator.fixtures.Directory)
	if err := u.regenerator.Regenerate(reg); err != nil {
		return fmt.Errorf("regenerator.Regenerate > %w", err)
	}
	return nil
}
