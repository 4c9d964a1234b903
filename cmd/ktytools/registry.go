package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/at-ishikawa/ktytools/internal/registry"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type OutputFormat string

func (f *OutputFormat) Set(val string) error {
	for _, format := range allOutputFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s", val)
}

func (f OutputFormat) String() string {
	return string(f)
}

func (f *OutputFormat) Type() string {
	return "OutputFormat"
}

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

var (
	_                pflag.Value = (*OutputFormat)(nil)
	allOutputFormats             = []OutputFormat{OutputFormatYAML, OutputFormatJSON}
)

func newRegistryCommand() *cobra.Command {
	registryCommand := &cobra.Command{
		Use:   "registry",
		Short: "Inspect the test registry",
	}

	format := OutputFormatYAML
	summaryCommand := &cobra.Command{
		Use:   "summary",
		Short: "Show how many test cases of each pair matched a kaikki.org entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			output := cmd.OutOrStdout()
			reg, err := registry.Load(cfg.Tests.RegistryPath)
			if err != nil {
				var missingErr *registry.MissingRegistryError
				if errors.As(err, &missingErr) {
					_, err := color.New(color.FgYellow).Fprintln(output, missingErr.Error())
					return err
				}
				return fmt.Errorf("registry.Load > %w", err)
			}
			return writeSummary(output, format, registry.Summarize(reg))
		},
	}
	summaryCommand.Flags().Var(&format, "format", fmt.Sprintf("output format. Possible values are %v", allOutputFormats))

	registryCommand.AddCommand(summaryCommand)
	return registryCommand
}

func writeSummary(w io.Writer, format OutputFormat, summary registry.Summary) error {
	switch format {
	case OutputFormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("json.Encoder.Encode > %w", err)
		}
		return nil
	case OutputFormatYAML:
		fallthrough
	default:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(summary); err != nil {
			return fmt.Errorf("yaml.Encoder.Encode > %w", err)
		}
		return encoder.Close()
	}
}
