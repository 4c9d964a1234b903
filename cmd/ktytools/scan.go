package main

import (
	"fmt"
	"os"

	"github.com/at-ishikawa/ktytools/internal/scan"
	"github.com/spf13/cobra"
)

func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan <folder>",
		Short: "Scan a folder recursively and bucket every .zip file by size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := args[0]
			info, err := os.Stat(folder)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("%s is not a directory", folder)
			}

			report, err := scan.Scan(os.DirFS(folder))
			if err != nil {
				return fmt.Errorf("scan.Scan > %w", err)
			}
			return report.Print(cmd.OutOrStdout())
		},
	}
}
