package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plugsite/plugsite-cli/internal/core/ports/driving"
)

var validateInputDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate plugin descriptors without writing output",
	Long: `Runs schema validation over every *.json descriptor in the input
directory and prints a per-file report. Exits non-zero when any file
is invalid or unreadable.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInputDir, "input-dir", "i", "", "directory containing plugin descriptor JSON files")
	_ = validateCmd.MarkFlagRequired("input-dir")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	report, err := catalogService.Validate(cmd.Context(), validateInputDir)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	for _, f := range report.Files {
		switch f.Status {
		case driving.FileValid:
			cmd.Printf("ok          %s\n", f.Path)
		case driving.FileInvalid:
			cmd.Printf("invalid     %s\n", f.Path)
		case driving.FileUnreadable:
			cmd.Printf("unreadable  %s\n", f.Path)
		}
		for _, e := range f.Errors {
			cmd.Printf("            - %s\n", e)
		}
	}

	cmd.Printf("%d valid, %d invalid, %d unreadable\n",
		report.Valid(), report.Invalid(), report.Unreadable())

	if !report.Clean() {
		return fmt.Errorf("%d descriptor file(s) failed validation",
			report.Invalid()+report.Unreadable())
	}
	return nil
}
