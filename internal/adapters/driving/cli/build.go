package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/plugsite/plugsite-cli/internal/core/ports/driving"
	"github.com/plugsite/plugsite-cli/internal/logger"
	"github.com/plugsite/plugsite-cli/internal/watch"
)

var (
	buildInputDir   string
	buildOutputFile string
	buildConfigFile string
	buildWatch      bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the plugin catalogue page",
	Long: `Reads *.json plugin descriptors from the input directory, validates
each against the plugin schema, and writes a single HTML page listing
the valid entries. Invalid and unreadable files are logged and skipped.

With --watch the process stays alive and rebuilds the page whenever a
descriptor changes. Stop it with Ctrl-C.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildInputDir, "input-dir", "i", "", "directory containing plugin descriptor JSON files")
	buildCmd.Flags().StringVarP(&buildOutputFile, "output-file", "o", "", "output HTML file path")
	buildCmd.Flags().StringVar(&buildConfigFile, "config", "", "site branding TOML file")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild when descriptors change")
	_ = buildCmd.MarkFlagRequired("input-dir")
	_ = buildCmd.MarkFlagRequired("output-file")

	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	site, err := siteConfigLoader(buildConfigFile)
	if err != nil {
		return fmt.Errorf("loading site config: %w", err)
	}

	req := driving.BuildRequest{
		InputDir:   buildInputDir,
		OutputFile: buildOutputFile,
		Site:       site,
	}

	if buildWatch {
		return runBuildWatch(cmd, req)
	}

	report, err := catalogService.Build(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	printBuildSummary(cmd, report)
	return nil
}

// runBuildWatch builds once, then rebuilds on descriptor changes until
// interrupted. Build failures are logged but keep the watcher alive, so
// fixing a descriptor triggers a successful rebuild.
func runBuildWatch(cmd *cobra.Command, req driving.BuildRequest) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rebuild := func() error {
		report, err := catalogService.Build(ctx, req)
		if err != nil {
			return err
		}
		printBuildSummary(cmd, report)
		return nil
	}

	if err := rebuild(); err != nil {
		logger.Error("build failed: %v", err)
	}

	return watch.New().Run(ctx, req.InputDir, rebuild)
}

func printBuildSummary(cmd *cobra.Command, report *driving.Report) {
	cmd.Printf("Wrote %s (%d plugin(s))\n", buildOutputFile, report.Valid())
	if !report.Clean() {
		cmd.Printf("Skipped %d invalid and %d unreadable file(s)\n",
			report.Invalid(), report.Unreadable())
	}
}
