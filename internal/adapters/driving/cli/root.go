// Package cli implements the plugsite command-line interface.
//
// Commands register themselves on rootCmd from init functions. Services
// are injected by the composition root (cmd/plugsite) before Execute.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driving"
	"github.com/plugsite/plugsite-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	catalogService driving.CatalogService

	// siteConfigLoader resolves the --config flag into page branding.
	// Defaults to built-in branding when no loader is wired.
	siteConfigLoader = func(string) (domain.SiteConfig, error) {
		return domain.DefaultSiteConfig(), nil
	}

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "plugsite",
	Short: "Generate a static HTML plugin catalogue",
	Long: `plugsite reads a directory of plugin descriptor JSON files, validates
each against the plugin schema, and renders a single static HTML page
listing the valid entries.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// SetCatalogService injects the catalogue service.
func SetCatalogService(svc driving.CatalogService) {
	catalogService = svc
}

// SetSiteConfigLoader injects the site config loader used by --config.
func SetSiteConfigLoader(loader func(path string) (domain.SiteConfig, error)) {
	siteConfigLoader = loader
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
