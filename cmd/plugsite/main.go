// Command plugsite generates a static HTML plugin catalogue from a
// directory of JSON descriptor files.
package main

import (
	"os"

	configfile "github.com/plugsite/plugsite-cli/internal/adapters/driven/config/file"
	descfile "github.com/plugsite/plugsite-cli/internal/adapters/driven/descriptors/file"
	htmlrender "github.com/plugsite/plugsite-cli/internal/adapters/driven/render/html"
	"github.com/plugsite/plugsite-cli/internal/adapters/driving/cli"
	"github.com/plugsite/plugsite-cli/internal/core/services"
)

func main() {
	store := descfile.NewStore()
	renderer := htmlrender.New()

	cli.SetCatalogService(services.NewCatalogService(store, renderer))
	cli.SetSiteConfigLoader(configfile.LoadSiteConfig)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
