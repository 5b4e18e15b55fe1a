// Package file loads page branding overrides from a TOML file.
package file

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
)

// fileConfig mirrors the TOML layout. Pointer fields distinguish "not
// set" from explicit zero values so unset keys keep their defaults.
type fileConfig struct {
	Title          *string      `toml:"title"`
	Intro          *string      `toml:"intro"`
	LogoPath       *string      `toml:"logo_path"`
	FaviconPath    *string      `toml:"favicon_path"`
	ShowDisclaimer *bool        `toml:"show_disclaimer"`
	Links          []linkConfig `toml:"links"`
}

type linkConfig struct {
	Text string `toml:"text"`
	URL  string `toml:"url"`
}

// LoadSiteConfig reads branding overrides from path and merges them over
// the defaults. An empty path or a missing file returns the defaults
// unchanged; a file that exists but does not parse is an error.
func LoadSiteConfig(path string) (domain.SiteConfig, error) {
	site := domain.DefaultSiteConfig()
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return site, nil
		}
		return site, fmt.Errorf("reading site config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return site, fmt.Errorf("parsing site config %s: %w", path, err)
	}

	if cfg.Title != nil {
		site.Title = *cfg.Title
	}
	if cfg.Intro != nil {
		site.Intro = *cfg.Intro
	}
	if cfg.LogoPath != nil {
		site.LogoPath = *cfg.LogoPath
	}
	if cfg.FaviconPath != nil {
		site.FaviconPath = *cfg.FaviconPath
	}
	if cfg.ShowDisclaimer != nil {
		site.ShowDisclaimer = *cfg.ShowDisclaimer
	}
	if cfg.Links != nil {
		links := make([]domain.SiteLink, 0, len(cfg.Links))
		for _, l := range cfg.Links {
			links = append(links, domain.SiteLink{Text: l.Text, URL: l.URL})
		}
		site.Links = links
	}

	return site, nil
}
