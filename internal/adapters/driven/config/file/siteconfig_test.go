package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "site.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSiteConfig_EmptyPathReturnsDefaults(t *testing.T) {
	site, err := LoadSiteConfig("")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSiteConfig(), site)
}

func TestLoadSiteConfig_MissingFileReturnsDefaults(t *testing.T) {
	site, err := LoadSiteConfig(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSiteConfig(), site)
}

func TestLoadSiteConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
title = "Internal Plugin Catalogue"
show_disclaimer = false
`)

	site, err := LoadSiteConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "Internal Plugin Catalogue", site.Title)
	assert.False(t, site.ShowDisclaimer)
	// Unset keys keep their defaults.
	assert.Equal(t, domain.DefaultSiteConfig().Intro, site.Intro)
	assert.Equal(t, domain.DefaultSiteConfig().Links, site.Links)
}

func TestLoadSiteConfig_LinksReplaceDefaults(t *testing.T) {
	path := writeConfig(t, `
[[links]]
text = "Team wiki"
url = "https://wiki.example.com"
`)

	site, err := LoadSiteConfig(path)

	require.NoError(t, err)
	require.Len(t, site.Links, 1)
	assert.Equal(t, domain.SiteLink{Text: "Team wiki", URL: "https://wiki.example.com"}, site.Links[0])
}

func TestLoadSiteConfig_ExplicitEmptyStrings(t *testing.T) {
	path := writeConfig(t, `
logo_path = ""
favicon_path = ""
`)

	site, err := LoadSiteConfig(path)

	require.NoError(t, err)
	assert.Empty(t, site.LogoPath)
	assert.Empty(t, site.FaviconPath)
}

func TestLoadSiteConfig_Malformed(t *testing.T) {
	path := writeConfig(t, `title = [unclosed`)

	_, err := LoadSiteConfig(path)

	assert.Error(t, err)
}
