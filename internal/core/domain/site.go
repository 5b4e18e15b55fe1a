package domain

// SiteLink is one bullet link shown in the page intro.
type SiteLink struct {
	// Text is the visible link text.
	Text string

	// URL is the link target.
	URL string
}

// SiteConfig holds page branding for the generated catalogue.
// Everything here is presentation; descriptor validation does not
// depend on it.
type SiteConfig struct {
	// Title is the page title and H1 heading.
	Title string

	// Intro is the paragraph shown under the heading.
	Intro string

	// Links are bullet links shown under the intro.
	Links []SiteLink

	// LogoPath is the header logo image, relative to the page.
	// Empty hides the header image.
	LogoPath string

	// FaviconPath is the favicon location, relative to the page.
	// Empty omits the favicon link.
	FaviconPath string

	// ShowDisclaimer controls the trailing legal-disclaimer card.
	ShowDisclaimer bool
}

// DefaultSiteConfig returns the branding of the original plugin
// catalogue page. A site config file overrides individual fields.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title: "Nsight Systems Plugins",
		Intro: "This site lists Nsight Systems third-party plugins.",
		Links: []SiteLink{
			{
				Text: "Nsight Systems website",
				URL:  "https://developer.nvidia.com/nsight-systems",
			},
			{
				Text: "ADD_PLUGIN.md file",
				URL:  "https://github.com/NVIDIA/NsightSystemsPlugins/blob/main/ADD_PLUGIN.md",
			},
		},
		LogoPath:       "./Images/nvidia-logo-horiz-rgb-blk-for-screen.svg",
		FaviconPath:    "./Images/nvidia-favicon.ico",
		ShowDisclaimer: true,
	}
}
