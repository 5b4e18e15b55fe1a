package driven

import (
	"io"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
)

// PageRenderer renders the catalogue page for a set of valid plugins.
type PageRenderer interface {
	// Render writes the complete HTML page to w. Plugins appear in the
	// given order; all descriptor-sourced text is escaped.
	Render(w io.Writer, site domain.SiteConfig, plugins []domain.Plugin) error
}
