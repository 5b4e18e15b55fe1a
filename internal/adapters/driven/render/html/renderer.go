// Package html implements the PageRenderer port using html/template.
// The page template is embedded in the binary so the generator has no
// runtime file dependencies.
package html

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driven"
)

//go:embed page.gohtml
var pageTemplate string

// Ensure Renderer implements the interface.
var _ driven.PageRenderer = (*Renderer)(nil)

// Renderer renders the plugin catalogue page.
type Renderer struct {
	tmpl *template.Template
}

// New creates a new HTML renderer. Panics if the embedded template does
// not parse, which can only happen on a broken build.
func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render writes the complete catalogue page to w. Plugins appear in the
// given order. Escaping of descriptor-sourced text is contextual via
// html/template, attributes included.
func (r *Renderer) Render(w io.Writer, site domain.SiteConfig, plugins []domain.Plugin) error {
	data := pageData{
		Site:    site,
		Plugins: make([]pluginView, 0, len(plugins)),
	}
	for i, p := range plugins {
		data.Plugins = append(data.Plugins, newPluginView(i, p))
	}

	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing page template: %w", err)
	}
	return nil
}

// pageData is the root template context.
type pageData struct {
	Site    domain.SiteConfig
	Plugins []pluginView
}

// pluginView is one plugin prepared for the template: platform lists
// joined, anchor assigned, thumbnail resolved.
type pluginView struct {
	Anchor           string
	Name             string
	Description      string
	Company          string
	SiteURL          string
	Architectures    string
	OperatingSystems string
	MinVersion       string
	SetupNotes       string
	Thumb            *thumbView
}

// thumbView is the card thumbnail with alt text resolved.
type thumbView struct {
	Path string
	Alt  string
}

func newPluginView(index int, p domain.Plugin) pluginView {
	v := pluginView{
		// Anchors are positional so card order and TOC always agree.
		Anchor:           fmt.Sprintf("plugin-%d", index),
		Name:             p.Name,
		Description:      p.Description,
		Company:          p.Company,
		SiteURL:          p.SiteURL,
		Architectures:    joinOrDash(architectureStrings(p.Architectures)),
		OperatingSystems: joinOrDash(operatingSystemStrings(p.OperatingSystems)),
		MinVersion:       p.MinVersion,
		SetupNotes:       p.SetupNotes,
	}

	if img := p.Thumbnail(); img != nil {
		alt := img.Description
		if alt == "" {
			alt = p.Name
		}
		v.Thumb = &thumbView{Path: img.Path, Alt: alt}
	}

	return v
}

// joinOrDash joins values with commas, or returns "-" when empty.
func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func architectureStrings(archs []domain.Architecture) []string {
	result := make([]string, 0, len(archs))
	for _, a := range archs {
		result = append(result, a.String())
	}
	return result
}

func operatingSystemStrings(oses []domain.OperatingSystem) []string {
	result := make([]string, 0, len(oses))
	for _, o := range oses {
		result = append(result, o.String())
	}
	return result
}
