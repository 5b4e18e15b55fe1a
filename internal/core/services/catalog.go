// Package services implements the driving ports on top of the driven
// ports. Services contain the application logic and are wired to
// concrete adapters at startup.
package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driven"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driving"
	"github.com/plugsite/plugsite-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService builds the plugin catalogue page from descriptor files.
type CatalogService struct {
	descriptors driven.DescriptorStore
	renderer    driven.PageRenderer
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(descriptors driven.DescriptorStore, renderer driven.PageRenderer) *CatalogService {
	return &CatalogService{
		descriptors: descriptors,
		renderer:    renderer,
	}
}

// Build validates every descriptor in the input directory and writes the
// catalogue page. Invalid and unreadable files are logged and skipped.
func (s *CatalogService) Build(ctx context.Context, req driving.BuildRequest) (*driving.Report, error) {
	if req.OutputFile == "" {
		return nil, fmt.Errorf("%w: output file not specified", domain.ErrInvalidInput)
	}

	site := req.Site
	if site.Title == "" {
		site = domain.DefaultSiteConfig()
	}

	plugins, report, err := s.collect(ctx, req.InputDir)
	if err != nil {
		return nil, err
	}
	if len(plugins) == 0 {
		return report, domain.ErrNoValidPlugins
	}

	if err := s.writePage(req.OutputFile, site, plugins); err != nil {
		return report, err
	}

	logger.Info("wrote %s (%d plugins)", req.OutputFile, len(plugins))
	return report, nil
}

// Validate runs schema validation only, without writing output.
func (s *CatalogService) Validate(ctx context.Context, inputDir string) (*driving.Report, error) {
	_, report, err := s.collect(ctx, inputDir)
	return report, err
}

// collect loads every descriptor in dir and splits them into valid
// plugins and a per-file report. Only a missing directory is fatal;
// bad files are logged and recorded.
func (s *CatalogService) collect(ctx context.Context, dir string) ([]domain.Plugin, *driving.Report, error) {
	paths, err := s.descriptors.List(ctx, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("listing descriptors in %s: %w", dir, err)
	}
	logger.Debug("found %d descriptor files in %s", len(paths), dir)

	var plugins []domain.Plugin
	report := &driving.Report{}

	for _, path := range paths {
		data, err := s.descriptors.Load(ctx, path)
		if err != nil {
			logger.Error("failed to parse %s: %v", path, err)
			report.Files = append(report.Files, driving.FileResult{
				Path:   path,
				Status: driving.FileUnreadable,
				Errors: []string{err.Error()},
			})
			continue
		}

		if errs := domain.ValidateDescriptor(data); len(errs) > 0 {
			logger.Error("invalid format in %s:", path)
			for _, e := range errs {
				logger.Error("  - %s", e)
			}
			report.Files = append(report.Files, driving.FileResult{
				Path:   path,
				Status: driving.FileInvalid,
				Errors: errs,
			})
			continue
		}

		plugins = append(plugins, domain.PluginFromDescriptor(data.(map[string]any)))
		report.Files = append(report.Files, driving.FileResult{
			Path:   path,
			Status: driving.FileValid,
		})
	}

	return plugins, report, nil
}

// writePage renders the catalogue into the output file, creating parent
// directories as needed.
func (s *CatalogService) writePage(outputFile string, site domain.SiteConfig, plugins []domain.Plugin) error {
	if dir := filepath.Dir(outputFile); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputFile, err)
	}

	if err := s.renderer.Render(f, site, plugins); err != nil {
		f.Close()
		return fmt.Errorf("rendering %s: %w", outputFile, err)
	}

	return f.Close()
}
