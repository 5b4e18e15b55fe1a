package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
	"github.com/plugsite/plugsite-cli/internal/core/ports/driving"
)

// mockDescriptorStore serves descriptors from an in-memory map.
type mockDescriptorStore struct {
	paths   []string
	files   map[string]string
	listErr error
}

func (m *mockDescriptorStore) List(_ context.Context, _ string) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.paths, nil
}

func (m *mockDescriptorStore) Load(_ context.Context, path string) (any, error) {
	raw, ok := m.files[path]
	if !ok {
		return nil, errors.New("unexpected EOF")
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// mockRenderer records the plugins it was asked to render.
type mockRenderer struct {
	plugins []domain.Plugin
	site    domain.SiteConfig
	err     error
}

func (m *mockRenderer) Render(w io.Writer, site domain.SiteConfig, plugins []domain.Plugin) error {
	if m.err != nil {
		return m.err
	}
	m.site = site
	m.plugins = plugins
	_, err := w.Write([]byte("<html>stub</html>"))
	return err
}

const validJSON = `{
	"SchemaVersion": 1,
	"Name": "GPU Tracer",
	"Description": "Traces GPU kernel launches.",
	"Company": "Example Corp",
	"SiteURL": "https://example.com",
	"Architectures": ["x64"],
	"OperatingSystems": ["Linux"]
}`

func TestCatalogService_Build(t *testing.T) {
	store := &mockDescriptorStore{
		paths: []string{"a.json", "b.json", "c.json"},
		files: map[string]string{
			"a.json": validJSON,
			"b.json": `{"SchemaVersion": 2}`,
			// c.json missing from the map: simulates a read failure
		},
	}
	renderer := &mockRenderer{}
	svc := NewCatalogService(store, renderer)

	out := filepath.Join(t.TempDir(), "site", "index.html")
	report, err := svc.Build(context.Background(), driving.BuildRequest{
		InputDir:   "plugins",
		OutputFile: out,
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Valid())
	assert.Equal(t, 1, report.Invalid())
	assert.Equal(t, 1, report.Unreadable())

	// Renderer got the one valid plugin, with default branding.
	require.Len(t, renderer.plugins, 1)
	assert.Equal(t, "GPU Tracer", renderer.plugins[0].Name)
	assert.Equal(t, domain.DefaultSiteConfig().Title, renderer.site.Title)

	// Output file was written, parent directory created.
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<html>stub</html>", string(content))
}

func TestCatalogService_Build_NoValidPlugins(t *testing.T) {
	store := &mockDescriptorStore{
		paths: []string{"bad.json"},
		files: map[string]string{"bad.json": `{"SchemaVersion": 2}`},
	}
	svc := NewCatalogService(store, &mockRenderer{})

	report, err := svc.Build(context.Background(), driving.BuildRequest{
		InputDir:   "plugins",
		OutputFile: filepath.Join(t.TempDir(), "index.html"),
	})

	assert.ErrorIs(t, err, domain.ErrNoValidPlugins)
	require.NotNil(t, report)
	assert.Equal(t, 0, report.Valid())
	assert.Equal(t, 1, report.Invalid())
}

func TestCatalogService_Build_MissingOutputFile(t *testing.T) {
	svc := NewCatalogService(&mockDescriptorStore{}, &mockRenderer{})

	_, err := svc.Build(context.Background(), driving.BuildRequest{InputDir: "plugins"})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCatalogService_Build_ListError(t *testing.T) {
	store := &mockDescriptorStore{listErr: domain.ErrNotDirectory}
	svc := NewCatalogService(store, &mockRenderer{})

	_, err := svc.Build(context.Background(), driving.BuildRequest{
		InputDir:   "missing",
		OutputFile: filepath.Join(t.TempDir(), "index.html"),
	})

	assert.ErrorIs(t, err, domain.ErrNotDirectory)
}

func TestCatalogService_Build_CustomSite(t *testing.T) {
	store := &mockDescriptorStore{
		paths: []string{"a.json"},
		files: map[string]string{"a.json": validJSON},
	}
	renderer := &mockRenderer{}
	svc := NewCatalogService(store, renderer)

	site := domain.SiteConfig{Title: "Custom Catalogue"}
	_, err := svc.Build(context.Background(), driving.BuildRequest{
		InputDir:   "plugins",
		OutputFile: filepath.Join(t.TempDir(), "index.html"),
		Site:       site,
	})

	require.NoError(t, err)
	assert.Equal(t, "Custom Catalogue", renderer.site.Title)
}

func TestCatalogService_Validate(t *testing.T) {
	store := &mockDescriptorStore{
		paths: []string{"a.json", "b.json"},
		files: map[string]string{
			"a.json": validJSON,
			"b.json": `{"SchemaVersion": 1}`,
		},
	}
	svc := NewCatalogService(store, &mockRenderer{})

	report, err := svc.Validate(context.Background(), "plugins")

	require.NoError(t, err)
	assert.Equal(t, 1, report.Valid())
	assert.Equal(t, 1, report.Invalid())
	assert.False(t, report.Clean())

	// Per-file errors are preserved for the CLI report.
	require.Len(t, report.Files, 2)
	assert.Equal(t, driving.FileInvalid, report.Files[1].Status)
	assert.NotEmpty(t, report.Files[1].Errors)
}
