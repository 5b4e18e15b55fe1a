package driving

import (
	"context"

	"github.com/plugsite/plugsite-cli/internal/core/domain"
)

// CatalogService builds the plugin catalogue page from descriptor files.
type CatalogService interface {
	// Build validates every descriptor in the input directory and writes
	// the catalogue page. Invalid and unreadable files are skipped and
	// reported; the build fails with domain.ErrNoValidPlugins when
	// nothing survives validation.
	Build(ctx context.Context, req BuildRequest) (*Report, error)

	// Validate runs schema validation only, without writing output.
	// The returned report covers every descriptor file found.
	Validate(ctx context.Context, inputDir string) (*Report, error)
}

// BuildRequest describes one catalogue build.
type BuildRequest struct {
	// InputDir is the directory containing *.json descriptors.
	InputDir string

	// OutputFile is the HTML file to write. Parent directories are
	// created as needed.
	OutputFile string

	// Site holds page branding. An empty Title selects the defaults.
	Site domain.SiteConfig
}

// FileStatus classifies the outcome for one descriptor file.
type FileStatus string

// Possible file outcomes.
const (
	// FileValid means the descriptor passed schema validation.
	FileValid FileStatus = "valid"

	// FileInvalid means the descriptor parsed but failed validation.
	FileInvalid FileStatus = "invalid"

	// FileUnreadable means the file could not be read or parsed.
	FileUnreadable FileStatus = "unreadable"
)

// FileResult is the per-file outcome of a build or validation run.
type FileResult struct {
	// Path is the descriptor file path.
	Path string

	// Status classifies the outcome.
	Status FileStatus

	// Errors lists schema violations (FileInvalid) or the read/parse
	// failure (FileUnreadable). Empty for valid files.
	Errors []string
}

// Report summarises one pass over the descriptor directory.
type Report struct {
	// Files holds per-file results in processing order.
	Files []FileResult
}

// Valid returns the number of descriptors that passed validation.
func (r *Report) Valid() int { return r.count(FileValid) }

// Invalid returns the number of descriptors that failed validation.
func (r *Report) Invalid() int { return r.count(FileInvalid) }

// Unreadable returns the number of files that could not be loaded.
func (r *Report) Unreadable() int { return r.count(FileUnreadable) }

// Clean returns true when every file passed validation.
func (r *Report) Clean() bool {
	return r.Invalid() == 0 && r.Unreadable() == 0
}

func (r *Report) count(status FileStatus) int {
	n := 0
	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}
	return n
}
