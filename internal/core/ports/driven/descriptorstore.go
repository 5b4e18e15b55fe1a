package driven

import "context"

// DescriptorStore provides access to plugin descriptor files.
type DescriptorStore interface {
	// List returns the paths of descriptor files in dir, in lexical
	// order. Returns domain.ErrNotDirectory when dir is missing or not
	// a directory.
	List(ctx context.Context, dir string) ([]string, error)

	// Load reads and decodes a single descriptor file. Numbers are
	// decoded exactly (json.Number) so schema checks can tell integers
	// from floats. The result has not been validated.
	Load(ctx context.Context, path string) (any, error)
}
