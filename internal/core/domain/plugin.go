package domain

// SchemaVersion is the only descriptor schema version this tool accepts.
const SchemaVersion = 1

// Image is a screenshot or thumbnail attached to a plugin entry.
type Image struct {
	// Path is the image location, relative to the generated page.
	Path string

	// Description is the alt text. Empty falls back to the plugin name.
	Description string
}

// Plugin is a validated plugin catalogue entry.
//
// Field names mirror the descriptor keys except MinVersion, which comes
// from the "MinNsightSystemsVersion" key.
type Plugin struct {
	// Name is the plugin display name.
	Name string

	// Description is a short free-text summary.
	Description string

	// Company is the publishing company or author.
	Company string

	// SiteURL is the plugin's home page.
	SiteURL string

	// Architectures lists supported CPU architectures.
	Architectures []Architecture

	// OperatingSystems lists supported operating systems.
	OperatingSystems []OperatingSystem

	// MinVersion is the minimal host version the plugin requires.
	// Optional; empty when the descriptor omits it.
	MinVersion string

	// SetupNotes holds free-text installation hints. Optional.
	SetupNotes string

	// Images lists attached screenshots. The renderer shows the first
	// entry as the card thumbnail. Optional.
	Images []Image
}

// Thumbnail returns the first image when it has a path, or nil.
// Only the first Images entry is ever shown on the card.
func (p *Plugin) Thumbnail() *Image {
	if len(p.Images) > 0 && p.Images[0].Path != "" {
		return &p.Images[0]
	}
	return nil
}

// PluginFromDescriptor builds a Plugin from a decoded descriptor object.
// The input must already have passed ValidateDescriptor; unexpected value
// types are silently dropped rather than reported.
func PluginFromDescriptor(data map[string]any) Plugin {
	p := Plugin{
		Name:        stringField(data, "Name"),
		Description: stringField(data, "Description"),
		Company:     stringField(data, "Company"),
		SiteURL:     stringField(data, "SiteURL"),
		MinVersion:  stringField(data, "MinNsightSystemsVersion"),
		SetupNotes:  stringField(data, "SetupNotes"),
	}

	for _, s := range stringSliceField(data, "Architectures") {
		p.Architectures = append(p.Architectures, Architecture(s))
	}
	for _, s := range stringSliceField(data, "OperatingSystems") {
		p.OperatingSystems = append(p.OperatingSystems, OperatingSystem(s))
	}

	if imgs, ok := data["Images"].([]any); ok {
		for _, entry := range imgs {
			obj, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			p.Images = append(p.Images, Image{
				Path:        stringField(obj, "Path"),
				Description: stringField(obj, "Description"),
			})
		}
	}

	return p
}

// stringField returns the string value for key, or "" when absent,
// null, or not a string.
func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)
	return s
}

// stringSliceField returns the string elements of an array value.
func stringSliceField(data map[string]any, key string) []string {
	arr, ok := data[key].([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			result = append(result, s)
		}
	}
	return result
}
