package domain

import (
	"encoding/json"
	"fmt"
	"sort"
)

// requiredKeys are the descriptor keys every plugin must provide.
var requiredKeys = []string{
	"SchemaVersion",
	"Name",
	"Description",
	"Company",
	"SiteURL",
	"Architectures",
	"OperatingSystems",
}

// ValidateDescriptor checks a decoded descriptor against the plugin
// schema and returns every violation found, in a stable order. An empty
// result means the descriptor is valid.
//
// The input is the result of decoding JSON with json.Decoder.UseNumber,
// so numbers arrive as json.Number and the integer check on
// SchemaVersion is exact: 1 passes, 1.0 does not.
//
// A key present with a JSON null satisfies the presence check and is
// skipped by the type checks, matching how descriptors have historically
// been accepted.
func ValidateDescriptor(root any) []string {
	data, ok := root.(map[string]any)
	if !ok {
		return []string{"root must be a JSON object"}
	}

	var errs []string

	for _, key := range requiredKeys {
		if _, present := data[key]; !present {
			errs = append(errs, fmt.Sprintf("missing required key: %q", key))
		}
	}

	if v, present := data["SchemaVersion"]; present {
		if !isSchemaVersion(v) {
			errs = append(errs, fmt.Sprintf("SchemaVersion must be the integer %d", SchemaVersion))
		}
	}

	for _, key := range []string{"Name", "Description", "Company", "SiteURL"} {
		errs = appendStringCheck(errs, data, key)
	}

	errs = append(errs, validatePlatformList(data, "Architectures", architectureSet())...)
	errs = append(errs, validatePlatformList(data, "OperatingSystems", operatingSystemSet())...)

	if v, present := data["Images"]; present {
		errs = append(errs, validateImages(v)...)
	}

	for _, key := range []string{"MinNsightSystemsVersion", "SetupNotes"} {
		errs = appendStringCheck(errs, data, key)
	}

	return errs
}

// isSchemaVersion reports whether v is the JSON integer SchemaVersion.
func isSchemaVersion(v any) bool {
	num, ok := v.(json.Number)
	if !ok {
		return false
	}
	i, err := num.Int64()
	return err == nil && i == SchemaVersion
}

// appendStringCheck appends an error if key is present, non-null, and
// not a string.
func appendStringCheck(errs []string, data map[string]any, key string) []string {
	v, present := data[key]
	if !present || v == nil {
		return errs
	}
	if _, ok := v.(string); !ok {
		errs = append(errs, fmt.Sprintf("%q must be a string", key))
	}
	return errs
}

// validatePlatformList checks an Architectures/OperatingSystems value:
// it must be an array of strings drawn from the allowed set.
func validatePlatformList(data map[string]any, key string, allowed map[string]bool) []string {
	v, present := data[key]
	if !present {
		return nil
	}

	arr, ok := v.([]any)
	if !ok {
		return []string{fmt.Sprintf("%q must be an array", key)}
	}

	var errs []string
	invalid := make(map[string]bool)
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			errs = append(errs, fmt.Sprintf("%q[%d] must be a string", key, i))
			continue
		}
		if !allowed[s] {
			invalid[s] = true
		}
	}

	if len(invalid) > 0 {
		errs = append(errs, fmt.Sprintf("%s must only contain %v; invalid: %v",
			key, sortedKeys(allowed), sortedKeys(invalid)))
	}

	return errs
}

// validateImages checks the optional Images array: each entry must be an
// object whose Path and Description, when present and non-null, are strings.
func validateImages(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{"Images must be an array"}
	}

	var errs []string
	for i, entry := range arr {
		obj, ok := entry.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("Images[%d] must be an object", i))
			continue
		}
		for _, key := range []string{"Path", "Description"} {
			val, present := obj[key]
			if !present || val == nil {
				continue
			}
			if _, ok := val.(string); !ok {
				errs = append(errs, fmt.Sprintf("Images[%d].%s must be a string", i, key))
			}
		}
	}

	return errs
}

func architectureSet() map[string]bool {
	set := make(map[string]bool)
	for _, a := range AllArchitectures() {
		set[a.String()] = true
	}
	return set
}

func operatingSystemSet() map[string]bool {
	set := make(map[string]bool)
	for _, o := range AllOperatingSystems() {
		set[o.String()] = true
	}
	return set
}

// sortedKeys returns the keys of a string set in sorted order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
