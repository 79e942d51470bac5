package model

import (
	"fmt"
	"sort"
	"strings"

	pkgopenapi "github.com/cloudprivacylabs/lsa-ui/pkg/openapi"
)

// ExtensionNamespace prefixes the vendor extensions the builder reads, either
// as x-formgen-<key> or as keys of an x-formgen object.
const ExtensionNamespace = "x-formgen"

const (
	ExtensionKeyLabel       = "label"
	ExtensionKeyPlaceholder = "placeholder"
)

var allowedExtensionKeys = map[string]struct{}{
	ExtensionKeyLabel:       {},
	ExtensionKeyPlaceholder: {},
}

// AllowedExtensionKeys lists the supported keys, sorted.
func AllowedExtensionKeys() []string {
	keys := make([]string, 0, len(allowedExtensionKeys))
	for key := range allowedExtensionKeys {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// IsAllowedExtensionKey reports whether key is understood by the builder.
func IsAllowedExtensionKey(key string) bool {
	_, ok := allowedExtensionKeys[key]
	return ok
}

// Violation describes an extension the builder cannot use.
type Violation struct {
	Location string
	Message  string
}

func (v Violation) String() string {
	return v.Location + " -> " + v.Message
}

// LintOperation checks every x-formgen extension on the operation and its
// request body. Violations are sorted by location.
func LintOperation(op pkgopenapi.Operation) []Violation {
	base := []string{"operation", op.ID}
	result := lintExtensions(base, op.Extensions)
	result = append(result, lintSchema(append(base, "requestBody"), op.RequestBody)...)

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Location == result[j].Location {
			return result[i].Message < result[j].Message
		}
		return result[i].Location < result[j].Location
	})
	return result
}

func lintSchema(path []string, schema pkgopenapi.Schema) []Violation {
	result := lintExtensions(path, schema.Extensions)

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		result = append(result, lintSchema(appendPath(path, "properties."+key), schema.Properties[key])...)
	}
	return result
}

func lintExtensions(path []string, extensions map[string]any) []Violation {
	var result []Violation
	for key, value := range extensions {
		switch {
		case key == ExtensionNamespace:
			nested, ok := value.(map[string]any)
			if !ok {
				result = append(result, Violation{
					Location: formatLocation(path),
					Message:  fmt.Sprintf("%s must be an object, found %T", ExtensionNamespace, value),
				})
				continue
			}
			for nestedKey, nestedValue := range nested {
				result = append(result, validateExtension(appendPath(path, nestedKey), nestedKey, nestedValue)...)
			}
		case strings.HasPrefix(key, ExtensionNamespace+"-"):
			result = append(result, validateExtension(path, strings.TrimPrefix(key, ExtensionNamespace+"-"), value)...)
		}
	}
	return result
}

func validateExtension(path []string, key string, value any) []Violation {
	if key == "" {
		return []Violation{{Location: formatLocation(path), Message: "extension key is empty"}}
	}
	if !IsAllowedExtensionKey(key) {
		return []Violation{{
			Location: formatLocation(path),
			Message:  fmt.Sprintf("unsupported extension key %q (supported: %s)", key, strings.Join(AllowedExtensionKeys(), ", ")),
		}}
	}
	if _, ok := value.(string); !ok {
		return []Violation{{
			Location: formatLocation(path),
			Message:  fmt.Sprintf("value for %q must be a string (got %T)", key, value),
		}}
	}
	return nil
}

func appendPath(path []string, segment string) []string {
	next := append([]string(nil), path...)
	return append(next, segment)
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
