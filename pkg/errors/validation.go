package errors

import (
	"strings"
	"unicode"
)

// Notations the render pipeline understands.
var validNotations = map[string]bool{
	"mermaid":  true,
	"plantuml": true,
	"dot":      true,
}

// Output formats the render pipeline understands. Image formats require
// the dot notation since only Graphviz documents are laid out in-process.
var validFormats = map[string]bool{
	"text": true,
	"svg":  true,
	"png":  true,
}

// ValidateNotation validates a target notation name.
func ValidateNotation(name string) error {
	if name == "" {
		return New(ErrCodeInvalidNotation, "notation cannot be empty")
	}
	if !validNotations[name] {
		return New(ErrCodeInvalidNotation, "unknown notation %q (valid: mermaid, plantuml, dot)", name)
	}
	return nil
}

// ValidateFormat validates an output format name.
func ValidateFormat(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[name] {
		return New(ErrCodeInvalidFormat, "unknown format %q (valid: text, svg, png)", name)
	}
	return nil
}

// ValidateScopePolicy validates a scope policy name.
func ValidateScopePolicy(name string) error {
	switch name {
	case "indent", "brace":
		return nil
	case "":
		return New(ErrCodeInvalidPolicy, "scope policy cannot be empty")
	default:
		return New(ErrCodeInvalidPolicy, "unknown scope policy %q (valid: indent, brace)", name)
	}
}

// ValidateModelPath validates a model file path for safety.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
func ValidateModelPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "model path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "model path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "model path contains invalid characters")
		}
	}

	return nil
}

// ValidateModelExtension validates that a model file carries a recognized
// extension. Both the DeciMaL source notation and the JSON tree export are
// accepted as inputs.
func ValidateModelExtension(path string) error {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".sysml") || strings.HasSuffix(lower, ".decimal") || strings.HasSuffix(lower, ".json") {
		return nil
	}
	return New(ErrCodeInvalidInput, "unrecognized model extension: %s (want .sysml, .decimal, or .json)", path)
}
