package errors

import (
	"strings"
	"unicode"
)

// maxNameLength bounds module names in plan files.
const maxNameLength = 64

// reservedNames are the postfix operators of a slicing expression.
var reservedNames = map[string]bool{"H": true, "V": true}

// ValidateModuleName validates a module name from a plan file.
//
// Names are tokens of a whitespace-separated postfix expression, so the
// rules are:
//   - No empty names
//   - No whitespace or control characters
//   - Not one of the split operators "H" and "V"
//   - Maximum length of 64 characters
func ValidateModuleName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlan, "module name cannot be empty")
	}

	if len(name) > maxNameLength {
		return New(ErrCodeInvalidPlan, "module name too long (max %d characters)", maxNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidPlan, "module name %q contains whitespace or control characters", name)
		}
	}

	if reservedNames[strings.ToUpper(name)] {
		return New(ErrCodeInvalidPlan, "module name %q is reserved for split operators", name)
	}

	return nil
}

// ValidateNodePath validates a path addressing a node from the root.
// A path is a string over {L, R}; the empty string is the root itself.
func ValidateNodePath(path string) error {
	const maxPathLength = 256
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "node path too long (max %d steps)", maxPathLength)
	}

	for i, r := range path {
		if r != 'L' && r != 'R' {
			return New(ErrCodeInvalidPath, "node path %q: invalid step %q at %d (want L or R)", path, r, i)
		}
	}

	return nil
}
