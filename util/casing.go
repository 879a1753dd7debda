// Package util holds small shared helpers for name translation.
package util

import (
	"strings"
	"unicode"
)

// ToSnakeCase converts PascalCase or camelCase to snake_case. Acronym runs
// stay together: "HTTPSConnection" -> "https_connection". Input that is
// already snake_case passes through unchanged.
func ToSnakeCase(s string) string {
	var out strings.Builder
	runes := []rune(s)

	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevUpper := unicode.IsUpper(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if !prevUpper || nextLower {
				out.WriteRune('_')
			}
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}

// ToPascalCase converts snake_case or kebab-case to PascalCase.
func ToPascalCase(s string) string {
	var out strings.Builder
	for _, part := range strings.FieldsFunc(s, isWordSeparator) {
		runes := []rune(part)
		out.WriteRune(unicode.ToUpper(runes[0]))
		out.WriteString(string(runes[1:]))
	}
	return out.String()
}

// ToCamelCase converts snake_case or kebab-case to camelCase.
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return pascal
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-'
}
