package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"MyPrimaryClass", "my_primary_class"},
		{"methodBroken", "method_broken"},
		{"method_broken", "method_broken"},
		{"HTTPSConnection", "https_connection"},
		{"X", "x"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnakeCase(tt.input))
		})
	}
}

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"my_namespace", "MyNamespace"},
		{"method_broken", "MethodBroken"},
		{"kebab-case-name", "KebabCaseName"},
		{"AlreadyPascal", "AlreadyPascal"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascalCase(tt.input))
		})
	}
}

func TestToCamelCase(t *testing.T) {
	assert.Equal(t, "methodBroken", ToCamelCase("method_broken"))
	assert.Equal(t, "myNamespace", ToCamelCase("my_namespace"))
	assert.Equal(t, "", ToCamelCase(""))
}
