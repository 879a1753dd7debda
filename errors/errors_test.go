package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrap(ErrSymbolConflict, "method_broken claimed twice")

	assert.Contains(t, err.Error(), "method_broken claimed twice")
	assert.True(t, Is(err, ErrSymbolConflict))
	assert.False(t, Is(err, ErrNotFound))
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrDuplicateDeclaration,
		ErrNotFound,
		ErrUnsupportedType,
		ErrSymbolConflict,
		ErrCyclicType,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "sentinel %v should not match %v", a, b)
		}
	}
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		matcher func(error) bool
		want    bool
	}{
		{"not found direct", ErrNotFound, IsNotFoundError, true},
		{"not found wrapped", Wrap(ErrNotFound, "lookup my_namespace::Missing"), IsNotFoundError, true},
		{"not found mismatch", ErrSymbolConflict, IsNotFoundError, false},
		{"duplicate wrapped", NewDuplicateDeclarationError("decl %q added twice", "my_namespace::X"), IsDuplicateDeclarationError, true},
		{"conflict wrapped", Wrapf(ErrSymbolConflict, "target name %q", "method_broken"), IsSymbolConflictError, true},
		{"unsupported wrapped", Wrap(ErrUnsupportedType, "nested template"), IsUnsupportedTypeError, true},
		{"cyclic wrapped", Wrap(ErrCyclicType, "union refers to itself"), IsCyclicTypeError, true},
		{"nil error", nil, IsSymbolConflictError, false},
		{"plain error", fmt.Errorf("boring"), IsCyclicTypeError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher(tt.err))
		})
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("declaration %q not registered", "my_namespace::Rect")

	require.NotNil(t, err)
	assert.True(t, IsNotFoundError(err))
	assert.Contains(t, err.Error(), "my_namespace::Rect")
}
