package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cxxbind/decl"
)

func methodSym(origin, target string) *GeneratedSymbol {
	return &GeneratedSymbol{
		TargetName: target,
		Origin:     decl.ParseQualifiedName(origin),
		OriginKind: decl.KindMethod,
		Kind:       GenMethodWrapper,
	}
}

func freeFuncSym(origin, target string) *GeneratedSymbol {
	return &GeneratedSymbol{
		TargetName: target,
		Origin:     decl.ParseQualifiedName(origin),
		OriginKind: decl.KindFreeFunction,
		Kind:       GenFreeFunctionWrapper,
	}
}

func TestClaimFirstIsAccepted(t *testing.T) {
	table := NewSymbolTable()
	result := table.Claim(methodSym("ns::C::m", "m"))
	assert.True(t, result.Accepted)
	assert.Nil(t, result.Existing)
}

func TestClaimSameOriginIsIdempotent(t *testing.T) {
	table := NewSymbolTable()
	require.True(t, table.Claim(methodSym("ns::C::m", "m")).Accepted)

	again := table.Claim(methodSym("ns::C::m", "m"))
	assert.True(t, again.Accepted)
	assert.False(t, table.Conflicted("m"))
}

func TestClaimDifferentOriginConflicts(t *testing.T) {
	table := NewSymbolTable()
	first := methodSym("my_namespace::MyPrimaryClass::method_broken", "method_broken")
	require.True(t, table.Claim(first).Accepted)

	result := table.Claim(freeFuncSym("my_namespace::method_broken", "method_broken"))
	assert.False(t, result.Accepted)
	require.NotNil(t, result.Existing)
	assert.Same(t, first, result.Existing)
	assert.True(t, table.Conflicted("method_broken"))
}

func TestClaimSameNameDifferentKindConflicts(t *testing.T) {
	// Same qualified name but different declaration kind is a different
	// origin; the table must not treat it as an idempotent repeat.
	table := NewSymbolTable()
	require.True(t, table.Claim(methodSym("ns::f", "f")).Accepted)

	result := table.Claim(freeFuncSym("ns::f", "f"))
	assert.False(t, result.Accepted)
}

func TestClaimOverloadFingerprintsAreDistinctOrigins(t *testing.T) {
	table := NewSymbolTable()
	a := freeFuncSym("ns::describe", "describe")
	a.OriginFingerprint = "(i32)"
	b := freeFuncSym("ns::describe", "describe")
	b.OriginFingerprint = "(string)"

	require.True(t, table.Claim(a).Accepted)
	result := table.Claim(b)
	assert.False(t, result.Accepted, "overloads collide after translation and must be reported, not merged")
}

func TestConflictReportsFirstClaimantToAllLaterClaims(t *testing.T) {
	table := NewSymbolTable()
	first := freeFuncSym("a::f", "f")
	require.True(t, table.Claim(first).Accepted)
	require.False(t, table.Claim(freeFuncSym("b::f", "f")).Accepted)

	third := table.Claim(freeFuncSym("c::f", "f"))
	assert.False(t, third.Accepted)
	assert.Same(t, first, third.Existing)
	assert.Len(t, table.Claimants("f"), 3)
}

func TestConflictedUnknownName(t *testing.T) {
	table := NewSymbolTable()
	assert.False(t, table.Conflicted("never_claimed"))
	assert.Empty(t, table.Claimants("never_claimed"))
}
