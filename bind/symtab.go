package bind

import (
	"github.com/teranos/cxxbind/decl"
)

// GenerationKind tags what a GeneratedSymbol contributes to the target
// language surface.
type GenerationKind string

const (
	GenTypeDefinition      GenerationKind = "type_definition"
	GenFreeFunctionWrapper GenerationKind = "free_function_wrapper"
	GenMethodWrapper       GenerationKind = "method_wrapper"
)

// GeneratedSymbol is one target-language symbol scheduled for emission,
// tied back to the declaration that produced it.
type GeneratedSymbol struct {
	// TargetName is the name in the target language.
	TargetName string
	// Origin is the qualified name of the originating declaration.
	Origin decl.QualifiedName
	// OriginKind is the declaration kind of the origin.
	OriginKind decl.Kind
	// OriginFingerprint distinguishes overload origins that share a name.
	OriginFingerprint string
	// Kind classifies the generated artifact.
	Kind GenerationKind

	// Type carries the mapped type for GenTypeDefinition symbols.
	Type *TargetType
	// Signature carries the mapped signature for wrapper symbols.
	Signature *TargetSignature
}

// sameOrigin reports whether two claims come from the same declaration
// identity. Such claims are idempotent, not conflicting.
func (s *GeneratedSymbol) sameOrigin(other *GeneratedSymbol) bool {
	return s.Origin.String() == other.Origin.String() &&
		s.OriginKind == other.OriginKind &&
		s.OriginFingerprint == other.OriginFingerprint
}

// ClaimResult is the outcome of claiming a target-language name.
type ClaimResult struct {
	// Accepted is true when the claim holds the name (first claim, or a
	// repeat claim from the same origin).
	Accepted bool
	// Existing is the first claimant of the name when the claim conflicts.
	Existing *GeneratedSymbol
}

// SymbolTable tracks every target-language name claimed during one
// generation run and the declarations claiming it.
//
// A table is per-run state: concurrent runs (e.g. several target languages
// generated from one shared Model) must each use their own instance.
type SymbolTable struct {
	byName map[string][]*GeneratedSymbol
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byName: make(map[string][]*GeneratedSymbol)}
}

// Claim records sym as a claimant of its target name.
//
// The first claim of a name is Accepted. A repeat claim from the same
// origin is idempotent and Accepted. A claim from a different origin
// conflicts: the table records it and reports the first claimant, but
// deliberately does not pick a winner — silent overwrite and first-wins
// are exactly the failure modes this table exists to catch. Resolution
// belongs to the exclusion policy or to the caller via the run's error
// list.
func (t *SymbolTable) Claim(sym *GeneratedSymbol) ClaimResult {
	claimants := t.byName[sym.TargetName]
	if len(claimants) == 0 {
		t.byName[sym.TargetName] = []*GeneratedSymbol{sym}
		return ClaimResult{Accepted: true}
	}

	for _, existing := range claimants {
		if existing.sameOrigin(sym) {
			return ClaimResult{Accepted: true}
		}
	}

	t.byName[sym.TargetName] = append(claimants, sym)
	return ClaimResult{Existing: claimants[0]}
}

// Conflicted reports whether more than one origin claimed the name.
// A conflicted name has no live symbol: none of its claimants may be
// emitted.
func (t *SymbolTable) Conflicted(targetName string) bool {
	return len(t.byName[targetName]) > 1
}

// Claimants returns all recorded claims of a target name, first claimant
// first.
func (t *SymbolTable) Claimants(targetName string) []*GeneratedSymbol {
	return t.byName[targetName]
}
