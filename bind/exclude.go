package bind

import (
	"github.com/teranos/cxxbind/decl"
)

// Rule suppresses generation for one declaration, identified by exact
// qualified name. An optional Kind restricts the rule to one generation
// kind; empty matches any.
//
// Rules are authored by the API owner for symbols that cannot yet be
// safely translated — the declaration stays in the model, only its
// emission is suppressed.
type Rule struct {
	Name string
	Kind GenerationKind
}

// Matches reports whether the rule applies to the given origin.
func (r Rule) Matches(name decl.QualifiedName, kind GenerationKind) bool {
	if r.Name != name.String() {
		return false
	}
	return r.Kind == "" || r.Kind == kind
}

// Policy is an ordered exclusion rule set consulted before any symbol is
// mapped or claimed. An excluded declaration puts zero pressure on the
// symbol table: it cannot cause or suffer a collision.
//
// Policy state is per-run; build a fresh instance for each generation run.
type Policy struct {
	rules []Rule
}

// NewPolicy builds a policy from rules in registration order.
func NewPolicy(rules ...Rule) *Policy {
	return &Policy{rules: rules}
}

// IsExcluded checks the rules in registration order; the first matching
// rule wins. Exact qualified-name matching only — wildcard patterns are
// out of scope.
func (p *Policy) IsExcluded(name decl.QualifiedName, kind GenerationKind) bool {
	if p == nil {
		return false
	}
	for _, r := range p.rules {
		if r.Matches(name, kind) {
			return true
		}
	}
	return false
}

// Rules returns the rule set in registration order.
func (p *Policy) Rules() []Rule {
	if p == nil {
		return nil
	}
	return p.rules
}
