// Package decl holds the in-memory representation of a parsed C++ API
// surface: namespaces, structs, classes, methods, free functions, and
// tagged unions.
//
// A Model is built once from the output of an external C++ parser and is
// read-only afterwards. Generation runs (including concurrent runs for
// several target languages) share a single Model; all per-run state lives
// in the bind package.
package decl

import (
	"strings"

	"github.com/teranos/cxxbind/errors"
)

// Kind tags what a Declaration represents.
type Kind string

const (
	KindNamespace    Kind = "namespace"
	KindStruct       Kind = "struct"
	KindClass        Kind = "class"
	KindMethod       Kind = "method"
	KindFreeFunction Kind = "free_function"
	KindTaggedUnion  Kind = "tagged_union"
)

// Valid reports whether k is one of the declaration kinds this model accepts.
func (k Kind) Valid() bool {
	switch k {
	case KindNamespace, KindStruct, KindClass, KindMethod, KindFreeFunction, KindTaggedUnion:
		return true
	}
	return false
}

// Ownership qualifies how a TypeRef holds the type it names, reflecting the
// C++ pointer/reference/value semantics of the original declaration.
type Ownership string

const (
	// OwnershipValue is a by-value type (plain struct, primitive)
	OwnershipValue Ownership = "value"
	// OwnershipOwned is a uniquely owned pointer (std::unique_ptr)
	OwnershipOwned Ownership = "owned"
	// OwnershipShared is a shared pointer (std::shared_ptr)
	OwnershipShared Ownership = "shared"
	// OwnershipBorrowed is a reference or raw pointer the callee does not own
	OwnershipBorrowed Ownership = "borrowed"
)

// Valid reports whether o is a known ownership qualifier.
func (o Ownership) Valid() bool {
	switch o {
	case OwnershipValue, OwnershipOwned, OwnershipShared, OwnershipBorrowed:
		return true
	}
	return false
}

// Separator between qualified name components, as spelled in C++.
const nameSeparator = "::"

// QualifiedName is the full namespace-prefixed identity of a declaration.
// Path holds the enclosing scopes outermost-first (namespaces, and for
// member declarations the owning class); Name is the local identifier.
type QualifiedName struct {
	Path []string
	Name string
}

// ParseQualifiedName splits "my_namespace::MyClass::method" into a
// QualifiedName. A bare identifier has an empty Path (global scope).
func ParseQualifiedName(s string) QualifiedName {
	parts := strings.Split(s, nameSeparator)
	return QualifiedName{
		Path: parts[:len(parts)-1],
		Name: parts[len(parts)-1],
	}
}

// String returns the "::"-joined spelling.
func (q QualifiedName) String() string {
	if len(q.Path) == 0 {
		return q.Name
	}
	return strings.Join(q.Path, nameSeparator) + nameSeparator + q.Name
}

// Namespace returns the outermost enclosing scope, or "" for global scope.
// Used to group declarations for stable emission order.
func (q QualifiedName) Namespace() string {
	if len(q.Path) == 0 {
		return ""
	}
	return q.Path[0]
}

// IsZero reports whether q names nothing.
func (q QualifiedName) IsZero() bool {
	return q.Name == "" && len(q.Path) == 0
}

// TypeRef is a non-owning reference to a Declaration or a primitive type.
// It never owns the Declaration it names; resolution goes through
// Model.Lookup.
type TypeRef struct {
	// Name references a declared type. Zero when Primitive is set.
	Name QualifiedName
	// Primitive is a primitive C++ type spelling, e.g. "uint32_t" or "void".
	Primitive string
	// Ownership defaults to by-value when left empty.
	Ownership Ownership
}

// IsPrimitive reports whether the reference names a primitive type rather
// than a Declaration.
func (r TypeRef) IsPrimitive() bool {
	return r.Primitive != ""
}

// EffectiveOwnership returns the ownership qualifier, defaulting to value.
func (r TypeRef) EffectiveOwnership() Ownership {
	if r.Ownership == "" {
		return OwnershipValue
	}
	return r.Ownership
}

// String returns the referenced type's spelling, for diagnostics.
func (r TypeRef) String() string {
	if r.IsPrimitive() {
		return r.Primitive
	}
	return r.Name.String()
}

// Param is a single function or method parameter.
type Param struct {
	Name string
	Type TypeRef
}

// Signature describes a function or method: parameters in order and an
// optional result type (nil for void).
//
// Fingerprint distinguishes C++ overloads that share a qualified name: two
// declarations with the same name and kind but different fingerprints are
// distinct identities, not duplicates. The fingerprint is derived from the
// parameter type spellings when the parser does not supply one.
type Signature struct {
	Params      []Param
	Result      *TypeRef
	Fingerprint string
	Static      bool
}

// EffectiveFingerprint returns the supplied fingerprint, or one computed
// from the parameter type spellings.
func (s *Signature) EffectiveFingerprint() string {
	if s == nil {
		return ""
	}
	if s.Fingerprint != "" {
		return s.Fingerprint
	}
	spellings := make([]string, len(s.Params))
	for i, p := range s.Params {
		spellings[i] = p.Type.String()
	}
	return "(" + strings.Join(spellings, ",") + ")"
}

// Field is a named member of a struct or class.
type Field struct {
	Name string
	Type TypeRef
}

// Declaration is one node of the parsed API surface. Immutable after the
// Model is built.
type Declaration struct {
	Name QualifiedName
	Kind Kind

	// Fields is set for KindStruct and KindClass.
	Fields []Field

	// Signature is set for KindMethod and KindFreeFunction.
	Signature *Signature

	// Alternatives is set for KindTaggedUnion. Order is load-bearing: it
	// determines the discriminant tag numbering of the emitted sum type.
	Alternatives []TypeRef
}

// identity is the registration key: qualified name + kind, plus the
// signature fingerprint so genuine overloads coexist.
func (d *Declaration) identity() string {
	return d.Name.String() + "\x00" + string(d.Kind) + "\x00" + d.Signature.EffectiveFingerprint()
}

// Model is the registry of all declarations handed over by the parser.
// Built once, then read-only; safe to share across concurrent generation
// runs without locking.
type Model struct {
	byIdentity map[string]*Declaration
	byName     map[string]*Declaration
	order      []*Declaration
	namespaces []string
}

// NewModel returns an empty declaration model.
func NewModel() *Model {
	return &Model{
		byIdentity: make(map[string]*Declaration),
		byName:     make(map[string]*Declaration),
	}
}

// Add registers a declaration under its qualified name. Registering the
// exact same qualified name + kind + signature twice is a true C++
// redefinition in the input and fails with ErrDuplicateDeclaration.
func (m *Model) Add(d *Declaration) error {
	if d.Name.IsZero() {
		return errors.New("declaration has no name")
	}
	if !d.Kind.Valid() {
		return errors.Newf("declaration %q has unknown kind %q", d.Name, d.Kind)
	}

	key := d.identity()
	if _, exists := m.byIdentity[key]; exists {
		return errors.NewDuplicateDeclarationError("%s %q registered twice", d.Kind, d.Name)
	}
	m.byIdentity[key] = d

	// First registration wins the plain-name slot. Overloads that share a
	// name stay reachable through Declarations(); name lookup is for type
	// references, which are unique per name.
	name := d.Name.String()
	if _, exists := m.byName[name]; !exists {
		m.byName[name] = d
	}

	ns := d.Name.Namespace()
	if !m.hasNamespace(ns) {
		m.namespaces = append(m.namespaces, ns)
	}
	m.order = append(m.order, d)
	return nil
}

func (m *Model) hasNamespace(ns string) bool {
	for _, existing := range m.namespaces {
		if existing == ns {
			return true
		}
	}
	return false
}

// Lookup resolves a qualified name to its declaration. Fails with
// ErrNotFound when the name was never registered.
func (m *Model) Lookup(name QualifiedName) (*Declaration, error) {
	d, ok := m.byName[name.String()]
	if !ok {
		return nil, errors.NewNotFoundError("declaration %q not registered", name)
	}
	return d, nil
}

// Namespaces returns the outermost namespaces in first-seen order.
func (m *Model) Namespaces() []string {
	return m.namespaces
}

// Declarations returns all declarations in stable emission order:
// declaration order within each namespace, namespaces in first-seen order.
func (m *Model) Declarations() []*Declaration {
	result := make([]*Declaration, 0, len(m.order))
	for _, ns := range m.namespaces {
		for _, d := range m.order {
			if d.Name.Namespace() == ns {
				result = append(result, d)
			}
		}
	}
	return result
}

// Len returns the number of registered declarations.
func (m *Model) Len() int {
	return len(m.order)
}
