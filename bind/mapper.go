package bind

import (
	"strconv"
	"strings"

	"github.com/teranos/cxxbind/decl"
	"github.com/teranos/cxxbind/errors"
	"github.com/teranos/cxxbind/util"
)

// TargetTypeKind classifies a mapped type.
type TargetTypeKind string

const (
	// TargetPrimitive is a scalar the target language expresses natively.
	TargetPrimitive TargetTypeKind = "primitive"
	// TargetRecord is a plain field aggregate (C++ struct/class with no
	// tagged-union machinery of its own).
	TargetRecord TargetTypeKind = "record"
	// TargetSum is a discriminated sum type generated from a tagged union.
	TargetSum TargetTypeKind = "sum"
)

// TargetType is the language-neutral descriptor handed to the per-language
// renderers. Each target formats it differently; none of them re-derive
// names or discriminants.
type TargetType struct {
	Kind TargetTypeKind

	// Name is the canonical target-language name for records and sums,
	// derived deterministically from the origin's qualified name.
	Name string
	// Origin is the qualified name of the declaration this type maps.
	Origin decl.QualifiedName

	// Primitive is the neutral scalar name for TargetPrimitive.
	Primitive string

	// Fields is set for TargetRecord.
	Fields []TargetField

	// Variants is set for TargetSum, in declared alternative order. The
	// slice index is the discriminant tag.
	Variants []TargetVariant
}

// TargetField is one mapped record field.
type TargetField struct {
	Name string
	Type *TargetType
}

// TargetVariant is one alternative of a mapped sum type.
type TargetVariant struct {
	// Name identifies the variant in the target language.
	Name string
	// Discriminant is the stable tag: the alternative's declared index.
	Discriminant int
	// Ownership preserves the C++ alternative's pointer semantics.
	Ownership decl.Ownership
	Type      *TargetType
}

// TargetParam is one mapped wrapper parameter.
type TargetParam struct {
	Name      string
	Ownership decl.Ownership
	Type      *TargetType
}

// TargetSignature is a mapped function or method signature.
type TargetSignature struct {
	Params []TargetParam
	// Result is nil for void.
	Result *TargetType
}

// primitiveTypes maps C++ primitive spellings to neutral scalar names.
// Targets translate the neutral names to their own spellings.
var primitiveTypes = map[string]string{
	"void":         "void",
	"bool":         "bool",
	"char":         "i8",
	"int8_t":       "i8",
	"uint8_t":      "u8",
	"int16_t":      "i16",
	"uint16_t":     "u16",
	"int":          "i32",
	"int32_t":      "i32",
	"unsigned":     "u32",
	"unsigned int": "u32",
	"uint32_t":     "u32",
	"long long":    "i64",
	"int64_t":      "i64",
	"uint64_t":     "u64",
	"size_t":       "usize",
	"float":        "f32",
	"double":       "f64",
	"std::string":  "string",
	"const char*":  "string",
}

// Mapper converts C++ type references into target-neutral descriptors.
//
// A Mapper is per-run state: it shares the read-only Model but owns a
// cache and claims type symbols against the run's SymbolTable, so the same
// tagged union referenced from any number of methods maps to exactly one
// generated type.
type Mapper struct {
	model  *decl.Model
	table  *SymbolTable
	policy *Policy

	// cache holds completed mappings by origin qualified name.
	cache map[string]*TargetType
	// visiting guards against reference cycles during recursion.
	visiting map[string]bool
}

// NewMapper returns a mapper for one generation run.
func NewMapper(model *decl.Model, table *SymbolTable, policy *Policy) *Mapper {
	return &Mapper{
		model:    model,
		table:    table,
		policy:   policy,
		cache:    make(map[string]*TargetType),
		visiting: make(map[string]bool),
	}
}

// MapType recursively resolves a type reference to its target-neutral
// descriptor.
//
// Failure modes, all propagated to the caller rather than dropped:
//   - ErrUnsupportedType: a spelling no target can express (templates,
//     unknown primitives) or a reference to an excluded type
//   - ErrNotFound: a reference to a declaration the parser never handed over
//   - ErrCyclicType: a reference cycle that would recurse unboundedly
func (m *Mapper) MapType(ref decl.TypeRef) (*TargetType, error) {
	if ref.IsPrimitive() {
		return m.mapPrimitive(ref.Primitive)
	}

	name := ref.Name.String()
	if cached, ok := m.cache[name]; ok {
		return cached, nil
	}
	if m.visiting[name] {
		return nil, errors.Wrapf(errors.ErrCyclicType, "type %q participates in a reference cycle", name)
	}

	d, err := m.model.Lookup(ref.Name)
	if err != nil {
		return nil, err
	}

	// An excluded type must not enter the symbol table, not even through a
	// use site. Dependents fail per-symbol instead.
	if m.policy.IsExcluded(d.Name, GenTypeDefinition) {
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "type %q is excluded from generation", name)
	}

	m.visiting[name] = true
	defer delete(m.visiting, name)

	var mapped *TargetType
	switch d.Kind {
	case decl.KindStruct, decl.KindClass:
		mapped, err = m.mapRecord(d)
	case decl.KindTaggedUnion:
		mapped, err = m.mapSum(d)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "%s %q cannot be used as a type", d.Kind, name)
	}
	if err != nil {
		return nil, err
	}

	m.cache[name] = mapped
	return mapped, nil
}

func (m *Mapper) mapPrimitive(spelling string) (*TargetType, error) {
	if neutral, ok := primitiveTypes[spelling]; ok {
		return &TargetType{Kind: TargetPrimitive, Primitive: neutral}, nil
	}
	if strings.ContainsAny(spelling, "<>") {
		return nil, errors.Wrapf(errors.ErrUnsupportedType, "template type %q cannot be resolved", spelling)
	}
	return nil, errors.Wrapf(errors.ErrUnsupportedType, "no mapping for primitive type %q", spelling)
}

func (m *Mapper) mapRecord(d *decl.Declaration) (*TargetType, error) {
	record := &TargetType{
		Kind:   TargetRecord,
		Name:   TargetTypeName(d.Name),
		Origin: d.Name,
	}
	for _, f := range d.Fields {
		ft, err := m.MapType(f.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q of %q", f.Name, d.Name)
		}
		record.Fields = append(record.Fields, TargetField{Name: f.Name, Type: ft})
	}
	return record, nil
}

// mapSum maps a tagged union to a sum type and claims its canonical name.
// The name derives from the union's own qualified name, never from the
// call site — this is what keeps the N-use-sites case down to one
// generated type.
func (m *Mapper) mapSum(d *decl.Declaration) (*TargetType, error) {
	sum := &TargetType{
		Kind:   TargetSum,
		Name:   TargetTypeName(d.Name),
		Origin: d.Name,
	}

	for i, alt := range d.Alternatives {
		at, err := m.MapType(alt)
		if err != nil {
			return nil, errors.Wrapf(err, "alternative %d of %q", i, d.Name)
		}
		sum.Variants = append(sum.Variants, TargetVariant{
			Name:         variantName(at, i),
			Discriminant: i,
			Ownership:    alt.EffectiveOwnership(),
			Type:         at,
		})
	}

	result := m.table.Claim(&GeneratedSymbol{
		TargetName: sum.Name,
		Origin:     d.Name,
		OriginKind: d.Kind,
		Kind:       GenTypeDefinition,
		Type:       sum,
	})
	if !result.Accepted {
		return nil, conflictError(result.Existing, d.Name, d.Kind, sum.Name)
	}
	return sum, nil
}

// MapSignature maps a function or method signature. A nil signature is a
// nullary void function, the same reading EffectiveFingerprint uses.
func (m *Mapper) MapSignature(sig *decl.Signature) (*TargetSignature, error) {
	mapped := &TargetSignature{}
	if sig == nil {
		return mapped, nil
	}
	for _, p := range sig.Params {
		pt, err := m.MapType(p.Type)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %q", p.Name)
		}
		mapped.Params = append(mapped.Params, TargetParam{
			Name:      p.Name,
			Ownership: p.Type.EffectiveOwnership(),
			Type:      pt,
		})
	}
	if sig.Result != nil {
		rt, err := m.MapType(*sig.Result)
		if err != nil {
			return nil, errors.Wrap(err, "return type")
		}
		if !(rt.Kind == TargetPrimitive && rt.Primitive == "void") {
			mapped.Result = rt
		}
	}
	return mapped, nil
}

// TargetTypeName derives the canonical target-language name of a type from
// its qualified name: the enclosing scopes inside the outermost namespace,
// Pascal-cased and concatenated. The outermost namespace becomes the
// emitted module and is not repeated in the name.
//
//	my_namespace::Rect                        -> Rect
//	my_namespace::MyProblematicClass::Variant -> MyProblematicClassVariant
func TargetTypeName(name decl.QualifiedName) string {
	parts := name.Path
	if len(parts) > 0 {
		parts = parts[1:]
	}
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(util.ToPascalCase(p))
	}
	sb.WriteString(util.ToPascalCase(name.Name))
	return sb.String()
}

// variantName labels a sum variant after its alternative's type. Primitive
// alternatives fall back to the discriminant, which is always unique.
func variantName(t *TargetType, discriminant int) string {
	if t.Kind == TargetPrimitive {
		return "V" + strconv.Itoa(discriminant) + util.ToPascalCase(t.Primitive)
	}
	return t.Name
}
