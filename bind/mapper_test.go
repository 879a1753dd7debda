package bind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/cxxbind/decl"
	"github.com/teranos/cxxbind/errors"
)

func newTestMapper(t *testing.T, model *decl.Model, policy *Policy) (*Mapper, *SymbolTable) {
	t.Helper()
	table := NewSymbolTable()
	return NewMapper(model, table, policy), table
}

func mustAdd(t *testing.T, m *decl.Model, d *decl.Declaration) {
	t.Helper()
	require.NoError(t, m.Add(d))
}

func TestMapPrimitive(t *testing.T) {
	mapper, _ := newTestMapper(t, decl.NewModel(), nil)

	tests := []struct {
		spelling string
		want     string
	}{
		{"uint32_t", "u32"},
		{"double", "f64"},
		{"bool", "bool"},
		{"std::string", "string"},
		{"size_t", "usize"},
	}

	for _, tt := range tests {
		t.Run(tt.spelling, func(t *testing.T) {
			mapped, err := mapper.MapType(decl.TypeRef{Primitive: tt.spelling})
			require.NoError(t, err)
			assert.Equal(t, TargetPrimitive, mapped.Kind)
			assert.Equal(t, tt.want, mapped.Primitive)
		})
	}
}

func TestMapPrimitiveUnsupported(t *testing.T) {
	mapper, _ := newTestMapper(t, decl.NewModel(), nil)

	for _, spelling := range []string{"std::vector<int>", "wchar_t", "std::variant<A, B>"} {
		t.Run(spelling, func(t *testing.T) {
			_, err := mapper.MapType(decl.TypeRef{Primitive: spelling})
			require.Error(t, err)
			assert.True(t, errors.IsUnsupportedTypeError(err))
		})
	}
}

func TestMapRecord(t *testing.T) {
	model := decl.NewModel()
	mustAdd(t, model, &decl.Declaration{
		Name: decl.ParseQualifiedName("my_namespace::Rect"),
		Kind: decl.KindStruct,
		Fields: []decl.Field{
			{Name: "width", Type: decl.TypeRef{Primitive: "uint32_t"}},
			{Name: "height", Type: decl.TypeRef{Primitive: "uint32_t"}},
		},
	})
	mapper, _ := newTestMapper(t, model, nil)

	mapped, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("my_namespace::Rect")})
	require.NoError(t, err)

	// A struct with no tagged-union members is a plain record: no variants,
	// no discriminant machinery.
	assert.Equal(t, TargetRecord, mapped.Kind)
	assert.Equal(t, "Rect", mapped.Name)
	assert.Len(t, mapped.Fields, 2)
	assert.Empty(t, mapped.Variants)
}

func unionModel(t *testing.T) *decl.Model {
	t.Helper()
	model := decl.NewModel()
	for _, s := range []string{"my_namespace::X", "my_namespace::Y", "my_namespace::Z", "my_namespace::Rect"} {
		mustAdd(t, model, &decl.Declaration{Name: decl.ParseQualifiedName(s), Kind: decl.KindStruct})
	}
	mustAdd(t, model, &decl.Declaration{
		Name: decl.ParseQualifiedName("my_namespace::MyProblematicClass::Variant"),
		Kind: decl.KindTaggedUnion,
		Alternatives: []decl.TypeRef{
			{Name: decl.ParseQualifiedName("my_namespace::X"), Ownership: decl.OwnershipShared},
			{Name: decl.ParseQualifiedName("my_namespace::Y"), Ownership: decl.OwnershipShared},
			{Name: decl.ParseQualifiedName("my_namespace::Z"), Ownership: decl.OwnershipShared},
			{Name: decl.ParseQualifiedName("my_namespace::Rect")},
		},
	})
	return model
}

func TestMapSumPreservesAlternativeOrder(t *testing.T) {
	mapper, _ := newTestMapper(t, unionModel(t), nil)

	mapped, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("my_namespace::MyProblematicClass::Variant")})
	require.NoError(t, err)

	assert.Equal(t, TargetSum, mapped.Kind)
	assert.Equal(t, "MyProblematicClassVariant", mapped.Name)
	require.Len(t, mapped.Variants, 4)

	for i, wantName := range []string{"X", "Y", "Z", "Rect"} {
		assert.Equal(t, i, mapped.Variants[i].Discriminant)
		assert.Equal(t, wantName, mapped.Variants[i].Name)
	}
	assert.Equal(t, decl.OwnershipShared, mapped.Variants[0].Ownership)
	assert.Equal(t, decl.OwnershipValue, mapped.Variants[3].Ownership)
}

func TestMapSumIsCanonicalAcrossUseSites(t *testing.T) {
	mapper, table := newTestMapper(t, unionModel(t), nil)
	ref := decl.TypeRef{Name: decl.ParseQualifiedName("my_namespace::MyProblematicClass::Variant"), Ownership: decl.OwnershipBorrowed}

	first, err := mapper.MapType(ref)
	require.NoError(t, err)
	second, err := mapper.MapType(ref)
	require.NoError(t, err)

	// Same union from any number of use sites maps to exactly one
	// generated type, named from the union's qualified name.
	assert.Same(t, first, second)
	assert.Len(t, table.Claimants("MyProblematicClassVariant"), 1)
	assert.False(t, table.Conflicted("MyProblematicClassVariant"))
}

func TestMapTypeNotFound(t *testing.T) {
	mapper, _ := newTestMapper(t, decl.NewModel(), nil)

	_, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("my_namespace::Ghost")})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestMapTypeExcluded(t *testing.T) {
	policy := NewPolicy(Rule{Name: "my_namespace::MyProblematicClass::Variant"})
	mapper, table := newTestMapper(t, unionModel(t), policy)

	_, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("my_namespace::MyProblematicClass::Variant")})
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedTypeError(err))

	// Exclusion removes the type from collision consideration entirely.
	assert.Empty(t, table.Claimants("MyProblematicClassVariant"))
}

func TestMapTypeCyclic(t *testing.T) {
	model := decl.NewModel()
	mustAdd(t, model, &decl.Declaration{
		Name: decl.ParseQualifiedName("ns::Node"),
		Kind: decl.KindTaggedUnion,
		Alternatives: []decl.TypeRef{
			{Name: decl.ParseQualifiedName("ns::Node"), Ownership: decl.OwnershipOwned},
		},
	})
	mapper, _ := newTestMapper(t, model, nil)

	_, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("ns::Node")})
	require.Error(t, err)
	assert.True(t, errors.IsCyclicTypeError(err))
}

func TestMapTypeMutuallyCyclic(t *testing.T) {
	model := decl.NewModel()
	mustAdd(t, model, &decl.Declaration{
		Name:   decl.ParseQualifiedName("ns::A"),
		Kind:   decl.KindStruct,
		Fields: []decl.Field{{Name: "b", Type: decl.TypeRef{Name: decl.ParseQualifiedName("ns::B")}}},
	})
	mustAdd(t, model, &decl.Declaration{
		Name:   decl.ParseQualifiedName("ns::B"),
		Kind:   decl.KindStruct,
		Fields: []decl.Field{{Name: "a", Type: decl.TypeRef{Name: decl.ParseQualifiedName("ns::A")}}},
	})
	mapper, _ := newTestMapper(t, model, nil)

	_, err := mapper.MapType(decl.TypeRef{Name: decl.ParseQualifiedName("ns::A")})
	require.Error(t, err)
	assert.True(t, errors.IsCyclicTypeError(err))
}

func TestMapSignature(t *testing.T) {
	model := unionModel(t)
	mapper, _ := newTestMapper(t, model, nil)

	sig := &decl.Signature{
		Params: []decl.Param{
			{Name: "variant", Type: decl.TypeRef{
				Name:      decl.ParseQualifiedName("my_namespace::MyProblematicClass::Variant"),
				Ownership: decl.OwnershipBorrowed,
			}},
		},
		Result: &decl.TypeRef{Primitive: "uint32_t"},
	}

	mapped, err := mapper.MapSignature(sig)
	require.NoError(t, err)
	require.Len(t, mapped.Params, 1)
	assert.Equal(t, decl.OwnershipBorrowed, mapped.Params[0].Ownership)
	assert.Equal(t, TargetSum, mapped.Params[0].Type.Kind)
	require.NotNil(t, mapped.Result)
	assert.Equal(t, "u32", mapped.Result.Primitive)
}

func TestMapSignatureVoidResult(t *testing.T) {
	mapper, _ := newTestMapper(t, decl.NewModel(), nil)

	mapped, err := mapper.MapSignature(&decl.Signature{Result: &decl.TypeRef{Primitive: "void"}})
	require.NoError(t, err)
	assert.Nil(t, mapped.Result)
}

func TestMapSignatureNil(t *testing.T) {
	// Parsers may omit the signature block entirely for a nullary void
	// function; that reads the same as an empty one.
	mapper, _ := newTestMapper(t, decl.NewModel(), nil)

	mapped, err := mapper.MapSignature(nil)
	require.NoError(t, err)
	assert.Empty(t, mapped.Params)
	assert.Nil(t, mapped.Result)
}

func TestTargetTypeName(t *testing.T) {
	tests := []struct {
		qualified string
		want      string
	}{
		{"my_namespace::Rect", "Rect"},
		{"my_namespace::MyProblematicClass::Variant", "MyProblematicClassVariant"},
		{"Global", "Global"},
		{"outer::inner_scope::leaf_type", "InnerScopeLeafType"},
	}

	for _, tt := range tests {
		t.Run(tt.qualified, func(t *testing.T) {
			assert.Equal(t, tt.want, TargetTypeName(decl.ParseQualifiedName(tt.qualified)))
		})
	}
}
