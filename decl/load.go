package decl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/teranos/cxxbind/errors"
)

// Declaration sets arrive from the external C++ parser as JSON or YAML
// documents: an ordered list of declarations already resolved to fully
// qualified names and primitive/aggregate type shapes. No raw source text
// is handled here.

type fileSpec struct {
	Declarations []declSpec `json:"declarations" yaml:"declarations"`
}

type declSpec struct {
	Name         string         `json:"name" yaml:"name"`
	Kind         string         `json:"kind" yaml:"kind"`
	Fields       []fieldSpec    `json:"fields,omitempty" yaml:"fields,omitempty"`
	Signature    *signatureSpec `json:"signature,omitempty" yaml:"signature,omitempty"`
	Alternatives []typeRefSpec  `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
}

type fieldSpec struct {
	Name string      `json:"name" yaml:"name"`
	Type typeRefSpec `json:"type" yaml:"type"`
}

type signatureSpec struct {
	Params      []paramSpec  `json:"params,omitempty" yaml:"params,omitempty"`
	Returns     *typeRefSpec `json:"returns,omitempty" yaml:"returns,omitempty"`
	Fingerprint string       `json:"fingerprint,omitempty" yaml:"fingerprint,omitempty"`
	Static      bool         `json:"static,omitempty" yaml:"static,omitempty"`
}

type paramSpec struct {
	Name string      `json:"name" yaml:"name"`
	Type typeRefSpec `json:"type" yaml:"type"`
}

type typeRefSpec struct {
	// Ref names a declared type by qualified name; Primitive carries a
	// primitive C++ spelling. Exactly one must be set.
	Ref       string `json:"ref,omitempty" yaml:"ref,omitempty"`
	Primitive string `json:"primitive,omitempty" yaml:"primitive,omitempty"`
	Ownership string `json:"ownership,omitempty" yaml:"ownership,omitempty"`
}

// LoadFile reads a declaration set from a JSON or YAML file (by extension)
// and builds the immutable Model. Malformed input and true C++
// redefinitions are fatal: no Model is returned.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read declaration file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseJSON builds a Model from a JSON declaration document.
func ParseJSON(data []byte) (*Model, error) {
	var spec fileSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, "failed to parse declaration JSON")
	}
	return buildModel(spec)
}

// ParseYAML builds a Model from a YAML declaration document.
func ParseYAML(data []byte) (*Model, error) {
	var spec fileSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, errors.Wrap(err, "failed to parse declaration YAML")
	}
	return buildModel(spec)
}

func buildModel(spec fileSpec) (*Model, error) {
	model := NewModel()
	for i, ds := range spec.Declarations {
		d, err := ds.toDeclaration()
		if err != nil {
			return nil, errors.Wrapf(err, "declaration %d (%q)", i, ds.Name)
		}
		if err := model.Add(d); err != nil {
			return nil, err
		}
	}
	return model, nil
}

func (ds declSpec) toDeclaration() (*Declaration, error) {
	if ds.Name == "" {
		return nil, errors.New("missing name")
	}
	kind := Kind(ds.Kind)
	if !kind.Valid() {
		return nil, errors.Newf("unknown kind %q", ds.Kind)
	}
	// std::variant has at least one alternative; an empty union is
	// malformed parser output, not an empty sum type.
	if kind == KindTaggedUnion && len(ds.Alternatives) == 0 {
		return nil, errors.New("tagged_union needs at least one alternative")
	}

	d := &Declaration{
		Name: ParseQualifiedName(ds.Name),
		Kind: kind,
	}

	for _, fs := range ds.Fields {
		ref, err := fs.Type.toTypeRef()
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", fs.Name)
		}
		d.Fields = append(d.Fields, Field{Name: fs.Name, Type: ref})
	}

	if ds.Signature != nil {
		sig := &Signature{
			Fingerprint: ds.Signature.Fingerprint,
			Static:      ds.Signature.Static,
		}
		for _, ps := range ds.Signature.Params {
			ref, err := ps.Type.toTypeRef()
			if err != nil {
				return nil, errors.Wrapf(err, "param %q", ps.Name)
			}
			sig.Params = append(sig.Params, Param{Name: ps.Name, Type: ref})
		}
		if ds.Signature.Returns != nil {
			ref, err := ds.Signature.Returns.toTypeRef()
			if err != nil {
				return nil, errors.Wrap(err, "return type")
			}
			sig.Result = &ref
		}
		d.Signature = sig
	}

	for i, as := range ds.Alternatives {
		ref, err := as.toTypeRef()
		if err != nil {
			return nil, errors.Wrapf(err, "alternative %d", i)
		}
		d.Alternatives = append(d.Alternatives, ref)
	}

	return d, nil
}

func (ts typeRefSpec) toTypeRef() (TypeRef, error) {
	if ts.Ref == "" && ts.Primitive == "" {
		return TypeRef{}, errors.New("type reference needs ref or primitive")
	}
	if ts.Ref != "" && ts.Primitive != "" {
		return TypeRef{}, errors.Newf("type reference has both ref %q and primitive %q", ts.Ref, ts.Primitive)
	}

	ref := TypeRef{Primitive: ts.Primitive}
	if ts.Ref != "" {
		ref.Name = ParseQualifiedName(ts.Ref)
	}
	if ts.Ownership != "" {
		ownership := Ownership(ts.Ownership)
		if !ownership.Valid() {
			return TypeRef{}, errors.Newf("unknown ownership %q", ts.Ownership)
		}
		ref.Ownership = ownership
	}
	return ref, nil
}
