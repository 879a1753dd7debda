// Package bind implements the binding-surface analysis pipeline: mapping
// C++ declarations to target-neutral symbols, detecting name collisions
// introduced by the translation, and suppressing symbols the API owner has
// excluded.
//
// All state here is per generation run. The decl.Model is shared and
// read-only; a SymbolTable, Policy, and Mapper belong to exactly one run.
package bind

import (
	"github.com/google/uuid"

	"github.com/teranos/cxxbind/decl"
	"github.com/teranos/cxxbind/errors"
	"github.com/teranos/cxxbind/logger"
	"github.com/teranos/cxxbind/util"
)

// Run is the outcome of one generation run.
//
// A non-empty Errors list does not invalidate Emitted: generation has
// partial-failure semantics, so the caller decides whether to ship the
// partial surface or fail the build.
type Run struct {
	// ID identifies the run in logs.
	ID string
	// Emitted holds the live symbols in stable emission order.
	Emitted []*GeneratedSymbol
	// Errors holds every per-symbol failure: conflicts, unsupported types,
	// cycles, dangling references.
	Errors []error
}

// Generate walks the model in stable order (declaration order within each
// namespace, namespaces in first-seen order) and produces the symbols to
// emit plus all per-symbol errors.
//
// For each declaration: excluded ones are skipped before any mapping or
// claiming happens; mapping failures and claim conflicts are recorded and
// processing continues. One bad symbol never blocks the rest of the API.
func Generate(model *decl.Model, policy *Policy) *Run {
	run := &Run{ID: uuid.NewString()}
	table := NewSymbolTable()
	mapper := NewMapper(model, table, policy)

	// Conflicts are reported once per colliding pair even when both sides
	// trip over the same name.
	reported := make(map[string]bool)
	var accepted []*GeneratedSymbol

	logger.Debugw("generation run started", "run_id", run.ID, "declarations", model.Len())

	for _, d := range model.Declarations() {
		genKind, emittable := generationKind(d)
		if !emittable {
			continue
		}

		if policy.IsExcluded(d.Name, genKind) {
			logger.Debugw("declaration excluded", "run_id", run.ID, "name", d.Name.String(), "kind", string(genKind))
			continue
		}

		sym, err := buildSymbol(d, mapper)
		if err != nil {
			run.Errors = appendOnce(run.Errors, reported, err)
			continue
		}

		result := table.Claim(sym)
		if !result.Accepted {
			err := conflictError(result.Existing, sym.Origin, sym.OriginKind, sym.TargetName)
			run.Errors = appendOnce(run.Errors, reported, err)
			continue
		}
		accepted = append(accepted, sym)
	}

	// Liveness filter: a name that conflicted at any point has no live
	// symbol, including claims accepted before the collision appeared.
	for _, sym := range accepted {
		if table.Conflicted(sym.TargetName) {
			continue
		}
		run.Emitted = append(run.Emitted, sym)
	}

	logger.Infow("generation run finished",
		"run_id", run.ID,
		"emitted", len(run.Emitted),
		"errors", len(run.Errors))
	return run
}

// generationKind maps a declaration kind to what it contributes to the
// target surface. Namespaces shape module structure but emit no symbol of
// their own.
func generationKind(d *decl.Declaration) (GenerationKind, bool) {
	switch d.Kind {
	case decl.KindStruct, decl.KindClass, decl.KindTaggedUnion:
		return GenTypeDefinition, true
	case decl.KindFreeFunction:
		return GenFreeFunctionWrapper, true
	case decl.KindMethod:
		return GenMethodWrapper, true
	default:
		return "", false
	}
}

// buildSymbol maps one declaration into its generated symbol.
func buildSymbol(d *decl.Declaration, mapper *Mapper) (*GeneratedSymbol, error) {
	genKind, _ := generationKind(d)
	sym := &GeneratedSymbol{
		Origin:            d.Name,
		OriginKind:        d.Kind,
		OriginFingerprint: d.Signature.EffectiveFingerprint(),
		Kind:              genKind,
	}

	switch genKind {
	case GenTypeDefinition:
		mapped, err := mapper.MapType(decl.TypeRef{Name: d.Name})
		if err != nil {
			return nil, errors.Wrapf(err, "mapping type %q", d.Name)
		}
		sym.TargetName = mapped.Name
		sym.Type = mapped

	case GenFreeFunctionWrapper, GenMethodWrapper:
		mapped, err := mapper.MapSignature(d.Signature)
		if err != nil {
			return nil, errors.Wrapf(err, "mapping %s %q", d.Kind, d.Name)
		}
		// Functions and methods emit under their local name inside the
		// namespace module. This is the naive scheme whose collisions the
		// symbol table exists to catch: a static method and a free
		// function sharing a spelling land on the same target name.
		sym.TargetName = util.ToSnakeCase(d.Name.Name)
		sym.Signature = mapped
	}

	return sym, nil
}

// conflictError builds the batch-reported error for one collision, naming
// both originating declarations.
func conflictError(existing *GeneratedSymbol, origin decl.QualifiedName, kind decl.Kind, targetName string) error {
	return errors.Wrapf(errors.ErrSymbolConflict,
		"target name %q claimed by %s %q and %s %q",
		targetName,
		existing.OriginKind, existing.Origin.String(),
		kind, origin.String())
}

// appendOnce appends err unless an identical message was already recorded.
// Mapper-level claims and declaration-level claims can surface the same
// collision; the run reports it once.
func appendOnce(errs []error, reported map[string]bool, err error) []error {
	msg := err.Error()
	if reported[msg] {
		return errs
	}
	reported[msg] = true
	return append(errs, err)
}
