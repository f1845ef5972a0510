package pipeline

import "fmt"

// Builder constructs a named, validated stage from a raw parameter bag.
// Builders must validate eagerly and return sentinel-wrapped errors; a
// stage that constructed successfully never fails for configuration
// reasons afterwards.
type Builder func(name string, p Params) (Stage, error)

// Registry maps configured module type names to builders. It is
// populated at startup and read-only afterwards.
type Registry struct {
	builders map[string]Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// Register binds a type name to a builder.
//
// Errors:
//   - ErrDuplicateType — the name is already bound.
func (r *Registry) Register(typeName string, b Builder) error {
	if _, ok := r.builders[typeName]; ok {
		return fmt.Errorf("Register: %q: %w", typeName, ErrDuplicateType)
	}
	r.builders[typeName] = b

	return nil
}

// Lookup resolves a type name.
//
// Errors:
//   - ErrUnknownType — no builder bound to the name.
func (r *Registry) Lookup(typeName string) (Builder, error) {
	b, ok := r.builders[typeName]
	if !ok {
		return nil, fmt.Errorf("Lookup: %q: %w", typeName, ErrUnknownType)
	}

	return b, nil
}

// Types returns the number of registered type names.
func (r *Registry) Types() int {
	return len(r.builders)
}

// Build resolves typeName and constructs the stage in one step, giving
// configuration errors the module name as context.
func (r *Registry) Build(name, typeName string, p Params) (Stage, error) {
	b, err := r.Lookup(typeName)
	if err != nil {
		return Stage{}, fmt.Errorf("module %q: %w", name, err)
	}
	st, err := b(name, p)
	if err != nil {
		return Stage{}, fmt.Errorf("module %q: %w", name, err)
	}

	return st, nil
}
