package model

import (
	"fmt"

	"github.com/biomodelkit/mex/internal/rewrite"
)

// Model holds a complete biochemical model. It serves both roles of a
// replication run: the seed model is read through the table accessors and
// never mutated; the output model is grown through the Add/Set mutators,
// which validate every cross-reference against the entities already
// present. Entities keep insertion order.
type Model struct {
	name   string
	notes  string
	units  Units
	miriam Miriam

	parameters   []Parameter
	compartments []Compartment
	species      []Species
	reactions    []Reaction
	events       []Event

	paramIndex map[string]int
	compIndex  map[string]int
	specIndex  map[string]int
	reactIndex map[string]int
	eventIndex map[string]int
}

// New creates an empty model.
func New(name, notes string, units Units) *Model {
	return &Model{
		name:       name,
		notes:      notes,
		units:      units,
		paramIndex: make(map[string]int),
		compIndex:  make(map[string]int),
		specIndex:  make(map[string]int),
		reactIndex: make(map[string]int),
		eventIndex: make(map[string]int),
	}
}

func (m *Model) Name() string  { return m.name }
func (m *Model) Notes() string { return m.notes }
func (m *Model) Units() Units  { return m.units }

func (m *Model) Miriam() Miriam          { return m.miriam.Clone() }
func (m *Model) SetMiriam(miriam Miriam) { m.miriam = miriam.Clone() }

// Table accessors. The returned slices are the model's own storage in
// insertion order; callers must not modify them. A model without entities
// of a kind yields an empty slice, never a meaningful nil distinction.

func (m *Model) Parameters() []Parameter     { return m.parameters }
func (m *Model) Compartments() []Compartment { return m.compartments }
func (m *Model) Species() []Species          { return m.species }
func (m *Model) Reactions() []Reaction       { return m.reactions }
func (m *Model) Events() []Event             { return m.events }

// ParameterNames returns the parameter table's names in insertion order.
func (m *Model) ParameterNames() []string {
	names := make([]string, len(m.parameters))
	for i, p := range m.parameters {
		names[i] = p.Name
	}
	return names
}

// CompartmentNames returns the compartment table's names in insertion order.
func (m *Model) CompartmentNames() []string {
	names := make([]string, len(m.compartments))
	for i, c := range m.compartments {
		names[i] = c.Name
	}
	return names
}

// SpeciesNames returns the species table's names in insertion order.
func (m *Model) SpeciesNames() []string {
	names := make([]string, len(m.species))
	for i, s := range m.species {
		names[i] = s.Name
	}
	return names
}

// ReactionNames returns the reaction table's names in insertion order.
func (m *Model) ReactionNames() []string {
	names := make([]string, len(m.reactions))
	for i, r := range m.reactions {
		names[i] = r.Name
	}
	return names
}

// HasElement reports whether name denotes a parameter, compartment,
// species or reaction. Events are not elements.
func (m *Model) HasElement(name string) bool {
	if _, ok := m.paramIndex[name]; ok {
		return true
	}
	if _, ok := m.compIndex[name]; ok {
		return true
	}
	if _, ok := m.specIndex[name]; ok {
		return true
	}
	_, ok := m.reactIndex[name]
	return ok
}

// AddParameter appends a global quantity. The name must be unique within
// the parameter table; expressions, if already set, must resolve.
func (m *Model) AddParameter(p Parameter) error {
	if _, ok := m.paramIndex[p.Name]; ok {
		return fmt.Errorf("parameter %q: %w", p.Name, ErrDuplicateName)
	}
	if p.Type == Reactions {
		return fmt.Errorf("parameter %q: type %q is species-only", p.Name, Reactions)
	}
	if err := m.validateExpressions(p.Expression, p.InitialExpression); err != nil {
		return fmt.Errorf("parameter %q: %w", p.Name, err)
	}
	m.paramIndex[p.Name] = len(m.parameters)
	m.parameters = append(m.parameters, p)
	return nil
}

// AddCompartment appends a compartment.
func (m *Model) AddCompartment(c Compartment) error {
	if _, ok := m.compIndex[c.Name]; ok {
		return fmt.Errorf("compartment %q: %w", c.Name, ErrDuplicateName)
	}
	if c.Type == Reactions {
		return fmt.Errorf("compartment %q: type %q is species-only", c.Name, Reactions)
	}
	if c.Dimensionality < 0 || c.Dimensionality > 3 {
		return fmt.Errorf("compartment %q: dimensionality %d out of range", c.Name, c.Dimensionality)
	}
	if err := m.validateExpressions(c.Expression, c.InitialExpression); err != nil {
		return fmt.Errorf("compartment %q: %w", c.Name, err)
	}
	m.compIndex[c.Name] = len(m.compartments)
	m.compartments = append(m.compartments, c)
	return nil
}

// AddSpecies appends a species. Its compartment must already exist.
func (m *Model) AddSpecies(s Species) error {
	if _, ok := m.specIndex[s.Name]; ok {
		return fmt.Errorf("species %q: %w", s.Name, ErrDuplicateName)
	}
	if _, ok := m.compIndex[s.Compartment]; !ok {
		return fmt.Errorf("species %q: compartment %q: %w", s.Name, s.Compartment, ErrUnknownElement)
	}
	if err := m.validateExpressions(s.Expression, s.InitialExpression); err != nil {
		return fmt.Errorf("species %q: %w", s.Name, err)
	}
	m.specIndex[s.Name] = len(m.species)
	m.species = append(m.species, s)
	return nil
}

// AddReaction appends a reaction. Every species named by the scheme and
// every mapping target must already exist.
func (m *Model) AddReaction(r Reaction) error {
	if _, ok := m.reactIndex[r.Name]; ok {
		return fmt.Errorf("reaction %q: %w", r.Name, ErrDuplicateName)
	}
	for _, sp := range rewrite.SchemeSpecies(r.Scheme) {
		if _, ok := m.specIndex[sp]; !ok {
			return fmt.Errorf("reaction %q: scheme species %q: %w", r.Name, sp, ErrUnknownElement)
		}
	}
	for _, key := range r.Mapping.Keys() {
		for _, target := range r.Mapping[key].Names() {
			if !m.HasElement(target) {
				return fmt.Errorf("reaction %q: mapping %q -> %q: %w", r.Name, key, target, ErrUnknownElement)
			}
		}
	}
	m.reactIndex[r.Name] = len(m.reactions)
	m.reactions = append(m.reactions, r)
	return nil
}

// AddEvent appends an event. The trigger's bracketed references and every
// assignment target must resolve.
func (m *Model) AddEvent(e Event) error {
	if _, ok := m.eventIndex[e.Name]; ok {
		return fmt.Errorf("event %q: %w", e.Name, ErrDuplicateName)
	}
	if err := m.validateExpressions(e.Trigger); err != nil {
		return fmt.Errorf("event %q: trigger: %w", e.Name, err)
	}
	for _, a := range e.Assignments {
		if !m.HasElement(a.Target) {
			return fmt.Errorf("event %q: assignment target %q: %w", e.Name, a.Target, ErrUnknownElement)
		}
		if err := m.validateExpressions(a.Expression); err != nil {
			return fmt.Errorf("event %q: assignment to %q: %w", e.Name, a.Target, err)
		}
	}
	m.eventIndex[e.Name] = len(m.events)
	m.events = append(m.events, e)
	return nil
}

// SetParameterExpression patches a parameter's type and expression.
func (m *Model) SetParameterExpression(name string, typ QuantityType, expr string) error {
	i, ok := m.paramIndex[name]
	if !ok {
		return fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	if !typ.HasExpression() {
		return fmt.Errorf("parameter %q: type %q carries no expression", name, typ)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	m.parameters[i].Type = typ
	m.parameters[i].Expression = expr
	return nil
}

// SetParameterInitialExpression patches a parameter's initial expression.
func (m *Model) SetParameterInitialExpression(name, expr string) error {
	i, ok := m.paramIndex[name]
	if !ok {
		return fmt.Errorf("parameter %q: %w", name, ErrNotFound)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("parameter %q: %w", name, err)
	}
	m.parameters[i].InitialExpression = expr
	return nil
}

// SetCompartmentExpression patches a compartment's type and expression.
func (m *Model) SetCompartmentExpression(name string, typ QuantityType, expr string) error {
	i, ok := m.compIndex[name]
	if !ok {
		return fmt.Errorf("compartment %q: %w", name, ErrNotFound)
	}
	if !typ.HasExpression() {
		return fmt.Errorf("compartment %q: type %q carries no expression", name, typ)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("compartment %q: %w", name, err)
	}
	m.compartments[i].Type = typ
	m.compartments[i].Expression = expr
	return nil
}

// SetCompartmentInitialExpression patches a compartment's initial expression.
func (m *Model) SetCompartmentInitialExpression(name, expr string) error {
	i, ok := m.compIndex[name]
	if !ok {
		return fmt.Errorf("compartment %q: %w", name, ErrNotFound)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("compartment %q: %w", name, err)
	}
	m.compartments[i].InitialExpression = expr
	return nil
}

// SetSpeciesExpression patches a species' type and expression.
func (m *Model) SetSpeciesExpression(name string, typ QuantityType, expr string) error {
	i, ok := m.specIndex[name]
	if !ok {
		return fmt.Errorf("species %q: %w", name, ErrNotFound)
	}
	if !typ.HasExpression() {
		return fmt.Errorf("species %q: type %q carries no expression", name, typ)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("species %q: %w", name, err)
	}
	m.species[i].Type = typ
	m.species[i].Expression = expr
	return nil
}

// SetSpeciesInitialExpression patches a species' initial expression.
func (m *Model) SetSpeciesInitialExpression(name, expr string) error {
	i, ok := m.specIndex[name]
	if !ok {
		return fmt.Errorf("species %q: %w", name, ErrNotFound)
	}
	if err := m.validateExpressions(expr); err != nil {
		return fmt.Errorf("species %q: %w", name, err)
	}
	m.species[i].InitialExpression = expr
	return nil
}

// validateExpressions checks that every bracketed reference of the given
// expressions resolves against the model. Dotted and parenthesized tokens
// stay unchecked: they are indistinguishable from numeric literals and
// plain math at this level.
func (m *Model) validateExpressions(exprs ...string) error {
	for _, expr := range exprs {
		if expr == "" {
			continue
		}
		refs, err := rewrite.BracketRefs(expr)
		if err != nil {
			return err
		}
		for _, ref := range refs {
			if !m.HasElement(ref) {
				return fmt.Errorf("%w: %q in %q", ErrUnknownReference, ref, expr)
			}
		}
	}
	return nil
}
