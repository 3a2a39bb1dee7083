// Package model defines the in-memory representation of a biochemical
// model: compartments, species, global parameters, reactions and events,
// plus the units and provenance annotation carried alongside them.
package model

import "fmt"

// QuantityType describes how a quantity's value is determined.
type QuantityType string

const (
	// Fixed quantities hold a constant value.
	Fixed QuantityType = "fixed"
	// Assignment quantities are computed from an algebraic expression.
	Assignment QuantityType = "assignment"
	// ODE quantities follow a differential equation.
	ODE QuantityType = "ode"
	// Reactions is valid for species only: the value is determined by the
	// reactions the species participates in.
	Reactions QuantityType = "reactions"
)

// ParseQuantityType validates a type string read from a model file.
func ParseQuantityType(s string) (QuantityType, error) {
	switch QuantityType(s) {
	case Fixed, Assignment, ODE, Reactions:
		return QuantityType(s), nil
	}
	return "", fmt.Errorf("unknown quantity type %q", s)
}

// HasExpression reports whether this type carries an algebraic or
// differential expression.
func (t QuantityType) HasExpression() bool {
	return t == Assignment || t == ODE
}

// Parameter is a global quantity of the model.
type Parameter struct {
	Name              string
	Type              QuantityType
	InitialValue      float64
	Unit              string
	Expression        string
	InitialExpression string
}

// Compartment is a reaction vessel with a size and dimensionality.
type Compartment struct {
	Name              string
	Type              QuantityType
	InitialSize       float64
	Unit              string
	Dimensionality    int
	Expression        string
	InitialExpression string
}

// Species is a chemical entity living inside a compartment.
type Species struct {
	Name                 string
	Compartment          string
	Type                 QuantityType
	InitialConcentration float64
	Unit                 string
	Expression           string
	InitialExpression    string
}

// Reaction converts species into other species according to a textual
// stoichiometry scheme. Mapping binds the kinetic function's local
// parameters to global model entities; Function optionally names a custom
// kinetic function.
type Reaction struct {
	Name     string
	Scheme   string
	Mapping  Mapping
	Function string
}

// EventAssignment sets one model element to the value of an expression
// when the owning event fires.
type EventAssignment struct {
	Target     string
	Expression string
}

// Event fires assignments when its trigger expression becomes true.
type Event struct {
	Name        string
	Trigger     string
	Assignments []EventAssignment
}

// Units collects the five unit definitions of a model.
type Units struct {
	Quantity string
	Time     string
	Volume   string
	Area     string
	Length   string
}
