// Package copasi reads and writes model files. The on-disk form is an XML
// document carrying the model name, notes, units, MIRIAM annotation and
// the entity tables; expressions and reaction schemes are stored in their
// human-readable text syntax.
package copasi

import (
	"encoding/xml"
	"time"
)

const timeLayout = time.RFC3339

type document struct {
	XMLName xml.Name `xml:"COPASI"`
	Version string   `xml:"version,attr"`
	Model   xmlModel `xml:"Model"`
}

type xmlModel struct {
	Key          string `xml:"key,attr"`
	Name         string `xml:"name,attr"`
	QuantityUnit string `xml:"quantityUnit,attr"`
	TimeUnit     string `xml:"timeUnit,attr"`
	VolumeUnit   string `xml:"volumeUnit,attr"`
	AreaUnit     string `xml:"areaUnit,attr"`
	LengthUnit   string `xml:"lengthUnit,attr"`

	Notes  string     `xml:"Notes,omitempty"`
	Miriam *xmlMiriam `xml:"MiriamAnnotation"`

	Compartments []xmlCompartment `xml:"ListOfCompartments>Compartment"`
	Species      []xmlSpecies     `xml:"ListOfSpecies>Species"`
	Parameters   []xmlParameter   `xml:"ListOfParameters>Parameter"`
	Reactions    []xmlReaction    `xml:"ListOfReactions>Reaction"`
	Events       []xmlEvent       `xml:"ListOfEvents>Event"`
}

type xmlCompartment struct {
	Key               string  `xml:"key,attr"`
	Name              string  `xml:"name,attr"`
	Type              string  `xml:"type,attr"`
	Size              float64 `xml:"size,attr"`
	Unit              string  `xml:"unit,attr,omitempty"`
	Dimensionality    int     `xml:"dimensionality,attr"`
	Expression        string  `xml:"Expression,omitempty"`
	InitialExpression string  `xml:"InitialExpression,omitempty"`
}

type xmlSpecies struct {
	Key               string  `xml:"key,attr"`
	Name              string  `xml:"name,attr"`
	Compartment       string  `xml:"compartment,attr"`
	Type              string  `xml:"type,attr"`
	Concentration     float64 `xml:"initialConcentration,attr"`
	Unit              string  `xml:"unit,attr,omitempty"`
	Expression        string  `xml:"Expression,omitempty"`
	InitialExpression string  `xml:"InitialExpression,omitempty"`
}

type xmlParameter struct {
	Key               string  `xml:"key,attr"`
	Name              string  `xml:"name,attr"`
	Type              string  `xml:"type,attr"`
	Value             float64 `xml:"initialValue,attr"`
	Unit              string  `xml:"unit,attr,omitempty"`
	Expression        string  `xml:"Expression,omitempty"`
	InitialExpression string  `xml:"InitialExpression,omitempty"`
}

type xmlReaction struct {
	Key      string       `xml:"key,attr"`
	Name     string       `xml:"name,attr"`
	Function string       `xml:"function,attr,omitempty"`
	Scheme   string       `xml:"Scheme"`
	Mappings []xmlMapping `xml:"ListOfMappings>Mapping"`
}

type xmlMapping struct {
	Parameter string   `xml:"parameter,attr"`
	Multi     bool     `xml:"multi,attr,omitempty"`
	Targets   []string `xml:"Target"`
}

type xmlEvent struct {
	Key         string          `xml:"key,attr"`
	Name        string          `xml:"name,attr"`
	Trigger     string          `xml:"Trigger"`
	Assignments []xmlAssignment `xml:"ListOfAssignments>Assignment"`
}

type xmlAssignment struct {
	Target     string `xml:"target,attr"`
	Expression string `xml:"Expression"`
}

type xmlMiriam struct {
	Created       string            `xml:"created,attr,omitempty"`
	Description   string            `xml:"Description,omitempty"`
	Creators      []xmlCreator      `xml:"ListOfCreators>Creator"`
	References    []xmlReference    `xml:"ListOfReferences>Reference"`
	Modifications []xmlModification `xml:"ListOfModifications>Modification"`
}

type xmlCreator struct {
	GivenName    string `xml:"givenName,attr,omitempty"`
	FamilyName   string `xml:"familyName,attr,omitempty"`
	Email        string `xml:"email,attr,omitempty"`
	Organization string `xml:"organization,attr,omitempty"`
}

type xmlReference struct {
	Resource string `xml:"resource,attr"`
	ID       string `xml:"id,attr"`
}

type xmlModification struct {
	ID   string `xml:"id,attr"`
	Date string `xml:"date,attr"`
}
