package copasi

import (
	"encoding/xml"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/biomodelkit/mex/internal/model"
)

// formatVersion is written to every saved file and accepted on load.
const formatVersion = "1"

// Load parses a model file. Entities are fed through the model builder in
// dependency order (skeletons, then reactions, then expressions), so a
// file with dangling references fails here rather than later.
func Load(path string) (*model.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file: %w", err)
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}

	m := model.New(doc.Model.Name, doc.Model.Notes, model.Units{
		Quantity: doc.Model.QuantityUnit,
		Time:     doc.Model.TimeUnit,
		Volume:   doc.Model.VolumeUnit,
		Area:     doc.Model.AreaUnit,
		Length:   doc.Model.LengthUnit,
	})

	if doc.Model.Miriam != nil {
		miriam, err := decodeMiriam(doc.Model.Miriam)
		if err != nil {
			return nil, fmt.Errorf("model %s: %w", path, err)
		}
		m.SetMiriam(miriam)
	}

	if err := populate(m, &doc.Model); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}
	return m, nil
}

// populate grows the model from the decoded tables. Expressions are
// applied after all entities exist so that forward references resolve.
func populate(m *model.Model, doc *xmlModel) error {
	for _, c := range doc.Compartments {
		typ, err := model.ParseQuantityType(c.Type)
		if err != nil {
			return fmt.Errorf("compartment %q: %w", c.Name, err)
		}
		if err := m.AddCompartment(model.Compartment{
			Name:           c.Name,
			Type:           typ,
			InitialSize:    c.Size,
			Unit:           c.Unit,
			Dimensionality: c.Dimensionality,
		}); err != nil {
			return err
		}
	}
	for _, s := range doc.Species {
		typ, err := model.ParseQuantityType(s.Type)
		if err != nil {
			return fmt.Errorf("species %q: %w", s.Name, err)
		}
		if err := m.AddSpecies(model.Species{
			Name:                 s.Name,
			Compartment:          s.Compartment,
			Type:                 typ,
			InitialConcentration: s.Concentration,
			Unit:                 s.Unit,
		}); err != nil {
			return err
		}
	}
	for _, p := range doc.Parameters {
		typ, err := model.ParseQuantityType(p.Type)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		if err := m.AddParameter(model.Parameter{
			Name:         p.Name,
			Type:         typ,
			InitialValue: p.Value,
			Unit:         p.Unit,
		}); err != nil {
			return err
		}
	}
	for _, r := range doc.Reactions {
		mapping := make(model.Mapping, len(r.Mappings))
		for _, mp := range r.Mappings {
			if mp.Multi {
				mapping[mp.Parameter] = model.Targets(mp.Targets...)
			} else if len(mp.Targets) == 1 {
				mapping[mp.Parameter] = model.Target(mp.Targets[0])
			} else {
				return fmt.Errorf("reaction %q: mapping %q has %d targets without multi flag",
					r.Name, mp.Parameter, len(mp.Targets))
			}
		}
		if err := m.AddReaction(model.Reaction{
			Name:     r.Name,
			Scheme:   r.Scheme,
			Mapping:  mapping,
			Function: r.Function,
		}); err != nil {
			return err
		}
	}

	// expressions last, now that every entity exists
	for _, c := range doc.Compartments {
		if c.InitialExpression != "" {
			if err := m.SetCompartmentInitialExpression(c.Name, c.InitialExpression); err != nil {
				return err
			}
		}
		if c.Expression != "" {
			typ, _ := model.ParseQuantityType(c.Type)
			if err := m.SetCompartmentExpression(c.Name, typ, c.Expression); err != nil {
				return err
			}
		}
	}
	for _, s := range doc.Species {
		if s.InitialExpression != "" {
			if err := m.SetSpeciesInitialExpression(s.Name, s.InitialExpression); err != nil {
				return err
			}
		}
		if s.Expression != "" {
			typ, _ := model.ParseQuantityType(s.Type)
			if err := m.SetSpeciesExpression(s.Name, typ, s.Expression); err != nil {
				return err
			}
		}
	}
	for _, p := range doc.Parameters {
		if p.InitialExpression != "" {
			if err := m.SetParameterInitialExpression(p.Name, p.InitialExpression); err != nil {
				return err
			}
		}
		if p.Expression != "" {
			typ, _ := model.ParseQuantityType(p.Type)
			if err := m.SetParameterExpression(p.Name, typ, p.Expression); err != nil {
				return err
			}
		}
	}

	for _, e := range doc.Events {
		assignments := make([]model.EventAssignment, len(e.Assignments))
		for i, a := range e.Assignments {
			assignments[i] = model.EventAssignment{Target: a.Target, Expression: a.Expression}
		}
		if err := m.AddEvent(model.Event{
			Name:        e.Name,
			Trigger:     e.Trigger,
			Assignments: assignments,
		}); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the model to path. Mapping keys are sorted, so the output
// depends only on the model content (entity keys aside).
func Save(path string, m *model.Model) error {
	doc := document{
		Version: formatVersion,
		Model: xmlModel{
			Key:          key("Model"),
			Name:         m.Name(),
			QuantityUnit: m.Units().Quantity,
			TimeUnit:     m.Units().Time,
			VolumeUnit:   m.Units().Volume,
			AreaUnit:     m.Units().Area,
			LengthUnit:   m.Units().Length,
			Notes:        m.Notes(),
			Miriam:       encodeMiriam(m.Miriam()),
		},
	}

	for _, c := range m.Compartments() {
		doc.Model.Compartments = append(doc.Model.Compartments, xmlCompartment{
			Key:               key("Compartment"),
			Name:              c.Name,
			Type:              string(c.Type),
			Size:              c.InitialSize,
			Unit:              c.Unit,
			Dimensionality:    c.Dimensionality,
			Expression:        c.Expression,
			InitialExpression: c.InitialExpression,
		})
	}
	for _, s := range m.Species() {
		doc.Model.Species = append(doc.Model.Species, xmlSpecies{
			Key:               key("Metabolite"),
			Name:              s.Name,
			Compartment:       s.Compartment,
			Type:              string(s.Type),
			Concentration:     s.InitialConcentration,
			Unit:              s.Unit,
			Expression:        s.Expression,
			InitialExpression: s.InitialExpression,
		})
	}
	for _, p := range m.Parameters() {
		doc.Model.Parameters = append(doc.Model.Parameters, xmlParameter{
			Key:               key("ModelValue"),
			Name:              p.Name,
			Type:              string(p.Type),
			Value:             p.InitialValue,
			Unit:              p.Unit,
			Expression:        p.Expression,
			InitialExpression: p.InitialExpression,
		})
	}
	for _, r := range m.Reactions() {
		xr := xmlReaction{
			Key:      key("Reaction"),
			Name:     r.Name,
			Function: r.Function,
			Scheme:   r.Scheme,
		}
		for _, k := range r.Mapping.Keys() {
			target := r.Mapping[k]
			xr.Mappings = append(xr.Mappings, xmlMapping{
				Parameter: k,
				Multi:     target.IsMulti(),
				Targets:   target.Names(),
			})
		}
		doc.Model.Reactions = append(doc.Model.Reactions, xr)
	}
	for _, e := range m.Events() {
		xe := xmlEvent{Key: key("Event"), Name: e.Name, Trigger: e.Trigger}
		for _, a := range e.Assignments {
			xe.Assignments = append(xe.Assignments, xmlAssignment{
				Target:     a.Target,
				Expression: a.Expression,
			})
		}
		doc.Model.Events = append(doc.Model.Events, xe)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode model: %w", err)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write model file: %w", err)
	}
	return nil
}

// key generates a fresh entity key for the on-disk form. Keys identify
// entities within one file; names carry the model semantics.
func key(kind string) string {
	return kind + "_" + uuid.NewString()
}

func decodeMiriam(x *xmlMiriam) (model.Miriam, error) {
	var miriam model.Miriam
	if x.Created != "" {
		t, err := time.Parse(timeLayout, x.Created)
		if err != nil {
			return miriam, fmt.Errorf("annotation created date: %w", err)
		}
		miriam.Created = t
	}
	miriam.Description = x.Description
	for _, c := range x.Creators {
		miriam.Creators = append(miriam.Creators, model.Creator{
			GivenName:    c.GivenName,
			FamilyName:   c.FamilyName,
			Email:        c.Email,
			Organization: c.Organization,
		})
	}
	for _, r := range x.References {
		miriam.References = append(miriam.References, model.Reference{
			Resource: r.Resource,
			ID:       r.ID,
		})
	}
	for _, mod := range x.Modifications {
		t, err := time.Parse(timeLayout, mod.Date)
		if err != nil {
			return miriam, fmt.Errorf("annotation modification date: %w", err)
		}
		miriam.Modifications = append(miriam.Modifications, t)
	}
	return miriam, nil
}

func encodeMiriam(miriam model.Miriam) *xmlMiriam {
	x := &xmlMiriam{Description: miriam.Description}
	empty := miriam.Description == ""
	if !miriam.Created.IsZero() {
		x.Created = miriam.Created.Format(timeLayout)
		empty = false
	}
	for _, c := range miriam.Creators {
		x.Creators = append(x.Creators, xmlCreator{
			GivenName:    c.GivenName,
			FamilyName:   c.FamilyName,
			Email:        c.Email,
			Organization: c.Organization,
		})
		empty = false
	}
	for _, r := range miriam.References {
		x.References = append(x.References, xmlReference{Resource: r.Resource, ID: r.ID})
		empty = false
	}
	for _, mod := range miriam.Modifications {
		x.Modifications = append(x.Modifications, xmlModification{
			ID:   uuid.NewString(),
			Date: mod.Format(timeLayout),
		})
		empty = false
	}
	if empty {
		return nil
	}
	return x
}
