package model

import "time"

// Creator is one author entry of a MIRIAM annotation.
type Creator struct {
	GivenName    string
	FamilyName   string
	Email        string
	Organization string
}

// Reference is one literature reference of a MIRIAM annotation.
type Reference struct {
	Resource string
	ID       string
}

// Miriam is the structured provenance annotation of a model. It is copied
// between models, never transformed by replication; only Modifications
// grows.
type Miriam struct {
	Created       time.Time
	Creators      []Creator
	References    []Reference
	Description   string
	Modifications []time.Time
}

// Clone returns a deep copy.
func (m Miriam) Clone() Miriam {
	out := m
	out.Creators = append([]Creator(nil), m.Creators...)
	out.References = append([]Reference(nil), m.References...)
	out.Modifications = append([]time.Time(nil), m.Modifications...)
	return out
}
