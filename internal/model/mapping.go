package model

import "sort"

// MappingTarget is the value side of a reaction's parameter mapping: either
// one global entity name, or a list of names when the same local parameter
// binds several (possibly repeated) entities. The two shapes are a closed
// variant so rewriting code can branch exhaustively.
type MappingTarget struct {
	multi bool
	one   string
	many  []string
}

// Target builds a single-name mapping target.
func Target(name string) MappingTarget {
	return MappingTarget{one: name}
}

// Targets builds a multi-name mapping target.
func Targets(names ...string) MappingTarget {
	cp := make([]string, len(names))
	copy(cp, names)
	return MappingTarget{multi: true, many: cp}
}

// IsMulti reports whether the target holds a list of names.
func (t MappingTarget) IsMulti() bool { return t.multi }

// Names returns every name the target refers to. Single targets yield a
// one-element slice. The slice is a copy.
func (t MappingTarget) Names() []string {
	if t.multi {
		cp := make([]string, len(t.many))
		copy(cp, t.many)
		return cp
	}
	return []string{t.one}
}

// WithSuffix returns a copy of the target with suffix appended to every
// name it holds.
func (t MappingTarget) WithSuffix(suffix string) MappingTarget {
	if t.multi {
		out := make([]string, len(t.many))
		for i, n := range t.many {
			out[i] = n + suffix
		}
		return MappingTarget{multi: true, many: out}
	}
	return MappingTarget{one: t.one + suffix}
}

// Mapping binds a reaction's local kinetic-parameter symbols to global
// model entities.
type Mapping map[string]MappingTarget

// WithSuffix returns a copy of the mapping with suffix appended to every
// target name. Keys (the local symbols) are untouched.
func (m Mapping) WithSuffix(suffix string) Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for k, t := range m {
		out[k] = t.WithSuffix(suffix)
	}
	return out
}

// Keys returns the local symbols in sorted order, for deterministic
// iteration and serialization.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
