package rewrite

import (
	"fmt"
	"strings"
)

// Expression appends suffix to every element reference inside expr and
// returns the rewritten string. Three reference syntaxes are recognized,
// each in its own left-to-right pass over the output of the previous one:
//
//  1. bracketed names: [A]
//  2. parenthesized names: (A), innermost group first
//  3. dotted properties: A.Rate, A.InitialParticleNumber, ...
//
// A candidate that the Index does not recognize is left byte-for-byte
// unchanged, so function names and numeric literals survive. Nested '['
// inside a bracketed reference is out of contract and rejected.
func Expression(expr, suffix string, idx *Index) (string, error) {
	out, err := passBrackets(expr, suffix, idx)
	if err != nil {
		return "", err
	}
	out = passParens(out, suffix, idx)
	return passDotted(out, suffix, idx), nil
}

// ReferencesElement reports whether expr contains at least one reference
// that the Index recognizes, in any of the three syntaxes. A trigger for
// which this is false depends only on simulation time and constants.
func ReferencesElement(expr string, idx *Index) bool {
	rewritten, err := Expression(expr, "\x01", idx)
	if err != nil {
		// a malformed expression is not a time-only one; let the caller's
		// rewrite surface the error
		return true
	}
	return rewritten != expr
}

// BracketRefs extracts every bracketed name from expr, without consulting
// any classifier. Model construction uses this to validate that an
// expression only references existing elements.
func BracketRefs(expr string) ([]string, error) {
	var refs []string
	for i := 0; i < len(expr); {
		if expr[i] != '[' {
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(expr); j++ {
			if expr[j] == '[' {
				return nil, fmt.Errorf("nested '[' at offset %d in %q", j, expr)
			}
			if expr[j] == ']' {
				end = j
				break
			}
		}
		if end < 0 {
			break
		}
		refs = append(refs, expr[i+1:end])
		i = end + 1
	}
	return refs, nil
}

func passBrackets(expr, suffix string, idx *Index) (string, error) {
	var b strings.Builder
	b.Grow(len(expr) + len(suffix)*4)
	for i := 0; i < len(expr); {
		if expr[i] != '[' {
			b.WriteByte(expr[i])
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(expr); j++ {
			if expr[j] == '[' {
				return "", fmt.Errorf("nested '[' at offset %d in %q", j, expr)
			}
			if expr[j] == ']' {
				end = j
				break
			}
		}
		if end < 0 {
			// unterminated bracket, copy the tail verbatim
			b.WriteString(expr[i:])
			break
		}
		name := expr[i+1 : end]
		b.WriteByte('[')
		b.WriteString(name)
		if idx.IsElement(name) {
			b.WriteString(suffix)
		}
		b.WriteByte(']')
		i = end + 1
	}
	return b.String(), nil
}

// passParens rewrites (name) groups. Parentheses nest freely in ordinary
// math, so the scan restarts at any inner '(' and only innermost groups
// are candidates; outer groups contain operators and never classify.
func passParens(expr, suffix string, idx *Index) string {
	var b strings.Builder
	b.Grow(len(expr) + len(suffix)*4)
	for i := 0; i < len(expr); {
		if expr[i] != '(' {
			b.WriteByte(expr[i])
			i++
			continue
		}
		j := i + 1
		for j < len(expr) && expr[j] != '(' && expr[j] != ')' {
			j++
		}
		if j == len(expr) || expr[j] == '(' {
			// another '(' or end of input before any ')': copy what was
			// scanned and rescan from there
			b.WriteString(expr[i:j])
			i = j
			continue
		}
		name := expr[i+1 : j]
		b.WriteByte('(')
		b.WriteString(name)
		if idx.IsElement(name) {
			b.WriteString(suffix)
		}
		b.WriteByte(')')
		i = j + 1
	}
	return b.String()
}

// passDotted rewrites identifier.Property references. The identifier is
// the longest run of bytes immediately before a '.' (followed by a word
// character) that contains no whitespace, bracket, or arithmetic
// operator. '-' and ',' stay legal inside identifiers: element names like
// "2,3-BPG" contain them.
func passDotted(expr, suffix string, idx *Index) string {
	var b strings.Builder
	b.Grow(len(expr) + len(suffix)*4)
	i := 0
	for i < len(expr) {
		j := strings.IndexByte(expr[i:], '.')
		if j < 0 {
			b.WriteString(expr[i:])
			break
		}
		j += i
		if j+1 >= len(expr) || !isWordByte(expr[j+1]) {
			b.WriteString(expr[i : j+1])
			i = j + 1
			continue
		}
		start := j
		for start > i && !isIdentBoundary(expr[start-1]) {
			start--
		}
		ident := expr[start:j]
		b.WriteString(expr[i:start])
		b.WriteString(ident)
		if ident != "" && idx.IsElement(ident) {
			b.WriteString(suffix)
		}
		b.WriteByte('.')
		i = j + 1
	}
	return b.String()
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

func isIdentBoundary(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', ']', ')', '[', '(', '+', '*', '/', '^', '=', '<', '>':
		return true
	}
	return false
}
