package rewrite

import (
	"strconv"
	"strings"
)

// Scheme appends suffix to every species token of a reaction scheme. The
// scheme grammar is whitespace-separated tokens, with an optional modifier
// clause after ';'. Tokens that are arrow/operator literals or parse as a
// stoichiometric coefficient are passed through; everything else is a
// species by grammar position, so no classifier lookup is needed.
//
//	"A + 2 * B -> C; D"  + "_1"  =>  "A_1 + 2 * B_1 -> C_1 ; D_1"
func Scheme(scheme, suffix string) string {
	main, modifier, hasModifier := strings.Cut(scheme, ";")

	out := make([]string, 0, 8)
	for _, tok := range strings.Fields(main) {
		if isSchemeOperator(tok) || isNumber(tok) {
			out = append(out, tok)
			continue
		}
		out = append(out, tok+suffix)
	}

	// modifier tokens are a bare species list, suffixed unconditionally
	if hasModifier {
		mod := strings.Fields(modifier)
		if len(mod) > 0 {
			out = append(out, ";")
			for _, tok := range mod {
				out = append(out, tok+suffix)
			}
		}
	}
	return strings.Join(out, " ")
}

// SchemeSpecies returns the species and modifier tokens of a scheme, in
// order of appearance. Model construction uses this to check that a
// reaction only names existing species.
func SchemeSpecies(scheme string) []string {
	main, modifier, _ := strings.Cut(scheme, ";")
	var species []string
	for _, tok := range strings.Fields(main) {
		if isSchemeOperator(tok) || isNumber(tok) {
			continue
		}
		species = append(species, tok)
	}
	species = append(species, strings.Fields(modifier)...)
	return species
}

func isSchemeOperator(tok string) bool {
	switch tok {
	case "=", "->", "+", "*":
		return true
	}
	return false
}

func isNumber(tok string) bool {
	_, err := strconv.ParseFloat(tok, 64)
	return err == nil
}
