package rewrite

import (
	"testing"
)

func testIndex() *Index {
	return NewIndex(
		[]string{"k1", "Vmax"},         // parameters
		[]string{"cell"},               // compartments
		[]string{"A", "B", "C", "Glc"}, // species
		[]string{"R1", "R2"},           // reactions
	)
}

func TestExpression(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		name   string
		expr   string
		suffix string
		want   string
	}{
		{
			name:   "all three syntaxes",
			expr:   "[A]+(B)+C.Rate",
			suffix: "_1",
			want:   "[A_1]+(B_1)+C_1.Rate",
		},
		{
			name:   "unknown names untouched",
			expr:   "[X]+(sin)+foo.Rate",
			suffix: "_1",
			want:   "[X]+(sin)+foo.Rate",
		},
		{
			name:   "numeric literal with dot untouched",
			expr:   "1.5*[Glc]",
			suffix: "_3",
			want:   "1.5*[Glc_3]",
		},
		{
			name:   "every occurrence rewritten",
			expr:   "[A]*[A]+[A]",
			suffix: "_2",
			want:   "[A_2]*[A_2]+[A_2]",
		},
		{
			name:   "grid suffix",
			expr:   "Vmax*[Glc]/(k1)",
			suffix: "_2,3",
			want:   "Vmax*[Glc_2,3]/(k1_2,3)",
		},
		{
			name:   "reaction rate reference",
			expr:   "R1.Rate + R2.Flux",
			suffix: "_4",
			want:   "R1_4.Rate + R2_4.Flux",
		},
		{
			name:   "dotted property on bracketed ref not double rewritten",
			expr:   "[A].InitialParticleNumber",
			suffix: "_1",
			want:   "[A_1].InitialParticleNumber",
		},
		{
			name:   "innermost paren group",
			expr:   "2*((B))",
			suffix: "_1",
			want:   "2*((B_1))",
		},
		{
			name:   "paren group with math untouched",
			expr:   "(k1*2)",
			suffix: "_1",
			want:   "(k1*2)",
		},
		{
			name:   "function call argument untouched",
			expr:   "exp(t)",
			suffix: "_1",
			want:   "exp(t)",
		},
		{
			name:   "empty expression",
			expr:   "",
			suffix: "_1",
			want:   "",
		},
		{
			name:   "trailing dot is not a reference",
			expr:   "A.",
			suffix: "_1",
			want:   "A.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expression(tt.expr, tt.suffix, idx)
			if err != nil {
				t.Fatalf("Expression(%q) error = %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Expression(%q, %q) = %q, want %q", tt.expr, tt.suffix, got, tt.want)
			}
		})
	}
}

func TestExpression_NestedBracketsRejected(t *testing.T) {
	idx := testIndex()
	if _, err := Expression("[[A]]", "_1", idx); err == nil {
		t.Error("Expression() with nested brackets: want error, got nil")
	}
	if _, err := Expression("[A[B]]", "_1", idx); err == nil {
		t.Error("Expression() with bracket inside reference: want error, got nil")
	}
}

func TestBracketRefs(t *testing.T) {
	refs, err := BracketRefs("[A]+2*[Glc]-[A]")
	if err != nil {
		t.Fatalf("BracketRefs() error = %v", err)
	}
	want := []string{"A", "Glc", "A"}
	if len(refs) != len(want) {
		t.Fatalf("BracketRefs() = %v, want %v", refs, want)
	}
	for i := range want {
		if refs[i] != want[i] {
			t.Errorf("BracketRefs()[%d] = %q, want %q", i, refs[i], want[i])
		}
	}

	if refs, err := BracketRefs("k1*2"); err != nil || len(refs) != 0 {
		t.Errorf("BracketRefs() on bracket-free input = %v, %v; want none", refs, err)
	}

	if _, err := BracketRefs("[[A]]"); err == nil {
		t.Error("BracketRefs() with nested brackets: want error, got nil")
	}
}

func TestReferencesElement(t *testing.T) {
	idx := testIndex()

	tests := []struct {
		expr string
		want bool
	}{
		{"Time > 100", false},
		{"[A] > 5", true},
		{"(k1) < 0.5", true},
		{"R1.Rate > 1", true},
		{"sin(Time) > 0", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ReferencesElement(tt.expr, idx); got != tt.want {
			t.Errorf("ReferencesElement(%q) = %v, want %v", tt.expr, got, tt.want)
		}
	}
}
