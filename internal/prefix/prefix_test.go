package prefix

import "testing"

var words = []string{"normalize", "normal", "exact", "keep", "long"}

func TestResolve(t *testing.T) {
	tests := []struct {
		input string
		exact bool
		want  string
		ok    bool
	}{
		{"exact", false, "exact", true},
		{"ex", false, "exact", true},
		{"normal", false, "normal", true}, // exact match beats prefix ambiguity
		{"norm", false, "", false},        // ambiguous
		{"normali", false, "normalize", true},
		{"nope", false, "", false},
		{"ex", true, "", false}, // abbreviation disabled
		{"keep", true, "keep", true},
	}
	for _, tt := range tests {
		got, ok := Resolve(words, tt.input, tt.exact)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Resolve(%q, exact=%v) = (%q, %v), want (%q, %v)",
				tt.input, tt.exact, got, ok, tt.want, tt.ok)
		}
	}
}

func TestMatchErrors(t *testing.T) {
	_, err := Match([]string{"red", "green", "blue"}, "x", "-color value", false)
	if err == nil {
		t.Fatal("expected error")
	}
	want := `bad -color value "x": must be blue, green, or red`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err.Error(), want)
	}

	_, err = Match(words, "norm", "option", false)
	if err == nil {
		t.Fatal("expected error")
	}
	wantPrefix := `ambiguous option "norm"`
	if got := err.Error(); len(got) < len(wantPrefix) || got[:len(wantPrefix)] != wantPrefix {
		t.Errorf("error = %q, want prefix %q", err.Error(), wantPrefix)
	}
}

func TestJoinGrammar(t *testing.T) {
	tests := []struct {
		items []string
		or    string
		and   string
	}{
		{[]string{}, "", ""},
		{[]string{"a"}, "a", "a"},
		{[]string{"a", "b"}, "a or b", "a and b"},
		{[]string{"a", "b", "c"}, "a, b, or c", "a, b, and c"},
	}
	for _, tt := range tests {
		if got := JoinOr(tt.items); got != tt.or {
			t.Errorf("JoinOr(%v) = %q, want %q", tt.items, got, tt.or)
		}
		if got := JoinAnd(tt.items); got != tt.and {
			t.Errorf("JoinAnd(%v) = %q, want %q", tt.items, got, tt.and)
		}
	}
}

func TestSummary(t *testing.T) {
	tests := []struct {
		items []string
		want  string
	}{
		{[]string{"a"}, "a"},
		{[]string{"a", "b"}, "a or b"},
		{[]string{"a", "b", "c"}, "a, b or c"},
	}
	for _, tt := range tests {
		if got := Summary(tt.items); got != tt.want {
			t.Errorf("Summary(%v) = %q, want %q", tt.items, got, tt.want)
		}
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"verbose", "version", "output"}
	tests := []struct {
		input string
		want  string
	}{
		{"verbsoe", "verbose"}, // transposition keeps the verb- run
		{"vers", "version"},
		{"out", "output"},
		{"v", ""},  // one shared character is not enough
		{"zz", ""}, // nothing close
	}
	for _, tt := range tests {
		if got := Closest(candidates, tt.input); got != tt.want {
			t.Errorf("Closest(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
