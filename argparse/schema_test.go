package argparse

import (
	"testing"
)

func compileErr(t *testing.T, def [][]string, opts *Options) string {
	t.Helper()
	if opts == nil {
		opts = NewOptions()
	}
	_, err := compileSchema(def, opts)
	if err == nil {
		t.Fatal("expected compile to fail")
	}
	return err.Error()
}

func TestCompileDefinitionErrors(t *testing.T) {
	tests := []struct {
		name string
		def  [][]string
		opts *Options
		want string
	}{
		{
			name: "empty entry",
			def:  [][]string{{}},
			want: "element definition cannot be empty",
		},
		{
			name: "bad shorthand",
			def:  [][]string{{"-"}},
			want: "bad element shorthand: -",
		},
		{
			name: "bad explicit name",
			def:  [][]string{{"na me", "-parameter"}},
			want: "bad element name: na me",
		},
		{
			name: "switch and parameter conflict",
			def:  [][]string{{"x", "-switch", "-parameter"}},
			want: "-switch and -parameter conflict",
		},
		{
			name: "name collision",
			def:  [][]string{{"-x"}, {"-x"}},
			want: "element name collision: x",
		},
		{
			name: "alias collision",
			def:  [][]string{{"-a|x"}, {"-a|y"}},
			want: "element alias collision: a",
		},
		{
			name: "name collides with alias",
			def:  [][]string{{"-a|x"}, {"-a"}},
			want: "collision of switch -x alias with the -a switch",
		},
		{
			name: "parameter name collides with alias",
			def:  [][]string{{"-a|x"}, {"a"}},
			want: "collision of switch -x alias with the -a switch",
		},
		{
			name: "bad alias",
			def:  [][]string{{"x", "-switch", "-alias", "no|pe"}},
			want: "bad alias: no|pe",
		},
		{
			name: "multiple catchalls",
			def:  [][]string{{"a*"}, {"b*"}},
			want: "multiple catchall parameters: a and b",
		},
		{
			name: "parameter with alias",
			def:  [][]string{{"x", "-parameter", "-alias", "y"}},
			want: "-parameter and -alias conflict",
		},
		{
			name: "required with default",
			def:  [][]string{{"-x!", "-default", "v"}},
			want: "-required and -default conflict",
		},
		{
			name: "boolean with value",
			def:  [][]string{{"-x", "-boolean", "-value", "v"}},
			want: "-boolean and -value conflict",
		},
		{
			name: "enum with validate",
			def:  [][]string{{"-x=", "-enum", "a b", "-validate", "v"}},
			want: "-enum and -validate conflict",
		},
		{
			name: "allow with forbid",
			def:  [][]string{{"-x", "-allow", "a", "-forbid", "b"}},
			want: "-allow and -forbid conflict",
		},
		{
			name: "reciprocal without require",
			def:  [][]string{{"-x", "-reciprocal"}},
			want: "-reciprocal requires -require",
		},
		{
			name: "level without upvar",
			def:  [][]string{{"-x", "-level", "2"}},
			want: "-level requires -upvar",
		},
		{
			name: "errormsg without validate",
			def:  [][]string{{"-x=", "-errormsg", "nope"}},
			want: "-errormsg requires -validate",
		},
		{
			name: "optional catchall switch",
			def:  [][]string{{"-x?*"}},
			want: "-switch -optional -catchall is a disallowed combination",
		},
		{
			name: "optional required parameter",
			def:  [][]string{{"x?!"}},
			want: "-parameter -optional -required is a disallowed combination",
		},
		{
			name: "definition switch needs value",
			def:  [][]string{{"-x", "-default"}},
			want: "-default requires an argument",
		},
		{
			name: "undefined require target",
			def:  [][]string{{"-x", "-require", "y"}},
			want: "x -require references undefined element: y",
		},
		{
			name: "undefined forbid target",
			def:  [][]string{{"-x", "-forbid", "y"}},
			want: "x -forbid references undefined element: y",
		},
		{
			name: "unregistered validator",
			def:  [][]string{{"-x=", "-validate", "nope"}},
			want: "validator is not registered: nope",
		},
		{
			name: "duplicate upvar targets",
			def:  [][]string{{"-a^", "-key", "k"}, {"-b^", "-key", "k"}},
			want: "multiple upvars to the same variable: a b",
		},
		{
			name: "inline with keep element",
			def:  [][]string{{"-x", "-keep"}},
			opts: NewOptions().WithInline(),
			want: "-inline and -keep conflict",
		},
		{
			name: "inline with upvar",
			def:  [][]string{{"-x^"}},
			opts: NewOptions().WithInline(),
			want: "-upvar and -inline conflict",
		},
		{
			name: "inline and keep options",
			def:  [][]string{{"-x"}},
			opts: NewOptions().WithInline().WithKeep(),
			want: "-inline and -keep conflict",
		},
		{
			name: "mixed and pfirst options",
			def:  [][]string{{"-x"}},
			opts: NewOptions().WithMixed().WithParamsFirst(),
			want: "-mixed and -pfirst conflict",
		},
		{
			name: "parameter shares key",
			def:  [][]string{{"-a", "-key", "k"}, {"b", "-key", "k"}},
			want: "b cannot be a parameter because it shares a key with a",
		},
		{
			name: "argument shares key",
			def:  [][]string{{"-a=", "-key", "k"}, {"-b", "-key", "k"}},
			want: "a cannot use -argument because it shares a key with b",
		},
		{
			name: "shared key double default",
			def: [][]string{
				{"-a", "-key", "k", "-default", "1"},
				{"-b", "-key", "k", "-default", "2"},
			},
			want: "a and b cannot both use -default because they share a key",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := compileErr(t, tt.def, tt.opts)
			if got != tt.want {
				t.Errorf("error = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCompileBadDefinitionSwitch(t *testing.T) {
	got := compileErr(t, [][]string{{"-x", "-bogus"}}, nil)
	want := `bad option "-bogus": must be `
	if len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("error = %q, want prefix %q", got, want)
	}
}

func TestCompileBadType(t *testing.T) {
	got := compileErr(t, [][]string{{"-x=", "-type", "bogus"}}, nil)
	want := "-type bogus is not in the list of allowed types, must be alnum, alpha, " +
		"ascii, boolean, control, dict, digit, double, graph, integer, list, lower, " +
		"print, punct, space, upper, wideinteger, wordchar or xdigit"
	if got != want {
		t.Errorf("error = %q\nwant    %q", got, want)
	}
}

func TestCompileReciprocalInjection(t *testing.T) {
	def := [][]string{
		{"-a", "-require", "b", "-reciprocal"},
		{"-b"},
	}
	s, err := compileSchema(def, NewOptions())
	if err != nil {
		t.Fatal(err)
	}
	if !containsString(s.byName["b"].require, "a") {
		t.Errorf("b.require = %v, want to contain a", s.byName["b"].require)
	}
}

func TestCompileKeyTemplateEscapes(t *testing.T) {
	tests := []struct {
		tpl, name, want string
	}{
		{"opt_%", "x", "opt_x"},
		{"%_%", "x", "x_x"},
		{`\%_%`, "x", "%_x"},
		{`\\%`, "x", `\x`},
		{"plain", "x", "plain"},
	}
	for _, tt := range tests {
		if got := applyTemplate(tt.tpl, tt.name); got != tt.want {
			t.Errorf("applyTemplate(%q, %q) = %q, want %q", tt.tpl, tt.name, got, tt.want)
		}
	}
}

func TestCompileParamsFirstReorder(t *testing.T) {
	def := [][]string{{"a?"}, {"b"}, {"c?"}, {"d"}}
	s, err := compileSchema(def, NewOptions().WithParamsFirst())
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"b", "d", "a", "c"}
	for i, name := range want {
		if s.order[i] != name {
			t.Fatalf("order = %v, want %v", s.order, want)
		}
	}
}
