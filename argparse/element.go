package argparse

import (
	"regexp"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/intern"
	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// elementKind distinguishes named switches from positional parameters
type elementKind uint8

const (
	kindSwitch elementKind = iota
	kindParameter
)

// element is one compiled entry of an argument definition. The zero value is
// not useful; elements are produced by the schema compiler.
type element struct {
	name    string
	kind    elementKind
	aliases []string

	// key is the result key values are stored under; empty for -ignore
	// elements and pass-only elements
	key string

	hasArg     bool // switch consumes a following argument
	optional   bool
	required   bool
	catchall   bool
	upvar      bool
	standalone bool
	keep       bool
	ignore     bool
	hsuppress  bool
	reciprocal bool

	hasDefault   bool
	defaultValue string
	hasValue     bool
	value        string

	level    string // caller level for -upvar links
	pass     string // pass-through result key
	helpText string
	typeName string

	enum         []string
	validate     ValidatorFunc
	validateName string
	validateMsg  string
	errorMsg     string

	require []string
	forbid  []string
	allow   []string
	imply   []string
}

// isSwitch reports whether the element is matched by name on the command line
func (e *element) isSwitch() bool { return e.kind == kindSwitch }

// dashName returns the element name with a leading dash for switches, used in
// constraint diagnostics
func (e *element) dashName() string {
	if e.isSwitch() {
		return "-" + e.name
	}
	return e.name
}

// displayName joins aliases and name for switch lists and missing-switch
// diagnostics: "-alias1|alias2|name", or "-name" without aliases
func (e *element) displayName() string {
	if len(e.aliases) == 0 {
		return "-" + e.name
	}
	return "-" + strings.Join(e.aliases, "|") + "|" + e.name
}

// elementSwitchNames is the definition-switch vocabulary, matched exactly
// (dashes included).
var elementSwitchNames = []string{
	"-alias", "-argument", "-boolean", "-catchall", "-default", "-enum", "-forbid",
	"-ignore", "-imply", "-keep", "-key", "-level", "-optional", "-parameter",
	"-pass", "-reciprocal", "-require", "-required", "-standalone", "-switch",
	"-upvar", "-validate", "-value", "-type", "-allow", "-help", "-errormsg",
	"-hsuppress",
}

// elementSwitchTakesArg marks the definition switches that consume the next
// token of the entry.
var elementSwitchTakesArg = map[string]bool{
	"alias": true, "default": true, "enum": true, "forbid": true,
	"imply": true, "key": true, "level": true, "pass": true, "require": true,
	"validate": true, "value": true, "type": true, "allow": true,
	"help": true, "errormsg": true,
}

// allowedTypes is the -type vocabulary, in summary order.
var allowedTypes = []string{
	"alnum", "alpha", "ascii", "boolean", "control", "dict", "digit",
	"double", "graph", "integer", "list", "lower", "print", "punct",
	"space", "upper", "wideinteger", "wordchar", "xdigit",
}

var (
	// Shorthand grammar: optional dash, optional |-joined aliases, name,
	// trailing flag characters.
	reShorthand = regexp.MustCompile(`^(?:(-)(?:(.*)\|)?)?(\w[\w-]*)([=?!*^]*)$`)
	// Element and alias word grammar.
	reName  = regexp.MustCompile(`^\w[\w-]*$`)
	reAlias = regexp.MustCompile(`^\w[\w-]*( \w[\w-]*)*$`)
)

// rawElement carries a definition entry after switch-token resolution and
// before derivation rules run. Fields mirror the raw definition switches.
type rawElement struct {
	name    string
	aliases []string

	set  map[string]bool   // presence of boolean-style definition switches
	vals map[string]string // values of argument-bearing definition switches
}

func (r *rawElement) has(sw string) bool { return r.set[sw] }

// parseEntry resolves one definition entry: trailing tokens first (exact
// definition-switch lookup, consuming values), then the leading name or
// shorthand token.
func parseEntry(tokens []string, opts *Options) (*rawElement, error) {
	if len(tokens) == 0 {
		return nil, newError(ErrorTypeDefinition, "element definition cannot be empty")
	}
	raw := &rawElement{
		set:  make(map[string]bool, 4),
		vals: make(map[string]string, 2),
	}
	for j := 1; j < len(tokens); j++ {
		matched, err := prefix.Match(elementSwitchNames, tokens[j], "option", true)
		if err != nil {
			return nil, newError(ErrorTypeDefinition, err.Error())
		}
		sw := matched[1:]
		if !elementSwitchTakesArg[sw] {
			raw.set[sw] = true
		} else if j == len(tokens)-1 {
			return nil, errorf(ErrorTypeDefinition, "-%s requires an argument", sw)
		} else {
			j++
			raw.vals[sw] = tokens[j]
			raw.set[sw] = true
		}
	}
	if raw.has("switch") && raw.has("parameter") {
		return nil, newError(ErrorTypeDefinition, "-switch and -parameter conflict")
	}
	if opts.Inline && raw.has("keep") {
		return nil, newError(ErrorTypeDefinition, "-inline and -keep conflict")
	}
	first := tokens[0]
	if !raw.has("switch") && !raw.has("parameter") {
		// Shorthand form: dash and flag characters select the kind and
		// common switches.
		m := reShorthand.FindStringSubmatch(first)
		if m == nil {
			return nil, errorf(ErrorTypeDefinition, "bad element shorthand: %s", first)
		}
		dash, alias, name, flags := m[1], m[2], m[3], m[4]
		if dash != "" {
			raw.set["switch"] = true
		} else {
			raw.set["parameter"] = true
		}
		if alias != "" {
			raw.aliases = strings.Split(alias, "|")
			raw.set["alias"] = true
		}
		for _, f := range flags {
			switch f {
			case '=':
				raw.set["argument"] = true
			case '?':
				raw.set["optional"] = true
			case '!':
				raw.set["required"] = true
			case '*':
				raw.set["catchall"] = true
			case '^':
				raw.set["upvar"] = true
			}
		}
		raw.name = intern.Intern(name)
	} else if !reName.MatchString(first) {
		return nil, errorf(ErrorTypeDefinition, "bad element name: %s", first)
	} else {
		raw.name = intern.Intern(first)
	}
	if v, ok := raw.vals["alias"]; ok {
		if !reAlias.MatchString(v) {
			return nil, errorf(ErrorTypeDefinition, "bad alias: %s", v)
		}
		raw.aliases = strings.Fields(v)
	}
	return raw, nil
}
