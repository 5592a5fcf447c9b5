package argparse

import (
	"regexp"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/intern"
	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// schema is a compiled definition. Schemas are immutable after compile and
// shared across invocations through the cache; per-invocation state lives in
// the parser.
type schema struct {
	opts *Options

	elements []*element
	byName   map[string]*element
	aliases  map[string]string // alias -> canonical element name

	// order holds parameter names in allocation order; switches holds the
	// display names used by unknown-switch diagnostics; switchNames holds
	// the canonical switch names for prefix resolution
	order       []string
	switches    []string
	switchNames []string

	catchallParam string
	requiredCount int
	hasSwitches   bool

	// passDummy absorbs unmatched arguments when Options.Pass is set; it is
	// not addressable by name
	passDummy *element

	switchRe *regexp.Regexp
}

// conflictPairs lists element switches that cannot appear together on one
// element, checked in row order.
var conflictPairs = [][2]string{
	{"parameter", "alias"}, {"parameter", "boolean"}, {"parameter", "value"},
	{"parameter", "argument"}, {"parameter", "imply"},
	{"ignore", "key"}, {"ignore", "pass"},
	{"required", "boolean"}, {"required", "default"},
	{"argument", "boolean"}, {"argument", "value"},
	{"upvar", "boolean"}, {"upvar", "catchall"},
	{"boolean", "default"}, {"boolean", "value"},
	{"enum", "validate"},
	{"type", "upvar"}, {"type", "boolean"}, {"type", "enum"},
	{"allow", "forbid"},
}

// requirePairs lists element switches that demand a companion switch.
var requirePairs = [][2]string{
	{"reciprocal", "require"},
	{"level", "upvar"},
	{"errormsg", "validate"},
}

// disallowedTriples lists three-switch combinations rejected outright.
var disallowedTriples = [][3]string{
	{"switch", "optional", "catchall"},
	{"switch", "optional", "upvar"},
	{"switch", "optional", "default"},
	{"switch", "optional", "boolean"},
	{"switch", "optional", "type"},
	{"parameter", "optional", "required"},
}

// compileSchema turns a filtered definition into a schema, running the full
// derivation, conflict, collision, cross-reference, and shared-key analysis.
func compileSchema(def [][]string, opts *Options) (*schema, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	s := &schema{
		opts:    opts,
		byName:  make(map[string]*element, len(def)),
		aliases: make(map[string]string),
	}
	upvarKeys := make(map[string]string)
	for _, entry := range def {
		raw, err := parseEntry(entry, opts)
		if err != nil {
			return nil, err
		}
		e, err := s.buildElement(raw, upvarKeys)
		if err != nil {
			return nil, err
		}
		s.elements = append(s.elements, e)
		s.byName[e.name] = e
	}
	if err := s.resolveConstraints(); err != nil {
		return nil, err
	}
	if err := s.resolveSharedKeys(); err != nil {
		return nil, err
	}
	if opts.ParamsFirst {
		s.reorderParams()
	}
	for _, name := range s.order {
		if s.byName[name].required {
			s.requiredCount++
		}
	}
	if opts.Pass != "" {
		s.passDummy = &element{kind: kindSwitch, pass: opts.Pass}
	}
	s.switchRe = compileSwitchRegexp(opts)
	return s, nil
}

// buildElement applies the derivation and validation rules to one raw entry.
func (s *schema) buildElement(raw *rawElement, upvarKeys map[string]string) (*element, error) {
	if _, ok := s.byName[raw.name]; ok {
		return nil, errorf(ErrorTypeDefinition, "element name collision: %s", raw.name)
	}

	// Implicit switches: a switch taking or shaping a value needs -argument;
	// a parameter is required unless something says otherwise.
	if raw.has("switch") &&
		(raw.has("optional") || raw.has("required") || raw.has("catchall") ||
			raw.has("upvar") || raw.has("type")) {
		raw.set["argument"] = true
	}
	if raw.has("parameter") && !raw.has("required") {
		if raw.has("catchall") || raw.has("optional") {
			raw.set["optional"] = true
		} else {
			raw.set["required"] = true
		}
	}

	for _, p := range requirePairs {
		if raw.has(p[0]) && !raw.has(p[1]) {
			return nil, errorf(ErrorTypeDefinition, "-%s requires -%s", p[0], p[1])
		}
	}
	for _, p := range conflictPairs {
		if raw.has(p[0]) && raw.has(p[1]) {
			return nil, errorf(ErrorTypeDefinition, "-%s and -%s conflict", p[0], p[1])
		}
	}
	if s.opts.Inline && raw.has("upvar") {
		return nil, newError(ErrorTypeDefinition, "-upvar and -inline conflict")
	}
	for _, t := range disallowedTriples {
		if raw.has(t[0]) && raw.has(t[1]) && raw.has(t[2]) {
			return nil, errorf(ErrorTypeDefinition,
				"-%s -%s -%s is a disallowed combination", t[0], t[1], t[2])
		}
	}

	e := &element{
		name:       raw.name,
		aliases:    raw.aliases,
		optional:   raw.has("optional"),
		required:   raw.has("required"),
		catchall:   raw.has("catchall"),
		upvar:      raw.has("upvar"),
		standalone: raw.has("standalone"),
		keep:       raw.has("keep"),
		ignore:     raw.has("ignore"),
		hsuppress:  raw.has("hsuppress"),
		reciprocal: raw.has("reciprocal"),
		hasArg:     raw.has("argument"),
		helpText:   raw.vals["help"],
		pass:       raw.vals["pass"],
		errorMsg:   raw.vals["errormsg"],
	}
	if raw.has("parameter") {
		e.kind = kindParameter
	}
	if v, ok := raw.vals["default"]; ok {
		e.hasDefault, e.defaultValue = true, v
	}
	if v, ok := raw.vals["value"]; ok {
		e.hasValue, e.value = true, v
	}

	// Boolean switches carry their presence as 0/1.
	implicitBoolean := s.opts.Boolean && e.isSwitch() && !e.hasArg && !e.upvar &&
		!e.hasDefault && !e.hasValue && !e.required
	if implicitBoolean || raw.has("boolean") {
		e.hasDefault, e.defaultValue = true, "0"
		e.hasValue, e.value = true, "1"
	}

	if e.upvar {
		if v, ok := raw.vals["level"]; ok {
			e.level = v
		} else {
			e.level = s.opts.upvarLevel()
		}
	}

	switch {
	case e.ignore:
	case raw.has("key"):
		e.key = intern.Intern(raw.vals["key"])
	case raw.has("pass"):
	case s.opts.Template != "":
		e.key = intern.Intern(applyTemplate(s.opts.Template, e.name))
	default:
		e.key = e.name
	}

	if v, ok := raw.vals["enum"]; ok {
		if members, ok := s.opts.Enums[v]; ok {
			e.enum = members
		} else {
			e.enum = strings.Fields(v)
		}
	}
	if v, ok := raw.vals["validate"]; ok {
		fn, ok := s.opts.Validators[v]
		if !ok {
			return nil, errorf(ErrorTypeDefinition, "validator is not registered: %s", v)
		}
		e.validate = fn
		e.validateName = v
		e.validateMsg = v + " validation"
	}
	if v, ok := raw.vals["type"]; ok {
		t, ok := prefix.Resolve(allowedTypes, v, true)
		if !ok {
			return nil, errorf(ErrorTypeDefinition,
				"-type %s is not in the list of allowed types, must be %s",
				v, prefix.Summary(allowedTypes))
		}
		e.typeName = t
	}
	e.require = strings.Fields(raw.vals["require"])
	e.forbid = strings.Fields(raw.vals["forbid"])
	e.allow = strings.Fields(raw.vals["allow"])
	e.imply = strings.Fields(raw.vals["imply"])

	if e.isSwitch() {
		s.hasSwitches = true
		for _, a := range e.aliases {
			if _, ok := s.aliases[a]; ok {
				return nil, errorf(ErrorTypeDefinition, "element alias collision: %s", a)
			}
			s.aliases[a] = e.name
		}
		s.switches = append(s.switches, e.displayName())
		s.switchNames = append(s.switchNames, e.name)
	} else {
		if e.catchall {
			if s.catchallParam != "" {
				return nil, errorf(ErrorTypeDefinition,
					"multiple catchall parameters: %s and %s", s.catchallParam, e.name)
			}
			s.catchallParam = e.name
		}
		s.order = append(s.order, e.name)
	}

	// Every element name, parameters included, may collide with a switch
	// alias registered so far.
	if owner, ok := s.aliases[e.name]; ok {
		return nil, errorf(ErrorTypeDefinition,
			"collision of switch -%s alias with the -%s switch", owner, e.name)
	}

	if e.upvar && e.key != "" {
		if first, ok := upvarKeys[e.key]; ok {
			return nil, errorf(ErrorTypeDefinition,
				"multiple upvars to the same variable: %s %s", first, e.name)
		}
		upvarKeys[e.key] = e.name
	}
	return e, nil
}

// resolveConstraints verifies that constraint targets exist and applies
// reciprocal require injection.
func (s *schema) resolveConstraints() error {
	for _, e := range s.elements {
		for _, c := range []struct {
			name    string
			targets []string
		}{
			{"-require", e.require},
			{"-forbid", e.forbid},
			{"-allow", e.allow},
		} {
			for _, target := range c.targets {
				if _, ok := s.byName[target]; !ok {
					return errorf(ErrorTypeDefinition,
						"%s %s references undefined element: %s", e.name, c.name, target)
				}
			}
		}
	}
	for _, e := range s.elements {
		if (s.opts.Reciprocal || e.reciprocal) && len(e.require) > 0 {
			for _, target := range e.require {
				t := s.byName[target]
				t.require = append(t.require, e.name)
			}
		}
	}
	return nil
}

// resolveSharedKeys applies the rules for elements storing to a common key:
// only plain switches may share, sharing switches forbid each other, and each
// one stores its own name unless it carries an explicit -value.
func (s *schema) resolveSharedKeys() error {
	for _, e := range s.elements {
		if e.key == "" {
			continue
		}
		for _, other := range s.elements {
			if other == e || other.key != e.key {
				continue
			}
			if !e.isSwitch() {
				return errorf(ErrorTypeDefinition,
					"%s cannot be a parameter because it shares a key with %s",
					e.name, other.name)
			}
			if e.hasArg {
				return errorf(ErrorTypeDefinition,
					"%s cannot use -argument because it shares a key with %s",
					e.name, other.name)
			}
			if e.catchall {
				return errorf(ErrorTypeDefinition,
					"%s cannot use -catchall because it shares a key with %s",
					e.name, other.name)
			}
			if e.hasDefault && other.hasDefault {
				return errorf(ErrorTypeDefinition,
					"%s and %s cannot both use -default because they share a key",
					e.name, other.name)
			}
			if !containsString(other.forbid, e.name) {
				other.forbid = append(other.forbid, e.name)
			}
			if !e.hasValue {
				e.hasValue, e.value = true, e.name
			}
		}
	}
	return nil
}

func containsString(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// reorderParams moves required parameters ahead of optional ones, preserving
// relative order within each group.
func (s *schema) reorderParams() {
	reordered := make([]string, 0, len(s.order))
	for _, name := range s.order {
		if s.byName[name].required {
			reordered = append(reordered, name)
		}
	}
	for _, name := range s.order {
		if !s.byName[name].required {
			reordered = append(reordered, name)
		}
	}
	s.order = reordered
}

// compileSwitchRegexp builds the switch-token recognizer for the active
// syntax options.
func compileSwitchRegexp(opts *Options) *regexp.Regexp {
	var sb strings.Builder
	sb.WriteString(`^-`)
	if opts.Long {
		sb.WriteString(`-?`)
	}
	sb.WriteString(`(\w[\w-]*)`)
	if opts.EqualArg {
		sb.WriteString(`(?:(=)(.*))?`)
	} else {
		sb.WriteString(`()()`)
	}
	sb.WriteString(`$`)
	return regexp.MustCompile(sb.String())
}

// applyTemplate substitutes "%" in a key template with the element name;
// "\\" and "\%" escape the literal characters.
func applyTemplate(tpl, name string) string {
	var sb strings.Builder
	for i := 0; i < len(tpl); i++ {
		if tpl[i] == '\\' && i+1 < len(tpl) {
			if tpl[i+1] == '\\' || tpl[i+1] == '%' {
				sb.WriteByte(tpl[i+1])
				i++
				continue
			}
		}
		if tpl[i] == '%' {
			sb.WriteString(name)
			continue
		}
		sb.WriteByte(tpl[i])
	}
	return sb.String()
}
