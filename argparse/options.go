package argparse

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// ValidatorFunc is a validation predicate for element values. It receives the
// raw value and reports whether it is acceptable.
type ValidatorFunc func(value string) bool

// Options holds the global parsing switches that control how a definition is
// compiled and how argument lists are matched against it.
type Options struct {
	// Boolean treats plain switches as boolean flags: omitted means "0",
	// present means "1"
	Boolean bool

	// EqualArg recognizes the -switch=arg inline argument syntax
	EqualArg bool

	// Exact disables unambiguous prefix matching for switch names and
	// enumeration members
	Exact bool

	// Inline returns results as a map instead of binding caller variables
	Inline bool

	// Keep preserves caller variables for omitted elements instead of
	// unsetting them
	Keep bool

	// Long recognizes the --switch long option syntax
	Long bool

	// Mixed allows switches to appear after parameters
	Mixed bool

	// Normalize canonicalizes pass-through collection: switches are stored
	// under their primary names and omitted defaulted switches are re-emitted
	Normalize bool

	// Reciprocal makes every -require constraint bidirectional
	Reciprocal bool

	// ParamsFirst requires the leading arguments to fill required parameters
	// before any switch processing
	ParamsFirst bool

	// Help enables help handling: a help token in the argument list renders
	// the help message instead of parsing
	Help bool

	// HelpText is the preamble placed at the top of the help message
	HelpText string

	// HelpReturn returns the help text to the caller instead of writing it
	HelpReturn bool

	// HelpLevel is the unwind level reported with a help request (default 2)
	HelpLevel int

	// Level is the default caller level for -upvar links (default "1")
	Level string

	// Pass is the result key collecting arguments that match no element
	Pass string

	// Template computes result keys by substituting "%" with the element
	// name ("\\%" escapes a literal percent)
	Template string

	// Enums maps names to enumeration member lists for -enum indirection
	Enums map[string][]string

	// Validators maps names to predicates for -validate indirection
	Validators map[string]ValidatorFunc
}

// NewOptions returns an empty option set ready for fluent configuration
func NewOptions() *Options {
	return &Options{}
}

// WithBoolean enables boolean treatment of plain switches
func (o *Options) WithBoolean() *Options { o.Boolean = true; return o }

// WithEqualArg enables the -switch=arg syntax
func (o *Options) WithEqualArg() *Options { o.EqualArg = true; return o }

// WithExact disables prefix matching
func (o *Options) WithExact() *Options { o.Exact = true; return o }

// WithInline selects inline result maps over variable binding
func (o *Options) WithInline() *Options { o.Inline = true; return o }

// WithKeep preserves caller variables for omitted elements
func (o *Options) WithKeep() *Options { o.Keep = true; return o }

// WithLong enables the --switch syntax
func (o *Options) WithLong() *Options { o.Long = true; return o }

// WithMixed allows switches after parameters
func (o *Options) WithMixed() *Options { o.Mixed = true; return o }

// WithNormalize canonicalizes pass-through collection
func (o *Options) WithNormalize() *Options { o.Normalize = true; return o }

// WithReciprocal makes -require constraints bidirectional
func (o *Options) WithReciprocal() *Options { o.Reciprocal = true; return o }

// WithParamsFirst reserves leading arguments for required parameters
func (o *Options) WithParamsFirst() *Options { o.ParamsFirst = true; return o }

// WithLevel sets the default -upvar caller level
func (o *Options) WithLevel(level string) *Options { o.Level = level; return o }

// WithPass collects unmatched arguments under the given result key
func (o *Options) WithPass(key string) *Options { o.Pass = key; return o }

// WithTemplate derives result keys from the given template
func (o *Options) WithTemplate(tpl string) *Options { o.Template = tpl; return o }

// WithHelp enables help handling with the given preamble text
func (o *Options) WithHelp(text string) *Options { o.Help = true; o.HelpText = text; return o }

// WithHelpReturn returns help text to the caller instead of printing it
func (o *Options) WithHelpReturn() *Options { o.HelpReturn = true; return o }

// WithHelpLevel sets the unwind level reported with a help request
func (o *Options) WithHelpLevel(level int) *Options { o.HelpLevel = level; return o }

// WithEnum registers a named enumeration list for -enum indirection
func (o *Options) WithEnum(name string, members ...string) *Options {
	if o.Enums == nil {
		o.Enums = make(map[string][]string)
	}
	o.Enums[name] = members
	return o
}

// WithValidator registers a named predicate for -validate indirection
func (o *Options) WithValidator(name string, fn ValidatorFunc) *Options {
	if o.Validators == nil {
		o.Validators = make(map[string]ValidatorFunc)
	}
	o.Validators[name] = fn
	return o
}

// validate rejects conflicting global switch combinations
func (o *Options) validate() error {
	if o.Inline && o.Keep {
		return newError(ErrorTypeOption, "-inline and -keep conflict")
	}
	if o.Mixed && o.ParamsFirst {
		return newError(ErrorTypeOption, "-mixed and -pfirst conflict")
	}
	return nil
}

// helpToken is the argument token that triggers help handling
func (o *Options) helpToken() string {
	if o.Long {
		return "--help"
	}
	return "-help"
}

func (o *Options) helpLevel() int {
	if o.HelpLevel == 0 {
		return 2
	}
	return o.HelpLevel
}

func (o *Options) upvarLevel() string {
	if o.Level == "" {
		return "1"
	}
	return o.Level
}

// globalSwitchNames is the vocabulary accepted by ParseGlobalTokens, in the
// order used for the cache-signature bitmask.
var globalSwitchNames = []string{
	"-boolean", "-enum", "-equalarg", "-exact", "-inline", "-keep",
	"-level", "-long", "-mixed", "-normalize", "-pass", "-reciprocal",
	"-template", "-validate", "-help", "-helplevel", "-pfirst", "-helpret",
}

// globalSwitchTakesArg marks the value-bearing global switches.
var globalSwitchTakesArg = map[string]bool{
	"-enum": true, "-level": true, "-pass": true, "-template": true,
	"-validate": true, "-help": true, "-helplevel": true,
}

// ParseGlobalTokens builds an option set from the string-driven calling
// convention: leading global switch tokens, resolved by unambiguous prefix,
// terminated by the first unrecognized token or an explicit "--". It returns
// the options and the number of tokens consumed.
//
// The -enum and -validate switches carry structured values in the native API
// and are rejected here; populate Options.Enums and Options.Validators
// instead.
func ParseGlobalTokens(tokens []string) (*Options, int, error) {
	o := NewOptions()
	i := 0
	for i < len(tokens) {
		name, ok := prefix.Resolve(globalSwitchNames, tokens[i], false)
		if !ok {
			break
		}
		var arg string
		if globalSwitchTakesArg[name] {
			if i+1 >= len(tokens) {
				return nil, 0, errorf(ErrorTypeOption, "Missing argument for %s", name)
			}
			arg = tokens[i+1]
			i++
		}
		switch name {
		case "-boolean":
			o.Boolean = true
		case "-equalarg":
			o.EqualArg = true
		case "-exact":
			o.Exact = true
		case "-inline":
			o.Inline = true
		case "-keep":
			o.Keep = true
		case "-long":
			o.Long = true
		case "-mixed":
			o.Mixed = true
		case "-normalize":
			o.Normalize = true
		case "-reciprocal":
			o.Reciprocal = true
		case "-pfirst":
			o.ParamsFirst = true
		case "-helpret":
			o.HelpReturn = true
		case "-level":
			o.Level = arg
		case "-pass":
			o.Pass = arg
		case "-template":
			o.Template = arg
		case "-help":
			o.Help = true
			o.HelpText = arg
		case "-helplevel":
			n, err := strconv.Atoi(arg)
			if err != nil {
				return nil, 0, errorf(ErrorTypeOption, "bad -helplevel value: %s", arg)
			}
			o.HelpLevel = n
		case "-enum", "-validate":
			return nil, 0, errorf(ErrorTypeOption,
				"%s takes a structured value; use Options.Enums or Options.Validators", name)
		}
		i++
	}
	if i < len(tokens) && tokens[i] == "--" {
		i++
	}
	return o, i, nil
}

// appendSignature renders the option set into a canonical cache-key fragment:
// a flag bitmask followed by "name=value;" pairs for the value-bearing
// switches, with registered enumerations and validator names folded in so a
// registry change cannot alias a stale schema.
func (o *Options) appendSignature(b []byte) []byte {
	mask := 0
	flags := []bool{
		o.Boolean, o.EqualArg, o.Exact, o.Inline, o.Keep, o.Long, o.Mixed,
		o.Normalize, o.Reciprocal, o.ParamsFirst, o.Help, o.HelpReturn,
	}
	for i, f := range flags {
		if f {
			mask |= 1 << i
		}
	}
	b = strconv.AppendInt(b, int64(mask), 10)
	b = append(b, ':')
	pairs := [][2]string{
		{"level", o.Level},
		{"pass", o.Pass},
		{"template", o.Template},
		{"help", o.HelpText},
	}
	for _, p := range pairs {
		if p[1] != "" {
			b = append(b, p[0]...)
			b = append(b, '=')
			b = append(b, p[1]...)
			b = append(b, ';')
		}
	}
	if o.HelpLevel != 0 {
		b = append(b, "helplevel="...)
		b = strconv.AppendInt(b, int64(o.HelpLevel), 10)
		b = append(b, ';')
	}
	if len(o.Enums) > 0 {
		names := make([]string, 0, len(o.Enums))
		for name := range o.Enums {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b = append(b, "enum:"...)
			b = append(b, name...)
			b = append(b, '=')
			b = append(b, strings.Join(o.Enums[name], ",")...)
			b = append(b, ';')
		}
	}
	if len(o.Validators) > 0 {
		names := make([]string, 0, len(o.Validators))
		for name := range o.Validators {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b = append(b, "validate:"...)
			b = append(b, name...)
			b = append(b, ';')
		}
	}
	return b
}
