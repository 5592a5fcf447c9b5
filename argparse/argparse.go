// Package argparse provides declarative argument parsing: an argument list is
// matched against a definition of switches and parameters, yielding a keyed
// result or bound variables. Definitions support abbreviation, aliases,
// defaults, enumerations, validation predicates, type checks, inter-element
// constraints, pass-through collection, and generated help text.
//
// Definitions compile once per unique definition/option signature and are
// cached; parsing an argument list never mutates the cached form.
package argparse

import (
	"fmt"
)

// Definition is a list of element entries. Each entry is a token list: a
// name or shorthand first, then definition switches and their values.
type Definition [][]string

// filterDefinition applies the comment idiom: an entry whose first token is
// "#" is dropped, and the single token "#" additionally skips the next
// non-comment entry. "#" entries are recognized before the skip flag is
// consumed, so consecutive "#" entries keep it armed.
func filterDefinition(def [][]string) [][]string {
	out := make([][]string, 0, len(def))
	skip := false
	for _, entry := range def {
		if len(entry) > 0 && entry[0] == "#" {
			if len(entry) == 1 {
				skip = true
			}
			continue
		}
		if skip {
			skip = false
			continue
		}
		out = append(out, entry)
	}
	return out
}

// Parse matches args against the definition and returns the result map. A
// nil args is treated as an empty argument list. A nil opts uses defaults.
func (c *Context) Parse(def [][]string, args []string, opts *Options) (*Result, error) {
	return c.parse(def, args, opts, nil)
}

// ParseInto parses like Parse and then delivers the results through the
// binder: result keys become variables, stale variables from omitted elements
// are unset (subject to -keep), and upvar elements are linked through the
// VarLinker capability. A nil args consults the binder's ArgsSource fallback.
func (c *Context) ParseInto(def [][]string, args []string, opts *Options, binder Binder) (*Result, error) {
	if binder == nil {
		return nil, newError(ErrorTypeBinding, "binder is required")
	}
	return c.parse(def, args, opts, binder)
}

func (c *Context) parse(def [][]string, args []string, opts *Options, binder Binder) (*Result, error) {
	if opts == nil {
		opts = NewOptions()
	}
	filtered := filterDefinition(def)
	if len(filtered) == 0 {
		return nil, newError(ErrorTypeDefinition, "missing required parameter: definition")
	}

	base, err := c.schemaFor(filtered, opts)
	if err != nil {
		return nil, err
	}

	if args == nil {
		if binder != nil {
			src, ok := binder.(ArgsSource)
			if !ok {
				return nil, newError(ErrorTypeBinding, "Variable 'args' not found")
			}
			fallback, ok := src.Args()
			if !ok {
				return nil, newError(ErrorTypeBinding, "Variable 'args' not found")
			}
			args = fallback
		} else {
			args = []string{}
		}
	}

	if opts.Help && containsHelpToken(args, opts.helpToken()) {
		text := buildHelp(base, c.io.Width())
		he := &HelpError{Text: text, Level: opts.helpLevel()}
		if !opts.HelpReturn {
			fmt.Fprintln(c.io.Out(), text)
			he.printed = true
		}
		return nil, he
	}

	p := newParser(base.clone())
	defer p.release()
	if err := p.run(args); err != nil {
		return nil, err
	}

	if binder == nil || opts.Inline {
		return p.result, nil
	}
	if err := p.bind(binder); err != nil {
		return nil, err
	}
	return p.result, nil
}

// containsHelpToken reports whether the help token appears anywhere in the
// argument list. Detection runs before any matching, so the token triggers
// help even behind a "--" terminator.
func containsHelpToken(args []string, token string) bool {
	for _, a := range args {
		if a == token {
			return true
		}
	}
	return false
}

// bind delivers the parse result into the caller's scope.
func (p *parser) bind(binder Binder) error {
	if !p.opts.Keep {
		for _, e := range p.omitted {
			if e.keep || e.key == "" || p.result.Has(e.key) {
				continue
			}
			if err := binder.UnsetVar(e.key); err != nil {
				return errorf(ErrorTypeBinding, "cannot unset variable %s", e.key).
					WithCause(err)
			}
		}
	}
	upvars := make(map[string]*element)
	for _, e := range p.s.elements {
		if e.upvar && e.key != "" {
			upvars[e.key] = e
		}
	}
	for key, val := range p.result.values {
		if e, ok := upvars[key]; ok {
			linker, ok := binder.(VarLinker)
			if !ok {
				return errorf(ErrorTypeBinding,
					"element %s uses -upvar but the binder cannot link variables", e.name)
			}
			target, _ := val.(string)
			if err := linker.LinkVar(key, target, e.level); err != nil {
				return errorf(ErrorTypeBinding, "cannot link variable %s", key).
					WithCause(err)
			}
			continue
		}
		if err := binder.SetVar(key, val); err != nil {
			return errorf(ErrorTypeBinding, "cannot set variable %s", key).
				WithCause(err)
		}
	}
	return nil
}

// defaultContext backs the package-level entry points
var defaultContext = NewContext()

// Default returns the package-level parsing context
func Default() *Context {
	return defaultContext
}

// Parse matches args against the definition using the default context
func Parse(def [][]string, args []string, opts *Options) (*Result, error) {
	return defaultContext.Parse(def, args, opts)
}

// ParseInto parses using the default context and binds results through binder
func ParseInto(def [][]string, args []string, opts *Options, binder Binder) (*Result, error) {
	return defaultContext.ParseInto(def, args, opts, binder)
}
