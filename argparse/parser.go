package argparse

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dzonerzy/go-argparse/internal/pool"
	"github.com/dzonerzy/go-argparse/internal/prefix"
)

// parser carries per-invocation matching state over a cloned schema. One
// parser handles exactly one argument list.
type parser struct {
	s    *schema
	opts *Options

	result  *Result
	pass    map[string][]string
	present map[string]bool
	omitted map[string]*element

	// params is the positional queue, backed by a pooled slice returned in
	// release; values stored in the result never alias it
	params    []string
	paramsBuf *[]string
}

func newParser(s *schema) *parser {
	p := &parser{
		s:       s,
		opts:    s.opts,
		result:  newResult(),
		pass:    make(map[string][]string),
		present: make(map[string]bool),
		omitted: make(map[string]*element, len(s.elements)),
	}
	p.paramsBuf = pool.GetStringSlice()
	p.params = *p.paramsBuf
	for _, e := range s.elements {
		p.omitted[e.name] = e
	}
	return p
}

// release returns the pooled parameter queue once the result is built
func (p *parser) release() {
	if p.paramsBuf == nil {
		return
	}
	*p.paramsBuf = p.params
	pool.PutStringSlice(p.paramsBuf)
	p.paramsBuf, p.params = nil, nil
}

// run matches the argument list against the schema and populates the result
func (p *parser) run(argv []string) error {
	// Reserve tokens for required parameters: the tail normally, the head
	// under params-first. Mixed mode reserves nothing.
	var force []string
	if !p.opts.Mixed {
		nreq := p.s.requiredCount
		if p.opts.ParamsFirst {
			if nreq > len(argv) {
				nreq = len(argv)
			}
			force, argv = argv[:nreq], argv[nreq:]
		} else {
			split := len(argv) - nreq
			if split < 0 {
				split = 0
			}
			force, argv = argv[split:], argv[:split]
		}
	}

	if p.s.hasSwitches {
		if err := p.matchSwitches(argv); err != nil {
			return err
		}
		if err := p.checkMissingSwitches(); err != nil {
			return err
		}
	} else {
		p.params = append(p.params, argv...)
	}

	if p.opts.Normalize {
		for _, e := range p.s.elements {
			if e.isSwitch() && !p.present[e.name] && e.pass != "" && e.hasArg && e.hasDefault {
				p.appendPass(e.pass, "-"+e.name, e.defaultValue)
			}
		}
	}

	order, alloc, err := p.allocateParams(force)
	if err != nil {
		return err
	}
	if err := p.checkConstraints(); err != nil {
		return err
	}
	if err := p.storeParams(order, alloc); err != nil {
		return err
	}

	if p.opts.Normalize {
		for _, e := range p.s.elements {
			if !e.isSwitch() && !p.present[e.name] && e.pass != "" && e.hasDefault {
				p.appendPassGuarded(e.pass, []string{e.defaultValue})
			}
		}
	}

	p.fillDefaults()
	return nil
}

// matchSwitches consumes the switch portion of the argument list, moving
// non-switch tokens to the parameter queue.
func (p *parser) matchSwitches(queue []string) error {
	for len(queue) > 0 {
		tok := queue[0]
		m := p.s.switchRe.FindStringSubmatch(tok)
		if m == nil {
			if tok == "--" {
				p.params = append(p.params, queue[1:]...)
				return nil
			}
			if p.opts.Mixed || p.opts.ParamsFirst {
				p.params = append(p.params, tok)
				queue = queue[1:]
				continue
			}
			p.params = append(p.params, queue...)
			return nil
		}
		queue = queue[1:]
		name, eq, eqVal := m[1], m[2], m[3]
		if canon, ok := p.s.aliases[name]; ok {
			name = canon
		}
		e := p.s.byName[name]
		if e != nil && !e.isSwitch() {
			e = nil
		}
		if e == nil && !p.opts.Exact {
			if full, ok := prefix.Resolve(p.s.switchNames, name, false); ok {
				e = p.s.byName[full]
			}
		}
		if e == nil {
			if p.s.passDummy != nil {
				p.appendPass(p.s.passDummy.pass, tok)
				continue
			}
			return p.badSwitch(tok, name)
		}

		if e.standalone {
			p.liftConstraints()
		}
		p.present[e.name] = true
		delete(p.omitted, e.name)

		if eq == "=" {
			if !e.hasArg {
				return errorf(ErrorTypeSurplus, "-%s doesn't allow an argument", e.name).
					WithElement(e.name)
			}
			queue = append([]string{eqVal}, queue...)
		}

		if e.catchall {
			vals := make([]string, 0, len(queue))
			for _, v := range queue {
				vv, err := validateValue(e, p.opts, v)
				if err != nil {
					return err
				}
				vals = append(vals, vv)
			}
			p.store(e, vals)
			if e.pass != "" {
				head := tok
				if p.opts.Normalize {
					head = "-" + e.name
				}
				p.appendPass(e.pass, head)
				p.appendPass(e.pass, vals...)
			}
			return nil
		}

		switch {
		case !e.hasArg:
			p.store(e, e.value)
			p.passSwitch(e, tok)

		case len(queue) > 0:
			raw := queue[0]
			val, err := validateValue(e, p.opts, raw)
			if err != nil {
				return err
			}
			if e.optional {
				// pair form keeps "present with empty value" distinguishable
				p.store(e, []string{"", val})
			} else {
				p.store(e, val)
			}
			if e.pass != "" {
				switch {
				case p.opts.Normalize:
					p.appendPass(e.pass, "-"+e.name, val)
				case eq == "=":
					p.appendPass(e.pass, tok)
				default:
					p.appendPass(e.pass, tok, val)
				}
			}
			queue = queue[1:]

		default:
			if !e.optional {
				return errorf(ErrorTypeMissingValue, "-%s requires an argument", e.name).
					WithElement(e.name)
			}
			p.store(e, "")
			p.passSwitch(e, tok)
		}

		if len(e.imply) > 0 {
			queue = append(append([]string(nil), e.imply...), queue...)
			e.imply = nil
		}
	}
	return nil
}

// liftConstraints implements standalone switches: all requirement and
// relation constraints are dropped and parameters become optional.
func (p *parser) liftConstraints() {
	for _, el := range p.s.elements {
		el.required = false
		el.require, el.forbid, el.allow = nil, nil, nil
		if !el.isSwitch() {
			el.optional = true
		}
	}
}

func (p *parser) badSwitch(tok, name string) error {
	sorted := append([]string(nil), p.s.switches...)
	sort.Strings(sorted)
	err := errorf(ErrorTypeUnknownSwitch, "bad switch %q: must be %s",
		tok, prefix.JoinOr(sorted))
	if m := prefix.Closest(p.s.switchNames, name); m != "" {
		err = err.WithSuggestion(fmt.Sprintf("Did you mean '-%s'?", m))
	}
	return err
}

func (p *parser) checkMissingSwitches() error {
	var missing []string
	for _, e := range p.s.elements {
		if e.isSwitch() && e.required && !p.present[e.name] {
			missing = append(missing, e.displayName())
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	plural := ""
	if len(missing) > 1 {
		plural = "es"
	}
	return errorf(ErrorTypeMissingRequired, "missing required switch%s: %s",
		plural, prefix.JoinAnd(missing))
}

// allocateParams merges the reserved tokens back into the parameter queue and
// decides how many values each parameter receives. The returned order may
// gain a trailing "" entry standing for surplus absorbed by the pass key.
func (p *parser) allocateParams(force []string) ([]string, map[string]int, error) {
	if p.opts.ParamsFirst {
		p.params = append(append([]string(nil), force...), p.params...)
	} else {
		p.params = append(p.params, force...)
	}

	count := len(p.params)
	alloc := make(map[string]int, len(p.s.order))
	order := p.s.order

	var missing []string
	for _, name := range order {
		if !p.s.byName[name].required {
			continue
		}
		if count > 0 {
			alloc[name] = 1
			count--
			p.present[name] = true
			delete(p.omitted, name)
		} else {
			missing = append(missing, name)
		}
	}
	if len(missing) == 1 {
		return nil, nil, errorf(ErrorTypeMissingRequired,
			"missing required parameter: %s", missing[0])
	}
	if len(missing) > 1 {
		return nil, nil, errorf(ErrorTypeMissingRequired,
			"missing required parameters: %s", prefix.JoinAnd(missing))
	}

	for _, name := range order {
		e := p.s.byName[name]
		if e.required || e.catchall || count == 0 {
			continue
		}
		alloc[name] = 1
		count--
		p.present[name] = true
		delete(p.omitted, name)
	}

	if count > 0 {
		switch {
		case p.s.catchallParam != "":
			alloc[p.s.catchallParam] += count
			p.present[p.s.catchallParam] = true
			delete(p.omitted, p.s.catchallParam)
		case p.s.passDummy != nil:
			order = append(append([]string(nil), order...), "")
			alloc[""] = count
		default:
			return nil, nil, newError(ErrorTypeSurplus, "too many arguments")
		}
	}
	return order, alloc, nil
}

// checkConstraints sweeps require, forbid, and allow relations over the
// elements present in this invocation.
func (p *parser) checkConstraints() error {
	for _, e := range p.s.elements {
		if !p.present[e.name] {
			continue
		}
		for _, t := range e.require {
			if !p.present[t] {
				return errorf(ErrorTypeConstraint, "%s requires %s",
					e.dashName(), p.s.byName[t].dashName())
			}
		}
		for _, t := range e.forbid {
			if p.present[t] {
				return errorf(ErrorTypeConstraint, "%s conflicts with %s",
					e.dashName(), p.s.byName[t].dashName())
			}
		}
		if len(e.allow) == 0 {
			continue
		}
		for _, other := range p.s.elements {
			if other == e || !p.present[other.name] {
				continue
			}
			if !containsString(e.allow, other.name) {
				return errorf(ErrorTypeConstraint, "%s doesn't allow %s",
					e.name, other.name)
			}
		}
	}
	return nil
}

// storeParams assigns queued values to parameters positionally per the
// allocation counts.
func (p *parser) storeParams(order []string, alloc map[string]int) error {
	idx := 0
	for _, name := range order {
		n := alloc[name]
		if n == 0 {
			continue
		}
		if name == "" {
			p.appendPassGuarded(p.s.passDummy.pass, p.params[idx:idx+n])
			idx += n
			continue
		}
		e := p.s.byName[name]
		if e.catchall {
			vals := make([]string, 0, n)
			for _, v := range p.params[idx : idx+n] {
				vv, err := validateValue(e, p.opts, v)
				if err != nil {
					return err
				}
				vals = append(vals, vv)
			}
			p.store(e, vals)
			if e.pass != "" {
				p.appendPassGuarded(e.pass, vals)
			}
			idx += n
			continue
		}
		vv, err := validateValue(e, p.opts, p.params[idx])
		if err != nil {
			return err
		}
		p.store(e, vv)
		if e.pass != "" {
			p.appendPassGuarded(e.pass, []string{vv})
		}
		idx++
	}
	return nil
}

// fillDefaults completes the result with element defaults, empty catchall
// lists, and collected pass-through lists.
func (p *parser) fillDefaults() {
	for _, e := range p.s.elements {
		if e.key == "" || p.result.Has(e.key) {
			continue
		}
		if e.hasDefault {
			p.result.set(e.key, e.defaultValue)
		} else if e.catchall {
			p.result.set(e.key, []string{})
		}
	}
	passKeys := make(map[string]bool)
	for _, e := range p.s.elements {
		if e.pass != "" {
			passKeys[e.pass] = true
		}
	}
	if p.s.passDummy != nil {
		passKeys[p.s.passDummy.pass] = true
	}
	for k := range passKeys {
		if vals, ok := p.pass[k]; ok {
			p.result.set(k, vals)
		} else {
			p.result.set(k, []string{})
		}
	}
}

func (p *parser) store(e *element, value any) {
	if e.key != "" {
		p.result.set(e.key, value)
	}
}

func (p *parser) passSwitch(e *element, tok string) {
	if e.pass == "" {
		return
	}
	if p.opts.Normalize {
		p.appendPass(e.pass, "-"+e.name)
	} else {
		p.appendPass(e.pass, tok)
	}
}

func (p *parser) appendPass(key string, vals ...string) {
	p.pass[key] = append(p.pass[key], vals...)
}

// appendPassGuarded prepends a "--" terminator before the first value when it
// could be mistaken for a switch on a later re-parse.
func (p *parser) appendPassGuarded(key string, vals []string) {
	if len(vals) == 0 {
		return
	}
	if len(p.pass[key]) == 0 && strings.HasPrefix(vals[0], "-") {
		p.pass[key] = append(p.pass[key], "--")
	}
	p.pass[key] = append(p.pass[key], vals...)
}
