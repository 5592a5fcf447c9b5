package argparse

import (
	"sync"

	"github.com/dzonerzy/go-argparse/internal/intern"
	"github.com/dzonerzy/go-argparse/internal/pool"
	argio "github.com/dzonerzy/go-argparse/io"
)

// Context owns the compiled-schema cache and the output plumbing for help
// text and trace logging. A Context is safe for concurrent use; the zero
// value is not usable, construct with NewContext.
type Context struct {
	mu    sync.RWMutex
	cache map[string]*schema

	io  *argio.IOManager
	log *argio.Logger
}

// NewContext creates a parsing context with standard streams
func NewContext() *Context {
	m := argio.New()
	return &Context{
		cache: make(map[string]*schema),
		io:    m,
		log:   argio.NewTraceLogger(m),
	}
}

// WithIO replaces the I/O manager used for help output and terminal width
// detection, returning the context for chaining
func (c *Context) WithIO(m *argio.IOManager) *Context {
	c.io = m
	c.log = argio.NewTraceLogger(m)
	return c
}

// cacheKey renders a definition and its options into the canonical signature
// the schema cache is keyed by.
func cacheKey(def [][]string, opts *Options) string {
	buf := pool.GetBuffer(256)
	defer pool.PutBuffer(buf)
	b := *buf
	for _, entry := range def {
		for _, tok := range entry {
			b = append(b, tok...)
			b = append(b, 0x1f)
		}
		b = append(b, 0x1e)
	}
	b = append(b, ' ')
	b = opts.appendSignature(b)
	*buf = b
	// copy before interning so the canonical string does not alias the
	// pooled buffer
	return intern.Intern(string(b))
}

// schemaFor returns the compiled schema for a definition, compiling at most
// once per signature.
func (c *Context) schemaFor(def [][]string, opts *Options) (*schema, error) {
	key := cacheKey(def, opts)

	c.mu.RLock()
	s, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		c.log.Debugf("schema cache hit: %q", key)
		return s, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.cache[key]; ok {
		return s, nil
	}
	s, err := compileSchema(def, opts)
	if err != nil {
		return nil, err
	}
	c.cache[key] = s
	c.log.Debugf("schema compiled: %q (%d elements)", key, len(s.elements))
	return s, nil
}

// clone produces a private copy of the schema for one invocation. Element
// structs are copied so matching can rewrite constraint state (standalone
// switches, implied tokens) without touching the cached schema; immutable
// parts are shared.
func (s *schema) clone() *schema {
	dup := &schema{
		opts:          s.opts,
		elements:      make([]*element, len(s.elements)),
		byName:        make(map[string]*element, len(s.byName)),
		aliases:       s.aliases,
		order:         make([]string, len(s.order), len(s.order)+1),
		switches:      s.switches,
		switchNames:   s.switchNames,
		catchallParam: s.catchallParam,
		requiredCount: s.requiredCount,
		hasSwitches:   s.hasSwitches,
		passDummy:     s.passDummy,
		switchRe:      s.switchRe,
	}
	copy(dup.order, s.order)
	for i, e := range s.elements {
		ce := *e
		dup.elements[i] = &ce
		dup.byName[ce.name] = &ce
	}
	return dup
}
