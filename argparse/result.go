package argparse

import "sort"

// Result holds parsed values keyed by element key. Scalar values are strings;
// catchall and pass-through values are string slices.
type Result struct {
	values map[string]any
}

func newResult() *Result {
	return &Result{values: make(map[string]any)}
}

// Has reports whether a key received a value (including defaults)
func (r *Result) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Get returns the raw value for a key: string, []string, or nil when absent
func (r *Result) Get(key string) any {
	return r.values[key]
}

// String returns the scalar value for a key, or "" when absent or non-scalar
func (r *Result) String(key string) string {
	if s, ok := r.values[key].(string); ok {
		return s
	}
	return ""
}

// List returns the slice value for a key. A scalar value is returned as a
// one-element slice; absent keys return nil.
func (r *Result) List(key string) []string {
	switch v := r.values[key].(type) {
	case []string:
		return v
	case string:
		return []string{v}
	}
	return nil
}

// Keys returns the result keys in sorted order
func (r *Result) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of stored keys
func (r *Result) Len() int {
	return len(r.values)
}

func (r *Result) set(key string, value any) {
	r.values[key] = value
}

// Binder delivers parse results into the caller's variable scope. It is the
// native counterpart of script-level variable assignment: SetVar stores a
// value (string or []string) under a variable name, UnsetVar removes a
// variable left over from a previous parse.
type Binder interface {
	SetVar(name string, value any) error
	UnsetVar(name string) error
}

// ArgsSource is an optional Binder capability supplying the fallback argument
// list when the caller passes no explicit arguments.
type ArgsSource interface {
	Args() ([]string, bool)
}

// VarLinker is an optional Binder capability for upvar-style elements: the
// parsed value names a variable in an outer scope that the element's key is
// linked to, at the given caller level.
type VarLinker interface {
	LinkVar(key, target, level string) error
}

// MapBinder is a Binder backed by a plain map, convenient for tests and for
// callers that want variable semantics without a real scope.
type MapBinder struct {
	Vars map[string]any

	// FallbackArgs is returned by Args when non-nil
	FallbackArgs []string

	// Links records LinkVar calls as key -> target
	Links map[string]string
}

// NewMapBinder creates an empty map-backed binder
func NewMapBinder() *MapBinder {
	return &MapBinder{Vars: make(map[string]any), Links: make(map[string]string)}
}

// SetVar stores the value under name
func (b *MapBinder) SetVar(name string, value any) error {
	b.Vars[name] = value
	return nil
}

// UnsetVar removes the variable
func (b *MapBinder) UnsetVar(name string) error {
	delete(b.Vars, name)
	return nil
}

// Args returns the configured fallback argument list
func (b *MapBinder) Args() ([]string, bool) {
	if b.FallbackArgs == nil {
		return nil, false
	}
	return b.FallbackArgs, true
}

// LinkVar records the link and mirrors the target name into Vars
func (b *MapBinder) LinkVar(key, target, level string) error {
	b.Links[key] = target
	return nil
}
