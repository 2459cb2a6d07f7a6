package nyx

// Scope (the spec's "Closure") is a name -> Holder mapping for a single
// call frame or the top level. A method's fresh scope chains to the
// execution's global scope so that globally bound classes and top-level
// assignments remain visible from inside method bodies, the way
// `vibes/env.go`'s Env chains to its enclosing scope.
type Scope struct {
	parent *Scope
	vars   map[string]Holder
}

func NewScope(parent *Scope) *Scope {
	return &Scope{parent: parent, vars: make(map[string]Holder)}
}

// Get looks up name in this scope, then walks the parent chain.
func (s *Scope) Get(name string) (Holder, bool) {
	if h, ok := s.vars[name]; ok {
		return h, true
	}
	if s.parent != nil {
		return s.parent.Get(name)
	}
	return Holder{}, false
}

// Set binds name to val in this scope frame (Assignment always binds
// locally; it never walks up to shadow an outer binding).
func (s *Scope) Set(name string, val Holder) {
	s.vars[name] = val
}

// Names returns the names bound directly in this scope frame, in no
// particular order. Used by the REPL's variables panel (cmd/nyx/repl.go);
// nothing in the core interpreter needs it.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.vars))
	for name := range s.vars {
		names = append(names, name)
	}
	return names
}
