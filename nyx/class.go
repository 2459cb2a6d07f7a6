package nyx

// Method is a named, callable body with an ordered parameter list
// (spec.md §3).
type Method struct {
	Name    string
	Params  []string
	Body    Statement
}

// Class is a callable type descriptor: a name, its own declared methods in
// source order, and an optional parent. The parent reference is a plain Go
// pointer (non-owning in the spec's sense — Go's GC, not Holder, decides
// its lifetime) and must outlive the class, which in practice means every
// class definition outlives the script that defined it.
type Class struct {
	Name    string
	Own     []*Method
	Parent  *Class

	// lookup is built eagerly at construction time: parent methods first,
	// then this class's own methods override by name — O(1) dispatch
	// without walking the parent chain at call time (spec.md §9).
	lookup map[string]*Method
}

// NewClass builds a Class and its eager method lookup table.
func NewClass(name string, own []*Method, parent *Class) *Class {
	c := &Class{Name: name, Own: own, Parent: parent}
	c.lookup = make(map[string]*Method)
	if parent != nil {
		for name, m := range parent.lookup {
			c.lookup[name] = m
		}
	}
	for _, m := range own {
		c.lookup[m.Name] = m
	}
	return c
}

// GetMethod returns the most-derived Method with the given name, or nil.
func (c *Class) GetMethod(name string) *Method {
	return c.lookup[name]
}
