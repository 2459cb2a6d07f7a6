package nyx

// Holder is a value handle with three states (spec.md §3): null (absence /
// None), owning, or non-owning (borrowed — used for passing `self` through
// a method call without the scope outliving its owner). Go's garbage
// collector, not Holder, is what actually reclaims heap objects; Holder's
// owning/non-owning distinction is kept because the data model specifies
// it, and because it lets Dereference assert the documented invariant:
// dereferencing a null holder is a programming error.
type Holder struct {
	obj     Object
	owning  bool
	present bool
}

// NullHolder represents absence / None.
func NullHolder() Holder { return Holder{} }

// Own wraps a freshly allocated object as an owning holder.
func Own(o Object) Holder { return Holder{obj: o, owning: true, present: true} }

// Borrow wraps an existing object as a non-owning holder — used exclusively
// for `self` inside a method call.
func Borrow(o Object) Holder { return Holder{obj: o, owning: false, present: true} }

func (h Holder) IsNull() bool { return !h.present }
func (h Holder) Owning() bool { return h.owning }

// Object dereferences the holder. Calling it on a null holder is an
// assertion failure — callers must check IsNull first.
func (h Holder) Object() Object {
	if !h.present {
		panic("nyx: dereference of null holder")
	}
	return h.obj
}

// AsInstance attempts to view the holder's object as a *ClassInstance.
func (h Holder) AsInstance() (*ClassInstance, bool) {
	if h.IsNull() {
		return nil, false
	}
	inst, ok := h.obj.(*ClassInstance)
	return inst, ok
}

// AsClass attempts to view the holder's object as a *Class.
func (h Holder) AsClass() (*Class, bool) {
	if h.IsNull() {
		return nil, false
	}
	cls, ok := h.obj.(*Class)
	return cls, ok
}
