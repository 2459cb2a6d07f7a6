package nyx

import "strings"

// PrintHolder prints a Holder following the Print contract of spec.md
// §4.3/§4.5: a null holder (None) prints as "None"; anything else defers
// to the object's own Print.
func PrintHolder(h Holder, ctx *Execution) error {
	if h.IsNull() {
		_, err := ctx.Output().Write([]byte("None"))
		return err
	}
	return h.Object().Print(ctx)
}

// stringifyHolder renders a Holder through its Print contract into an
// in-memory buffer, for the Stringify node (spec.md §4.5).
func stringifyHolder(h Holder, ctx *Execution) (string, error) {
	var b strings.Builder
	bufCtx := &Execution{Context: NewContext(&b, nil), globalScope: ctx.globalScope, source: ctx.source, callStack: ctx.callStack}
	if err := PrintHolder(h, bufCtx); err != nil {
		return "", err
	}
	return b.String(), nil
}
