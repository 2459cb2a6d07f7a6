package nyx

// Node is the single operation every AST variant implements (spec.md §3):
// Execute evaluates the node against a scope and the active execution,
// returning a result Holder plus a "returning" flag. When returning is
// true, the caller must propagate the triple unchanged without observing
// the value — only MethodBody is allowed to convert it back into a normal
// result (spec.md §4.6, §9).
type Node interface {
	Execute(scope *Scope, exec *Execution) (result Holder, returning bool, err error)
}

// Statement and Expression are both just Node: the spec draws no line
// between them at the Execute level (every node, statement or expression,
// has the same signature).
type Statement = Node
type Expression = Node
