// Package nyx implements the Nyx execution engine: an indentation-sensitive
// lexer and a tree-walking evaluator for a small dynamically-typed,
// Pythonesque scripting language with:
//   - Numbers (64-bit integers), strings and booleans.
//   - `class`/`def` with single inheritance and first-class methods.
//   - `if`/`else`, `and`/`or`/`not`, comparisons, and `print`.
//   - Non-local `return` that unwinds to the nearest enclosing method body.
//
// Compile a script with Engine.Compile, then Script.Run it against a
// Context that supplies the output (and, for future use, input) stream.
package nyx
