// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The query engine lives here in four stages: the lexer tokenizes a
// raw query, the recursive-descent parser builds the operator tree
// with precedence OR < AND < NOT < grouping, the evaluator computes
// matching note sets via id-set algebra against an immutable corpus
// snapshot, and the explainer annotates each hit for highlighting.
// All four are total: a malformed query is a value, never a panic.
package services
