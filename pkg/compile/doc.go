// Package compile turns an operation descriptor into a cached, executable
// artifact: it builds the expression tree for the named operation, normalizes
// it, classifies its complexity into one of four tiers, selects an execution
// backend, and lowers the tree to that backend's instruction plan.
//
// Compilation is pure and idempotent: the same descriptor always yields a
// structurally identical plan, and a CompiledOperation behaves identically
// for identical inputs for all time. Descriptors are consumed as-is and
// never mutated. Expression trees exist only inside Compile — built,
// rewritten, lowered, then discarded.
//
// Backend selection: an explicit descriptor hint wins, except that any tree
// containing a grade-projection, projection or element-level algebra atom
// must run on the algebraic backend — grade projection on the permutation
// engine is an internal assertion failure, never a silent fallback. Under
// the auto hint, Tier0/Tier1 trees run on the permutation engine and
// Tier2/Tier3 on the algebraic engine.
package compile
