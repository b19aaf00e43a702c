// Package exec implements the two execution backends: lowering a normalized
// expression tree to a flat instruction plan, and interpreting that plan.
//
// Each backend walks the tree exactly once, emitting an ordered instruction
// list; the tree is discarded afterwards. Execution is a straight-line
// interpreter threading one tagged accumulator (Int | Element | RingResult)
// through the instructions, seeded from runtime parameters on first use.
// Parallel branches use three stack opcodes (save, exchange, merge) over a
// small call-local stack; the merge combines by addition.
//
// The permutation backend threads class indices and is defined only for
// trees of ring, reduce, transform and terminal-lift atoms; grade, project
// and algebra atoms are rejected at lowering, and a grade instruction ever
// reaching its interpreter is an internal assertion failure. The algebraic
// backend threads elements and is total over all atom kinds; ring-family
// instructions there project the accumulator to its class, compute mod 96
// and lift back, yielding the explicit NotRankOne outcome when the
// accumulator has no class equivalent.
//
// Terminal instructions (tracked ring ops, factor, unit test, project, and
// lift on the permutation backend) end the sequence with their result;
// lowering guarantees nothing follows a terminal instruction.
package exec
