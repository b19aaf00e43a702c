// Vela is a symbolic computation engine over a 96-class equivalence
// structure, with a permutation engine for cheap class arithmetic and a
// composite algebraic engine for element-level computation.
//
// Usage:
//
//	# Verify the permutation/algebra bridge
//	vela verify
//
//	# Compile every descriptor in a catalog and show the plan summary
//	vela compile ./catalog
//
//	# Compile and invoke one operation
//	vela eval --catalog ./catalog --op ring/add --param value=90
//
//	# Show version information
//	vela version
package main

func main() {
	Execute()
}
