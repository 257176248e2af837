// Package vector provides a fixed-length sequence container whose length is
// part of its type.
//
// A Vector[T, L] declares "this sequence has exactly L elements" as a
// compile-time fact. Indexing with a statically known position is checked by
// the type checker: reading past the declared length is a compile error, not
// a runtime panic, and the accepted accesses carry no runtime bounds check.
//
// # Quick Start
//
// Literal construction derives the length from the number of arguments:
//
//	v := vector.Of3(1, 3, 4)
//	v.Len()         // 3
//	vector.At0(&v)  // 1
//	vector.At1(&v)  // 3
//	vector.At2(&v)  // 4
//	vector.At3(&v)  // does not compile
//
// Explicit lengths use the type-level naturals from the nat package:
//
//	w := vector.Repeat[nat.N3]("x")        // ["x" "x" "x"]
//	u, err := vector.FromSlice[nat.N3](s)  // validated against len(s)
//
// Mutation goes through the Ref accessors:
//
//	*vector.Ref1(&v) = 7
//
// # How the check works
//
// The nat package defines one zero-sized marker type per supported integer
// (nat.N0 through nat.N32) together with generated evidence sets
// (nat.AtLeast1 through nat.AtLeast32). Each accessor AtK/RefK constrains the
// vector's length to nat.AtLeast(K+1), so an instantiation with a shorter
// length has no valid type argument and is rejected during type checking.
// The marker types occupy no storage; the length never exists at runtime
// except as the value reported by Len.
//
// Accessors, literal constructors and the nat tables are generated by
// internal/cmd/natgen up to a practical bound (lengths to 32, literal arity
// to 16). Runtime-computed index values are deliberately unsupported: there
// is no way to turn an int into a type-level natural.
package vector
