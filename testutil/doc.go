// Package testutil provides testing utilities for the vector module.
//
// This package is intended for use in tests and benchmarks only. It provides
// a seeded random number generator for producing reproducible element
// sequences:
//
//	rng := testutil.NewRNG(seed)
//	elems := rng.Ints(3, 100) // 3 ints in [0, 100)
package testutil
