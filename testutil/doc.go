// Package testutil provides deterministic data generators for tests and
// benchmarks.
//
//	rng := testutil.NewRNG(42)
//	dense := rng.UnitVectors(100, 64)
//	sparse := rng.SparseVectors(100, 1000, 16) // unsorted, distinct indices
//
// Reset rewinds the generator so a second pass yields the same data.
package testutil
