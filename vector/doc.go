// Package vector defines the per-point vector representation.
//
// # Vector Values
//
// A Vector is a tagged union holding exactly one of:
//
//   - Dense: an ordered []float32 of fixed dimensionality
//   - Sparse: parallel Indices/Values slices of (index, value) pairs
//
// Go slices already behave like read-only views: a Vector passed by value
// aliases the caller's backing arrays. Clone materializes an owned copy.
//
// # Named Vectors
//
// NamedVectors maps vector names to Vectors for a single point. It keeps up to
// four entries inline and tracks, per entry, whether the vector is owned or a
// borrowed view. Only two entry points clone borrowed data:
//
//   - IntoOwned: clones every borrowed entry (the persistence boundary)
//   - Preprocess: clones and rewrites every Dense entry
//
// Usage:
//
//	nv := vector.FromView("image", vector.OfDense(embedding))
//	nv.InsertView("text", vector.OfSparse(tokens))
//	nv.Preprocess(func(name string) vector.Preprocessor { return distance.MetricCosine })
//	persisted := nv.IntoOwned()
package vector
