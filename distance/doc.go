// Package distance provides vector distance calculations.
//
// # Supported Metrics
//
//   - MetricL2: Squared Euclidean distance (default)
//   - MetricCosine: Cosine similarity (normalized dot product)
//   - MetricDot: Dot product (inner product)
//   - MetricManhattan: L1 distance
//
// A Metric is also a vector.Preprocessor: cosine vectors are L2-normalized on
// the write path so that scoring reduces to a dot product.
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.MetricCosine.Similarity(a, b)
//	normalized, ok := distance.NormalizeL2Copy(vec)
package distance
