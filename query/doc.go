// Package query defines what a scorer compares stored vectors against.
//
// A Query is one of a closed set of variants. Each variant embeds one or more
// example vectors and combines their per-example similarities with a fixed
// rule:
//
//   - Nearest: the similarity to its single example
//   - Recommend: best-score recommendation over positive and negative examples
//   - Weighted: weighted sum of similarities
//   - Discover: context-pair ranking plus the target similarity
//   - Context: sum of context-pair losses
//
// ScoreBy evaluates the similarity function once per embedded example.
// Transform rebuilds a query with every example mapped to another type,
// which scorers use to canonicalize examples once before scoring many points.
package query
