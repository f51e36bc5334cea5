// Package vecscore implements per-point named vector storage and a pluggable
// query-scoring engine for a vector-search storage layer.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────┐
//	│  vecscore.ScoreOffsets (fan-out, logging, metrics)         │
//	├───────────────────────────────────────────────────────────┤
//	│  scorer: SparseCustomQueryScorer / DenseCustomQueryScorer  │
//	├──────────────┬──────────────┬──────────────┬──────────────┤
//	│  query       │  hwcounter   │  storage     │  resource    │
//	│  (variants)  │  (cpu units) │  (by offset) │  (admission) │
//	├──────────────┴──────────────┴──────────────┴──────────────┤
//	│  vector (Dense/Sparse, NamedVectors) · distance            │
//	└───────────────────────────────────────────────────────────┘
//
// # Write path
//
// Ingest code builds a vector.NamedVectors per point, borrowing the caller's
// buffers, preprocesses it for each vector's metric and converts it with
// IntoOwned once the data must outlive the request:
//
//	nv := vector.FromView("text", vector.OfSparse(tokens))
//	nv.InsertView("image", vector.OfDense(embedding))
//	nv.Preprocess(func(name string) vector.Preprocessor { return distance.MetricCosine })
//	owned := nv.IntoOwned()
//
// # Read path
//
// Search code builds a query, binds it to storage and scores candidates:
//
//	q := query.NewRecommend(positives, negatives)
//	res, err := vecscore.ScoreOffsets(ctx, vecscore.SparseScorers(q, store), candidates,
//	    vecscore.WithParallelism(4),
//	)
//
// Scoring is synchronous and CPU-bound. A scorer is owned by one goroutine;
// ScoreOffsets builds one scorer per worker over shared read-only storage.
package vecscore
