package query

import (
	"errors"
	"math"
)

// ErrNilQuery is returned when a nil Query is transformed.
var ErrNilQuery = errors.New("query: nil query")

// Query is implemented only by the variants of this package.
type Query[T any] interface {
	// ScoreBy combines similarity(example) over all examples.
	ScoreBy(similarity func(example T) float32) float32

	// Examples returns every embedded example in a stable order.
	Examples() []T

	sealed()
}

// contextMargin keeps a perfectly balanced context pair from counting as satisfied.
const contextMargin = float32(1.1920929e-07) // float32 machine epsilon

// fastSigmoid maps x into (-1, 1).
func fastSigmoid(x float32) float32 {
	return x / (1 + float32(math.Abs(float64(x))))
}

// scaledFastSigmoid maps x into (0, 1).
func scaledFastSigmoid(x float32) float32 {
	return 0.5 * (fastSigmoid(x) + 1)
}

// Nearest scores against a single example.
type Nearest[T any] struct {
	Example T
}

// NewNearest returns a single-example query.
func NewNearest[T any](example T) Nearest[T] {
	return Nearest[T]{Example: example}
}

// ScoreBy returns similarity(q.Example).
func (q Nearest[T]) ScoreBy(similarity func(T) float32) float32 {
	return similarity(q.Example)
}

// Examples returns the single example.
func (q Nearest[T]) Examples() []T { return []T{q.Example} }

func (Nearest[T]) sealed() {}

// Recommend implements best-score recommendation.
//
// If the best positive similarity beats the best negative one the score is
// scaledFastSigmoid(bestPositive), in (0, 1); otherwise it is
// -scaledFastSigmoid(bestNegative), in (-1, 0). A query without examples
// scores 0.
type Recommend[T any] struct {
	Positives []T
	Negatives []T
}

// NewRecommend returns a recommendation query.
func NewRecommend[T any](positives, negatives []T) Recommend[T] {
	return Recommend[T]{Positives: positives, Negatives: negatives}
}

// ScoreBy combines the best positive and best negative similarity.
func (q Recommend[T]) ScoreBy(similarity func(T) float32) float32 {
	if len(q.Positives) == 0 && len(q.Negatives) == 0 {
		return 0
	}

	bestPositive := float32(math.Inf(-1))
	for _, p := range q.Positives {
		bestPositive = max(bestPositive, similarity(p))
	}

	bestNegative := float32(math.Inf(-1))
	for _, n := range q.Negatives {
		bestNegative = max(bestNegative, similarity(n))
	}

	if bestPositive > bestNegative {
		return scaledFastSigmoid(bestPositive)
	}
	return -scaledFastSigmoid(bestNegative)
}

// Examples returns positives followed by negatives.
func (q Recommend[T]) Examples() []T {
	out := make([]T, 0, len(q.Positives)+len(q.Negatives))
	out = append(out, q.Positives...)
	return append(out, q.Negatives...)
}

func (Recommend[T]) sealed() {}

// Weighted sums weight*similarity over its examples. Examples without a
// matching weight count with weight 1.
type Weighted[T any] struct {
	Vectors []T
	Weights []float32
}

// NewWeighted returns a weighted-sum query.
func NewWeighted[T any](vectors []T, weights []float32) Weighted[T] {
	return Weighted[T]{Vectors: vectors, Weights: weights}
}

// ScoreBy returns the weighted sum of similarities.
func (q Weighted[T]) ScoreBy(similarity func(T) float32) float32 {
	var sum float32
	for i, v := range q.Vectors {
		w := float32(1)
		if i < len(q.Weights) {
			w = q.Weights[i]
		}
		sum += w * similarity(v)
	}
	return sum
}

// Examples returns the weighted vectors.
func (q Weighted[T]) Examples() []T { return append([]T(nil), q.Vectors...) }

func (Weighted[T]) sealed() {}

// ContextPair is a positive/negative example pair.
type ContextPair[T any] struct {
	Positive T
	Negative T
}

// rank is +1 when the candidate is closer to the positive example, -1 otherwise.
func (p ContextPair[T]) rank(similarity func(T) float32) int {
	if similarity(p.Positive) > similarity(p.Negative) {
		return 1
	}
	return -1
}

// loss is 0 when the pair is satisfied by more than the margin and negative otherwise.
func (p ContextPair[T]) loss(similarity func(T) float32) float32 {
	diff := similarity(p.Positive) - similarity(p.Negative) - contextMargin
	return fastSigmoid(min(diff, 0))
}

// Discover ranks candidates by how many context pairs they satisfy, and
// breaks ties by the similarity to Target: sum(rank) + scaledFastSigmoid(target).
type Discover[T any] struct {
	Target T
	Pairs  []ContextPair[T]
}

// NewDiscover returns a discovery query.
func NewDiscover[T any](target T, pairs []ContextPair[T]) Discover[T] {
	return Discover[T]{Target: target, Pairs: pairs}
}

// ScoreBy returns the pair rank sum plus the scaled target similarity.
func (q Discover[T]) ScoreBy(similarity func(T) float32) float32 {
	rank := 0
	for _, p := range q.Pairs {
		rank += p.rank(similarity)
	}
	return float32(rank) + scaledFastSigmoid(similarity(q.Target))
}

// Examples returns the target followed by each pair's positive and negative.
func (q Discover[T]) Examples() []T {
	out := make([]T, 0, 1+2*len(q.Pairs))
	out = append(out, q.Target)
	for _, p := range q.Pairs {
		out = append(out, p.Positive, p.Negative)
	}
	return out
}

func (Discover[T]) sealed() {}

// Context scores how well a candidate satisfies every pair: the sum of the
// pair losses, so 0 means all pairs are satisfied.
type Context[T any] struct {
	Pairs []ContextPair[T]
}

// NewContext returns a context query.
func NewContext[T any](pairs []ContextPair[T]) Context[T] {
	return Context[T]{Pairs: pairs}
}

// ScoreBy returns the summed pair losses.
func (q Context[T]) ScoreBy(similarity func(T) float32) float32 {
	var sum float32
	for _, p := range q.Pairs {
		sum += p.loss(similarity)
	}
	return sum
}

// Examples returns each pair's positive and negative.
func (q Context[T]) Examples() []T {
	out := make([]T, 0, 2*len(q.Pairs))
	for _, p := range q.Pairs {
		out = append(out, p.Positive, p.Negative)
	}
	return out
}

func (Context[T]) sealed() {}
