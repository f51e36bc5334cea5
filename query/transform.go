package query

import "fmt"

// Transform returns a query of the same variant with every example mapped by
// fn. It stops at the first error and returns it wrapped; q is never modified
// and no partially mapped query is returned.
func Transform[T, U any](q Query[T], fn func(T) (U, error)) (Query[U], error) {
	if q == nil {
		return nil, ErrNilQuery
	}

	switch q := q.(type) {
	case Nearest[T]:
		example, err := mapOne(fn, q.Example, "example")
		if err != nil {
			return nil, err
		}
		return Nearest[U]{Example: example}, nil
	case Recommend[T]:
		positives, err := mapAll(fn, q.Positives, "positive")
		if err != nil {
			return nil, err
		}
		negatives, err := mapAll(fn, q.Negatives, "negative")
		if err != nil {
			return nil, err
		}
		return Recommend[U]{Positives: positives, Negatives: negatives}, nil
	case Weighted[T]:
		vectors, err := mapAll(fn, q.Vectors, "vector")
		if err != nil {
			return nil, err
		}
		return Weighted[U]{Vectors: vectors, Weights: append([]float32(nil), q.Weights...)}, nil
	case Discover[T]:
		target, err := mapOne(fn, q.Target, "target")
		if err != nil {
			return nil, err
		}
		pairs, err := mapPairs(fn, q.Pairs)
		if err != nil {
			return nil, err
		}
		return Discover[U]{Target: target, Pairs: pairs}, nil
	case Context[T]:
		pairs, err := mapPairs(fn, q.Pairs)
		if err != nil {
			return nil, err
		}
		return Context[U]{Pairs: pairs}, nil
	default:
		panic(fmt.Sprintf("query: unknown variant %T", q))
	}
}

func mapOne[T, U any](fn func(T) (U, error), v T, role string) (U, error) {
	u, err := fn(v)
	if err != nil {
		var zero U
		return zero, fmt.Errorf("query: transform %s: %w", role, err)
	}
	return u, nil
}

func mapAll[T, U any](fn func(T) (U, error), vs []T, role string) ([]U, error) {
	if vs == nil {
		return nil, nil
	}
	out := make([]U, len(vs))
	for i, v := range vs {
		u, err := mapOne(fn, v, fmt.Sprintf("%s %d", role, i))
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

func mapPairs[T, U any](fn func(T) (U, error), pairs []ContextPair[T]) ([]ContextPair[U], error) {
	if pairs == nil {
		return nil, nil
	}
	out := make([]ContextPair[U], len(pairs))
	for i, p := range pairs {
		pos, err := mapOne(fn, p.Positive, fmt.Sprintf("pair %d positive", i))
		if err != nil {
			return nil, err
		}
		neg, err := mapOne(fn, p.Negative, fmt.Sprintf("pair %d negative", i))
		if err != nil {
			return nil, err
		}
		out[i] = ContextPair[U]{Positive: pos, Negative: neg}
	}
	return out, nil
}
