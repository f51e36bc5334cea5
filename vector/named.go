package vector

import (
	"iter"
	"maps"
	"slices"
)

// inlineEntries is the number of named vectors kept without a heap allocation.
// Most points carry between one and four named vectors.
const inlineEntries = 4

// Preprocessor rewrites dense components for a distance metric,
// e.g. L2-normalization for cosine similarity.
type Preprocessor interface {
	PreprocessVector(components []float32) []float32
}

// Pair is a name/vector pair used by FromPairs.
type Pair struct {
	Name   string
	Vector Vector
}

type entry struct {
	name  string
	vec   Vector
	owned bool
}

// NamedVectors holds the named vectors of a single point.
//
// Names are unique. Iteration follows insertion order, which carries no
// meaning beyond being stable. Entries are either owned by the map or
// borrowed views of memory owned elsewhere; the caller must keep borrowed
// memory unchanged for as long as the map is in use.
//
// The zero value is an empty map ready to use. NamedVectors is not safe for
// concurrent mutation.
type NamedVectors struct {
	inline [inlineEntries]entry
	more   []entry
	n      int
}

// FromView returns a single-entry map borrowing v.
func FromView(name string, v Vector) NamedVectors {
	var nv NamedVectors
	nv.InsertView(name, v)
	return nv
}

// FromPairs returns a map owning the given vectors. Later pairs overwrite
// earlier pairs with the same name.
func FromPairs(pairs ...Pair) NamedVectors {
	var nv NamedVectors
	for _, p := range pairs {
		nv.Insert(p.Name, p.Vector)
	}
	return nv
}

// FromMap returns a map that takes ownership of the values of m.
// Entries are inserted in name order.
func FromMap(m map[string]Vector) NamedVectors {
	var nv NamedVectors
	for _, name := range slices.Sorted(maps.Keys(m)) {
		nv.Insert(name, m[name])
	}
	return nv
}

// FromMapView returns a map borrowing the values of m without cloning.
// Entries are inserted in name order.
func FromMapView(m map[string]Vector) NamedVectors {
	var nv NamedVectors
	for _, name := range slices.Sorted(maps.Keys(m)) {
		nv.InsertView(name, m[name])
	}
	return nv
}

func (nv *NamedVectors) at(i int) *entry {
	if i < inlineEntries {
		return &nv.inline[i]
	}
	return &nv.more[i-inlineEntries]
}

func (nv *NamedVectors) find(name string) *entry {
	for i := 0; i < nv.n; i++ {
		if e := nv.at(i); e.name == name {
			return e
		}
	}
	return nil
}

func (nv *NamedVectors) put(name string, v Vector, owned bool) {
	if e := nv.find(name); e != nil {
		e.vec = v
		e.owned = owned
		return
	}
	e := entry{name: name, vec: v, owned: owned}
	if nv.n < inlineEntries {
		nv.inline[nv.n] = e
	} else {
		nv.more = append(nv.more, e)
	}
	nv.n++
}

// Insert stores v under name, taking ownership of it. An existing entry with
// the same name is overwritten.
func (nv *NamedVectors) Insert(name string, v Vector) {
	nv.put(name, v, true)
}

// InsertView stores a borrowed view of v under name. An existing entry with
// the same name is overwritten.
func (nv *NamedVectors) InsertView(name string, v Vector) {
	nv.put(name, v, false)
}

// Contains reports whether a vector is stored under name.
func (nv *NamedVectors) Contains(name string) bool {
	return nv.find(name) != nil
}

// Len returns the number of named vectors.
func (nv *NamedVectors) Len() int { return nv.n }

// IsEmpty reports whether the map has no vectors.
func (nv *NamedVectors) IsEmpty() bool { return nv.n == 0 }

// Get returns a read-only view of the vector stored under name.
func (nv *NamedVectors) Get(name string) (Vector, bool) {
	if e := nv.find(name); e != nil {
		return e.vec, true
	}
	return Vector{}, false
}

// IsOwned reports whether the entry under name is owned by the map.
func (nv *NamedVectors) IsOwned(name string) bool {
	e := nv.find(name)
	return e != nil && e.owned
}

// Keys yields the vector names in insertion order.
func (nv *NamedVectors) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := 0; i < nv.n; i++ {
			if !yield(nv.at(i).name) {
				return
			}
		}
	}
}

// All yields read-only views of every (name, vector) pair in insertion order.
// Nothing is cloned.
func (nv *NamedVectors) All() iter.Seq2[string, Vector] {
	return func(yield func(string, Vector) bool) {
		for i := 0; i < nv.n; i++ {
			e := nv.at(i)
			if !yield(e.name, e.vec) {
				return
			}
		}
	}
}

// IntoOwned moves the vectors into a plain map, cloning every borrowed entry.
// The receiver is empty afterwards.
func (nv *NamedVectors) IntoOwned() map[string]Vector {
	out := make(map[string]Vector, nv.n)
	for i := 0; i < nv.n; i++ {
		e := nv.at(i)
		if e.owned {
			out[e.name] = e.vec
		} else {
			out[e.name] = e.vec.Clone()
		}
	}
	*nv = NamedVectors{}
	return out
}

// Preprocess rewrites every dense entry with the preprocessor returned for its
// name. The components are cloned first, so borrowed entries become owned.
// Sparse entries and names without a preprocessor are left untouched.
func (nv *NamedVectors) Preprocess(preprocessorOf func(name string) Preprocessor) {
	for i := 0; i < nv.n; i++ {
		e := nv.at(i)
		dense, ok := e.vec.AsDense()
		if !ok {
			continue
		}
		p := preprocessorOf(e.name)
		if p == nil {
			continue
		}
		e.vec = OfDense(p.PreprocessVector(slices.Clone(dense)))
		e.owned = true
	}
}
