package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "Dense", KindDense.String())
	assert.Equal(t, "Sparse", KindSparse.String())
	assert.Equal(t, "Invalid", KindInvalid.String())
	assert.Equal(t, "Unknown(9)", Kind(9).String())
}

func TestVector_Variants(t *testing.T) {
	d := OfDense([]float32{1, 2, 3})
	s := OfSparse(Sparse{Indices: []uint32{1}, Values: []float32{0.5}})

	t.Run("Dense", func(t *testing.T) {
		assert.Equal(t, KindDense, d.Kind())
		c, ok := d.AsDense()
		require.True(t, ok)
		assert.Equal(t, []float32{1, 2, 3}, c)
		_, ok = d.AsSparse()
		assert.False(t, ok)
		assert.Equal(t, 3, d.Len())
	})

	t.Run("Sparse", func(t *testing.T) {
		assert.Equal(t, KindSparse, s.Kind())
		_, ok := s.AsDense()
		assert.False(t, ok)
		sv, ok := s.AsSparse()
		require.True(t, ok)
		assert.Equal(t, []uint32{1}, sv.Indices)
		assert.Equal(t, 1, s.Len())
	})

	t.Run("NoCoercion", func(t *testing.T) {
		assert.False(t, d.Equal(s))
		assert.False(t, OfDense(nil).Equal(OfSparse(Sparse{})))
	})

	t.Run("Zero", func(t *testing.T) {
		var z Vector
		assert.Equal(t, KindInvalid, z.Kind())
		assert.Equal(t, 0, z.Len())
		assert.True(t, z.Equal(Vector{}))
	})
}

func TestVector_CloneIsIndependent(t *testing.T) {
	src := []float32{1, 2, 3}
	view := OfDense(src)
	owned := view.Clone()

	assert.True(t, view.Equal(owned))

	src[0] = 42
	assert.False(t, view.Equal(owned))
	c, _ := owned.AsDense()
	assert.Equal(t, float32(1), c[0])

	sp := OfSparse(Sparse{Indices: []uint32{4, 9}, Values: []float32{1, 2}})
	spc := sp.Clone()
	assert.True(t, sp.Equal(spc))
	orig, _ := sp.AsSparse()
	orig.Values[1] = 7
	assert.False(t, sp.Equal(spc))
}

func TestSparse_New(t *testing.T) {
	_, err := NewSparse([]uint32{1, 2}, []float32{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	s, err := NewSparse([]uint32{3, 1}, []float32{4, 5})
	require.NoError(t, err)
	assert.False(t, s.IsSorted(), "construction must not sort")
}

func TestSparse_SortByIndices(t *testing.T) {
	tests := []struct {
		name        string
		in          Sparse
		wantIndices []uint32
		wantValues  []float32
	}{
		{"Unsorted", Sparse{[]uint32{3, 1}, []float32{4, 5}}, []uint32{1, 3}, []float32{5, 4}},
		{"Sorted", Sparse{[]uint32{1, 2, 8}, []float32{1, 2, 3}}, []uint32{1, 2, 8}, []float32{1, 2, 3}},
		{"Reversed", Sparse{[]uint32{9, 5, 2, 0}, []float32{1, 2, 3, 4}}, []uint32{0, 2, 5, 9}, []float32{4, 3, 2, 1}},
		{"Empty", Sparse{}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, tt.in.SortByIndices())
			assert.Equal(t, tt.wantIndices, tt.in.Indices)
			assert.Equal(t, tt.wantValues, tt.in.Values)
			assert.True(t, tt.in.IsSorted())
		})
	}

	t.Run("Duplicate", func(t *testing.T) {
		s := Sparse{Indices: []uint32{5, 2, 5}, Values: []float32{1, 2, 3}}
		err := s.SortByIndices()
		var dup *ErrDuplicateIndex
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, uint32(5), dup.Index)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		s := Sparse{Indices: []uint32{2, 1}, Values: []float32{1}}
		assert.ErrorIs(t, s.SortByIndices(), ErrLengthMismatch)
	})
}

func TestSparse_Score(t *testing.T) {
	stored := Sparse{Indices: []uint32{1, 3, 5}, Values: []float32{1, 2, 3}}

	t.Run("Overlap", func(t *testing.T) {
		q := Sparse{Indices: []uint32{1, 3}, Values: []float32{5, 4}}
		score, ok := stored.Score(q)
		assert.True(t, ok)
		assert.Equal(t, float32(13), score)

		rev, ok := q.Score(stored)
		assert.True(t, ok)
		assert.Equal(t, score, rev)
	})

	t.Run("NoOverlap", func(t *testing.T) {
		q := Sparse{Indices: []uint32{0, 2, 4}, Values: []float32{1, 1, 1}}
		score, ok := stored.Score(q)
		assert.False(t, ok)
		assert.Equal(t, float32(0), score)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := stored.Score(Sparse{})
		assert.False(t, ok)
	})
}
