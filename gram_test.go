package multivec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreduce/multivec"
	"github.com/mreduce/multivec/util"
	"github.com/mreduce/multivec/vector"
	"github.com/mreduce/multivec/vector/dense"
)

// unit returns an n-element container of dim-dimensional vectors where
// element i is the i-th standard basis vector. Requires n <= dim.
func unit(n, dim int, opts ...multivec.Option) *multivec.MultiVector {
	mv := multivec.New(dense.NewDense(dim), n, opts...)
	for i := 0; i < n; i++ {
		mv.At(i).SetVec(i, 1)
	}
	return mv
}

func ones(n int) []float64 {
	a := make([]float64, n)
	for i := range a {
		a[i] = 1
	}
	return a
}

func TestDotVector(t *testing.T) {
	mv := unit(2, 2)
	v := dense.FromSlice([]float64{3, 7})

	out := make([]float64, 2)
	mv.DotVector(v, out)

	assert.Equal(t, []float64{3, 7}, out)
}

func TestDotVectorCountMismatch(t *testing.T) {
	mv := unit(2, 2)
	wantErr := multivec.ErrCountMismatch{Expected: 2, Actual: 3}.Error()
	require.PanicsWithError(t, wantErr, func() {
		mv.DotVector(dense.NewDense(2), make([]float64, 3))
	})
}

func TestGramSelf(t *testing.T) {
	mv := multivec.New(dense.NewDense(2), 2)
	mv.At(0).SetVec(0, 1)
	mv.At(0).SetVec(1, 2)
	mv.At(1).SetVec(0, 3)
	mv.At(1).SetVec(1, 4)

	out := make([]float64, 4)
	mv.GramSelf(out)

	// out[i + n*j] = <mv[i], mv[j]>
	assert.InDelta(t, 5, out[0], 1e-12)  // <e0, e0>
	assert.InDelta(t, 11, out[1], 1e-12) // <e1, e0>
	assert.InDelta(t, 11, out[2], 1e-12) // <e0, e1>
	assert.InDelta(t, 25, out[3], 1e-12) // <e1, e1>
}

func TestGramSelfSymmetric(t *testing.T) {
	const n, dim = 6, 12
	mv := multivec.New(dense.NewDense(dim), n)
	util.NewRNG(3).FillMultiVector(mv)

	out := make([]float64, n*n)
	mv.GramSelf(out)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, out[j+n*i], out[i+n*j], "gram must be exactly symmetric (mirrored, not recomputed)")
		}
	}
}

func TestDotSameStorageFastPath(t *testing.T) {
	const n, dim = 4, 8
	mv := multivec.New(dense.NewDense(dim), n)
	util.NewRNG(5).FillMultiVector(mv)

	self := make([]float64, n*n)
	viaDot := make([]float64, n*n)
	mv.GramSelf(self)
	mv.Dot(mv, viaDot)

	assert.Equal(t, self, viaDot)
}

func TestDotCloneTakesGeneralPath(t *testing.T) {
	const n, dim = 4, 8
	mv := multivec.New(dense.NewDense(dim), n)
	util.NewRNG(5).FillMultiVector(mv)
	cp := mv.Clone()

	self := make([]float64, n*n)
	cross := make([]float64, n*n)
	mv.GramSelf(self)
	mv.Dot(cp, cross)

	for i := range self {
		assert.InDelta(t, self[i], cross[i], 1e-12)
	}
}

func TestDotCross(t *testing.T) {
	mv := unit(2, 2)

	other := multivec.New(dense.NewDense(2), 3)
	other.At(0).SetVec(0, 1)
	other.At(0).SetVec(1, 1)
	other.At(1).SetVec(0, 2)
	other.At(2).SetVec(1, 3)

	out := make([]float64, 2*3)
	mv.Dot(other, out)

	// Column-major, m's index fastest: out[i + 2*j] = <mv[i], other[j]>.
	assert.Equal(t, []float64{1, 1, 2, 0, 0, 3}, out)
}

func TestDotCountMismatch(t *testing.T) {
	mv := unit(2, 2)
	// Values are irrelevant to the count check; zeroed elements suffice.
	other := multivec.New(dense.NewDense(2), 3)
	wantErr := multivec.ErrCountMismatch{Expected: 6, Actual: 4}.Error()
	require.PanicsWithError(t, wantErr, func() {
		mv.Dot(other, make([]float64, 4))
	})
}

func TestParallelMatchesSerial(t *testing.T) {
	const n, dim = 16, 32
	serial := multivec.New(dense.NewDense(dim), n)
	util.NewRNG(11).FillMultiVector(serial)

	par := multivec.New(dense.NewDense(dim), n, multivec.WithWorkers(4))
	par.AxpyEach(ones(n), serial) // par[i] = serial[i]

	t.Run("GramSelf", func(t *testing.T) {
		a := make([]float64, n*n)
		b := make([]float64, n*n)
		serial.GramSelf(a)
		par.GramSelf(b)
		assert.Equal(t, a, b)
	})

	t.Run("DotVector", func(t *testing.T) {
		v := dense.NewDense(dim)
		util.NewRNG(12).FillVector(v)
		a := make([]float64, n)
		b := make([]float64, n)
		serial.DotVector(v, a)
		par.DotVector(v, b)
		assert.Equal(t, a, b)
	})

	t.Run("Dot", func(t *testing.T) {
		other := multivec.New(dense.NewDense(dim), 5)
		util.NewRNG(13).FillMultiVector(other)
		a := make([]float64, n*5)
		b := make([]float64, n*5)
		serial.Dot(other, a)
		par.Dot(other, b)
		assert.Equal(t, a, b)
	})
}

func TestNorms(t *testing.T) {
	mv := multivec.New(dense.NewDense(2), 2)
	mv.At(0).SetVec(0, 3)
	mv.At(0).SetVec(1, -4)
	mv.At(1).SetVec(0, -2)

	tests := []struct {
		name     string
		kind     vector.Norm
		expected []float64
	}{
		{"L1", vector.NormL1, []float64{7, 2}},
		{"L2", vector.NormL2, []float64{5, 2}},
		{"Linf", vector.NormLinf, []float64{4, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float64, 2)
			mv.Norms(tt.kind, out)
			for i := range out {
				assert.InDelta(t, tt.expected[i], out[i], 1e-12)
			}
		})
	}
}

func BenchmarkGramSelf(b *testing.B) {
	const n, dim = 32, 256

	bench := func(b *testing.B, workers int) {
		mv := multivec.New(dense.NewDense(dim), n, multivec.WithWorkers(workers))
		util.NewRNG(1).FillMultiVector(mv)
		out := make([]float64, n*n)

		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			mv.GramSelf(out)
		}
	}

	b.Run("Serial", func(b *testing.B) { bench(b, 1) })
	b.Run("Workers4", func(b *testing.B) { bench(b, 4) })
}
