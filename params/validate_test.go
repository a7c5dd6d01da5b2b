package params_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/edmindex"
	"github.com/katalvlaran/edmindex/index"
	"github.com/katalvlaran/edmindex/libsize"
	"github.com/katalvlaran/edmindex/params"
	"github.com/katalvlaran/edmindex/ranges"
)

func rows(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		out = append(out, r)
	}
	return out
}

// simplex returns a valid univariate Simplex configuration.
func simplex() params.Parameters {
	p := params.Default()
	p.Method = params.Simplex
	p.Lib = "1 100"
	p.Pred = "101 150"
	p.E = 3
	p.Tp = 1
	p.Columns = "x"
	p.Target = "x"
	return p
}

func TestValidate_Simplex(t *testing.T) {
	r, err := params.Validate(simplex())
	require.NoError(t, err)

	assert.Equal(t, 3, r.E)
	assert.Equal(t, 4, r.Knn, "knn defaults to E+1")
	if diff := cmp.Diff(rows(0, 99), r.Library); diff != "" {
		t.Errorf("library (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rows(100, 149), r.Prediction); diff != "" {
		t.Errorf("prediction (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"x"}, r.ColumnSpec.Names)
	assert.Equal(t, "x", r.TargetSpec.Name)
	assert.False(t, r.DisjointLibrary)
	assert.Equal(t, []ranges.Segment{{Start: 1, Stop: 100}}, r.LibrarySegments)
	assert.Empty(t, r.LibrarySizes)
}

func TestValidate_InputUntouched(t *testing.T) {
	p := simplex()
	_, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, simplex(), p)
	assert.Equal(t, 0, p.Knn)
}

func TestValidate_RoundTripEmbedded(t *testing.T) {
	p := simplex()
	p.E, p.Tau, p.Tp, p.Embedded = 1, 1, 1, true
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, rows(0, 99), r.Library)
	assert.Equal(t, 1, r.E)
}

// TestValidate_SpanTooShort: E=3, tau=-1, Tp=1 needs four rows.
func TestValidate_SpanTooShort(t *testing.T) {
	p := simplex()
	p.Lib, p.Pred = "1 3", "4 6"
	_, err := params.Validate(p)
	assert.ErrorIs(t, err, index.ErrSpan)
	assert.Equal(t, edmindex.KindConsistency, edmindex.KindOf(err))

	p.Tau = 1
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Knn)
	assert.Equal(t, []int{0, 1, 2}, r.Library)
}

func TestValidate_DisjointLibrary(t *testing.T) {
	p := simplex()
	p.E = 2
	p.Lib = "1 50 60 100"
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.True(t, r.DisjointLibrary)
	for _, row := range r.Library {
		assert.False(t, row >= 49 && row <= 59, "row %d straddles the gap", row)
	}
	assert.Equal(t, append(rows(0, 48), rows(60, 99)...), r.Library)
}

// TestValidate_NegativeTp runs backward horizons through the whole pipeline.
func TestValidate_NegativeTp(t *testing.T) {
	cases := []struct {
		name string
		lib  string
		tp   int
		want []int
	}{
		{"single segment", "1 100", -1, rows(1, 99)},
		{"disjoint raw", "1 50 60 100", -2, append(rows(2, 49), rows(63, 99)...)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := simplex()
			p.Lib = tc.lib
			p.Tp = tc.tp
			r, err := params.Validate(p)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, r.Library); diff != "" {
				t.Errorf("library (-want +got):\n%s", diff)
			}
			assert.Equal(t, rows(100, 149), r.Prediction)
		})
	}
}

// TestValidate_HugeBounds returns range errors instead of allocating.
func TestValidate_HugeBounds(t *testing.T) {
	p := simplex()
	p.Lib = "1 9223372036854775807"
	_, err := params.Validate(p)
	assert.ErrorIs(t, err, index.ErrSpanTooLarge)
	assert.Equal(t, edmindex.KindRange, edmindex.KindOf(err))

	p = simplex()
	p.Pred = "101 9223372036854775807"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, index.ErrSpanTooLarge)

	p = ccm()
	p.LibSizes = "3 9223372036854775807 1"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, libsize.ErrTooManySizes)
	assert.Equal(t, edmindex.KindRange, edmindex.KindOf(err))
}

func TestValidate_EmbeddedForcesE(t *testing.T) {
	p := simplex()
	p.Embedded = true
	p.Columns = "a b c d"
	p.E = 2
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 4, r.E)
	assert.Equal(t, 5, r.Knn)
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *params.Parameters)
		want   error
		kind   edmindex.Kind
	}{
		{"method none", func(p *params.Parameters) { p.Method = params.None }, params.ErrUnknownMethod, edmindex.KindConfiguration},
		{"method unknown", func(p *params.Parameters) { p.Method = params.Method(42) }, params.ErrUnknownMethod, edmindex.KindConfiguration},
		{"tau zero", func(p *params.Parameters) { p.Tau = 0 }, params.ErrTauZero, edmindex.KindConfiguration},
		{"no columns", func(p *params.Parameters) { p.Columns = " " }, params.ErrNoColumns, edmindex.KindConfiguration},
		{"E zero", func(p *params.Parameters) { p.E = 0 }, params.ErrDimension, edmindex.KindConfiguration},
		{"knn below E+1", func(p *params.Parameters) { p.Knn = 3 }, params.ErrKnnTooSmall, edmindex.KindConsistency},
		{"odd library", func(p *params.Parameters) { p.Lib = "1 50 60" }, ranges.ErrOddTokens, edmindex.KindFormat},
		{"bad prediction token", func(p *params.Parameters) { p.Pred = "1 x" }, ranges.ErrBadInteger, edmindex.KindFormat},
		{"library below one", func(p *params.Parameters) { p.Lib = "0 100" }, index.ErrBelowOne, edmindex.KindRange},
		{"library start equals stop", func(p *params.Parameters) { p.Lib = "10 10" }, index.ErrStartNotBelowStop, edmindex.KindRange},
		{"prediction not increasing", func(p *params.Parameters) { p.Pred = "101 150 120 130" }, index.ErrNotIncreasing, edmindex.KindRange},
		{"prediction 5 5 3 3", func(p *params.Parameters) { p.Pred = "5 5 3 3" }, edmindex.ErrRange, edmindex.KindRange},
		{"empty library", func(p *params.Parameters) { p.Lib = "" }, params.ErrEmptyLibrary, edmindex.KindConfiguration},
		{"empty prediction", func(p *params.Parameters) { p.Pred = "" }, params.ErrEmptyPrediction, edmindex.KindConfiguration},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := simplex()
			tc.mutate(&p)
			r, err := params.Validate(p)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.kind, edmindex.KindOf(err))
		})
	}
}

func TestValidate_TauZeroEmbedded(t *testing.T) {
	p := simplex()
	p.Tau, p.Embedded = 0, true
	_, err := params.Validate(p)
	assert.NoError(t, err)
}

// TestValidate_EmbedDefaults gives Embed single-row defaults and no column requirement.
func TestValidate_EmbedDefaults(t *testing.T) {
	p := params.Default()
	p.Method = params.Embed
	p.E = 3
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Library)
	assert.Equal(t, []int{0}, r.Prediction)

	p.Lib, p.Pred = "1 1", "1 1"
	r, err = params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Library)
	assert.Equal(t, []int{0}, r.Prediction)
}

func ccm() params.Parameters {
	p := params.Default()
	p.Method = params.CCM
	p.Columns = "x"
	p.Target = "y"
	p.E = 2
	p.Lib = "1 200"
	p.Pred = "1 200"
	p.LibSizes = "10 100 10"
	p.Samples = 10
	return p
}

func TestValidate_CCM(t *testing.T) {
	r, err := params.Validate(ccm())
	require.NoError(t, err)
	assert.Equal(t, 3, r.Knn)
	assert.True(t, r.GeneratedLibrarySizes)
	assert.Equal(t, []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}, r.LibrarySizes)
	assert.Equal(t, rows(0, 199), r.Library)
	assert.Equal(t, rows(0, 199), r.Prediction)
}

func TestValidate_CCMListAndErrors(t *testing.T) {
	p := ccm()
	p.LibSizes = "10 20 30"
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.False(t, r.GeneratedLibrarySizes)
	assert.Equal(t, []int{10, 20, 30}, r.LibrarySizes)

	p = ccm()
	p.Samples = 0
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, params.ErrSamples)

	p.RandomLib = false
	_, err = params.Validate(p)
	assert.NoError(t, err, "samples only matter for random libraries")

	p = ccm()
	p.E = 4
	p.LibSizes = "3 100 10"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, libsize.ErrStartBelowE)

	p.E = 2
	p.LibSizes = "2 100 10"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, libsize.ErrStartTooSmall)

	p = ccm()
	p.Lib = "1 1"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, index.ErrSpan)
}

func TestValidate_CCMEmbeddedForcesE(t *testing.T) {
	p := ccm()
	p.Embedded = true
	p.Columns = "x1 x2 x3"
	p.LibSizes = "5 50 5"
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 3, r.E)
	assert.Equal(t, 4, r.Knn)
}

func smap() params.Parameters {
	p := simplex()
	p.Method = params.SMap
	p.E = 2
	p.Theta = 2
	return p
}

func TestValidate_SMap(t *testing.T) {
	r, err := params.Validate(smap())
	require.NoError(t, err)
	assert.Equal(t, 100, r.Knn, "knn defaults to library size")

	p := smap()
	p.Knn = 1
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, params.ErrKnnTooSmall)

	p = smap()
	p.Columns = "a b c"
	_, err = params.Validate(p)
	assert.ErrorIs(t, err, params.ErrMultivariateSMap)

	p.Embedded = true
	r, err = params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 3, r.E)
}

func TestValidate_ColumnIndices(t *testing.T) {
	p := simplex()
	p.Columns = "1 2"
	p.Target = "1"
	r, err := params.Validate(p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, r.ColumnSpec.Indices)
	assert.Empty(t, r.ColumnSpec.Names)
	assert.Equal(t, 1, r.TargetSpec.Index)
}

// TestValidate_Advisories checks the sink only hears verbose runs.
func TestValidate_Advisories(t *testing.T) {
	var got []string
	sink := params.WithLogf(func(format string, args ...interface{}) {
		got = append(got, fmt.Sprintf(format, args...))
	})

	p := simplex()
	p.Pred = "101 120 131 150"
	_, err := params.Validate(p, sink)
	require.NoError(t, err)
	assert.Empty(t, got)

	p.Verbose = true
	_, err = params.Validate(p, sink)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Contains(t, got[0], "knn = 4")
	assert.Contains(t, got[1], "disjoint prediction")
}

func TestWithLogfNilPanics(t *testing.T) {
	assert.Panics(t, func() { params.WithLogf(nil) })
}
