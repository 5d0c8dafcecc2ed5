package scores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

func TestCountAtLeast_FixedScores(t *testing.T) {
	// 72, 82, 75, 95, 75, 85
	assert.Equal(t, 6, CountAtLeast(Scores(), PassThreshold))
}

func TestCountAtLeast(t *testing.T) {
	tests := []struct {
		name      string
		scores    []int
		threshold int
		want      int
	}{
		{name: "boundary counts", scores: []int{69, 70, 71}, threshold: 70, want: 2},
		{name: "none pass", scores: []int{1, 2, 3}, threshold: 70, want: 0},
		{name: "empty", scores: nil, threshold: 70, want: 0},
		{name: "all pass", scores: []int{100, 90}, threshold: 0, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountAtLeast(tt.scores, tt.threshold))
		})
	}
}

func TestZScores_Standardized(t *testing.T) {
	z, err := ZScores(Scores())
	require.NoError(t, err)
	require.Len(t, z, 15)

	mean, std := stat.PopMeanStdDev(z, nil)
	assert.InDelta(t, 0, mean, 1e-12)
	assert.InDelta(t, 1, std, 1e-12)
}

func TestZScores_KnownValues(t *testing.T) {
	// mean 2, population std sqrt(2/3)
	z, err := ZScores([]int{1, 2, 3})
	require.NoError(t, err)

	want := []float64{-1.224744871391589, 0, 1.224744871391589}
	assert.True(t, floats.EqualApprox(want, z, 1e-12), "got %v", z)
}

func TestZScores_OrderPreserved(t *testing.T) {
	s := Scores()
	z, err := ZScores(s)
	require.NoError(t, err)

	for i := range s {
		for j := range s {
			if s[i] < s[j] {
				assert.Less(t, z[i], z[j])
			}
		}
	}
}

func TestZScores_Errors(t *testing.T) {
	_, err := ZScores(nil)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = ZScores([]int{50, 50, 50})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestSummarize(t *testing.T) {
	sum, err := Summarize(Scores(), PassThreshold)
	require.NoError(t, err)

	assert.Equal(t, 15, sum.Count)
	assert.Equal(t, 6, sum.Passed)
	assert.InDelta(t, 53.6, sum.Mean, 1e-9)
	assert.InDelta(t, 26.1478, sum.StdDev, 1e-3)
}

func TestSummarize_ConstantScores(t *testing.T) {
	sum, err := Summarize([]int{80, 80}, PassThreshold)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Passed)
	assert.Equal(t, 0.0, sum.StdDev)
}

func TestScores_Idempotent(t *testing.T) {
	s := Scores()
	s[0] = 1000

	first, err := ZScores(Scores())
	require.NoError(t, err)
	second, err := ZScores(Scores())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 40, Scores()[0])
}
