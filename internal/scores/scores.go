// Package scores counts passing exam scores and standardizes them.
package scores

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// PassThreshold is the minimum score that counts as a pass.
const PassThreshold = 70

// Common errors.
var (
	ErrEmpty        = errors.New("scores: no scores")
	ErrZeroVariance = errors.New("scores: population standard deviation is zero")
)

var exam = []int{40, 15, 72, 22, 43, 82, 75, 7, 34, 49, 95, 75, 85, 47, 63}

// Scores returns a copy of the fixed exam scores.
func Scores() []int {
	out := make([]int, len(exam))
	copy(out, exam)
	return out
}

// CountAtLeast returns how many scores are >= threshold.
func CountAtLeast(scores []int, threshold int) int {
	n := 0
	for _, v := range scores {
		if v >= threshold {
			n++
		}
	}
	return n
}

// ZScores returns the standard score of every element:
// (v - mean) / population standard deviation.
func ZScores(scores []int) ([]float64, error) {
	x, mean, std, err := moments(scores)
	if err != nil {
		return nil, err
	}

	z := make([]float64, len(x))
	for i, v := range x {
		z[i] = stat.StdScore(v, mean, std)
	}
	return z, nil
}

// Summary describes a score array.
type Summary struct {
	Count  int
	Passed int
	Mean   float64
	StdDev float64 // population standard deviation
}

// Summarize computes the Summary of scores against threshold.
func Summarize(scores []int, threshold int) (Summary, error) {
	_, mean, std, err := moments(scores)
	if err != nil && !errors.Is(err, ErrZeroVariance) {
		return Summary{}, err
	}

	return Summary{
		Count:  len(scores),
		Passed: CountAtLeast(scores, threshold),
		Mean:   mean,
		StdDev: std,
	}, nil
}

// moments converts scores to float64 and returns their mean and population
// standard deviation.
func moments(scores []int) (x []float64, mean, std float64, err error) {
	if len(scores) == 0 {
		return nil, 0, 0, ErrEmpty
	}

	x = make([]float64, len(scores))
	for i, v := range scores {
		x[i] = float64(v)
	}

	mean, std = stat.PopMeanStdDev(x, nil)
	if std == 0 {
		return x, mean, std, fmt.Errorf("%w: all %d scores equal %v", ErrZeroVariance, len(x), mean)
	}
	return x, mean, std, nil
}
