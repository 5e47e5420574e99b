package main

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Errors used throughout
var (
	ErrSampleCount = errors.New("more samples requested than molecules available")
	ErrNoMolecules = errors.New("no valid molecules to sample")
)

// SampleFarthest selects up to k indices into features by greedy
// farthest-point sampling under the Euclidean distance. existing is a
// list of indices already selected by a previous run; they are kept at
// the front of the result in their given order and only extended. When
// existing is empty, the first index is drawn uniformly from rng and
// the rest follow greedily: each pass appends the unselected index
// whose distance to its nearest selected neighbor is largest, ties
// going to the first such index encountered. If the only unselected
// points left coincide with ones already picked, the selection stops
// short of k; the caller sees that in the returned length.
func SampleFarthest(k int, features [][]float64, existing []int, rng *rand.Rand) ([]int, error) {
	n := len(features)
	if n == 0 {
		return nil, ErrNoMolecules
	}
	if k > n {
		return nil, ErrSampleCount
	}
	sampled := make([]int, 0, k)
	sampled = append(sampled, existing...)
	if len(sampled) >= k {
		return sampled[:k], nil
	}
	taken := make([]bool, n)
	for _, s := range sampled {
		taken[s] = true
	}
	if len(sampled) == 0 {
		first := rng.Intn(n)
		sampled = append(sampled, first)
		taken[first] = true
	}
	for len(sampled) < k {
		var (
			maxDist  float64
			farthest = -1
		)
		for i := 0; i < n; i++ {
			if taken[i] {
				continue
			}
			minDist := math.Inf(1)
			for _, s := range sampled {
				if d := floats.Distance(features[i], features[s], 2); d < minDist {
					minDist = d
				}
			}
			if minDist > maxDist {
				maxDist = minDist
				farthest = i
			}
		}
		if farthest < 0 {
			// every remaining point duplicates a selected one
			break
		}
		sampled = append(sampled, farthest)
		taken[farthest] = true
	}
	return sampled, nil
}
