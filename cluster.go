package main

import (
	"gonum.org/v1/gonum/floats"
)

// Cluster groups the feature vectors into k clusters by average-
// linkage agglomerative clustering and returns a cluster label for
// each vector. Labels are assigned in order of each cluster's lowest
// member index. The naive cubic merge loop is plenty for the dataset
// sizes seen here.
func Cluster(features [][]float64, k int) []int {
	n := len(features)
	if n == 0 {
		return nil
	}
	if k < 1 {
		k = 1
	}
	if k > n {
		k = n
	}
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := 0; j < i; j++ {
			d := floats.Distance(features[i], features[j], 2)
			dist[i][j] = d
			dist[j][i] = d
		}
	}
	clusters := make([][]int, n)
	for i := range clusters {
		clusters[i] = []int{i}
	}
	linkage := func(a, b []int) float64 {
		var sum float64
		for _, i := range a {
			for _, j := range b {
				sum += dist[i][j]
			}
		}
		return sum / float64(len(a)*len(b))
	}
	for len(clusters) > k {
		var (
			best   = -1.0
			ba, bb int
		)
		for a := 0; a < len(clusters); a++ {
			for b := a + 1; b < len(clusters); b++ {
				if d := linkage(clusters[a], clusters[b]); best < 0 || d < best {
					best = d
					ba, bb = a, b
				}
			}
		}
		clusters[ba] = append(clusters[ba], clusters[bb]...)
		clusters = append(clusters[:bb], clusters[bb+1:]...)
	}
	labels := make([]int, n)
	for c, members := range clusters {
		for _, m := range members {
			labels[m] = c
		}
	}
	return labels
}
