package main

import (
	"testing"
)

func TestCluster(t *testing.T) {
	features := [][]float64{
		{0, 0}, {0.1, 0}, {0, 0.1},
		{5, 5}, {5.1, 5}, {5, 5.1},
	}
	labels := Cluster(features, 2)
	if len(labels) != len(features) {
		t.Fatalf("got %d labels, wanted %d", len(labels), len(features))
	}
	if labels[0] != labels[1] || labels[1] != labels[2] {
		t.Errorf("first blob split: %v\n", labels)
	}
	if labels[3] != labels[4] || labels[4] != labels[5] {
		t.Errorf("second blob split: %v\n", labels)
	}
	if labels[0] == labels[3] {
		t.Errorf("blobs merged: %v\n", labels)
	}
}

func TestClusterEdges(t *testing.T) {
	if got := Cluster(nil, 3); got != nil {
		t.Errorf("got %v, wanted nil\n", got)
	}
	one := Cluster([][]float64{{1}, {2}, {3}}, 1)
	for _, l := range one {
		if l != 0 {
			t.Errorf("got labels %v, wanted all 0\n", one)
			break
		}
	}
	// more clusters than points leaves every point alone
	each := Cluster([][]float64{{1}, {2}}, 5)
	if each[0] == each[1] {
		t.Errorf("got labels %v, wanted distinct\n", each)
	}
}
