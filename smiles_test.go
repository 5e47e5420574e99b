package main

import (
	"reflect"
	"testing"
)

func hydrogens(m *Molecule) []int {
	hs := make([]int, len(m.Atoms))
	for i, a := range m.Atoms {
		hs[i] = a.Hydrogens
	}
	return hs
}

func TestParseSMILES(t *testing.T) {
	tests := []struct {
		smi   string
		atoms int
		bonds int
		hs    []int
	}{
		{"CCO", 3, 2, []int{3, 2, 1}},
		{"C=C", 2, 1, []int{2, 2}},
		{"C#N", 2, 1, []int{1, 0}},
		{"c1ccccc1", 6, 6, []int{1, 1, 1, 1, 1, 1}},
		{"Cc1ccccc1", 7, 7, []int{3, 0, 1, 1, 1, 1, 1}},
		{"n1ccccc1", 6, 6, []int{0, 1, 1, 1, 1, 1}},
		{"[NH4+]", 1, 0, []int{4}},
		{"[13CH4]", 1, 0, []int{4}},
		{"CC(=O)O", 4, 3, []int{3, 0, 0, 1}},
		{"C1CC1", 3, 3, []int{2, 2, 2}},
		{"C%10CC%10", 3, 3, []int{2, 2, 2}},
		{"F/C=C/F", 4, 3, []int{0, 1, 1, 0}},
		{"[Na+].[Cl-]", 2, 0, []int{0, 0}},
		{"CS(=O)(=O)C", 5, 4, []int{3, 0, 0, 0, 3}},
		{"ClCBr", 3, 2, []int{0, 2, 0}},
	}
	for _, test := range tests {
		mol, err := ParseSMILES(test.smi)
		if err != nil {
			t.Errorf("%s: got an error %q, didn't want one\n", test.smi, err)
			continue
		}
		if len(mol.Atoms) != test.atoms {
			t.Errorf("%s: got %d atoms, wanted %d\n",
				test.smi, len(mol.Atoms), test.atoms)
		}
		if len(mol.Bonds) != test.bonds {
			t.Errorf("%s: got %d bonds, wanted %d\n",
				test.smi, len(mol.Bonds), test.bonds)
		}
		if got := hydrogens(mol); !reflect.DeepEqual(got, test.hs) {
			t.Errorf("%s: got hydrogens %v, wanted %v\n",
				test.smi, got, test.hs)
		}
	}
}

func TestParseCharge(t *testing.T) {
	tests := []struct {
		smi    string
		charge int
	}{
		{"[NH4+]", 1},
		{"[O-]", -1},
		{"[Ca+2]", 2},
		{"[Fe+++]", 3},
	}
	for _, test := range tests {
		mol, err := ParseSMILES(test.smi)
		if err != nil {
			t.Fatalf("%s: got an error %q, didn't want one", test.smi, err)
		}
		if got := mol.Atoms[0].Charge; got != test.charge {
			t.Errorf("%s: got charge %d, wanted %d\n",
				test.smi, got, test.charge)
		}
	}
}

func TestParseSMILESErrors(t *testing.T) {
	bad := []string{
		"",
		"C(",
		"C)",
		"C1CC",
		"[C",
		"[]",
		"X",
		"C=",
		"%1C",
		"1CC1",
	}
	for _, smi := range bad {
		if _, err := ParseSMILES(smi); err == nil {
			t.Errorf("%q: expected an error\n", smi)
		}
	}
}

func TestAdjacency(t *testing.T) {
	mol, err := ParseSMILES("CC(=O)O")
	if err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	adj := mol.Adjacency()
	want := [][]Neighbor{
		{{1, Single}},
		{{0, Single}, {2, Double}, {3, Single}},
		{{1, Double}},
		{{1, Single}},
	}
	if !reflect.DeepEqual(adj, want) {
		t.Errorf("got %v, wanted %v\n", adj, want)
	}
}
