package main

import (
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testConf() *Config {
	conf := &Config{
		DatasetFile: "data.csv",
		OutputFile:  "sel.txt",
		Samples:     3,
		Radius:      2,
		Size:        128,
		Workers:     1,
		NoPlot:      true,
	}
	conf.ApplyDefaults()
	return conf
}

func TestProcess(t *testing.T) {
	dir := t.TempDir()
	csv := `REFCODE,SMILES
AAA,CCO
BBB,CO
CCC,c1ccccc1
DDD,C1CC
EEE,CC(=O)O
FFF,CCCCCCCC
`
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	conf := testConf()
	rng := rand.New(rand.NewSource(1))
	if err := Process(dir, conf, rng, zap.NewNop()); err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	byts, err := os.ReadFile(filepath.Join(dir, "sel.txt"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(byts)), "\n")
	if len(lines) != conf.Samples+1 {
		t.Fatalf("got %d lines, wanted %d", len(lines), conf.Samples+1)
	}
	if lines[0] != "REFCODE SMILES" {
		t.Errorf("got header %q\n", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "DDD") {
			t.Errorf("unparseable molecule selected: %q\n", line)
		}
	}
	// a second pass reads its own output back as the seed and must
	// leave the file unchanged
	if err := Process(dir, conf, rand.New(rand.NewSource(99)), zap.NewNop()); err != nil {
		t.Fatalf("got an error %q, didn't want one", err)
	}
	again, err := os.ReadFile(filepath.Join(dir, "sel.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(again) != string(byts) {
		t.Errorf("got %q, wanted %q\n", string(again), string(byts))
	}
}

func TestProcessTooManySamples(t *testing.T) {
	dir := t.TempDir()
	csv := "REFCODE,SMILES\nAAA,CCO\n"
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	conf := testConf()
	err := Process(dir, conf, rand.New(rand.NewSource(1)), zap.NewNop())
	if err != ErrSampleCount {
		t.Errorf("got %v, wanted %v\n", err, ErrSampleCount)
	}
	// fatal errors must not leave an output file behind
	if _, err := os.Stat(filepath.Join(dir, "sel.txt")); err == nil {
		t.Errorf("output written despite error\n")
	}
}

func TestProcessMissingDataset(t *testing.T) {
	conf := testConf()
	err := Process(t.TempDir(), conf, rand.New(rand.NewSource(1)), zap.NewNop())
	if err == nil {
		t.Errorf("expected an error\n")
	}
}

func TestProcessNoValidMolecules(t *testing.T) {
	dir := t.TempDir()
	csv := "REFCODE,SMILES\nAAA,C1CC\nBBB,[\n"
	if err := os.WriteFile(filepath.Join(dir, "data.csv"), []byte(csv), 0644); err != nil {
		t.Fatal(err)
	}
	conf := testConf()
	err := Process(dir, conf, rand.New(rand.NewSource(1)), zap.NewNop())
	if err != ErrNoMolecules {
		t.Errorf("got %v, wanted %v\n", err, ErrNoMolecules)
	}
}
