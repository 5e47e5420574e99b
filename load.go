package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
)

// ReadDataset extracts the refCol and smiCol columns from the
// comma-delimited record file at filename. The first record is the
// header; rows too short to hold both columns are skipped.
func ReadDataset(filename, refCol, smiCol string) (refcodes, smiles []string, err error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s has no header", filename)
	}
	ri, si := -1, -1
	for i, name := range records[0] {
		switch strings.TrimSpace(name) {
		case refCol:
			ri = i
		case smiCol:
			si = i
		}
	}
	if ri < 0 || si < 0 {
		return nil, nil, fmt.Errorf("%s: no %s and %s columns in header %q",
			filename, refCol, smiCol, records[0])
	}
	for _, rec := range records[1:] {
		if len(rec) <= ri || len(rec) <= si {
			continue
		}
		refcodes = append(refcodes, strings.TrimSpace(rec[ri]))
		smiles = append(smiles, strings.TrimSpace(rec[si]))
	}
	return refcodes, smiles, nil
}

// LoadExisting reads the SMILES payloads from a previous run's
// selection file, in file order. The first line is a header and
// skipped; on the record lines everything after the identifier field
// is the SMILES, rejoined in case it contained spaces. A missing file
// just means a first run, not an error.
func LoadExisting(filename string) ([]string, error) {
	lines, err := ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, nil
	}
	var smiles []string
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			smiles = append(smiles, strings.Join(fields[1:], " "))
		}
	}
	return smiles, nil
}

// ResolveExisting maps previously selected SMILES onto indices in the
// current universe by exact string match, preserving their loaded
// order. A SMILES that matches more than once resolves to its first
// index, repeats are dropped so no index appears twice, and ones
// absent from universe are logged and skipped.
func ResolveExisting(loaded, universe []string, lg *zap.Logger) []int {
	byStr := make(map[string]int, len(universe))
	for i := len(universe) - 1; i >= 0; i-- {
		byStr[universe[i]] = i
	}
	var (
		indices []int
		seen    = make(map[int]bool)
	)
	for _, smi := range loaded {
		idx, ok := byStr[smi]
		if !ok {
			lg.Warn("previously selected molecule missing from current dataset",
				zap.String("smiles", smi))
			continue
		}
		if seen[idx] {
			continue
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices
}
