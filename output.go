package main

import (
	"bufio"
	"fmt"
	"os"
)

// WriteSelection serializes the sampled indices to filename in the
// two-column REFCODE SMILES format, header line first, one record per
// selected molecule in selection order. Reloading the file in a later
// run therefore seeds that run with the same molecules in the same
// order. Nothing is written until the selection has fully succeeded,
// so a failed run never leaves a truncated file behind.
func WriteSelection(filename string, refcodes, smiles []string, sampled []int) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("writing selection: %w", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "REFCODE SMILES")
	for _, idx := range sampled {
		fmt.Fprintf(w, "%s %s\n", refcodes[idx], smiles[idx])
	}
	return w.Flush()
}
