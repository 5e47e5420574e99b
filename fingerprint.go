package main

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"go.uber.org/zap"
)

// Fingerprint computes a hashed circular fingerprint of mol in the
// ECFP manner: each atom starts from an invariant built from its element,
// aromaticity, charge, hydrogen count, and degree, then the invariants
// are rehashed over widening neighbor shells out to radius. Every
// environment sets one bit of a size-length 0/1 vector.
func Fingerprint(mol *Molecule, radius, size int) []float64 {
	adj := mol.Adjacency()
	inv := make([]uint64, len(mol.Atoms))
	for i, a := range mol.Atoms {
		var arom uint64
		if a.Aromatic {
			arom = 1
		}
		inv[i] = hashInts(hashString(a.Element), arom,
			uint64(int64(a.Charge)), uint64(a.Hydrogens),
			uint64(len(adj[i])))
	}
	fp := make([]float64, size)
	set := func(v uint64) { fp[v%uint64(size)] = 1 }
	for _, v := range inv {
		set(v)
	}
	for r := 0; r < radius; r++ {
		next := make([]uint64, len(inv))
		for i := range inv {
			env := make([][2]uint64, 0, len(adj[i]))
			for _, nb := range adj[i] {
				env = append(env, [2]uint64{uint64(nb.Order), inv[nb.Atom]})
			}
			sort.Slice(env, func(a, b int) bool {
				if env[a][0] != env[b][0] {
					return env[a][0] < env[b][0]
				}
				return env[a][1] < env[b][1]
			})
			parts := make([]uint64, 0, 2*len(env)+1)
			parts = append(parts, inv[i])
			for _, e := range env {
				parts = append(parts, e[0], e[1])
			}
			next[i] = hashInts(parts...)
			set(next[i])
		}
		inv = next
	}
	return fp
}

// Fingerprints featurizes every SMILES in smilesList, skipping ones
// that fail to parse. It returns the fingerprint vectors along with
// the indices into smilesList of the molecules that survived, so the
// caller can keep its identifier list in step with the features.
func Fingerprints(smilesList []string, radius, size int,
	lg *zap.Logger) (features [][]float64, valid []int) {
	for i, smi := range smilesList {
		mol, err := ParseSMILES(smi)
		if err != nil {
			lg.Warn("rejecting molecule",
				zap.String("smiles", smi), zap.Error(err))
			continue
		}
		features = append(features, Fingerprint(mol, radius, size))
		valid = append(valid, i)
	}
	return features, valid
}

func hashString(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}

func hashInts(vs ...uint64) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	for _, v := range vs {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	return h.Sum64()
}
