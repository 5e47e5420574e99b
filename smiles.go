package main

import (
	"fmt"
	"strings"
)

// Atom is a single heavy atom in a molecular graph. Hydrogens holds
// the implicit hydrogen count, filled in from the standard valences
// for organic-subset atoms and taken verbatim from bracket atoms.
type Atom struct {
	Element   string
	Aromatic  bool
	Charge    int
	Hydrogens int
}

// Bond orders; Aromatic marks a delocalized ring bond
const (
	Single = iota + 1
	Double
	Triple
	Aromatic
)

// Bond joins the atoms at indices A and B
type Bond struct {
	A, B  int
	Order int
}

// Molecule is the graph read from one SMILES string
type Molecule struct {
	Atoms []Atom
	Bonds []Bond
}

// Neighbor pairs an adjacent atom index with the order of the
// connecting bond
type Neighbor struct {
	Atom  int
	Order int
}

// Adjacency returns the neighbor list for every atom in m
func (m *Molecule) Adjacency() [][]Neighbor {
	adj := make([][]Neighbor, len(m.Atoms))
	for _, b := range m.Bonds {
		adj[b.A] = append(adj[b.A], Neighbor{b.B, b.Order})
		adj[b.B] = append(adj[b.B], Neighbor{b.A, b.Order})
	}
	return adj
}

// standard valences for inferring implicit hydrogen counts on
// organic-subset atoms
var valences = map[string][]int{
	"B": {3}, "C": {4}, "N": {3, 5}, "O": {2},
	"P": {3, 5}, "S": {2, 4, 6},
	"F": {1}, "Cl": {1}, "Br": {1}, "I": {1},
}

// organic-subset symbols writable outside brackets
var organic = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true,
	"S": true, "F": true, "Cl": true, "Br": true, "I": true,
}

type ringBond struct {
	atom  int
	order int
}

// ParseSMILES reads a SMILES string into a Molecule. It covers the
// organic subset, bracket atoms with isotope, charge, chirality, and
// explicit hydrogen counts, branches, ring-bond closures including the
// %nn form, and dot-separated components. Stereo bond markers are
// accepted and read as single bonds. Pyrrole-type NH must be written
// in brackets, as usual. A malformed string returns an error so the
// molecule can be dropped from the run.
func ParseSMILES(s string) (*Molecule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty SMILES")
	}
	var (
		mol   Molecule
		prev  = -1
		order = 0 // pending bond order, 0 means unspecified
		stack []int
		rings = make(map[int]ringBond)
	)
	bondOrder := func(a, b int, o int) int {
		if o != 0 {
			return o
		}
		if mol.Atoms[a].Aromatic && mol.Atoms[b].Aromatic {
			return Aromatic
		}
		return Single
	}
	addAtom := func(a Atom) {
		mol.Atoms = append(mol.Atoms, a)
		idx := len(mol.Atoms) - 1
		if prev >= 0 {
			mol.Bonds = append(mol.Bonds,
				Bond{prev, idx, bondOrder(prev, idx, order)})
		}
		order = 0
		prev = idx
	}
	closeRing := func(num int) error {
		if prev < 0 {
			return fmt.Errorf("ring bond %d before any atom", num)
		}
		rb, ok := rings[num]
		if !ok {
			rings[num] = ringBond{prev, order}
			order = 0
			return nil
		}
		if rb.atom == prev {
			return fmt.Errorf("ring bond %d closes on its own atom", num)
		}
		o := order
		if o == 0 {
			o = rb.order
		}
		mol.Bonds = append(mol.Bonds,
			Bond{rb.atom, prev, bondOrder(rb.atom, prev, o)})
		delete(rings, num)
		order = 0
		return nil
	}
	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '(':
			if prev < 0 {
				return nil, fmt.Errorf("branch before any atom")
			}
			stack = append(stack, prev)
			i++
		case c == ')':
			if len(stack) == 0 {
				return nil, fmt.Errorf("unmatched closing parenthesis")
			}
			prev = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			i++
		case c == '-' || c == '/' || c == '\\':
			order = Single
			i++
		case c == '=':
			order = Double
			i++
		case c == '#':
			order = Triple
			i++
		case c == ':':
			order = Aromatic
			i++
		case c == '.':
			if order != 0 {
				return nil, fmt.Errorf("bond before dot separator")
			}
			prev = -1
			i++
		case c >= '0' && c <= '9':
			if err := closeRing(int(c - '0')); err != nil {
				return nil, err
			}
			i++
		case c == '%':
			if i+2 >= len(s) || !isDigit(s[i+1]) || !isDigit(s[i+2]) {
				return nil, fmt.Errorf("malformed %%nn ring bond")
			}
			num := 10*int(s[i+1]-'0') + int(s[i+2]-'0')
			if err := closeRing(num); err != nil {
				return nil, err
			}
			i += 3
		case c == '[':
			j := strings.IndexByte(s[i+1:], ']')
			if j < 0 {
				return nil, fmt.Errorf("unclosed bracket atom")
			}
			atom, err := parseBracket(s[i+1 : i+1+j])
			if err != nil {
				return nil, err
			}
			addAtom(atom)
			i += j + 2
		default:
			elem, aromatic, w, err := parseOrganic(s[i:])
			if err != nil {
				return nil, err
			}
			addAtom(Atom{Element: elem, Aromatic: aromatic, Hydrogens: -1})
			i += w
		}
	}
	if len(stack) > 0 {
		return nil, fmt.Errorf("unclosed branch")
	}
	if len(rings) > 0 {
		return nil, fmt.Errorf("unclosed ring bond")
	}
	if order != 0 {
		return nil, fmt.Errorf("dangling bond symbol")
	}
	if len(mol.Atoms) == 0 {
		return nil, fmt.Errorf("no atoms in SMILES")
	}
	fillHydrogens(&mol)
	return &mol, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseOrganic reads an organic-subset atom symbol from the front of
// s, returning the element, whether it was written aromatic, and the
// number of bytes consumed
func parseOrganic(s string) (elem string, aromatic bool, w int, err error) {
	c := s[0]
	switch {
	case c >= 'a' && c <= 'z':
		elem = strings.ToUpper(string(c))
		aromatic = true
		w = 1
	case c == 'C' && len(s) > 1 && s[1] == 'l':
		elem, w = "Cl", 2
	case c == 'B' && len(s) > 1 && s[1] == 'r':
		elem, w = "Br", 2
	case c >= 'A' && c <= 'Z':
		elem, w = string(c), 1
	default:
		return "", false, 0, fmt.Errorf("unexpected character %q", c)
	}
	if !organic[elem] {
		return "", false, 0, fmt.Errorf("element %q must be written in brackets", elem)
	}
	if aromatic {
		switch elem {
		case "B", "C", "N", "O", "P", "S":
		default:
			return "", false, 0, fmt.Errorf("element %q cannot be aromatic", elem)
		}
	}
	return elem, aromatic, w, nil
}

// parseBracket reads the body of a bracket atom, between but not
// including the square brackets. Isotope labels and chirality marks
// are accepted and discarded.
func parseBracket(body string) (Atom, error) {
	var a Atom
	k := 0
	for k < len(body) && isDigit(body[k]) {
		k++ // isotope
	}
	switch {
	case k >= len(body):
		return a, fmt.Errorf("bracket atom %q missing element", body)
	case body[k] >= 'a' && body[k] <= 'z':
		a.Element = strings.ToUpper(string(body[k]))
		a.Aromatic = true
		k++
	case body[k] >= 'A' && body[k] <= 'Z':
		a.Element = string(body[k])
		k++
		if k < len(body) && body[k] >= 'a' && body[k] <= 'z' {
			a.Element += string(body[k])
			k++
		}
	default:
		return a, fmt.Errorf("bracket atom %q missing element", body)
	}
	for k < len(body) && body[k] == '@' {
		k++ // chirality
	}
	if k < len(body) && body[k] == 'H' {
		k++
		a.Hydrogens = 1
		if k < len(body) && isDigit(body[k]) {
			n := 0
			for k < len(body) && isDigit(body[k]) {
				n = 10*n + int(body[k]-'0')
				k++
			}
			a.Hydrogens = n
		}
	}
	for k < len(body) {
		sign := 0
		switch body[k] {
		case '+':
			sign = 1
		case '-':
			sign = -1
		default:
			return a, fmt.Errorf("unexpected %q in bracket atom %q", body[k], body)
		}
		k++
		if k < len(body) && isDigit(body[k]) {
			n := 0
			for k < len(body) && isDigit(body[k]) {
				n = 10*n + int(body[k]-'0')
				k++
			}
			a.Charge += sign * n
		} else {
			a.Charge += sign
		}
	}
	return a, nil
}

// fillHydrogens computes implicit hydrogen counts for organic-subset
// atoms from the smallest standard valence that fits the bond order
// sum. Aromatic bonds count one each, with aromatic carbon granted an
// extra unit for the delocalized system; aromatic heteroatoms carry no
// implicit hydrogens.
func fillHydrogens(m *Molecule) {
	sums := make([]int, len(m.Atoms))
	for _, b := range m.Bonds {
		o := b.Order
		if o == Aromatic {
			o = 1
		}
		sums[b.A] += o
		sums[b.B] += o
	}
	for i := range m.Atoms {
		a := &m.Atoms[i]
		if a.Hydrogens >= 0 {
			continue
		}
		a.Hydrogens = 0
		if a.Aromatic {
			if a.Element != "C" {
				continue
			}
			sums[i]++
		}
		for _, v := range valences[a.Element] {
			if v >= sums[i] {
				a.Hydrogens = v - sums[i]
				break
			}
		}
	}
}
