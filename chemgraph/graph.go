package chemgraph

import (
	"slices"

	"github.com/rmera/grotop"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom is a node of the bond graph. Its ID is the 0-based position of the
// atom in the system.
type Atom struct {
	*grotop.Atom
	index int
}

func (A *Atom) ID() int64 {
	return int64(A.index)
}

// Bond is an edge of the bond graph. The graph is undirected.
type Bond struct {
	At1, At2 *Atom
}

func (B *Bond) From() graph.Node {
	return B.At1
}

func (B *Bond) To() graph.Node {
	return B.At2
}

func (B *Bond) ReversedEdge() graph.Edge {
	return &Bond{At1: B.At2, At2: B.At1}
}

// Topology is the bond graph of an instantiated system. It implements
// the gonum graph.Undirected interface.
type Topology struct {
	*simple.UndirectedGraph
	atoms   []*Atom
	skipped int
}

// TopologyFromSystem builds the bond graph of S. Bonds joining an atom
// to itself, or referring to atoms not in S, are left out, and counted by Skipped.
func TopologyFromSystem(S *grotop.System) *Topology {
	T := &Topology{UndirectedGraph: simple.NewUndirectedGraph()}
	T.atoms = make([]*Atom, S.Len())
	for i, v := range S.Atoms {
		T.atoms[i] = &Atom{Atom: v, index: i}
		T.AddNode(T.atoms[i])
	}
	for _, b := range S.Bonds {
		i, j := b[0]-1, b[1]-1
		if i == j || i < 0 || j < 0 || i >= len(T.atoms) || j >= len(T.atoms) {
			T.skipped++
			continue
		}
		T.SetEdge(&Bond{At1: T.atoms[i], At2: T.atoms[j]})
	}
	return T
}

// Skipped returns the number of bonds that were not added to the graph.
func (T *Topology) Skipped() int {
	return T.skipped
}

// Atom returns the node for the i-th (0-based) atom. Panics if out of range.
func (T *Topology) Atom(i int) *Atom {
	return T.atoms[i]
}

// Neighbors returns the sorted 1-based indexes of the atoms bonded to the i-th (1-based) atom.
func (T *Topology) Neighbors(i int) []int {
	ret := make([]int, 0, 4)
	nodes := T.From(int64(i - 1))
	for nodes.Next() {
		ret = append(ret, int(nodes.Node().ID())+1)
	}
	slices.Sort(ret)
	return ret
}

// Fragments returns the groups of atoms connected by bonds, as 1-based indexes.
// Each fragment is sorted, and fragments are sorted by their first atom.
func (T *Topology) Fragments() [][]int {
	comps := topo.ConnectedComponents(T.UndirectedGraph)
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		f := make([]int, 0, len(c))
		for _, n := range c {
			f = append(f, int(n.ID())+1)
		}
		slices.Sort(f)
		ret = append(ret, f)
	}
	slices.SortFunc(ret, func(a, b []int) int { return a[0] - b[0] })
	return ret
}

// Fragments returns the groups of bonded atoms in S. See Topology.Fragments.
func Fragments(S *grotop.System) [][]int {
	return TopologyFromSystem(S).Fragments()
}
