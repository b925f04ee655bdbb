/*
 * atoms.go, part of goChem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package grotop

import (
	"fmt"

	"github.com/skelterjohn/go.matrix"
	"gonum.org/v1/gonum/floats"
)

// Atom is one atom of the instantiated system.
type Atom struct {
	Name    string
	ID      int //1-based position in the system
	Type    string
	Molname string //residue name
	MolID   int    //residue number, continuous over all the molecules of the system
	SegID   string
	Chain   byte //Gromacs topologies have no chains, so this is always 0
	Charge  float64
	Mass    float64
}

// Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	N := *A
	return &N
}

// Bond contains 2 1-based atom indexes.
type Bond [2]int

// Angle contains 3 1-based atom indexes.
type Angle [3]int

// Dihedral contains 4 1-based atom indexes. Proper and improper
// dihedrals use the same type.
type Dihedral [4]int

// System is a whole instantiated topology: every copy of every molecule in the
// [ molecules ] section, with global indexes.
type System struct {
	Title     string
	Atoms     []*Atom
	Bonds     []Bond
	Angles    []Angle
	Dihedrals []Dihedral
	Impropers []Dihedral
}

// Len returns the number of atoms in the system.
func (S *System) Len() int {
	return len(S.Atoms)
}

// Atom returns the Atom corresponding to the index i
// of the Atom slice in the System. Panics if
// out of range.
func (S *System) Atom(i int) *Atom {
	if i >= S.Len() {
		panic("System: Requested Atom out of bounds")
	}
	return S.Atoms[i]
}

// Masses returns a slice with the masses of all atoms.
func (S *System) Masses() []float64 {
	m := make([]float64, S.Len())
	for i, v := range S.Atoms {
		m[i] = v.Mass
	}
	return m
}

// Charges returns a slice with the charges of all atoms.
func (S *System) Charges() []float64 {
	c := make([]float64, S.Len())
	for i, v := range S.Atoms {
		c[i] = v.Charge
	}
	return c
}

// Mass returns the total mass of the system.
func (S *System) Mass() float64 {
	return floats.Sum(S.Masses())
}

// Charge returns the total charge of the system.
func (S *System) Charge() float64 {
	return floats.Sum(S.Charges())
}

// MassCol returns a DenseMatrix 1-col matrix with masses of atoms and an error if
// some of them are zero, i.e. the mass was neither in the [ atoms ] line nor in the atom types.
func (S *System) MassCol() (*matrix.DenseMatrix, error) {
	mass := S.Masses()
	for i, v := range mass {
		if v == 0 {
			return nil, fmt.Errorf("Not all the masses have been obtained: %d %v", i, S.Atoms[i])
		}
	}
	return matrix.MakeDenseMatrix(mass, len(mass), 1), nil
}
