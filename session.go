/*
 * session.go, part of goChem.
 *
 * Copyright 2025 Raul Mera A. (rmeraaatacademicosdotutadotcl)
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
	"errors"

	"github.com/rmera/grotop/top"
)

// ErrClosed is returned by the methods of a Session after Close.
var ErrClosed = errors.New("topology session is closed")

// OptFlags tell which of the optional atom fields are filled by ReadStructure.
type OptFlags int

const (
	Charge OptFlags = 1 << iota
	Mass
)

// Session is an open topology. The arrays returned by its methods are
// computed anew in each call. A Session is not safe for concurrent use.
type Session struct {
	top    *top.Topology
	natoms int
}

// Open reads the topology in path, with the given options (DefaultOptions
// if nil), and returns a session for it, with the number of atoms in the system.
// It fails if the topology can't be read, or if the [ molecules ] section
// names an undefined molecule type.
func Open(path string, opts *top.Options) (*Session, int, error) {
	t, err := top.Read(path, opts)
	if err != nil {
		return nil, 0, err
	}
	return NewSession(t)
}

// NewSession returns a session for an already read topology, and the number
// of atoms in the system.
func NewSession(t *top.Topology) (*Session, int, error) {
	n, err := Count(t)
	if err != nil {
		return nil, 0, err
	}
	t.Options().Log().Debug("Topology opened", "atoms", n.Atoms, "bonds", n.Bonds, "angles", n.Angles, "dihedrals", n.Dihedrals, "impropers", n.Impropers)
	return &Session{top: t, natoms: n.Atoms}, n.Atoms, nil
}

// Topology returns the topology read, or nil if the session is closed.
func (S *Session) Topology() *top.Topology {
	return S.top
}

// Len returns the number of atoms in the system, or 0 if the session is closed.
func (S *Session) Len() int {
	if S.top == nil {
		return 0
	}
	return S.natoms
}

// ReadStructure returns all the atoms of the system. Charges and masses are
// always set.
func (S *Session) ReadStructure() ([]*Atom, OptFlags, error) {
	if S.top == nil {
		return nil, 0, ErrClosed
	}
	ats, err := BuildAtoms(S.top)
	if err != nil {
		return nil, 0, err
	}
	return ats, Charge | Mass, nil
}

// ReadBonds returns the bonds of the system, with 1-based global indexes.
func (S *Session) ReadBonds() ([]Bond, error) {
	if S.top == nil {
		return nil, ErrClosed
	}
	return BuildBonds(S.top)
}

// ReadAnglesAndDihedrals returns the angles, the proper dihedrals and the
// improper dihedrals of the system, with 1-based global indexes.
func (S *Session) ReadAnglesAndDihedrals() ([]Angle, []Dihedral, []Dihedral, error) {
	if S.top == nil {
		return nil, nil, nil, ErrClosed
	}
	angles, err := BuildAngles(S.top)
	if err != nil {
		return nil, nil, nil, err
	}
	dihe, imp, err := BuildDihedrals(S.top)
	if err != nil {
		return nil, nil, nil, err
	}
	return angles, dihe, imp, nil
}

// System returns the whole instantiated system.
func (S *Session) System() (*System, error) {
	if S.top == nil {
		return nil, ErrClosed
	}
	return Build(S.top)
}

// Summary returns a summary of the topology and the system built from it.
func (S *Session) Summary() (*Summary, error) {
	if S.top == nil {
		return nil, ErrClosed
	}
	return Summarize(S.top)
}

// Close releases the topology. Closing a closed session does nothing.
func (S *Session) Close() error {
	S.top = nil
	S.natoms = 0
	return nil
}
