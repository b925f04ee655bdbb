/*
 * build.go, part of goChem.
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
	"fmt"
	"strings"

	"github.com/rmera/grotop/top"
)

// ErrUnknownTemplate is returned when the [ molecules ] section names
// a molecule type that was never defined.
var ErrUnknownTemplate = errors.New("unknown molecule type")

// Totals contains the sizes of the instantiated system.
type Totals struct {
	Atoms     int
	Bonds     int
	Angles    int
	Dihedrals int //proper
	Impropers int
}

// instance is one line of the [ molecules ] section with its molecule type.
type instance struct {
	mt    *top.MoleculeTemplate
	count int
}

// instances resolves the molecule types of all the [ molecules ] entries, in order.
// If the topology was read with Strict options, each molecule type is also
// checked for bonded terms referring to atoms it doesn't have.
func instances(t *top.Topology) ([]instance, error) {
	ret := make([]instance, 0, len(t.Molecules))
	checked := make(map[*top.MoleculeTemplate]bool)
	strict := t.Options().Strict
	for _, o := range t.Molecules {
		mt := t.Template(o.Name)
		if mt == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTemplate, o.Name)
		}
		if strict && !checked[mt] {
			if err := mt.Validate(); err != nil {
				return nil, err
			}
			checked[mt] = true
		}
		ret = append(ret, instance{mt: mt, count: o.Count})
	}
	return ret, nil
}

// segID returns the segment name used for all copies of a molecule type:
// the first 4 characters of its name, in upper case.
func segID(name string) string {
	if len(name) > 4 {
		name = name[:4]
	}
	return strings.ToUpper(name)
}

// Count returns how many atoms, bonds, angles, proper and improper dihedrals
// the instantiated system has.
func Count(t *top.Topology) (Totals, error) {
	var T Totals
	ins, err := instances(t)
	if err != nil {
		return T, err
	}
	for _, v := range ins {
		imp := v.mt.NImpropers()
		T.Atoms += v.mt.Len() * v.count
		T.Bonds += len(v.mt.Bonds) * v.count
		T.Angles += len(v.mt.Angles) * v.count
		T.Dihedrals += (len(v.mt.Dihedrals) - imp) * v.count
		T.Impropers += imp * v.count
	}
	return T, nil
}

// BuildAtoms returns every atom of the system. Molecules are placed in the
// order of the [ molecules ] section, and the residue numbers of each copy
// continue from those of the previous one. Atoms with no mass in their
// [ atoms ] line take it from their atom type, or get 0 if the type is unknown.
func BuildAtoms(t *top.Topology) ([]*Atom, error) {
	ins, err := instances(t)
	if err != nil {
		return nil, err
	}
	ret := make([]*Atom, 0, 100)
	resoffset := 0
	for _, v := range ins {
		seg := segID(v.mt.Name)
		min, max := v.mt.ResidueSpan()
		nres := max - min + 1
		for c := 0; c < v.count; c++ {
			for _, a := range v.mt.Atoms {
				at := &Atom{
					Name:    a.Name,
					ID:      len(ret) + 1,
					Type:    a.Type,
					Molname: a.Residue,
					MolID:   resoffset + (a.ResNr - min) + 1,
					SegID:   seg,
					Charge:  a.Charge,
					Mass:    a.Mass,
				}
				if at.Mass <= 0 {
					at.Mass = t.AtomTypeMass(a.Type)
				}
				ret = append(ret, at)
			}
			resoffset += nres
		}
	}
	return ret, nil
}

// BuildBonds returns all the bonds (and constraints) of the system, with
// global 1-based indexes.
func BuildBonds(t *top.Topology) ([]Bond, error) {
	ins, err := instances(t)
	if err != nil {
		return nil, err
	}
	var ret []Bond
	offset := 0
	for _, v := range ins {
		for c := 0; c < v.count; c++ {
			for _, b := range v.mt.Bonds {
				ret = append(ret, Bond{b.AI + offset, b.AJ + offset})
			}
			offset += v.mt.Len()
		}
	}
	return ret, nil
}

// BuildAngles returns all the angles of the system, with global 1-based indexes.
func BuildAngles(t *top.Topology) ([]Angle, error) {
	ins, err := instances(t)
	if err != nil {
		return nil, err
	}
	var ret []Angle
	offset := 0
	for _, v := range ins {
		for c := 0; c < v.count; c++ {
			for _, a := range v.mt.Angles {
				ret = append(ret, Angle{a.AI + offset, a.AJ + offset, a.AK + offset})
			}
			offset += v.mt.Len()
		}
	}
	return ret, nil
}

// BuildDihedrals returns the proper and the improper dihedrals of the system,
// with global 1-based indexes. Dihedrals with function type 2 or 4 are impropers.
func BuildDihedrals(t *top.Topology) (propers, impropers []Dihedral, err error) {
	ins, err := instances(t)
	if err != nil {
		return nil, nil, err
	}
	offset := 0
	for _, v := range ins {
		for c := 0; c < v.count; c++ {
			for _, d := range v.mt.Dihedrals {
				g := Dihedral{d.AI + offset, d.AJ + offset, d.AK + offset, d.AL + offset}
				if d.Improper() {
					impropers = append(impropers, g)
				} else {
					propers = append(propers, g)
				}
			}
			offset += v.mt.Len()
		}
	}
	return propers, impropers, nil
}

// Build instantiates the whole system.
func Build(t *top.Topology) (*System, error) {
	var err error
	S := &System{Title: t.Title}
	if S.Atoms, err = BuildAtoms(t); err != nil {
		return nil, err
	}
	if S.Bonds, err = BuildBonds(t); err != nil {
		return nil, err
	}
	if S.Angles, err = BuildAngles(t); err != nil {
		return nil, err
	}
	if S.Dihedrals, S.Impropers, err = BuildDihedrals(t); err != nil {
		return nil, err
	}
	return S, nil
}
