/*
 * summary.go, part of goChem.
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
	"fmt"
	"strings"

	"github.com/rmera/grotop/top"
)

// TemplateCount contains the sizes of one molecule type.
type TemplateCount struct {
	Name      string
	Atoms     int
	Bonds     int
	Angles    int
	Dihedrals int
	Impropers int
}

// Summary describes a topology and the system built from it.
type Summary struct {
	Title     string
	AtomTypes int
	Templates []TemplateCount
	Molecules []top.Occurrence
	Totals    Totals
	Residues  int //number of residues, counted as changes of residue number or segment along the system
	Segments  int //number of changes of segment along the system
	Mass      float64
	Charge    float64
}

// Summarize builds the system for t and returns its summary.
func Summarize(t *top.Topology) (*Summary, error) {
	S, err := Build(t)
	if err != nil {
		return nil, err
	}
	ret := &Summary{
		Title:     t.Title,
		AtomTypes: len(t.AtomTypes),
		Molecules: append([]top.Occurrence(nil), t.Molecules...),
		Mass:      S.Mass(),
		Charge:    S.Charge(),
	}
	for _, v := range t.Templates {
		imp := v.NImpropers()
		ret.Templates = append(ret.Templates, TemplateCount{
			Name:      v.Name,
			Atoms:     v.Len(),
			Bonds:     len(v.Bonds),
			Angles:    len(v.Angles),
			Dihedrals: len(v.Dihedrals) - imp,
			Impropers: imp,
		})
	}
	ret.Totals = Totals{
		Atoms:     S.Len(),
		Bonds:     len(S.Bonds),
		Angles:    len(S.Angles),
		Dihedrals: len(S.Dihedrals),
		Impropers: len(S.Impropers),
	}
	ret.Residues, ret.Segments = runs(S.Atoms)
	return ret, nil
}

// runs counts how many times the residue (number and segment) and
// the segment change along ats.
func runs(ats []*Atom) (residues, segments int) {
	lastres := 0
	lastseg := ""
	for i, a := range ats {
		if i == 0 || a.MolID != lastres || a.SegID != lastseg {
			residues++
		}
		if i == 0 || a.SegID != lastseg {
			segments++
		}
		lastres = a.MolID
		lastseg = a.SegID
	}
	return residues, segments
}

// String returns a human-readable version of the summary.
func (S *Summary) String() string {
	var b strings.Builder
	line := strings.Repeat("=", 60)
	fmt.Fprintf(&b, "%s\nTOPOLOGY SUMMARY\n%s\n", line, line)
	fmt.Fprintf(&b, "System: %s\n", S.Title)
	fmt.Fprintf(&b, "\nAtom types loaded: %d\n", S.AtomTypes)
	fmt.Fprintf(&b, "\nMolecule types defined: %d\n", len(S.Templates))
	for _, v := range S.Templates {
		fmt.Fprintf(&b, "  %s: %d atoms, %d bonds, %d angles, %d dihedrals, %d impropers\n", v.Name, v.Atoms, v.Bonds, v.Angles, v.Dihedrals, v.Impropers)
	}
	fmt.Fprintf(&b, "\nMolecules in system:\n")
	for _, v := range S.Molecules {
		fmt.Fprintf(&b, "  %d x %s\n", v.Count, v.Name)
	}
	fmt.Fprintf(&b, "\nInstantiated system:\n")
	fmt.Fprintf(&b, "  %8d atoms\n", S.Totals.Atoms)
	fmt.Fprintf(&b, "  %8d bonds\n", S.Totals.Bonds)
	fmt.Fprintf(&b, "  %8d angles\n", S.Totals.Angles)
	fmt.Fprintf(&b, "  %8d dihedrals\n", S.Totals.Dihedrals)
	fmt.Fprintf(&b, "  %8d impropers\n", S.Totals.Impropers)
	fmt.Fprintf(&b, "  %8d residues\n", S.Residues)
	fmt.Fprintf(&b, "  %8d segments\n", S.Segments)
	fmt.Fprintf(&b, "  Total mass: %.3f amu, total charge: %.3f e\n", S.Mass, S.Charge)
	fmt.Fprintf(&b, "%s\n", line)
	return b.String()
}
