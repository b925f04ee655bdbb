/*
 * doc.go, part of gochem.
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
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

/*
Package grotop builds whole molecular systems from Gromacs topologies.

The topology files (a .top file and the .itp files it includes) are read with
the top subpackage. Each [ molecules ] entry is then expanded into as many copies
of its molecule type as requested, so every atom, bond, angle and dihedral in the
system gets a global, 1-based index. Residue numbers are renumbered so they keep
increasing from one copy to the next, and each molecule type gets a segment
name made from the first 4 letters of its name.

Typical use:

	S, natoms, err := grotop.Open("system.top", nil)
	if err != nil {
		//...
	}
	defer S.Close()
	atoms, flags, err := S.ReadStructure()
	bonds, err := S.ReadBonds()
	angles, dihedrals, impropers, err := S.ReadAnglesAndDihedrals()

The chemgraph subpackage finds the bonded fragments of a system, and chemplot
plots its composition.
*/
package grotop
