/*
 * interfaces.go, part of gochem.
 *
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
 *
 * Gochem is developed at the laboratory for instruction in Swedish, Department of Chemistry,
 * University of Helsinki, Finland.
 *
 *
 */

package grotop

import "github.com/rmera/grotop/top"

// Atomer is the basic interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i
	//of the Atom slice. Should panic if
	//out of range.
	Atom(i int) *Atom

	Len() int
}

// Masser can return a slice with the masses of each atom.
type Masser interface {
	Masses() []float64
}

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call also returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it should just return the current value, not add the empty string to the slice.
}

// TopError is the interface for errors found while reading a topology file.
type TopError interface {
	Error
	Critical() bool
	FileName() string
	Line() int
}

var (
	_ Atomer   = (*System)(nil)
	_ Masser   = (*System)(nil)
	_ TopError = (*top.Error)(nil)
)
