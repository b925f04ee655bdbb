/*
 * atomicdata.go, part of gochem.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package grotop

import (
	"strings"
	"unicode"
)

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
}

// elementOf guesses the chemical element of an atom from its name. Atoms whose
// name is the same as their residue's (ions, mostly) are tried with a 2-letter
// symbol first. Returns "" if no element in symbolMass matches.
func elementOf(A *Atom) string {
	name := strings.TrimLeftFunc(A.Name, unicode.IsDigit)
	if name == "" {
		return ""
	}
	if len(name) >= 2 && strings.EqualFold(A.Name, A.Molname) {
		two := strings.ToUpper(name[:1]) + strings.ToLower(name[1:2])
		if _, ok := symbolMass[two]; ok {
			return two
		}
	}
	one := strings.ToUpper(name[:1])
	if _, ok := symbolMass[one]; ok {
		return one
	}
	return ""
}

// GuessMasses sets the mass of every massless atom in S from the element
// guessed from its name. It returns the number of atoms that are still massless.
func (S *System) GuessMasses() int {
	missing := 0
	for _, a := range S.Atoms {
		if a.Mass > 0 {
			continue
		}
		if e := elementOf(a); e != "" {
			a.Mass = symbolMass[e]
			continue
		}
		missing++
	}
	return missing
}
