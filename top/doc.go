/*
 * doc.go, part of goChem
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

/*
Top reads Gromacs topologies (not to be confused with the gochem Topology
structure): the molecule types with their atoms, bonds, angles and dihedrals,
the atom types and the [ molecules ] list.

The reader understands the subset of the Gromacs preprocessor that topologies
normally use: #define, #ifdef, #ifndef, #else, #endif and #include with a quoted
file name. Macro values are ignored, only whether a symbol is defined matters.
Included files can be gzip (.gz) or zstd (.zst) compressed.

Sections other than the ones above (pairs, exclusions, settles, position restraints...)
are skipped, and so are data lines that can't be read.
*/
package top
