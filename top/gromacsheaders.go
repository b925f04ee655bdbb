/*
 * gromacsheaders.go, part of goChem
 *
 *
 * Copyright 2024 Raul Mera  <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 *
 *  This program is free software; you can redistribute it and/or modify
 *  it under the terms of the GNU Lesser General Public License as published by
 *  the Free Software Foundation; either version 3 of the License, or
 *  (at your option) any later version.
 *
 *  This program is distributed in the hope that it will be useful,
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 *  GNU General Public License for more details.
 *
 *  You should have received a copy of the GNU General Public License along
 *  with this program; if not, write to the Free Software Foundation, Inc.,
 *  51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.
 *
 *
 */

/*
Lexing of Gromacs topology lines: comments, headers and directives.
*/

package top

import (
	"regexp"
	"strconv"
	"strings"
)

var fi func(string) []string = strings.Fields

func parseints(s ...string) ([]int, error) {
	r := make([]int, 0, len(s))
	for _, v := range s {
		i, err := strconv.Atoi(v)
		if err != nil {
			return nil, err
		}
		r = append(r, i)
	}
	return r, nil
}

// Returns a string without gromacs comments (sequences starting with a ';'
// that is not between quotes), trailing and leading spaces, tabs and newlines
func cleanString(s string) string {
	var quote rune
	for i, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == ';':
			return strings.TrimSpace(s[:i])
		}
	}
	return strings.TrimSpace(s)
}

// truncateLine cuts s to at most max bytes, the rest of the line is lost.
// max<=0 means no limit.
func truncateLine(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}

type topHeader struct {
	wany *regexp.Regexp
}

func newTopHeader() *topHeader {
	return &topHeader{wany: regexp.MustCompile(`^\[([^\]]*)\]`)}
}

// Which returns the name of the section if line (already without comments)
// is a Gromacs header, and whether it was a header at all.
func (T *topHeader) Which(line string) (string, bool) {
	m := T.wany.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// Sections that are read. The contents of any other section are discarded.
var readSections = []string{"atomtypes", "moleculetype", "atoms", "bonds", "constraints", "angles", "dihedrals", "molecules", "system"}

type lineKind int

const (
	lineBlank lineKind = iota
	lineDirective
	lineHeader
	lineData
)

func (k lineKind) String() string {
	switch k {
	case lineDirective:
		return "directive"
	case lineHeader:
		return "header"
	case lineData:
		return "data"
	}
	return "blank"
}

// classify tags a raw line. For directives it returns the raw line, for
// headers the section name, and for data lines the line without comments.
// Directives are recognized before removing comments, so a line like
// "#ifdef A ; [ atoms ]" is always a directive.
func (T *topHeader) classify(raw string) (lineKind, string) {
	if isDirective(raw) {
		return lineDirective, raw
	}
	s := cleanString(raw)
	if s == "" {
		return lineBlank, ""
	}
	if name, ok := T.Which(s); ok {
		return lineHeader, name
	}
	return lineData, s
}
