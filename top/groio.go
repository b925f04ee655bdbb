package top

import (
	"fmt"
	"strconv"
)

func qerr(err error) {
	if err != nil {
		panic(err.Error())
	}
}

// The functions in this file read one (data) line of a given section.
// They return an error if the line doesn't follow the section's format, in which
// case the reader just skips the line.

// AtomTypeFromGro reads the name and mass from an [ atomtypes ] line.
// Two layouts are tried, in this order:
//
//	name mass ...                    (Martini)
//	name bond_type atnum mass ...    (full Gromacs)
//
// Note that a line in the "name atnum mass charge ..." format matches the
// first layout, so the atomic number would be taken as the mass.
func AtomTypeFromGro(s string) (AtomType, error) {
	f := fi(cleanString(s))
	if len(f) >= 2 {
		if m, err := strconv.ParseFloat(f[1], 64); err == nil {
			return AtomType{Name: f[0], Mass: m}, nil
		}
	}
	if len(f) >= 4 {
		if m, err := strconv.ParseFloat(f[3], 64); err == nil {
			return AtomType{Name: f[0], Mass: m}, nil
		}
	}
	return AtomType{}, fmt.Errorf("can't read atom type from line: %s", s)
}

// MoleculeTypeFromGro reads the "name nrexcl" line of a [ moleculetype ]
// section. nrexcl is 3 if absent or unreadable.
func MoleculeTypeFromGro(s string) (*MoleculeTemplate, error) {
	f := fi(cleanString(s))
	if len(f) == 0 {
		return nil, fmt.Errorf("empty moleculetype line")
	}
	M := NewMoleculeTemplate(f[0])
	if len(f) > 1 {
		if n, err := strconv.Atoi(f[1]); err == nil {
			M.NrExcl = n
		}
	}
	return M, nil
}

// AtomFromGro reads an [ atoms ] line:
//
//	id type resnr residue atom cgnr charge [mass]
//
// If the mass is missing or can't be read, it is set to 0.
func AtomFromGro(s string) (at AtomRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("can't read atom from line: %s Error: %s", s, r)
		}
	}()
	l := fi(cleanString(s))
	if len(l) < 7 {
		return at, fmt.Errorf("atom line with %d fields, at least 7 needed: %s", len(l), s)
	}
	at.ID, err = strconv.Atoi(l[0])
	qerr(err)
	at.Type = l[1]
	at.ResNr, err = strconv.Atoi(l[2])
	qerr(err)
	at.Residue = l[3]
	at.Name = l[4]
	at.ChargeGroup, err = strconv.Atoi(l[5])
	qerr(err)
	at.Charge, err = strconv.ParseFloat(l[6], 64)
	qerr(err)
	if len(l) > 7 {
		m, err := strconv.ParseFloat(l[7], 64)
		if err == nil {
			at.Mass = m
		}
	}
	return at, nil
}

// termFromGro reads the first n atom indexes of a bonded term line.
func termFromGro(s string, n int) ([]int, error) {
	l := fi(cleanString(s))
	if len(l) < n {
		return nil, fmt.Errorf("term with %d fields, %d atoms needed: %s", len(l), n, s)
	}
	return parseints(l[:n]...)
}

// BondFromGro reads a [ bonds ] or [ constraints ] line: ai aj ...
func BondFromGro(s string) (Bond, error) {
	ids, err := termFromGro(s, 2)
	if err != nil {
		return Bond{}, err
	}
	return Bond{AI: ids[0], AJ: ids[1]}, nil
}

// AngleFromGro reads an [ angles ] line: ai aj ak ...
func AngleFromGro(s string) (Angle, error) {
	ids, err := termFromGro(s, 3)
	if err != nil {
		return Angle{}, err
	}
	return Angle{AI: ids[0], AJ: ids[1], AK: ids[2]}, nil
}

// DihedralFromGro reads a [ dihedrals ] line: ai aj ak al [funct ...]
// The function type is 0 if absent or not an integer.
func DihedralFromGro(s string) (Dihedral, error) {
	ids, err := termFromGro(s, 4)
	if err != nil {
		return Dihedral{}, err
	}
	D := Dihedral{AI: ids[0], AJ: ids[1], AK: ids[2], AL: ids[3]}
	if l := fi(cleanString(s)); len(l) > 4 {
		if ft, err := strconv.Atoi(l[4]); err == nil {
			D.FuncType = ft
		}
	}
	return D, nil
}

// OccurrenceFromGro reads a [ molecules ] line: name count
func OccurrenceFromGro(s string) (Occurrence, error) {
	l := fi(cleanString(s))
	if len(l) < 2 {
		return Occurrence{}, fmt.Errorf("molecules line needs a name and a count: %s", s)
	}
	c, err := strconv.Atoi(l[1])
	if err != nil {
		return Occurrence{}, fmt.Errorf("can't read molecule count from line: %s Error: %w", s, err)
	}
	if c < 0 {
		return Occurrence{}, fmt.Errorf("negative molecule count in line: %s", s)
	}
	return Occurrence{Name: l[0], Count: c}, nil
}
