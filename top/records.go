package top

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by MoleculeTemplate.Validate when a bonded
// term refers to an atom the molecule type doesn't have.
var ErrIndexOutOfRange = errors.New("atom index out of range")

// AtomRecord is one line of an [ atoms ] section.
type AtomRecord struct {
	ID          int //as written in the file. Not used for indexing.
	Type        string
	ResNr       int
	Residue     string
	Name        string
	ChargeGroup int
	Charge      float64
	Mass        float64 //0 means "take it from the atom type"
}

// Bond joins 2 atoms of a molecule type. AI and AJ are 1-based positions in
// the molecule's [ atoms ] section. Constraints are also stored as bonds.
type Bond struct {
	AI, AJ int
}

// Angle contains 3 1-based atom positions.
type Angle struct {
	AI, AJ, AK int
}

// Dihedral contains 4 1-based atom positions, and the Gromacs function type
// (0 if the line didn't give one).
type Dihedral struct {
	AI, AJ, AK, AL int
	FuncType       int
}

// Improper returns true if the dihedral is an improper one, i.e. if its
// function type is 2 or 4.
func (D Dihedral) Improper() bool {
	return D.FuncType == 2 || D.FuncType == 4
}

// AtomType is the part of an [ atomtypes ] line we care about.
type AtomType struct {
	Name string
	Mass float64
}

// Occurrence is one line of the [ molecules ] section: Count copies of the
// molecule type called Name.
type Occurrence struct {
	Name  string
	Count int
}

// MoleculeTemplate is a [ moleculetype ], with all the terms that were read for it.
type MoleculeTemplate struct {
	Name      string
	NrExcl    int
	Atoms     []AtomRecord
	Bonds     []Bond
	Angles    []Angle
	Dihedrals []Dihedral
}

// NewMoleculeTemplate returns an empty molecule type with the Gromacs default nrexcl.
func NewMoleculeTemplate(name string) *MoleculeTemplate {
	return &MoleculeTemplate{Name: name, NrExcl: 3}
}

// Len returns the number of atoms in the molecule type.
func (M *MoleculeTemplate) Len() int {
	return len(M.Atoms)
}

// NImpropers returns the number of dihedrals in the molecule type
// that are impropers.
func (M *MoleculeTemplate) NImpropers() int {
	n := 0
	for _, d := range M.Dihedrals {
		if d.Improper() {
			n++
		}
	}
	return n
}

// ResidueSpan returns the smallest and largest residue numbers in the molecule type.
// A molecule type without atoms spans one residue, (1,1).
func (M *MoleculeTemplate) ResidueSpan() (min, max int) {
	if len(M.Atoms) == 0 {
		return 1, 1
	}
	min = M.Atoms[0].ResNr
	max = min
	for _, a := range M.Atoms[1:] {
		if a.ResNr < min {
			min = a.ResNr
		}
		if a.ResNr > max {
			max = a.ResNr
		}
	}
	return min, max
}

// Validate checks that every bonded term in the molecule type refers to atoms
// between 1 and M.Len(). It returns an error wrapping ErrIndexOutOfRange
// for the first term that doesn't.
func (M *MoleculeTemplate) Validate() error {
	n := M.Len()
	check := func(kind string, i int, ids ...int) error {
		for _, v := range ids {
			if v < 1 || v > n {
				return fmt.Errorf("molecule type %s, %s %d: atom %d not in [1,%d]: %w", M.Name, kind, i+1, v, n, ErrIndexOutOfRange)
			}
		}
		return nil
	}
	for i, b := range M.Bonds {
		if err := check("bond", i, b.AI, b.AJ); err != nil {
			return err
		}
	}
	for i, a := range M.Angles {
		if err := check("angle", i, a.AI, a.AJ, a.AK); err != nil {
			return err
		}
	}
	for i, d := range M.Dihedrals {
		if err := check("dihedral", i, d.AI, d.AJ, d.AK, d.AL); err != nil {
			return err
		}
	}
	return nil
}

// Topology holds everything read from a topology file and its includes:
// molecule types, atom types, the [ molecules ] list and the defined symbols.
type Topology struct {
	Title     string //last line of the [ system ] section
	Templates []*MoleculeTemplate
	AtomTypes []AtomType
	Molecules []Occurrence
	Defines   *DefineSet
	opts      *Options
}

// NewTopology returns an empty topology that will be filled using opts.
// If opts is nil, DefaultOptions are used. The symbols in opts.Defines are defined.
func NewTopology(opts *Options) *Topology {
	if opts == nil {
		opts = DefaultOptions()
	}
	T := &Topology{Defines: NewDefineSet(), opts: opts}
	for _, v := range opts.Defines {
		T.define(v)
	}
	return T
}

// Options returns the options the topology is read with.
func (T *Topology) Options() *Options {
	return T.opts
}

// Template returns the first molecule type called name, or nil if there is none.
func (T *Topology) Template(name string) *MoleculeTemplate {
	for _, v := range T.Templates {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// AtomTypeMass returns the mass of the first atom type called name, or 0
// if there is no such atom type.
func (T *Topology) AtomTypeMass(name string) float64 {
	for _, v := range T.AtomTypes {
		if v.Name == name {
			return v.Mass
		}
	}
	return 0
}

// Defined returns true if symbol has been #defined so far.
func (T *Topology) Defined(symbol string) bool {
	return T.Defines.Defined(symbol)
}

func atCapacity(n, max int) bool {
	return max > 0 && n >= max
}

func (T *Topology) define(symbol string) {
	if T.Defines.Defined(symbol) {
		return
	}
	if atCapacity(T.Defines.Len(), T.opts.MaxDefines) {
		T.opts.Log().Warn("Maximum number of #define symbols exceeded, symbol ignored", "max", T.opts.MaxDefines, "symbol", symbol)
		return
	}
	T.Defines.add(symbol)
	T.opts.Log().Debug("Defined symbol", "symbol", symbol)
}

// addTemplate returns nil if the molecule type was dropped.
func (T *Topology) addTemplate(M *MoleculeTemplate) *MoleculeTemplate {
	if atCapacity(len(T.Templates), T.opts.MaxTemplates) {
		T.opts.Log().Warn("Maximum number of molecule types exceeded, molecule type ignored", "max", T.opts.MaxTemplates, "name", M.Name)
		return nil
	}
	T.Templates = append(T.Templates, M)
	return M
}

func (T *Topology) addAtomType(A AtomType) {
	if atCapacity(len(T.AtomTypes), T.opts.MaxAtomTypes) {
		T.opts.Log().Warn("Maximum number of atom types exceeded, atom type ignored", "max", T.opts.MaxAtomTypes, "name", A.Name)
		return
	}
	T.AtomTypes = append(T.AtomTypes, A)
}

func (T *Topology) addOccurrence(O Occurrence) {
	if atCapacity(len(T.Molecules), T.opts.MaxOccurrences) {
		T.opts.Log().Warn("Maximum number of [ molecules ] entries exceeded, entry ignored", "max", T.opts.MaxOccurrences, "name", O.Name)
		return
	}
	T.opts.Log().Debug("Found molecule", "name", O.Name, "count", O.Count)
	T.Molecules = append(T.Molecules, O)
}
