package top

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// reader contains what is shared by all the files read for one topology:
// the topology being filled, which holds the molecule types, atom types, molecules
// and defined symbols.
type reader struct {
	top    *Topology
	opts   *Options
	log    *slog.Logger
	header *topHeader
}

// fileState is what belongs to one file only. An included file starts with no
// open conditionals, no section and no current molecule type, and whatever
// it leaves open is forgotten when it ends.
type fileState struct {
	path         string
	line         int
	cond         condStack
	section      string
	awaitingName bool //a [ moleculetype ] header was read but not the name line yet.
	current      *MoleculeTemplate
}

func (T *Topology) newReader() *reader {
	return &reader{top: T, opts: T.opts, log: T.opts.Log(), header: newTopHeader()}
}

// Read parses the Gromacs topology in the file path, and all the files it includes.
// The files in opts.Preload, if any, are read first. If opts is nil, DefaultOptions are used.
func Read(path string, opts *Options) (*Topology, error) {
	T := NewTopology(opts)
	for _, p := range T.opts.Preload {
		if err := T.Fill(p); err != nil {
			return nil, err
		}
	}
	if err := T.Fill(path); err != nil {
		return nil, err
	}
	return T, nil
}

// Fill reads the topology file path (and its includes) into the receiver. Whatever
// was already in the receiver is kept, so several files can be read in sequence.
func (T *Topology) Fill(path string) error {
	return T.newReader().file(path, 0)
}

// FillReader is like Fill, but reads the main file from r. name is used to
// resolve #include directives and in error messages.
func (T *Topology) FillReader(r io.Reader, name string) error {
	return T.newReader().stream(r, name, 0)
}

func (R *reader) file(path string, depth int) error {
	max := R.opts.MaxIncludeDepth
	if max <= 0 {
		max = DefaultMaxIncludeDepth
	}
	if depth > max {
		return newError(path, 0, fmt.Errorf("%w (depth %d, max %d)", ErrIncludeDepth, depth, max), "Fill")
	}
	f, err := openTopology(path)
	if err != nil {
		return newError(path, 0, fmt.Errorf("cannot open file: %w", err), "Fill")
	}
	defer f.Close()
	return R.stream(f, path, depth)
}

func (R *reader) stream(r io.Reader, path string, depth int) error {
	R.log.Debug("Parsing file", "file", path, "depth", depth)
	F := &fileState{path: path}
	br := bufio.NewReader(r)
	for {
		s, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return newError(path, F.line, fmt.Errorf("read error: %w", err), "Fill")
		}
		if s == "" && err != nil {
			break
		}
		F.line++
		if e := R.line(F, truncateLine(s, R.opts.MaxLineLength), depth); e != nil {
			return e
		}
		if err != nil {
			break
		}
	}
	if F.awaitingName {
		return newError(path, F.line, ErrMissingMoleculeName, "Fill")
	}
	if F.cond.Depth() > 0 {
		R.log.Warn("Unmatched #ifdef directive(s)", "file", path, "count", F.cond.Depth(), "line", F.cond.UnclosedLine())
	}
	return nil
}

// line handles one raw line. Directives always run, everything else only
// if all the open conditionals are true.
func (R *reader) line(F *fileState, raw string, depth int) error {
	kind, s := R.header.classify(raw)
	if kind == lineDirective {
		return R.directive(F, parseDirective(s), depth)
	}
	if !F.cond.Active() {
		return nil
	}
	switch kind {
	case lineHeader:
		return R.section(F, s)
	case lineData:
		R.data(F, s)
	}
	return nil
}

func (R *reader) section(F *fileState, name string) error {
	if F.awaitingName {
		return newError(F.path, F.line, fmt.Errorf("%w, found [ %s ] instead", ErrMissingMoleculeName, name), "Fill")
	}
	if slices.Contains(readSections, name) {
		R.log.Debug("Processing section", "section", name, "file", F.path, "line", F.line)
	} else {
		R.log.Debug("Skipping section", "section", name, "file", F.path, "line", F.line)
	}
	F.section = name
	F.awaitingName = name == "moleculetype"
	return nil
}

// data reads a line according to the current section. Lines that don't
// follow the section's format are skipped without complaint, as are lines in
// sections we don't read, and molecule-type sections with no molecule type.
func (R *reader) data(F *fileState, s string) {
	T := R.top
	switch F.section {
	case "atomtypes":
		if at, err := AtomTypeFromGro(s); err == nil {
			T.addAtomType(at)
		}
	case "moleculetype":
		if !F.awaitingName {
			return
		}
		F.awaitingName = false
		M, err := MoleculeTypeFromGro(s)
		if err != nil {
			F.current = nil
			return
		}
		F.current = T.addTemplate(M)
	case "atoms":
		if F.current == nil {
			return
		}
		if at, err := AtomFromGro(s); err == nil {
			F.current.Atoms = append(F.current.Atoms, at)
		}
	case "bonds", "constraints":
		if F.current == nil {
			return
		}
		if b, err := BondFromGro(s); err == nil {
			F.current.Bonds = append(F.current.Bonds, b)
		}
	case "angles":
		if F.current == nil {
			return
		}
		if a, err := AngleFromGro(s); err == nil {
			F.current.Angles = append(F.current.Angles, a)
		}
	case "dihedrals":
		if F.current == nil {
			return
		}
		if d, err := DihedralFromGro(s); err == nil {
			F.current.Dihedrals = append(F.current.Dihedrals, d)
		}
	case "molecules":
		if o, err := OccurrenceFromGro(s); err == nil {
			T.addOccurrence(o)
		}
	case "system":
		T.Title = s
	}
}

func (R *reader) directive(F *fileState, d directive, depth int) error {
	switch d.cmd {
	case "define":
		sym := d.symbol()
		if sym == "" {
			R.log.Debug("#define without a symbol ignored", "file", F.path, "line", F.line)
			return nil
		}
		R.top.define(sym)
	case "ifdef", "ifndef":
		sym := d.symbol()
		if sym == "" {
			R.log.Debug("#"+d.cmd+" without a symbol ignored", "file", F.path, "line", F.line)
			return nil
		}
		if max := R.opts.MaxConditionalDepth; max > 0 && F.cond.Depth() >= max {
			return newError(F.path, F.line, fmt.Errorf("%w (max %d)", ErrConditionalDepth, max), "Fill")
		}
		cond := R.top.Defined(sym)
		if d.cmd == "ifndef" {
			cond = !cond
		}
		F.cond.Push(cond, F.line)
		R.log.Debug("Conditional", "directive", d.cmd, "symbol", sym, "value", cond, "file", F.path, "line", F.line)
	case "else":
		if !F.cond.Else() {
			return newError(F.path, F.line, ErrUnmatchedElse, "Fill")
		}
	case "endif":
		if !F.cond.Pop() {
			return newError(F.path, F.line, ErrUnmatchedEndif, "Fill")
		}
	case "include":
		if !F.cond.Active() {
			return nil
		}
		name, ok := parseIncludeArg(d.arg)
		if !ok {
			R.log.Warn("Unsupported #include form ignored", "argument", d.arg, "file", F.path, "line", F.line)
			return nil
		}
		err := R.file(includePath(F.path, name, R.opts.IncludeDirs), depth+1)
		if err != nil {
			var e *Error
			if errors.As(err, &e) {
				e.Decorate(fmt.Sprintf("included from %s:%d", F.path, F.line))
			}
			return err
		}
	default:
		R.log.Debug("Unsupported directive ignored", "directive", d.cmd, "file", F.path, "line", F.line)
	}
	return nil
}
