package top

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Limits used by DefaultOptions. They are the same the VMD grotop plugin uses.
const (
	DefaultMaxIncludeDepth     = 100
	DefaultMaxConditionalDepth = 20
	DefaultMaxTemplates        = 500
	DefaultMaxAtomTypes        = 1000
	DefaultMaxOccurrences      = 1000
	DefaultMaxDefines          = 100
	DefaultMaxLineLength       = 511
)

// Options contains the settings for reading a topology.
type Options struct {
	//Symbols defined before the first line is read, as with grompp -D.
	Defines []string
	//Directories searched, in order, for included files not found next to the including file.
	IncludeDirs []string
	//Files read, in order, before the entry file. They share defines, templates
	//atom types and molecules with it. Useful for force field files with atom masses.
	Preload []string

	MaxIncludeDepth     int //an include deeper than this aborts the parse.
	MaxConditionalDepth int //a conditional nesting deeper than this aborts the parse.
	MaxTemplates        int
	MaxAtomTypes        int
	MaxOccurrences      int
	MaxDefines          int
	MaxLineLength       int //longer lines are truncated. <=0 means no limit.

	//If true, building the system fails when a bonded term refers to an atom
	//outside its molecule type. Otherwise such indexes are passed along unchanged.
	Strict bool

	Logger *slog.Logger
}

// DefaultOptions returns the options that reproduce the behavior of
// the VMD plugin: no predefined symbols, no include search path, non-strict.
func DefaultOptions() *Options {
	O := new(Options)
	O.MaxIncludeDepth = DefaultMaxIncludeDepth
	O.MaxConditionalDepth = DefaultMaxConditionalDepth
	O.MaxTemplates = DefaultMaxTemplates
	O.MaxAtomTypes = DefaultMaxAtomTypes
	O.MaxOccurrences = DefaultMaxOccurrences
	O.MaxDefines = DefaultMaxDefines
	O.MaxLineLength = DefaultMaxLineLength
	O.Logger = slog.Default()
	return O
}

// Log returns the logger to use, slog.Default() if none was set.
func (O *Options) Log() *slog.Logger {
	if O == nil || O.Logger == nil {
		return slog.Default()
	}
	return O.Logger
}

// hclOptions is the layout of an options file. Zero values mean "keep the default".
type hclOptions struct {
	Defines             []string `hcl:"defines,optional"`
	IncludeDirs         []string `hcl:"include_dirs,optional"`
	Preload             []string `hcl:"preload,optional"`
	MaxIncludeDepth     int      `hcl:"max_include_depth,optional"`
	MaxConditionalDepth int      `hcl:"max_conditional_depth,optional"`
	MaxTemplates        int      `hcl:"max_templates,optional"`
	MaxAtomTypes        int      `hcl:"max_atomtypes,optional"`
	MaxOccurrences      int      `hcl:"max_molecules,optional"`
	MaxDefines          int      `hcl:"max_defines,optional"`
	MaxLineLength       int      `hcl:"max_line_length,optional"`
	Strict              bool     `hcl:"strict,optional"`
}

// optionsContext makes the environment available to options files as
// the "env" object, so a file can say include_dirs = [env.GMXLIB].
func optionsContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		vars[k] = cty.StringVal(v)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": cty.ObjectVal(vars)},
	}
}

// LoadOptions reads options from an HCL file. Attributes not present in the
// file keep the values from DefaultOptions. A negative max_line_length
// disables line truncation. Environment variables can be used through the
// env object.
func LoadOptions(path string) (*Options, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse options file %s: %w", path, diags)
	}
	var h hclOptions
	diags = gohcl.DecodeBody(f.Body, optionsContext(), &h)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode options file %s: %w", path, diags)
	}
	O := DefaultOptions()
	O.Defines = h.Defines
	O.IncludeDirs = h.IncludeDirs
	O.Preload = h.Preload
	O.Strict = h.Strict
	setIfPositive(&O.MaxIncludeDepth, h.MaxIncludeDepth)
	setIfPositive(&O.MaxConditionalDepth, h.MaxConditionalDepth)
	setIfPositive(&O.MaxTemplates, h.MaxTemplates)
	setIfPositive(&O.MaxAtomTypes, h.MaxAtomTypes)
	setIfPositive(&O.MaxOccurrences, h.MaxOccurrences)
	setIfPositive(&O.MaxDefines, h.MaxDefines)
	if h.MaxLineLength != 0 {
		O.MaxLineLength = h.MaxLineLength
	}
	return O, nil
}

func setIfPositive(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
