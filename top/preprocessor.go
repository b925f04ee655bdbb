package top

import (
	"slices"
	"strings"
)

// DefineSet is the set of symbols defined with #define. Only the presence of a
// symbol is recorded, values are ignored.
type DefineSet struct {
	names []string
}

// NewDefineSet returns an empty set.
func NewDefineSet() *DefineSet {
	return &DefineSet{names: make([]string, 0, 10)}
}

// Defined returns true if symbol is in the set.
func (D *DefineSet) Defined(symbol string) bool {
	return slices.Contains(D.names, symbol)
}

// Len returns the number of symbols in the set.
func (D *DefineSet) Len() int {
	return len(D.names)
}

// Names returns the symbols, in the order they were defined.
func (D *DefineSet) Names() []string {
	return slices.Clone(D.names)
}

func (D *DefineSet) add(symbol string) {
	if !D.Defined(symbol) {
		D.names = append(D.names, symbol)
	}
}

// condStack keeps the state of the #ifdef/#ifndef blocks open in one file.
// Lines are read only if every level is true.
type condStack struct {
	stack []condFrame
}

type condFrame struct {
	value bool
	line  int
}

func (c *condStack) Depth() int { return len(c.stack) }

// Active returns true if ordinary lines should be read.
func (c *condStack) Active() bool {
	for _, v := range c.stack {
		if !v.value {
			return false
		}
	}
	return true
}

func (c *condStack) Push(cond bool, line int) {
	c.stack = append(c.stack, condFrame{value: cond, line: line})
}

// Else inverts the innermost level. Returns false if there is none.
func (c *condStack) Else() bool {
	if len(c.stack) == 0 {
		return false
	}
	top := &c.stack[len(c.stack)-1]
	top.value = !top.value
	return true
}

// Pop closes the innermost level. Returns false if there is none.
func (c *condStack) Pop() bool {
	if len(c.stack) == 0 {
		return false
	}
	c.stack = c.stack[:len(c.stack)-1]
	return true
}

// UnclosedLine returns the line where the innermost open level started, or 0.
func (c *condStack) UnclosedLine() int {
	if len(c.stack) == 0 {
		return 0
	}
	return c.stack[len(c.stack)-1].line
}

// directive is a preprocessor line split into its command ("define",
// "ifdef", ...) and the rest of the line.
type directive struct {
	cmd string
	arg string
}

// isDirective returns true if the first non-blank character of the raw line is '#'.
func isDirective(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t\r\n\v\f"), "#")
}

// parseDirective splits a directive line. It expects a line for which
// isDirective is true.
func parseDirective(line string) directive {
	s := strings.TrimSpace(line)
	s = strings.TrimLeft(strings.TrimPrefix(s, "#"), " \t")
	end := strings.IndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r == '_')
	})
	if end < 0 {
		return directive{cmd: s}
	}
	return directive{cmd: s[:end], arg: strings.TrimSpace(s[end:])}
}

// symbol returns the first word of the directive's argument, which is the
// symbol for #define, #ifdef and #ifndef. Anything after it (a value,
// a comment) is ignored.
func (d directive) symbol() string {
	f := fi(cleanString(d.arg))
	if len(f) == 0 {
		return ""
	}
	return f[0]
}
