/*
 * errors.go, part of goChem
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

package top

import (
	"errors"
	"fmt"
)

// Structural problems that abort a parse. They can be tested for with errors.Is
// on any error returned by Fill or Read.
var (
	ErrUnmatchedElse       = errors.New("#else without matching #ifdef")
	ErrUnmatchedEndif      = errors.New("#endif without matching #ifdef")
	ErrConditionalDepth    = errors.New("too many nested #ifdef directives")
	ErrIncludeDepth        = errors.New("too many nested includes")
	ErrMissingMoleculeName = errors.New("moleculetype section without a molecule name")
)

// Error is the error type returned by the topology reader. It records
// the file (and line, if known) where the problem was found, and a trail of
// decorations added as the error travels up the include chain.
type Error struct {
	message  string
	filename string
	line     int
	deco     []string
	critical bool
	err      error
}

func newError(filename string, line int, err error, deco string) *Error {
	return &Error{message: err.Error(), filename: filename, line: line, deco: []string{deco}, critical: true, err: err}
}

func (err *Error) Error() string {
	if err.line > 0 {
		return fmt.Sprintf("topology file %s:%d error: %s", err.filename, err.line, err.message)
	}
	return fmt.Sprintf("topology file %s error: %s", err.filename, err.message)
}

// Decorate adds new information to the error, and returns the
// decoration slice. An empty string only returns the current decorations.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// FileName returns the file in which the problem was found.
func (err *Error) FileName() string { return err.filename }

// Line returns the 1-based line of the offending directive, or 0.
func (err *Error) Line() int { return err.line }

// Critical returns true if the error aborted the parse.
func (err *Error) Critical() bool { return err.critical }

func (err *Error) Unwrap() error { return err.err }
