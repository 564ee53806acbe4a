/*
 * errors.go, part of gocrys.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
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
 * goCrys is developed at Universidad de Tarapaca (UTA)
 *
 */

package cif

import "fmt"

// Every error returned by this package is one of the four types below, so
// callers can tell what went wrong with a type switch or errors.As. All four
// implement the library's Error interface (Error plus Decorate) and all are
// fatal to the parse that produced them: no partial Structure is ever
// returned alongside one.

// FormatError reports a structural problem with the file itself: no data_
// block, more than one data_ block, a repeated scalar tag, a loop_ without
// column headers. Line is 1-based, 0 when the problem has no single line
// (such as a missing data_ block).
type FormatError struct {
	Line int
	msg  string
	deco []string
}

func (err *FormatError) Error() string {
	if err.Line == 0 {
		return "cif: " + err.msg
	}
	return fmt.Sprintf("cif: line %d: %s", err.Line, err.msg)
}

// Decorate adds dec to the error's decoration slice and returns the slice.
func (err *FormatError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// MissingFieldError reports a required scalar tag, loop column or loop that
// the data_ block does not carry. Tag names what is missing.
type MissingFieldError struct {
	Tag  string
	deco []string
}

func (err *MissingFieldError) Error() string {
	return fmt.Sprintf("cif: required field %s not found", err.Tag)
}

// Decorate adds dec to the error's decoration slice and returns the slice.
func (err *MissingFieldError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// MalformedValueError reports a value that is present but cannot be parsed
// as what its tag requires, or is out of its legal range.
type MalformedValueError struct {
	Line  int
	Tag   string
	Value string
	msg   string
	deco  []string
}

func (err *MalformedValueError) Error() string {
	return fmt.Sprintf("cif: line %d: bad value %q for %s: %s", err.Line, err.Value, err.Tag, err.msg)
}

// Decorate adds dec to the error's decoration slice and returns the slice.
func (err *MalformedValueError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// RowArityError reports a loop row whose token count does not match the
// number of declared columns.
type RowArityError struct {
	Line int
	Loop string
	Want int
	Got  int
	deco []string
}

func (err *RowArityError) Error() string {
	return fmt.Sprintf("cif: line %d: row in loop %s has %d tokens, want %d", err.Line, err.Loop, err.Got, err.Want)
}

// Decorate adds dec to the error's decoration slice and returns the slice.
func (err *RowArityError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}
